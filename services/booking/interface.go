package booking

import (
	"context"

	"puresakura/models"
	"puresakura/utils"

	"go.uber.org/zap"
)

// BookingService records bookings in the system of record.
type BookingService interface {
	SubmitBooking(ctx context.Context, req models.BookingRequest) error
	Catalog() models.Catalog
}

// BookingSheet is the spreadsheet the bookings land in.
type BookingSheet interface {
	AppendBooking(ctx context.Context, row []string) error
	CountRows(ctx context.Context) (int, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Sheet   BookingSheet
	Metrics *utils.Metrics
	Logger  *zap.Logger
}
