package booking

import (
	"context"
	"time"

	"puresakura/models"
	"puresakura/utils"

	"go.uber.org/zap"
)

// SubmitBooking re-checks the required fields and appends the booking as one
// new spreadsheet row. There is no deduplication: a resubmitted booking is
// written again.
func (s *DefaultBookingService) SubmitBooking(ctx context.Context, req models.BookingRequest) error {
	logger := s.logger()

	if missing := req.MissingFields(); len(missing) > 0 {
		logger.Debug("SubmitBooking: rejected", zap.Strings("missing", missing))
		return &MissingFieldsError{Fields: missing}
	}

	start := time.Now()
	err := s.Sheet.AppendBooking(ctx, req.Row())
	if s.Metrics != nil {
		s.Metrics.AppendDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return &IntegrationError{Op: "append booking", Err: err}
	}

	logger.Info("SubmitBooking: booking recorded",
		zap.String("treatment", req.Treatment),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
	)
	return nil
}

// Catalog returns the selectable treatments, durations and time slots.
func (s *DefaultBookingService) Catalog() models.Catalog {
	return models.Catalog{
		Treatments: append([]string(nil), models.Treatments...),
		Durations:  append([]string(nil), models.Durations...),
		TimeSlots:  GenerateTimeSlots(),
	}
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}
