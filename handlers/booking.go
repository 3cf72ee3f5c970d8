package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"puresakura/models"
	"puresakura/services/booking"
	"puresakura/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
	Metrics        *utils.Metrics
	Timeout        time.Duration
}

func NewBookingHandler(svc booking.BookingService, metrics *utils.Metrics, timeout time.Duration) *BookingHandler {
	return &BookingHandler{
		BookingService: svc,
		Metrics:        metrics,
		Timeout:        timeout,
	}
}

// Book records a booking in the spreadsheet.
//
//	200 {"message":"Booking successful!"}
//	400 {"message":"Missing required fields."}
//	500 {"message":"Failed to save booking. Please try again later."}
func (h *BookingHandler) Book(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Info("Book: rejected payload", zap.Error(err))
		h.Metrics.Observe(utils.OutcomeInvalid)
		utils.JSONMessage(c, http.StatusBadRequest, models.MsgMissingFields)
		return
	}

	ctx := c.Request.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	err := h.BookingService.SubmitBooking(ctx, req)
	switch {
	case err == nil:
		h.Metrics.Observe(utils.OutcomeSuccess)
		utils.JSONMessage(c, http.StatusOK, models.MsgBookingSuccessful)
	case errors.Is(err, booking.ErrMissingFields):
		logger.Info("Book: missing fields", zap.Error(err))
		h.Metrics.Observe(utils.OutcomeInvalid)
		utils.JSONMessage(c, http.StatusBadRequest, models.MsgMissingFields)
	default:
		// The cause stays in the log; the client only sees the generic message.
		logger.Error("Book: Google Sheets API error", zap.Error(err))
		h.Metrics.Observe(utils.OutcomeFailed)
		utils.JSONMessage(c, http.StatusInternalServerError, models.MsgBookingFailed)
	}
}

// MethodNotAllowed answers any method a route does not register.
func MethodNotAllowed(c *gin.Context) {
	utils.JSONMessage(c, http.StatusMethodNotAllowed, models.MsgMethodNotAllowed)
}
