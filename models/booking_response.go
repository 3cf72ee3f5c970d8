// models/booking_response.go
package models

import "time"

// Messages returned by POST /api/book.
const (
	MsgBookingSuccessful = "Booking successful!"
	MsgMissingFields     = "Missing required fields."
	MsgBookingFailed     = "Failed to save booking. Please try again later."
	MsgMethodNotAllowed  = "Method Not Allowed"
)

// MessageResponse is the body of every /api/book answer.
type MessageResponse struct {
	Message string `json:"message"`
}

// SheetHealth is the latest spreadsheet probe, served on /health.
type SheetHealth struct {
	Reachable bool      `json:"reachable"`
	Rows      int       `json:"rows"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}
