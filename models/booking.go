package models

import "strings"

// BookingRequest is the payload posted by the booking form. Date is
// "YYYY-MM-DD", Time a slot label such as "3:00 PM", Duration e.g. "60mins".
type BookingRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	ContactNumber   string `json:"contactNumber" binding:"required"`
	EmailAddress    string `json:"emailAddress" binding:"required"`
	Treatment       string `json:"treatment" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Duration        string `json:"duration" binding:"required"`
}

// Field names as they appear on the wire and in per-field error maps.
const (
	FieldFullName        = "fullName"
	FieldContactNumber   = "contactNumber"
	FieldEmailAddress    = "emailAddress"
	FieldTreatment       = "treatment"
	FieldSpecialRequests = "specialRequests"
	FieldDate            = "date"
	FieldTime            = "time"
	FieldDuration        = "duration"
)

// RowColumns is the spreadsheet column order, A through H.
var RowColumns = []string{
	FieldFullName,
	FieldContactNumber,
	FieldEmailAddress,
	FieldTreatment,
	FieldSpecialRequests,
	FieldDate,
	FieldTime,
	FieldDuration,
}

// Row flattens the booking into the spreadsheet column order.
func (b BookingRequest) Row() []string {
	return []string{
		b.FullName,
		b.ContactNumber,
		b.EmailAddress,
		b.Treatment,
		b.SpecialRequests,
		b.Date,
		b.Time,
		b.Duration,
	}
}

// MissingFields lists the required fields that are empty, in column order.
// SpecialRequests is optional and never reported.
func (b BookingRequest) MissingFields() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{FieldFullName, b.FullName},
		{FieldContactNumber, b.ContactNumber},
		{FieldEmailAddress, b.EmailAddress},
		{FieldTreatment, b.Treatment},
		{FieldDate, b.Date},
		{FieldTime, b.Time},
		{FieldDuration, b.Duration},
	}
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (b BookingRequest) Trimmed() BookingRequest {
	return BookingRequest{
		FullName:        strings.TrimSpace(b.FullName),
		ContactNumber:   strings.TrimSpace(b.ContactNumber),
		EmailAddress:    strings.TrimSpace(b.EmailAddress),
		Treatment:       strings.TrimSpace(b.Treatment),
		SpecialRequests: strings.TrimSpace(b.SpecialRequests),
		Date:            strings.TrimSpace(b.Date),
		Time:            strings.TrimSpace(b.Time),
		Duration:        strings.TrimSpace(b.Duration),
	}
}
