package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingFields is returned when a required booking field is absent or empty.
var ErrMissingFields = errors.New("missing required fields")

// MissingFieldsError names the fields that failed the presence check.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingFields, strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Unwrap() error { return ErrMissingFields }

// IntegrationError wraps any failure talking to the spreadsheet.
type IntegrationError struct {
	Op  string
	Err error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IntegrationError) Unwrap() error { return e.Err }
