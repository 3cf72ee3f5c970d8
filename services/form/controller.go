package form

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"puresakura/models"
	"puresakura/services/booking"
	"puresakura/utils"

	"go.uber.org/zap"
)

// State is where the form is in its submission lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// Messages shown in place of the form after a failed submission.
const (
	MsgSubmitFailed = "Failed to submit booking. Please try again later."
	MsgNetworkError = "An error occurred. Please check your connection and try again."
)

var (
	// ErrSubmissionInFlight is returned by Submit while a previous submission
	// is still being validated or sent.
	ErrSubmissionInFlight = errors.New("a booking submission is already in progress")
	// ErrNotIdle is returned by Submit after a success until Dismiss is called.
	ErrNotIdle = errors.New("booking form is not ready for a new submission")
	// ErrUnknownField is returned by SetField for names outside the form.
	ErrUnknownField = errors.New("unknown booking field")
)

// ValidationError carries the per-field messages of a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid booking fields: " + strings.Join(names, ", ")
}

// Controller owns the booking form: field values, per-field errors and the
// submission lifecycle. It is safe for concurrent use.
type Controller struct {
	submitter Submitter
	rules     *booking.FormRules
	logger    *zap.Logger

	mu        sync.Mutex
	fields    models.BookingRequest
	errors    map[string]string
	state     State
	submitErr string
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the source of "today" for the date rule.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.rules = booking.NewFormRules(now)
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func NewController(submitter Submitter, opts ...Option) *Controller {
	c := &Controller{
		submitter: submitter,
		errors:    map[string]string{},
		state:     StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rules == nil {
		c.rules = booking.NewFormRules(nil)
	}
	if c.logger == nil {
		c.logger = utils.GetLogger()
	}
	return c
}

// SetField updates one input and clears its error message.
func (c *Controller) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch name {
	case models.FieldFullName:
		c.fields.FullName = value
	case models.FieldContactNumber:
		c.fields.ContactNumber = value
	case models.FieldEmailAddress:
		c.fields.EmailAddress = value
	case models.FieldTreatment:
		c.fields.Treatment = value
	case models.FieldSpecialRequests:
		c.fields.SpecialRequests = value
	case models.FieldDate:
		c.fields.Date = value
	case models.FieldTime:
		c.fields.Time = value
	case models.FieldDuration:
		c.fields.Duration = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	delete(c.errors, name)
	return nil
}

func (c *Controller) Fields() models.BookingRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

func (c *Controller) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyErrors(c.errors)
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SubmitError is the message of the last failed submission, if any.
func (c *Controller) SubmitError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitErr
}

// MinDate is the earliest date the date input offers.
func (c *Controller) MinDate() string {
	return c.rules.MinDate()
}

// Validate evaluates the rules against the current fields without changing state.
func (c *Controller) Validate() map[string]string {
	return c.rules.Validate(c.Fields())
}

// Submit validates the form and, when every field passes, sends it.
// Only one submission may be in flight; other callers get
// ErrSubmissionInFlight without a network call.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateValidating, StateSubmitting:
		c.mu.Unlock()
		return ErrSubmissionInFlight
	case StateSuccess:
		c.mu.Unlock()
		return ErrNotIdle
	}

	c.state = StateValidating
	if errs := c.rules.Validate(c.fields); len(errs) > 0 {
		c.errors = errs
		c.state = StateIdle
		c.mu.Unlock()
		return &ValidationError{Fields: copyErrors(errs)}
	}

	c.errors = map[string]string{}
	c.submitErr = ""
	c.state = StateSubmitting
	req := c.fields.Trimmed()
	c.mu.Unlock()

	msg, err := c.submitter.Submit(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateError
		c.submitErr = failureMessage(err)
		c.logger.Warn("Booking submission failed", zap.Error(err))
		return err
	}

	c.logger.Info("Booking submitted", zap.String("message", msg))
	c.fields = models.BookingRequest{}
	c.state = StateSuccess
	return nil
}

// Dismiss closes the confirmation and returns an empty form.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSuccess {
		c.state = StateIdle
	}
}

// Retry clears a failed submission so the form can be sent again.
func (c *Controller) Retry() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateError {
		c.state = StateIdle
		c.submitErr = ""
	}
}

func failureMessage(err error) string {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		if rejected.Message != "" {
			return rejected.Message
		}
		return MsgSubmitFailed
	}
	return MsgNetworkError
}

func copyErrors(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
