package booking

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"puresakura/models"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

var (
	contactNumberPattern = regexp.MustCompile(`^\+?[\d\s-]{7,15}$`)
	emailPattern         = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidContactNumber accepts 7 to 15 digits, spaces or hyphens with an optional leading "+".
func ValidContactNumber(s string) bool { return contactNumberPattern.MatchString(s) }

// ValidEmail is a shape check (local@domain.tld), not RFC 5322 validation.
func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

// bookingForm mirrors models.BookingRequest with the client-side rules attached.
type bookingForm struct {
	FullName      string `json:"fullName" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required,contactnumber"`
	EmailAddress  string `json:"emailAddress" validate:"required,simpleemail"`
	Treatment     string `json:"treatment" validate:"required,treatment"`
	Duration      string `json:"duration" validate:"required,duration"`
	Date          string `json:"date" validate:"required,notpast"`
	Time          string `json:"time" validate:"required,timeslot"`
}

// fieldMessages maps field -> failed tag -> message shown next to the input.
// The "" entry is the fallback for any tag not listed.
var fieldMessages = map[string]map[string]string{
	models.FieldFullName: {
		"": "Full name is required",
	},
	models.FieldContactNumber: {
		"required": "Contact number is required",
		"":         "Please enter a valid contact number",
	},
	models.FieldEmailAddress: {
		"required": "Email address is required",
		"":         "Please enter a valid email address",
	},
	models.FieldTreatment: {
		"": "Please select a treatment",
	},
	models.FieldDuration: {
		"": "Please select a duration",
	},
	models.FieldDate: {
		"required": "Please select a date",
		"":         "Please select a valid date that is not in the past",
	},
	models.FieldTime: {
		"": "Please select a time slot",
	},
}

// FormRules evaluates the booking form before anything is sent.
type FormRules struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewFormRules builds the rule set. now supplies "today" for the date rule;
// nil means time.Now.
func NewFormRules(now func() time.Time) *FormRules {
	if now == nil {
		now = time.Now
	}
	r := &FormRules{validate: validator.New(), now: now}

	r.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	r.register("contactnumber", ValidContactNumber)
	r.register("simpleemail", ValidEmail)
	r.register("treatment", models.IsTreatment)
	r.register("duration", models.IsDuration)
	r.register("timeslot", IsTimeSlot)
	r.register("notpast", r.notPast)
	return r
}

func (r *FormRules) register(tag string, fn func(string) bool) {
	// Registration only fails on an empty tag or nil func.
	_ = r.validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
}

func (r *FormRules) notPast(s string) bool {
	now := r.now()
	d, err := time.ParseInLocation(dateLayout, s, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !d.Before(today)
}

// MinDate is the earliest date the form accepts, formatted as "YYYY-MM-DD".
func (r *FormRules) MinDate() string {
	return r.now().Format(dateLayout)
}

// Validate returns one message per invalid field, keyed by the JSON field
// name. An empty map means the booking may be submitted. Free-text fields are
// checked after trimming.
func (r *FormRules) Validate(req models.BookingRequest) map[string]string {
	t := req.Trimmed()
	form := bookingForm{
		FullName:      t.FullName,
		ContactNumber: t.ContactNumber,
		EmailAddress:  t.EmailAddress,
		Treatment:     t.Treatment,
		Duration:      t.Duration,
		Date:          t.Date,
		Time:          t.Time,
	}

	errs := map[string]string{}
	err := r.validate.Struct(form)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError only happens on a non-struct argument.
		return errs
	}
	for _, fe := range verrs {
		errs[fe.Field()] = messageFor(fe.Field(), fe.Tag())
	}
	return errs
}

func messageFor(field, tag string) string {
	msgs := fieldMessages[field]
	if m, ok := msgs[tag]; ok {
		return m
	}
	return msgs[""]
}
