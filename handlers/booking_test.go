package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"puresakura/models"
	"puresakura/services/booking"
	"puresakura/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockBookingService is a mock implementation of booking.BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) SubmitBooking(ctx context.Context, req models.BookingRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockBookingService) Catalog() models.Catalog {
	args := m.Called()
	return args.Get(0).(models.Catalog)
}

func janeDoe() map[string]string {
	return map[string]string{
		"fullName":        "Jane Doe",
		"contactNumber":   "09171234567",
		"emailAddress":    "jane@example.com",
		"treatment":       "Swedish Massage",
		"duration":        "60mins",
		"date":            "2099-01-01",
		"time":            "3:00 PM",
		"specialRequests": "",
	}
}

func newTestContext(t *testing.T, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var raw []byte
	switch b := body.(type) {
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}
	c.Request = httptest.NewRequest(http.MethodPost, "/api/book", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("logger", zap.NewNop())
	return c, w
}

func newHandler(svc booking.BookingService) *BookingHandler {
	return NewBookingHandler(svc, utils.NewMetrics(prometheus.NewRegistry()), time.Second)
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

func TestBook_Success(t *testing.T) {
	svc := &MockBookingService{}
	h := newHandler(svc)
	c, w := newTestContext(t, janeDoe())

	want := models.BookingRequest{
		FullName:      "Jane Doe",
		ContactNumber: "09171234567",
		EmailAddress:  "jane@example.com",
		Treatment:     "Swedish Massage",
		Duration:      "60mins",
		Date:          "2099-01-01",
		Time:          "3:00 PM",
	}
	svc.On("SubmitBooking", mock.Anything, want).Return(nil).Once()

	h.Book(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Booking successful!"}`, w.Body.String())
	svc.AssertExpectations(t)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.Metrics.Submissions.WithLabelValues(utils.OutcomeSuccess)))
}

func TestBook_SpecialRequestsMayBeAbsent(t *testing.T) {
	svc := &MockBookingService{}
	h := newHandler(svc)
	body := janeDoe()
	delete(body, "specialRequests")
	c, w := newTestContext(t, body)

	svc.On("SubmitBooking", mock.Anything, mock.MatchedBy(func(r models.BookingRequest) bool {
		return r.SpecialRequests == ""
	})).Return(nil)

	h.Book(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBook_MissingRequiredField(t *testing.T) {
	for _, field := range []string{"fullName", "contactNumber", "emailAddress", "treatment", "date", "time", "duration"} {
		for name, edit := range map[string]func(map[string]string){
			"absent": func(b map[string]string) { delete(b, field) },
			"empty":  func(b map[string]string) { b[field] = "" },
		} {
			t.Run(field+"/"+name, func(t *testing.T) {
				svc := &MockBookingService{}
				h := newHandler(svc)
				body := janeDoe()
				edit(body)
				c, w := newTestContext(t, body)

				h.Book(c)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Equal(t, "Missing required fields.", decodeMessage(t, w))
				svc.AssertNotCalled(t, "SubmitBooking", mock.Anything, mock.Anything)
			})
		}
	}
}

func TestBook_MalformedBody(t *testing.T) {
	for name, body := range map[string]string{
		"not json":   "fullName=Jane",
		"empty":      "",
		"json array": `["Jane Doe"]`,
		"null":       "null",
	} {
		t.Run(name, func(t *testing.T) {
			svc := &MockBookingService{}
			c, w := newTestContext(t, body)

			newHandler(svc).Book(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "SubmitBooking", mock.Anything, mock.Anything)
		})
	}
}

func TestBook_ServiceReportsMissingFields(t *testing.T) {
	svc := &MockBookingService{}
	svc.On("SubmitBooking", mock.Anything, mock.Anything).
		Return(&booking.MissingFieldsError{Fields: []string{"fullName"}})
	c, w := newTestContext(t, janeDoe())

	newHandler(svc).Book(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields.", decodeMessage(t, w))
}

func TestBook_IntegrationFailureIsGeneric(t *testing.T) {
	svc := &MockBookingService{}
	secret := errors.New("oauth2: cannot fetch token: invalid_grant for booking-writer@spa.iam.gserviceaccount.com")
	svc.On("SubmitBooking", mock.Anything, mock.Anything).
		Return(&booking.IntegrationError{Op: "append booking", Err: secret})
	h := newHandler(svc)
	c, w := newTestContext(t, janeDoe())

	h.Book(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Failed to save booking. Please try again later."}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "oauth2")
	assert.NotContains(t, w.Body.String(), "iam.gserviceaccount.com")
	assert.Equal(t, 1.0, testutil.ToFloat64(h.Metrics.Submissions.WithLabelValues(utils.OutcomeFailed)))
}

func TestBook_AppliesTimeout(t *testing.T) {
	svc := &MockBookingService{}
	svc.On("SubmitBooking", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), mock.Anything).Return(nil)
	c, w := newTestContext(t, janeDoe())

	newHandler(svc).Book(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestGetCatalog(t *testing.T) {
	svc := &MockBookingService{}
	svc.On("Catalog").Return(models.Catalog{
		Treatments: []string{"Foot Massage"},
		Durations:  []string{"30mins"},
		TimeSlots:  []string{"3:00 PM"},
	})
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/catalog", nil)

	newHandler(svc).GetCatalog(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"treatments":["Foot Massage"],"durations":["30mins"],"timeSlots":["3:00 PM"]}`, w.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/book", nil)

	MethodNotAllowed(c)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"message":"Method Not Allowed"}`, w.Body.String())
}
