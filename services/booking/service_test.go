package booking

import (
	"context"
	"errors"
	"testing"

	"puresakura/models"
	"puresakura/utils"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockBookingSheet is a mock implementation of BookingSheet
type MockBookingSheet struct {
	mock.Mock
}

func (m *MockBookingSheet) AppendBooking(ctx context.Context, row []string) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockBookingSheet) CountRows(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func newService(sheet BookingSheet) *DefaultBookingService {
	return &DefaultBookingService{
		Sheet:   sheet,
		Metrics: utils.NewMetrics(prometheus.NewRegistry()),
		Logger:  zap.NewNop(),
	}
}

func TestSubmitBooking_AppendsOneOrderedRow(t *testing.T) {
	sheet := &MockBookingSheet{}
	svc := newService(sheet)
	ctx := context.Background()

	req := validForm()
	req.SpecialRequests = "quiet room"
	want := []string{"Jane Doe", "09171234567", "jane@example.com", "Swedish Massage", "quiet room", "2099-01-01", "3:00 PM", "60mins"}
	sheet.On("AppendBooking", ctx, want).Return(nil).Once()

	require.NoError(t, svc.SubmitBooking(ctx, req))

	sheet.AssertExpectations(t)
	sheet.AssertNumberOfCalls(t, "AppendBooking", 1)
	var m dto.Metric
	require.NoError(t, svc.Metrics.AppendDuration.Write(&m))
	assert.Equal(t, uint64(1), m.GetHistogram().GetSampleCount())
}

func TestSubmitBooking_MissingFieldNeverWrites(t *testing.T) {
	clearers := map[string]func(*models.BookingRequest){
		models.FieldFullName:      func(b *models.BookingRequest) { b.FullName = "" },
		models.FieldContactNumber: func(b *models.BookingRequest) { b.ContactNumber = "" },
		models.FieldEmailAddress:  func(b *models.BookingRequest) { b.EmailAddress = "" },
		models.FieldTreatment:     func(b *models.BookingRequest) { b.Treatment = "" },
		models.FieldDate:          func(b *models.BookingRequest) { b.Date = "" },
		models.FieldTime:          func(b *models.BookingRequest) { b.Time = "" },
		models.FieldDuration:      func(b *models.BookingRequest) { b.Duration = "" },
	}
	for field, clear := range clearers {
		t.Run(field, func(t *testing.T) {
			sheet := &MockBookingSheet{}
			req := validForm()
			clear(&req)

			err := newService(sheet).SubmitBooking(context.Background(), req)

			require.ErrorIs(t, err, ErrMissingFields)
			var mfe *MissingFieldsError
			require.ErrorAs(t, err, &mfe)
			assert.Equal(t, []string{field}, mfe.Fields)
			sheet.AssertNotCalled(t, "AppendBooking", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitBooking_WrapsSheetFailure(t *testing.T) {
	sheet := &MockBookingSheet{}
	cause := errors.New("googleapi: Error 403: The caller does not have permission")
	sheet.On("AppendBooking", mock.Anything, mock.Anything).Return(cause)

	err := newService(sheet).SubmitBooking(context.Background(), validForm())

	var ie *IntegrationError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "append booking", ie.Op)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrMissingFields)
}

func TestSubmitBooking_DuplicateSubmissionWritesTwice(t *testing.T) {
	sheet := &MockBookingSheet{}
	sheet.On("AppendBooking", mock.Anything, mock.Anything).Return(nil)
	svc := newService(sheet)

	require.NoError(t, svc.SubmitBooking(context.Background(), validForm()))
	require.NoError(t, svc.SubmitBooking(context.Background(), validForm()))

	sheet.AssertNumberOfCalls(t, "AppendBooking", 2)
}

func TestCatalog(t *testing.T) {
	c := newService(&MockBookingSheet{}).Catalog()

	assert.Equal(t, models.Treatments, c.Treatments)
	assert.Equal(t, models.Durations, c.Durations)
	assert.Equal(t, GenerateTimeSlots(), c.TimeSlots)

	c.Treatments[0] = "changed"
	assert.Equal(t, "Swedish Massage", models.Treatments[0])
}
