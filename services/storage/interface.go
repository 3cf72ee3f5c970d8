package storage

import (
	"context"
	"errors"
	"strings"
	"sync"

	"google.golang.org/api/sheets/v4"
)

// ErrNotConfigured is returned when the service account or spreadsheet id is missing.
var ErrNotConfigured = errors.New("storage: spreadsheet credentials or id not configured")

// SheetStorage defines the spreadsheet operations the booking service uses.
type SheetStorage interface {
	AppendBooking(ctx context.Context, row []string) error
	CountRows(ctx context.Context) (int, error)
}

// ServiceAccount holds the fields of a service-account key the client needs.
type ServiceAccount struct {
	ClientEmail string
	PrivateKey  string
}

// NormalizePrivateKey turns literal "\n" sequences, as private keys usually
// arrive through environment variables, into real newlines.
func NormalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

// ServiceFactory builds an authenticated Sheets service from a service account.
type ServiceFactory func(sa ServiceAccount) (*sheets.Service, error)

// SheetsStorage implements SheetStorage on Google Sheets. The authenticated
// service is created on first use and shared for the life of the process.
type SheetsStorage struct {
	account       ServiceAccount
	spreadsheetID string
	sheetName     string
	newService    ServiceFactory

	mu  sync.Mutex
	svc *sheets.Service
}

var _ SheetStorage = (*SheetsStorage)(nil)

type Option func(*SheetsStorage)

// WithServiceFactory replaces the service-account JWT factory.
func WithServiceFactory(f ServiceFactory) Option {
	return func(s *SheetsStorage) { s.newService = f }
}

// NewSheetsStorage creates a SheetsStorage. No network or auth work happens
// until the first call that needs the spreadsheet.
func NewSheetsStorage(sa ServiceAccount, spreadsheetID, sheetName string, opts ...Option) *SheetsStorage {
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	s := &SheetsStorage{
		account:       sa,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		newService:    newJWTService,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
