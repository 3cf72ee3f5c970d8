package storage

import (
	"context"
	"encoding/pem"
	"errors"
	"fmt"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	bookingColumns   = "A:H"
	rowCountColumn   = "A:A"
	valueInputOption = "USER_ENTERED"
	insertDataOption = "INSERT_ROWS"
)

// Service returns the cached authenticated Sheets service, creating it on the
// first call. A failed construction is not cached; the next call retries.
func (s *SheetsStorage) Service() (*sheets.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.svc != nil {
		return s.svc, nil
	}
	if s.account.ClientEmail == "" || s.account.PrivateKey == "" || s.spreadsheetID == "" {
		return nil, ErrNotConfigured
	}

	svc, err := s.newService(s.account)
	if err != nil {
		return nil, fmt.Errorf("SheetsStorage: failed to create sheets service: %w", err)
	}
	s.svc = svc
	return svc, nil
}

// AppendBooking appends row below the last populated row of the booking
// range. The append is a single atomic call on the spreadsheet side.
func (s *SheetsStorage) AppendBooking(ctx context.Context, row []string) error {
	svc, err := s.Service()
	if err != nil {
		return err
	}

	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{values},
	}

	_, err = svc.Spreadsheets.Values.Append(s.spreadsheetID, s.rangeOf(bookingColumns), valueRange).
		ValueInputOption(valueInputOption).
		InsertDataOption(insertDataOption).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("SheetsStorage: failed to append row: %w", err)
	}
	return nil
}

// CountRows returns how many rows of the first column hold a value.
func (s *SheetsStorage) CountRows(ctx context.Context) (int, error) {
	svc, err := s.Service()
	if err != nil {
		return 0, err
	}

	resp, err := svc.Spreadsheets.Values.Get(s.spreadsheetID, s.rangeOf(rowCountColumn)).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("SheetsStorage: failed to read rows: %w", err)
	}
	return len(resp.Values), nil
}

func (s *SheetsStorage) rangeOf(cols string) string {
	return s.sheetName + "!" + cols
}

// newJWTService authenticates as the service account with read/write access
// to spreadsheets.
func newJWTService(sa ServiceAccount) (*sheets.Service, error) {
	key := []byte(NormalizePrivateKey(sa.PrivateKey))
	if block, _ := pem.Decode(key); block == nil {
		return nil, errors.New("private key is not PEM encoded")
	}

	conf := &jwt.Config{
		Email:      sa.ClientEmail,
		PrivateKey: key,
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	// The client is cached past the request that created it, so it must not
	// carry a request context.
	ctx := context.Background()
	return sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
}
