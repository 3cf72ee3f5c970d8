package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"puresakura/models"
)

const bookPath = "/api/book"

// Submitter delivers a validated booking and returns the server's message.
type Submitter interface {
	Submit(ctx context.Context, req models.BookingRequest) (string, error)
}

// RejectedError is a non-2xx answer from the booking endpoint.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("booking rejected with status %d", e.StatusCode)
	}
	return fmt.Sprintf("booking rejected with status %d: %s", e.StatusCode, e.Message)
}

// HTTPSubmitter posts bookings to a running server.
type HTTPSubmitter struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewHTTPSubmitter(baseURL string, timeout time.Duration) *HTTPSubmitter {
	return &HTTPSubmitter{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Submit POSTs the booking as JSON. Transport failures and unreadable
// bodies come back as plain errors; a non-2xx answer is a *RejectedError.
func (s *HTTPSubmitter) Submit(ctx context.Context, req models.BookingRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+bookPath, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := s.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body models.MessageResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return "", fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &RejectedError{StatusCode: resp.StatusCode, Message: body.Message}
	}
	return body.Message, nil
}
