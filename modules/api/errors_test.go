package api

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "not found masks ownership",
			err:            errors.New("event not found"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Event not found",
		},
		{
			name:           "validation message passes through",
			err:            errors.New("name is required"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "name is required",
		},
		{
			name:           "guest count validation",
			err:            errors.New("guestCount must be at least 1"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "guestCount must be at least 1",
		},
		{
			name:           "invalid credential hides detail",
			err:            errors.New("invalid API key: backend rejected the configured credential"),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid AI API key",
		},
		{
			name:           "rate limited",
			err:            errors.New("backend rate limit exceeded"),
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   "rate limit exceeded",
		},
		{
			name:           "backend failure sentinel stays generic",
			err:            errors.New("ai backend failure"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "An internal error occurred",
		},
		{
			name:           "unknown error stays generic",
			err:            errors.New("dial tcp 127.0.0.1:6379: connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "An internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return mapServiceError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.expectedStatus)
			}

			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), tt.expectedBody) {
				t.Errorf("body = %s, want substring %q", body, tt.expectedBody)
			}
			if !strings.Contains(string(body), `"success":false`) {
				t.Errorf("body = %s, want success=false envelope", body)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{
			name: "date only",
			raw:  "2026-10-15",
			want: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "rfc3339",
			raw:  "2026-10-15T18:30:00Z",
			want: time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			raw:     "next tuesday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDate(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("parseDate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
