package suggest

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestHandleGenerate_BackendErrorIsSanitized(t *testing.T) {
	// Backend messages are backend-controlled text. If one crossed the bus
	// verbatim it could collide with the fragments the API layer classifies
	// on, so the handler must replace it with the stable sentinel.
	tests := []struct {
		name    string
		backend error
	}{
		{
			name:    "message resembling a validation error",
			backend: &BackendError{Status: 400, Message: "Request payload must be smaller than the internal limit (project 12345)"},
		},
		{
			name:    "message resembling a missing record",
			backend: &BackendError{Status: 404, Message: "models/gemini-9000 is not found for API version v1beta"},
		},
		{
			name:    "plain server error",
			backend: &BackendError{Status: 500, Message: "internal error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &mockBackend{
				generateFunc: func(_ context.Context, _ string) (string, error) {
					return "", tt.backend
				},
			}
			m := &Module{generator: NewGenerator(backend, nil, 0)}

			_, err := m.handleGenerate(context.Background(), weddingRequest(), nil)
			if err == nil {
				t.Fatal("handleGenerate() error = nil, want error")
			}
			if err.Error() != "ai backend failure" {
				t.Errorf("error = %q, want %q", err.Error(), "ai backend failure")
			}
			var backendErr *BackendError
			if errors.As(err, &backendErr) {
				t.Errorf("error %v still carries the backend error", err)
			}
			if strings.Contains(err.Error(), "12345") || strings.Contains(err.Error(), "gemini-9000") {
				t.Errorf("error %q leaks backend detail", err.Error())
			}
		})
	}
}

func TestHandleGenerate_SentinelErrorsPassThrough(t *testing.T) {
	tests := []struct {
		name    string
		backend error
		want    error
	}{
		{name: "invalid credential", backend: ErrInvalidCredential, want: ErrInvalidCredential},
		{name: "rate limited", backend: ErrRateLimited, want: ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &mockBackend{
				generateFunc: func(_ context.Context, _ string) (string, error) {
					return "", tt.backend
				},
			}
			m := &Module{generator: NewGenerator(backend, nil, 0)}

			_, err := m.handleGenerate(context.Background(), weddingRequest(), nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("handleGenerate() error = %v, want %v", err, tt.want)
			}
		})
	}
}
