package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domain "github.com/example/event-planner/domain/user"
	"github.com/gofiber/fiber/v2"
)

// mockAuthPort implements auth.AuthPort for testing.
type mockAuthPort struct {
	validateTokenFunc func(ctx context.Context, token string) (*domain.Claims, error)
	getUserFunc       func(ctx context.Context, userID string) (*domain.User, error)
}

func (m *mockAuthPort) ValidateToken(ctx context.Context, token string) (*domain.Claims, error) {
	if m.validateTokenFunc != nil {
		return m.validateTokenFunc(ctx, token)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthPort) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if m.getUserFunc != nil {
		return m.getUserFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		mockAuth       *mockAuthPort
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing authorization header",
			authHeader:     "",
			mockAuth:       &mockAuthPort{},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"Authorization header is required"`,
		},
		{
			name:           "invalid authorization format",
			authHeader:     "Basic token123",
			mockAuth:       &mockAuthPort{},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `Invalid authorization header format`,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer invalid-token",
			mockAuth: &mockAuthPort{
				validateTokenFunc: func(_ context.Context, _ string) (*domain.Claims, error) {
					return nil, errors.New("invalid token")
				},
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"Invalid or expired token"`,
		},
		{
			name:       "valid token",
			authHeader: "Bearer valid-token",
			mockAuth: &mockAuthPort{
				validateTokenFunc: func(_ context.Context, _ string) (*domain.Claims, error) {
					return &domain.Claims{UserID: "user-1", Email: "a@example.com"}, nil
				},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"user-1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/protected", AuthMiddleware(tt.mockAuth), func(c *fiber.Ctx) error {
				cl, _ := claims(c)
				return c.JSON(fiber.Map{"user_id": cl.UserID})
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.expectedStatus)
			}

			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), tt.expectedBody) {
				t.Errorf("body = %s, want substring %s", body, tt.expectedBody)
			}
		})
	}
}
