package suggest

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domain "github.com/example/event-planner/domain/event"
)

// mockBackend implements Backend for testing.
type mockBackend struct {
	generateFunc func(ctx context.Context, prompt string) (string, error)
	calls        int
	lastPrompt   string
}

func (m *mockBackend) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.generateFunc != nil {
		return m.generateFunc(ctx, prompt)
	}
	return "generated text", nil
}

func weddingRequest() SuggestionRequest {
	return SuggestionRequest{Type: "wedding", Guests: 150, Budget: 500000}
}

func TestGenerator_Validation(t *testing.T) {
	tests := []struct {
		name      string
		req       SuggestionRequest
		wantField string
	}{
		{
			name:      "missing type",
			req:       SuggestionRequest{Guests: 150, Budget: 500000},
			wantField: "type",
		},
		{
			name:      "missing guests",
			req:       SuggestionRequest{Type: "wedding", Budget: 500000},
			wantField: "guests",
		},
		{
			name:      "missing budget",
			req:       SuggestionRequest{Type: "wedding", Guests: 150},
			wantField: "budget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &mockBackend{}
			g := NewGenerator(backend, nil, 0)

			_, err := g.Suggest(context.Background(), tt.req)

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Suggest() error = %v, want *ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("field = %q, want %q", ve.Field, tt.wantField)
			}
			if backend.calls != 0 {
				t.Errorf("backend called %d times for invalid request, want 0", backend.calls)
			}
		})
	}
}

func TestGenerator_FallbackMode(t *testing.T) {
	g := NewGenerator(nil, nil, 0)
	ctx := context.Background()

	t.Run("wedding template embeds figures", func(t *testing.T) {
		text, err := g.Suggest(ctx, weddingRequest())
		if err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		if !strings.Contains(text, "500000") {
			t.Error("suggestion does not contain the literal budget figure 500000")
		}
		if !strings.Contains(text, "150") {
			t.Error("suggestion does not contain the literal guest figure 150")
		}
		if !strings.Contains(text, "Wedding Planning Suggestions") {
			t.Error("suggestion is not the wedding template")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first, err := g.Suggest(ctx, weddingRequest())
		if err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		second, err := g.Suggest(ctx, weddingRequest())
		if err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		if first != second {
			t.Error("identical requests produced different fallback suggestions")
		}
	})

	t.Run("templated types", func(t *testing.T) {
		for _, typ := range []string{"wedding", "birthday", "corporate"} {
			text, err := g.Suggest(ctx, SuggestionRequest{Type: typ, Guests: 40, Budget: 80000})
			if err != nil {
				t.Fatalf("Suggest(%s) error = %v", typ, err)
			}
			if !strings.Contains(text, "Checklist") {
				t.Errorf("%s template has no checklist section", typ)
			}
		}
	})

	t.Run("generic template for other types", func(t *testing.T) {
		text, err := g.Suggest(ctx, SuggestionRequest{Type: "conference", Guests: 300, Budget: 900000})
		if err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		if !strings.Contains(text, "conference") || !strings.Contains(text, "300") || !strings.Contains(text, "900000") {
			t.Errorf("generic suggestion missing interpolated fields: %q", text)
		}
	})
}

func TestGenerator_LiveMode(t *testing.T) {
	ctx := context.Background()

	t.Run("returns backend text verbatim", func(t *testing.T) {
		backend := &mockBackend{
			generateFunc: func(_ context.Context, _ string) (string, error) {
				return "Plan a beautiful beach ceremony.", nil
			},
		}
		g := NewGenerator(backend, nil, 0)

		text, err := g.Suggest(ctx, weddingRequest())
		if err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		if text != "Plan a beautiful beach ceremony." {
			t.Errorf("Suggest() = %q, want backend text verbatim", text)
		}
		if backend.calls != 1 {
			t.Errorf("backend called %d times, want exactly 1", backend.calls)
		}
	})

	t.Run("prompt interpolates required fields", func(t *testing.T) {
		backend := &mockBackend{}
		g := NewGenerator(backend, nil, 0)

		if _, err := g.Suggest(ctx, weddingRequest()); err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		for _, want := range []string{"wedding", "150", "500000"} {
			if !strings.Contains(backend.lastPrompt, want) {
				t.Errorf("prompt missing %q: %q", want, backend.lastPrompt)
			}
		}
		if strings.Contains(backend.lastPrompt, "Location preference") {
			t.Error("prompt mentions location preference without a location")
		}
	})

	t.Run("prompt interpolates optional fields when present", func(t *testing.T) {
		backend := &mockBackend{}
		g := NewGenerator(backend, nil, 0)

		req := weddingRequest()
		req.Location = "Goa"
		req.Theme = "Bohemian"
		if _, err := g.Suggest(ctx, req); err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		if !strings.Contains(backend.lastPrompt, "Location preference: Goa.") {
			t.Errorf("prompt missing location: %q", backend.lastPrompt)
		}
		if !strings.Contains(backend.lastPrompt, "Theme preference: Bohemian.") {
			t.Errorf("prompt missing theme: %q", backend.lastPrompt)
		}
	})

	t.Run("backend errors propagate without retry", func(t *testing.T) {
		backend := &mockBackend{
			generateFunc: func(_ context.Context, _ string) (string, error) {
				return "", ErrRateLimited
			},
		}
		g := NewGenerator(backend, nil, 0)

		_, err := g.Suggest(ctx, weddingRequest())
		if !errors.Is(err, ErrRateLimited) {
			t.Errorf("Suggest() error = %v, want ErrRateLimited", err)
		}
		if backend.calls != 1 {
			t.Errorf("backend called %d times, want exactly 1 (no retries)", backend.calls)
		}
	})
}

func TestGenerator_FallbackDelayHonorsContext(t *testing.T) {
	g := NewGenerator(nil, nil, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Suggest(ctx, weddingRequest())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Suggest() error = %v, want context.Canceled", err)
	}
}
