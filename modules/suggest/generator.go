package suggest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	domain "github.com/example/event-planner/domain/event"
	"github.com/example/event-planner/modules/cache"
	"golang.org/x/sync/singleflight"
)

// Generator turns a SuggestionRequest into planning text. With a backend it
// runs in live mode; without one it serves deterministic fallback templates.
// The mode is fixed when the generator is built and never changes while the
// process runs.
type Generator struct {
	backend       Backend
	cache         *cache.Cache
	fallbackDelay time.Duration
	group         singleflight.Group
}

// NewGenerator creates a Generator. backend may be nil (fallback mode) and
// suggestionCache may be nil (uncached).
func NewGenerator(backend Backend, suggestionCache *cache.Cache, fallbackDelay time.Duration) *Generator {
	return &Generator{
		backend:       backend,
		cache:         suggestionCache,
		fallbackDelay: fallbackDelay,
	}
}

// LiveMode reports whether a generation backend is configured.
func (g *Generator) LiveMode() bool {
	return g.backend != nil
}

// Cached reports whether a suggestion cache is wired in.
func (g *Generator) Cached() bool {
	return g.cache != nil
}

// validate checks the required request fields. No backend call is attempted
// for an invalid request.
func validate(req SuggestionRequest) error {
	if strings.TrimSpace(req.Type) == "" {
		return &domain.ValidationError{Field: "type", Reason: "is required"}
	}
	if req.Guests < 1 {
		return &domain.ValidationError{Field: "guests", Reason: "must be at least 1"}
	}
	if req.Budget < 1 {
		return &domain.ValidationError{Field: "budget", Reason: "must be at least 1"}
	}
	return nil
}

// buildPrompt renders the planner prompt sent to the live backend. Location
// and theme are interpolated only when present.
func buildPrompt(req SuggestionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"As an expert event planner, provide detailed suggestions for a %s event with %d guests and a budget of ₹%d.",
		req.Type, req.Guests, req.Budget)
	if req.Location != "" {
		fmt.Fprintf(&b, " Location preference: %s.", req.Location)
	}
	if req.Theme != "" {
		fmt.Fprintf(&b, " Theme preference: %s.", req.Theme)
	}
	b.WriteString(`

Please provide:
1. Theme suggestions
2. Detailed checklist of tasks
3. Budget allocation breakdown
4. Timeline/schedule
5. Vendor recommendations

Format the response in a clear, organized way with sections.`)
	return b.String()
}

// cacheKey identifies a request tuple and mode. Two requests with the same
// key would generate the same prompt, so they may share a cached answer.
func (g *Generator) cacheKey(req SuggestionRequest) string {
	mode := "fallback"
	if g.LiveMode() {
		mode = "live"
	}
	raw := fmt.Sprintf("%s|%s|%d|%d|%s|%s", mode, req.Type, req.Guests, req.Budget, req.Location, req.Theme)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Suggest produces planning text for the request. Exactly one generation
// attempt is made; backend failures are classified and surfaced, and the
// caller owns any retry policy. Concurrent identical requests are collapsed
// into a single generation.
func (g *Generator) Suggest(ctx context.Context, req SuggestionRequest) (string, error) {
	if err := validate(req); err != nil {
		return "", err
	}

	key := g.cacheKey(req)

	if g.cache != nil {
		var cached string
		if found, err := g.cache.Get(ctx, key, &cached); err != nil {
			log.Printf("[suggest] Cache lookup failed: %v", err)
		} else if found {
			return cached, nil
		}
	}

	text, err, _ := g.group.Do(key, func() (any, error) {
		return g.generate(ctx, req)
	})
	if err != nil {
		return "", err
	}

	suggestion := text.(string)
	if g.cache != nil {
		if err := g.cache.Set(ctx, key, suggestion); err != nil {
			log.Printf("[suggest] Cache store failed: %v", err)
		}
	}
	return suggestion, nil
}

func (g *Generator) generate(ctx context.Context, req SuggestionRequest) (string, error) {
	if g.backend == nil {
		// The delay mimics live-call latency so calling UIs exercise their
		// loading state; zero disables it.
		if g.fallbackDelay > 0 {
			select {
			case <-time.After(g.fallbackDelay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
		return fallbackSuggestion(req), nil
	}
	return g.backend.Generate(ctx, buildPrompt(req))
}
