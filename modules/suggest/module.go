package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/example/event-planner/modules/cache"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

const cacheTTL = 30 * time.Minute

// Module exposes the suggestion generator as mono services. The backend
// handle is built once in Start and injected into the generator; nothing
// mutates it afterwards.
type Module struct {
	generator *Generator
	cache     *cache.Cache
	apiKeyLen int
	model     string
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new suggest Module.
func NewModule() *Module {
	return &Module{}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "suggest"
}

// Start selects the operating mode from the environment and builds the
// generator. Without GEMINI_API_KEY the module runs in fallback mode.
func (m *Module) Start(ctx context.Context) error {
	var backend Backend

	apiKey := os.Getenv("GEMINI_API_KEY")
	m.apiKeyLen = len(apiKey)
	m.model = os.Getenv("GEMINI_MODEL")
	if m.model == "" {
		m.model = "gemini-2.5-flash"
	}

	if apiKey != "" {
		backend = NewGeminiClient(GeminiConfig{APIKey: apiKey, Model: m.model})
		log.Printf("[suggest] Live mode (model: %s)", m.model)
	} else {
		log.Println("[suggest] GEMINI_API_KEY not set, using fallback templates")
	}

	fallbackDelay := time.Duration(0)
	if raw := os.Getenv("SUGGEST_FALLBACK_DELAY"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid SUGGEST_FALLBACK_DELAY: %w", err)
		}
		fallbackDelay = parsed
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c, err := cache.Connect(ctx, addr, "suggest:", cacheTTL)
		if err != nil {
			// The cache is an optimization; the generator works without it.
			log.Printf("[suggest] Redis unavailable, running uncached: %v", err)
		} else {
			m.cache = c
			log.Printf("[suggest] Suggestion cache enabled (redis: %s, ttl: %s)", addr, cacheTTL)
		}
	}

	m.generator = NewGenerator(backend, m.cache, fallbackDelay)
	log.Println("[suggest] Module started")
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	if m.cache != nil {
		if err := m.cache.Close(); err != nil {
			log.Printf("[suggest] Error closing cache: %v", err)
		}
	}
	log.Println("[suggest] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	if m.generator == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "generator not initialized",
		}
	}

	details := map[string]any{
		"live_mode": m.generator.LiveMode(),
	}
	if m.cache != nil {
		if err := m.cache.Ping(ctx); err != nil {
			details["cache"] = fmt.Sprintf("unreachable: %v", err)
		} else {
			details["cache"] = m.cache.GetStats()
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: details,
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "generate", json.Unmarshal, json.Marshal, m.handleGenerate,
	); err != nil {
		return fmt.Errorf("failed to register generate service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "probe", json.Unmarshal, json.Marshal, m.handleProbe,
	); err != nil {
		return fmt.Errorf("failed to register probe service: %w", err)
	}

	log.Printf("[suggest] Registered services: generate, probe")
	return nil
}

// errBackendFailure crosses the bus in place of a *BackendError. The raw
// backend message is backend-controlled text; once flattened to a string it
// could collide with the fragments the API layer classifies on, so only this
// stable message ever leaves the module. The detail stays in the server log.
var errBackendFailure = errors.New("ai backend failure")

// handleGenerate produces planning text for a suggestion request.
func (m *Module) handleGenerate(ctx context.Context, req SuggestionRequest, _ *mono.Msg) (SuggestionResponse, error) {
	text, err := m.generator.Suggest(ctx, req)
	if err != nil {
		var backendErr *BackendError
		if errors.As(err, &backendErr) {
			log.Printf("[suggest] Backend failure: %v", backendErr)
			return SuggestionResponse{}, errBackendFailure
		}
		return SuggestionResponse{}, err
	}
	return SuggestionResponse{Suggestion: text}, nil
}

// handleProbe reports backend configuration for operational troubleshooting.
// The credential value itself is never included.
func (m *Module) handleProbe(_ context.Context, _ ProbeRequest, _ *mono.Msg) (ProbeResponse, error) {
	return ProbeResponse{
		BackendConfigured: m.generator.LiveMode(),
		HasAPIKey:         m.apiKeyLen > 0,
		APIKeyLength:      m.apiKeyLen,
		Model:             m.model,
		CacheEnabled:      m.generator.Cached(),
	}, nil
}
