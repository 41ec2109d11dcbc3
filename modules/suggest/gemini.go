package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiConfig configures the Gemini text-generation backend.
type GeminiConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiClient calls the Gemini generateContent REST endpoint. The client is
// built once at module start and treated as read-only afterwards.
type GeminiClient struct {
	cfg GeminiConfig
}

// NewGeminiClient creates a Gemini backend client.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGeminiBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &GeminiClient{cfg: cfg}
}

// Model returns the configured model name.
func (c *GeminiClient) Model() string {
	return c.cfg.Model
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends the prompt and returns the backend's free text verbatim.
// Exactly one attempt is made; failures are classified, never retried.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", fmt.Errorf("prompt is required")
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// The key travels only as a header and is never echoed in errors.
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read generate response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", classifyGeminiError(res.StatusCode, payload)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}

	var out strings.Builder
	for _, candidate := range parsed.Candidates {
		for _, part := range candidate.Content.Parts {
			out.WriteString(part.Text)
		}
		break
	}
	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", &BackendError{Status: res.StatusCode, Message: "empty response from backend"}
	}
	return text, nil
}

// classifyGeminiError maps a non-2xx backend reply onto the generator's
// failure taxonomy.
func classifyGeminiError(status int, body []byte) error {
	var parsed geminiResponse
	message := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		message = parsed.Error.Message
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrInvalidCredential
	case strings.Contains(message, "API_KEY_INVALID") || strings.Contains(parsed.Error.Status, "UNAUTHENTICATED"):
		return ErrInvalidCredential
	case status == http.StatusTooManyRequests || strings.Contains(parsed.Error.Status, "RESOURCE_EXHAUSTED"):
		return ErrRateLimited
	default:
		return &BackendError{Status: status, Message: message}
	}
}
