package suggest

// SuggestionRequest captures the event profile a suggestion is generated
// for. Type, Guests and Budget are required; Location and Theme refine the
// prompt when present.
type SuggestionRequest struct {
	Type     string `json:"type"`
	Guests   int    `json:"guests"`
	Budget   int    `json:"budget"`
	Location string `json:"location,omitempty"`
	Theme    string `json:"theme,omitempty"`
}

// SuggestionResponse carries the generated planning text.
type SuggestionResponse struct {
	Suggestion string `json:"suggestion"`
}

// ProbeRequest asks for the generator's backend configuration status.
type ProbeRequest struct{}

// ProbeResponse reports whether a live backend is configured without
// revealing the credential value.
type ProbeResponse struct {
	BackendConfigured bool   `json:"backend_configured"`
	HasAPIKey         bool   `json:"has_api_key"`
	APIKeyLength      int    `json:"api_key_length"`
	Model             string `json:"model,omitempty"`
	CacheEnabled      bool   `json:"cache_enabled"`
}
