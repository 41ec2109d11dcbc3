package api

// Envelope is the response shape shared by every endpoint: success plus
// either data or a human-readable message.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func okData(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func okMessage(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

func fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// RegisterRequest represents a user registration body.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest represents a token refresh body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// EventRequest represents an event create or update body. The date is a
// string so clients may send either a bare calendar date or full RFC 3339.
type EventRequest struct {
	Name       *string        `json:"name"`
	Type       *string        `json:"type"`
	Date       *string        `json:"date"`
	GuestCount *int           `json:"guestCount"`
	Budget     *int           `json:"budget"`
	Location   *string        `json:"location"`
	Theme      *string        `json:"theme"`
	Tasks      *[]TaskRequest `json:"tasks"`
}

// TaskRequest represents a checklist item in a request body.
type TaskRequest struct {
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// SuggestRequest represents the AI suggestion body.
type SuggestRequest struct {
	Type     string `json:"type"`
	Guests   int    `json:"guests"`
	Budget   int    `json:"budget"`
	Location string `json:"location,omitempty"`
	Theme    string `json:"theme,omitempty"`
}
