package event

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports the first field that failed validation. The field
// name is part of the message so callers on the far side of the message bus
// can still surface it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func typeList() string {
	names := make([]string, 0, len(Types))
	for _, t := range Types {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// Validate checks the event against the data-model constraints. Fields are
// checked in declaration order and the first offending field is reported.
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if e.Type == "" {
		return &ValidationError{Field: "type", Reason: "is required"}
	}
	if !ValidType(e.Type) {
		return &ValidationError{Field: "type", Reason: "must be one of " + typeList()}
	}
	if e.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "is required"}
	}
	if e.GuestCount < 1 {
		return &ValidationError{Field: "guestCount", Reason: "must be at least 1"}
	}
	if e.Budget < 0 {
		return &ValidationError{Field: "budget", Reason: "must be non-negative"}
	}
	if strings.TrimSpace(e.Location) == "" {
		return &ValidationError{Field: "location", Reason: "is required"}
	}
	for i, task := range e.Tasks {
		if strings.TrimSpace(task.Description) == "" {
			return &ValidationError{
				Field:  fmt.Sprintf("tasks[%d].description", i),
				Reason: "is required",
			}
		}
	}
	return nil
}
