package event

import (
	"errors"
	"testing"
	"time"
)

func validEvent() *Event {
	return &Event{
		ID:         "event-1",
		OwnerID:    "user-1",
		Name:       "Sarah's Wedding",
		Type:       TypeWedding,
		Date:       time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		GuestCount: 150,
		Budget:     500000,
		Location:   "Beach resort",
	}
}

func TestEvent_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(e *Event)
		wantField string
	}{
		{
			name:   "valid event",
			mutate: func(e *Event) {},
		},
		{
			name:   "valid event with tasks",
			mutate: func(e *Event) { e.Tasks = []Task{{Description: "Book venue"}} },
		},
		{
			name:   "zero budget is allowed",
			mutate: func(e *Event) { e.Budget = 0 },
		},
		{
			name:      "missing name",
			mutate:    func(e *Event) { e.Name = "  " },
			wantField: "name",
		},
		{
			name:      "missing type",
			mutate:    func(e *Event) { e.Type = "" },
			wantField: "type",
		},
		{
			name:      "unknown type",
			mutate:    func(e *Event) { e.Type = "festival" },
			wantField: "type",
		},
		{
			name:      "missing date",
			mutate:    func(e *Event) { e.Date = time.Time{} },
			wantField: "date",
		},
		{
			name:      "zero guests",
			mutate:    func(e *Event) { e.GuestCount = 0 },
			wantField: "guestCount",
		},
		{
			name:      "negative budget",
			mutate:    func(e *Event) { e.Budget = -1 },
			wantField: "budget",
		},
		{
			name:      "missing location",
			mutate:    func(e *Event) { e.Location = "" },
			wantField: "location",
		},
		{
			name:      "empty task description",
			mutate:    func(e *Event) { e.Tasks = []Task{{Description: "ok"}, {Description: " "}} },
			wantField: "tasks[1].description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(e)
			err := e.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatal("Validate() error = nil, want validation error")
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() error type = %T, want *ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Validate() field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestEvent_Validate_ReportsFirstOffendingField(t *testing.T) {
	e := validEvent()
	e.Name = ""
	e.GuestCount = 0

	var ve *ValidationError
	if err := e.Validate(); !errors.As(err, &ve) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	} else if ve.Field != "name" {
		t.Errorf("Validate() field = %q, want %q (first in declaration order)", ve.Field, "name")
	}
}

func TestValidType(t *testing.T) {
	for _, known := range Types {
		if !ValidType(known) {
			t.Errorf("ValidType(%q) = false, want true", known)
		}
	}
	if ValidType("festival") {
		t.Error(`ValidType("festival") = true, want false`)
	}
	if ValidType("") {
		t.Error(`ValidType("") = true, want false`)
	}
}
