package event

import (
	"time"
)

// Type classifies an event. Values outside the known set are rejected at
// validation time.
type Type string

const (
	TypeWedding    Type = "wedding"
	TypeBirthday   Type = "birthday"
	TypeCorporate  Type = "corporate"
	TypeConference Type = "conference"
	TypeParty      Type = "party"
	TypeOther      Type = "other"
)

// Types lists every valid event type in display order.
var Types = []Type{TypeWedding, TypeBirthday, TypeCorporate, TypeConference, TypeParty, TypeOther}

// ValidType reports whether t is one of the known event types.
func ValidType(t Type) bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// Task is a single checklist item. It has no identity of its own; its
// position in the parent event's task slice is its identity.
type Task struct {
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// Event represents one planned occasion with its metadata and task checklist.
// Tasks are stored inside the event row as a JSON column so the record keeps
// the single-document shape the rest of the system assumes, and insertion
// order survives round trips.
type Event struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID    string    `gorm:"index:idx_events_owner_date,priority:1;not null;size:36" json:"ownerId"`
	Name       string    `gorm:"size:200;not null" json:"name"`
	Type       Type      `gorm:"size:20;not null" json:"type"`
	Date       time.Time `gorm:"index:idx_events_owner_date,priority:2;not null" json:"date"`
	GuestCount int       `gorm:"not null" json:"guestCount"`
	Budget     int       `gorm:"not null" json:"budget"`
	Location   string    `gorm:"size:200;not null" json:"location"`
	Theme      string    `gorm:"size:200" json:"theme,omitempty"`
	Tasks      []Task    `gorm:"serializer:json" json:"tasks"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName returns the table name for the Event entity.
func (Event) TableName() string {
	return "events"
}
