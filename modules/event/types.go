package event

import (
	"time"

	domain "github.com/example/event-planner/domain/event"
)

// TaskPayload mirrors a checklist item on the wire.
type TaskPayload struct {
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// CreateEventRequest represents an event creation request.
type CreateEventRequest struct {
	OwnerID    string        `json:"owner_id"`
	Name       string        `json:"name"`
	Type       string        `json:"type"`
	Date       time.Time     `json:"date"`
	GuestCount int           `json:"guest_count"`
	Budget     int           `json:"budget"`
	Location   string        `json:"location"`
	Theme      string        `json:"theme,omitempty"`
	Tasks      []TaskPayload `json:"tasks,omitempty"`
}

// ListEventsRequest represents a request for all of an owner's events.
type ListEventsRequest struct {
	OwnerID string `json:"owner_id"`
}

// ListEventsResponse carries the owner's events in ascending date order.
type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}

// GetEventRequest represents a single-event lookup.
type GetEventRequest struct {
	OwnerID string `json:"owner_id"`
	ID      string `json:"id"`
}

// UpdateEventRequest represents a partial update. Nil fields keep their
// prior values; the merged record is re-validated before it is persisted.
type UpdateEventRequest struct {
	OwnerID    string         `json:"owner_id"`
	ID         string         `json:"id"`
	Name       *string        `json:"name,omitempty"`
	Type       *string        `json:"type,omitempty"`
	Date       *time.Time     `json:"date,omitempty"`
	GuestCount *int           `json:"guest_count,omitempty"`
	Budget     *int           `json:"budget,omitempty"`
	Location   *string        `json:"location,omitempty"`
	Theme      *string        `json:"theme,omitempty"`
	Tasks      *[]TaskPayload `json:"tasks,omitempty"`
}

// DeleteEventRequest represents an event deletion.
type DeleteEventRequest struct {
	OwnerID string `json:"owner_id"`
	ID      string `json:"id"`
}

// DeleteEventResponse acknowledges a deletion.
type DeleteEventResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// ToggleTaskRequest flips the done flag of one task, addressed by its
// position in the event's task list.
type ToggleTaskRequest struct {
	OwnerID   string `json:"owner_id"`
	ID        string `json:"id"`
	TaskIndex int    `json:"task_index"`
}

// StatsRequest asks for portfolio statistics over the owner's events.
type StatsRequest struct {
	OwnerID string `json:"owner_id"`
}

// StatsResponse carries the dashboard aggregates.
type StatsResponse struct {
	TotalEvents    int   `json:"totalEvents"`
	TotalBudget    int64 `json:"totalBudget"`
	UpcomingEvents int   `json:"upcomingEvents"`
	TaskCompletion int   `json:"taskCompletion"`
}

// EventResponse represents a full event record on the wire.
type EventResponse struct {
	ID         string        `json:"id"`
	OwnerID    string        `json:"ownerId"`
	Name       string        `json:"name"`
	Type       string        `json:"type"`
	Date       time.Time     `json:"date"`
	GuestCount int           `json:"guestCount"`
	Budget     int           `json:"budget"`
	Location   string        `json:"location"`
	Theme      string        `json:"theme,omitempty"`
	Tasks      []TaskPayload `json:"tasks"`
	Completion float64       `json:"completion"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

func toTaskPayloads(tasks []domain.Task) []TaskPayload {
	out := make([]TaskPayload, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, TaskPayload{Description: t.Description, Done: t.Done})
	}
	return out
}

func toDomainTasks(tasks []TaskPayload) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, domain.Task{Description: t.Description, Done: t.Done})
	}
	return out
}

func toEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:         e.ID,
		OwnerID:    e.OwnerID,
		Name:       e.Name,
		Type:       string(e.Type),
		Date:       e.Date,
		GuestCount: e.GuestCount,
		Budget:     e.Budget,
		Location:   e.Location,
		Theme:      e.Theme,
		Tasks:      toTaskPayloads(e.Tasks),
		Completion: domain.Completion(e),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
