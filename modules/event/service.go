package event

import (
	"context"
	"fmt"
	"time"

	domain "github.com/example/event-planner/domain/event"
	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

// createEvent handles the create service request. Validation failures leave
// no partial record behind.
func (m *Module) createEvent(_ context.Context, req CreateEventRequest, _ *mono.Msg) (EventResponse, error) {
	if req.OwnerID == "" {
		return EventResponse{}, fmt.Errorf("owner id is required")
	}

	event := &domain.Event{
		ID:         uuid.New().String(),
		OwnerID:    req.OwnerID,
		Name:       req.Name,
		Type:       domain.Type(req.Type),
		Date:       req.Date,
		GuestCount: req.GuestCount,
		Budget:     req.Budget,
		Location:   req.Location,
		Theme:      req.Theme,
		Tasks:      toDomainTasks(req.Tasks),
	}

	if err := event.Validate(); err != nil {
		return EventResponse{}, err
	}

	if err := m.repo.Create(event); err != nil {
		return EventResponse{}, fmt.Errorf("failed to save event: %w", err)
	}

	return toEventResponse(event), nil
}

// listEvents handles the list service request.
func (m *Module) listEvents(_ context.Context, req ListEventsRequest, _ *mono.Msg) (ListEventsResponse, error) {
	if req.OwnerID == "" {
		return ListEventsResponse{}, fmt.Errorf("owner id is required")
	}

	events, err := m.repo.FindByOwner(req.OwnerID)
	if err != nil {
		return ListEventsResponse{}, err
	}

	response := ListEventsResponse{
		Events: make([]EventResponse, 0, len(events)),
		Total:  len(events),
	}
	for _, e := range events {
		response.Events = append(response.Events, toEventResponse(e))
	}
	return response, nil
}

// getEvent handles the get service request. Ownership mismatch surfaces as
// not-found, same as a genuinely missing record.
func (m *Module) getEvent(_ context.Context, req GetEventRequest, _ *mono.Msg) (EventResponse, error) {
	if req.OwnerID == "" {
		return EventResponse{}, fmt.Errorf("owner id is required")
	}
	if req.ID == "" {
		return EventResponse{}, fmt.Errorf("id is required")
	}

	event, err := m.repo.FindOwned(req.OwnerID, req.ID)
	if err != nil {
		return EventResponse{}, err
	}
	return toEventResponse(event), nil
}

// updateEvent handles the update service request. Provided fields are merged
// over the stored record and the merged result is re-validated against the
// same constraints as create.
func (m *Module) updateEvent(_ context.Context, req UpdateEventRequest, _ *mono.Msg) (EventResponse, error) {
	if req.OwnerID == "" {
		return EventResponse{}, fmt.Errorf("owner id is required")
	}
	if req.ID == "" {
		return EventResponse{}, fmt.Errorf("id is required")
	}

	event, err := m.repo.FindOwned(req.OwnerID, req.ID)
	if err != nil {
		return EventResponse{}, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Type != nil {
		event.Type = domain.Type(*req.Type)
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.GuestCount != nil {
		event.GuestCount = *req.GuestCount
	}
	if req.Budget != nil {
		event.Budget = *req.Budget
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Theme != nil {
		event.Theme = *req.Theme
	}
	if req.Tasks != nil {
		event.Tasks = toDomainTasks(*req.Tasks)
	}

	if err := event.Validate(); err != nil {
		return EventResponse{}, err
	}

	if err := m.repo.Save(event); err != nil {
		return EventResponse{}, fmt.Errorf("failed to update event: %w", err)
	}
	return toEventResponse(event), nil
}

// deleteEvent handles the delete service request. A second delete of the
// same event reports not-found.
func (m *Module) deleteEvent(_ context.Context, req DeleteEventRequest, _ *mono.Msg) (DeleteEventResponse, error) {
	if req.OwnerID == "" {
		return DeleteEventResponse{}, fmt.Errorf("owner id is required")
	}
	if req.ID == "" {
		return DeleteEventResponse{}, fmt.Errorf("id is required")
	}

	if err := m.repo.DeleteOwned(req.OwnerID, req.ID); err != nil {
		return DeleteEventResponse{Deleted: false, ID: req.ID}, err
	}
	return DeleteEventResponse{Deleted: true, ID: req.ID}, nil
}

// toggleTask flips one task's done flag through the normal update path, so
// updatedAt moves and validation still applies.
func (m *Module) toggleTask(_ context.Context, req ToggleTaskRequest, _ *mono.Msg) (EventResponse, error) {
	if req.OwnerID == "" {
		return EventResponse{}, fmt.Errorf("owner id is required")
	}
	if req.ID == "" {
		return EventResponse{}, fmt.Errorf("id is required")
	}

	event, err := m.repo.FindOwned(req.OwnerID, req.ID)
	if err != nil {
		return EventResponse{}, err
	}

	if req.TaskIndex < 0 || req.TaskIndex >= len(event.Tasks) {
		return EventResponse{}, &domain.ValidationError{
			Field:  "taskIndex",
			Reason: fmt.Sprintf("must be between 0 and %d", len(event.Tasks)-1),
		}
	}
	event.Tasks[req.TaskIndex].Done = !event.Tasks[req.TaskIndex].Done

	if err := m.repo.Save(event); err != nil {
		return EventResponse{}, fmt.Errorf("failed to update event: %w", err)
	}
	return toEventResponse(event), nil
}

// stats computes portfolio statistics over the owner's events.
func (m *Module) stats(_ context.Context, req StatsRequest, _ *mono.Msg) (StatsResponse, error) {
	if req.OwnerID == "" {
		return StatsResponse{}, fmt.Errorf("owner id is required")
	}

	events, err := m.repo.FindByOwner(req.OwnerID)
	if err != nil {
		return StatsResponse{}, err
	}

	s := domain.Portfolio(events, time.Now())
	return StatsResponse{
		TotalEvents:    s.TotalEvents,
		TotalBudget:    s.TotalBudget,
		UpcomingEvents: s.UpcomingEvents,
		TaskCompletion: s.TaskCompletion,
	}, nil
}
