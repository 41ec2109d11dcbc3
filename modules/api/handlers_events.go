package api

import (
	"encoding/json"
	"fmt"
	"time"

	domain "github.com/example/event-planner/domain/user"
	"github.com/example/event-planner/modules/event"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/gofiber/fiber/v2"
)

// parseDate accepts either a bare calendar date or a full RFC 3339 stamp.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD or RFC 3339")
}

func toTaskPayloads(tasks []TaskRequest) []event.TaskPayload {
	out := make([]event.TaskPayload, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, event.TaskPayload{Description: t.Description, Done: t.Done})
	}
	return out
}

// claims returns the authenticated identity set by the auth middleware.
func claims(c *fiber.Ctx) (*domain.Claims, bool) {
	cl, ok := c.Locals(UserContextKey).(*domain.Claims)
	return cl, ok
}

// CreateEvent handles POST /api/events.
func (h *Handlers) CreateEvent(c *fiber.Ctx) error {
	cl, ok := claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fail("User not authenticated"))
	}

	var body EventRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fail("Invalid request body"))
	}

	req := event.CreateEventRequest{OwnerID: cl.UserID}
	if body.Name != nil {
		req.Name = *body.Name
	}
	if body.Type != nil {
		req.Type = *body.Type
	}
	if body.Date != nil {
		date, err := parseDate(*body.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fail(err.Error()))
		}
		req.Date = date
	}
	if body.GuestCount != nil {
		req.GuestCount = *body.GuestCount
	}
	if body.Budget != nil {
		req.Budget = *body.Budget
	}
	if body.Location != nil {
		req.Location = *body.Location
	}
	if body.Theme != nil {
		req.Theme = *body.Theme
	}
	if body.Tasks != nil {
		req.Tasks = toTaskPayloads(*body.Tasks)
	}

	var resp event.EventResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.eventContainer, "create", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(okMessage("Event created successfully", resp))
}

// ListEvents handles GET /api/events.
func (h *Handlers) ListEvents(c *fiber.Ctx) error {
	cl, ok := claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fail("User not authenticated"))
	}

	req := event.ListEventsRequest{OwnerID: cl.UserID}
	var resp event.ListEventsResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.eventContainer, "list", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(Envelope{Success: true, Count: &resp.Total, Data: resp.Events})
}

// GetEvent handles GET /api/events/:id.
func (h *Handlers) GetEvent(c *fiber.Ctx) error {
	cl, ok := claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fail("User not authenticated"))
	}

	req := event.GetEventRequest{OwnerID: cl.UserID, ID: c.Params("id")}
	var resp event.EventResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.eventContainer, "get", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(okData(resp))
}

// UpdateEvent handles PUT /api/events/:id. Fields absent from the body keep
// their stored values.
func (h *Handlers) UpdateEvent(c *fiber.Ctx) error {
	cl, ok := claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fail("User not authenticated"))
	}

	var body EventRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fail("Invalid request body"))
	}

	req := event.UpdateEventRequest{
		OwnerID:    cl.UserID,
		ID:         c.Params("id"),
		Name:       body.Name,
		Type:       body.Type,
		GuestCount: body.GuestCount,
		Budget:     body.Budget,
		Location:   body.Location,
		Theme:      body.Theme,
	}
	if body.Date != nil {
		date, err := parseDate(*body.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fail(err.Error()))
		}
		req.Date = &date
	}
	if body.Tasks != nil {
		tasks := toTaskPayloads(*body.Tasks)
		req.Tasks = &tasks
	}

	var resp event.EventResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.eventContainer, "update", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(okMessage("Event updated successfully", resp))
}

// DeleteEvent handles DELETE /api/events/:id.
func (h *Handlers) DeleteEvent(c *fiber.Ctx) error {
	cl, ok := claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fail("User not authenticated"))
	}

	req := event.DeleteEventRequest{OwnerID: cl.UserID, ID: c.Params("id")}
	var resp event.DeleteEventResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.eventContainer, "delete", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(okMessage("Event deleted successfully", fiber.Map{}))
}

// ToggleTask handles PATCH /api/events/:id/tasks/:index.
func (h *Handlers) ToggleTask(c *fiber.Ctx) error {
	cl, ok := claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fail("User not authenticated"))
	}

	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fail("Task index must be a number"))
	}

	req := event.ToggleTaskRequest{OwnerID: cl.UserID, ID: c.Params("id"), TaskIndex: index}
	var resp event.EventResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.eventContainer, "toggle-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(okData(resp))
}

// EventStats handles GET /api/events/stats.
func (h *Handlers) EventStats(c *fiber.Ctx) error {
	cl, ok := claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fail("User not authenticated"))
	}

	req := event.StatsRequest{OwnerID: cl.UserID}
	var resp event.StatsResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.eventContainer, "stats", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(okData(resp))
}
