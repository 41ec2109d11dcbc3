package api

import (
	"encoding/json"

	"github.com/example/event-planner/modules/suggest"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/gofiber/fiber/v2"
)

// Suggest handles POST /api/ai/suggest.
func (h *Handlers) Suggest(c *fiber.Ctx) error {
	var body SuggestRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fail("Invalid request body"))
	}

	req := suggest.SuggestionRequest{
		Type:     body.Type,
		Guests:   body.Guests,
		Budget:   body.Budget,
		Location: body.Location,
		Theme:    body.Theme,
	}
	var resp suggest.SuggestionResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.suggestContainer, "generate", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(okData(resp))
}

// SuggestProbe handles GET /api/ai/test, the operational diagnostic for the
// generation backend. It reports configuration booleans, never the key.
func (h *Handlers) SuggestProbe(c *fiber.Ctx) error {
	req := suggest.ProbeRequest{}
	var resp suggest.ProbeResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.suggestContainer, "probe", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(okData(resp))
}
