package api

import (
	"encoding/json"

	"github.com/example/event-planner/modules/auth"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/users/register.
func (h *Handlers) Register(c *fiber.Ctx) error {
	var body RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fail("Invalid request body"))
	}
	if body.Name == "" || body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fail("Name, email and password are required"))
	}

	req := auth.RegisterRequest{Name: body.Name, Email: body.Email, Password: body.Password}
	var resp auth.RegisterResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.authContainer, "register", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return mapAuthError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(okMessage("User registered successfully", resp))
}

// Login handles POST /api/users/login.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var body LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fail("Invalid request body"))
	}
	if body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fail("Email and password are required"))
	}

	req := auth.LoginRequest{Email: body.Email, Password: body.Password}
	var resp auth.LoginResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.authContainer, "login", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return mapAuthError(c, err)
	}

	return c.JSON(okData(resp))
}

// Refresh handles POST /api/users/refresh.
func (h *Handlers) Refresh(c *fiber.Ctx) error {
	var body RefreshRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fail("Invalid request body"))
	}
	if body.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fail("Refresh token is required"))
	}

	req := auth.RefreshRequest{RefreshToken: body.RefreshToken}
	var resp auth.RefreshResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.authContainer, "refresh-token", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fail("Invalid or expired refresh token"))
	}

	return c.JSON(okData(resp))
}

// Profile handles GET /api/users/profile.
func (h *Handlers) Profile(c *fiber.Ctx) error {
	cl, ok := claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fail("User not authenticated"))
	}

	user, err := h.authAdapter.GetUser(c.UserContext(), cl.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fail("Failed to retrieve user profile"))
	}

	return c.JSON(okData(fiber.Map{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"created_at": user.CreatedAt,
	}))
}
