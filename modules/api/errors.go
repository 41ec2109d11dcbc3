package api

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// mapServiceError translates an error that crossed the service bus into an
// HTTP response. Errors arrive as strings, so classification matches on the
// stable message fragments each service guarantees. Anything unrecognized is
// logged in full and surfaced as a generic message so internal diagnostics
// never reach callers.
func mapServiceError(c *fiber.Ctx, err error) error {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "not found"):
		// Ownership mismatches arrive already masked as not-found.
		return c.Status(fiber.StatusNotFound).JSON(fail("Event not found"))

	case strings.Contains(msg, "is required"),
		strings.Contains(msg, "must be"),
		strings.Contains(msg, "cannot be"):
		return c.Status(fiber.StatusBadRequest).JSON(fail(msg))

	case strings.Contains(msg, "invalid API key"):
		return c.Status(fiber.StatusUnauthorized).JSON(
			fail("Invalid AI API key. Please check the server configuration."))

	case strings.Contains(msg, "rate limit"):
		return c.Status(fiber.StatusTooManyRequests).JSON(
			fail("AI service rate limit exceeded. Please try again in a moment."))

	default:
		log.Printf("[api] Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fail("An internal error occurred"))
	}
}

// mapAuthError translates identity-service failures. The known user-facing
// cases get specific statuses; everything else is generic.
func mapAuthError(c *fiber.Ctx, err error) error {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "invalid email or password"):
		return c.Status(fiber.StatusUnauthorized).JSON(fail("Invalid email or password"))
	case strings.Contains(msg, "already exists"):
		return c.Status(fiber.StatusConflict).JSON(fail("User with this email already exists"))
	case strings.Contains(msg, "invalid email format"):
		return c.Status(fiber.StatusBadRequest).JSON(fail("Invalid email format"))
	case strings.Contains(msg, "name is required"):
		return c.Status(fiber.StatusBadRequest).JSON(fail("Name is required"))
	case strings.Contains(msg, "password must be at least"):
		return c.Status(fiber.StatusBadRequest).JSON(fail("Password must be at least 6 characters"))
	case strings.Contains(msg, "password must be at most"):
		return c.Status(fiber.StatusBadRequest).JSON(fail("Password must be at most 72 characters"))
	default:
		log.Printf("[api] Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fail("An internal error occurred"))
	}
}
