package api

import (
	"strings"

	"github.com/example/event-planner/modules/auth"
	"github.com/gofiber/fiber/v2"
)

// UserContextKey is the key used to store user claims in the Fiber context.
const UserContextKey = "user"

// AuthMiddleware creates a middleware that validates bearer tokens and
// attaches the resolved claims to the request context. Every event route
// takes its owner identity from these claims and nowhere else.
func AuthMiddleware(authAdapter auth.AuthPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fail("Authorization header is required"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fail("Invalid authorization header format. Use: Bearer <token>"))
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fail("Token is required"))
		}

		claims, err := authAdapter.ValidateToken(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fail("Invalid or expired token"))
		}

		c.Locals(UserContextKey, claims)
		return c.Next()
	}
}
