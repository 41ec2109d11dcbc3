package api

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/example/event-planner/modules/auth"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	authContainer    mono.ServiceContainer
	eventContainer   mono.ServiceContainer
	suggestContainer mono.ServiceContainer
	authAdapter      auth.AuthPort
}

// APIModule is the HTTP API module.
type APIModule struct {
	app              *fiber.App
	port             int
	authContainer    mono.ServiceContainer
	eventContainer   mono.ServiceContainer
	suggestContainer mono.ServiceContainer
	authAdapter      auth.AuthPort
}

// Compile-time interface checks.
var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule.
func NewModule() *APIModule {
	port := 5000
	if raw := os.Getenv("PORT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			port = parsed
		}
	}
	return &APIModule{port: port}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"auth", "event", "suggest"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "auth":
		m.authContainer = container
		m.authAdapter = auth.NewAuthAdapter(container)
	case "event":
		m.eventContainer = container
	case "suggest":
		m.suggestContainer = container
	}
}

// Start initializes the Fiber HTTP server.
func (m *APIModule) Start(_ context.Context) error {
	if m.authContainer == nil || m.eventContainer == nil || m.suggestContainer == nil {
		return fmt.Errorf("module dependencies not set")
	}

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})

	m.app.Use(recover.New())
	m.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	m.app.Use(cors.New())

	m.setupRoutes()

	go func() {
		if err := m.app.Listen(fmt.Sprintf(":%d", m.port)); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on :%d", m.port)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"port": m.port,
		},
	}
}

// setupRoutes configures all API routes.
func (m *APIModule) setupRoutes() {
	handlers := &Handlers{
		authContainer:    m.authContainer,
		eventContainer:   m.eventContainer,
		suggestContainer: m.suggestContainer,
		authAdapter:      m.authAdapter,
	}

	m.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "module": "api"})
	})

	m.app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(okData(fiber.Map{
			"message": "Welcome to Smart Event Planner API!",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"auth":   "/api/users",
				"events": "/api/events",
				"ai":     "/api/ai",
			},
		}))
	})

	api := m.app.Group("/api")

	users := api.Group("/users")
	users.Post("/register", handlers.Register)
	users.Post("/login", handlers.Login)
	users.Post("/refresh", handlers.Refresh)
	users.Get("/profile", AuthMiddleware(m.authAdapter), handlers.Profile)

	events := api.Group("/events", AuthMiddleware(m.authAdapter))
	events.Post("/", handlers.CreateEvent)
	events.Get("/", handlers.ListEvents)
	events.Get("/stats", handlers.EventStats)
	events.Get("/:id", handlers.GetEvent)
	events.Put("/:id", handlers.UpdateEvent)
	events.Delete("/:id", handlers.DeleteEvent)
	events.Patch("/:id/tasks/:index", handlers.ToggleTask)

	ai := api.Group("/ai", AuthMiddleware(m.authAdapter))
	ai.Post("/suggest", handlers.Suggest)
	ai.Get("/test", handlers.SuggestProbe)

	// 404 handler, registered last.
	m.app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fail(fmt.Sprintf("Route not found: %s", c.OriginalURL())))
	})
}

// customErrorHandler converts unhandled Fiber errors into the envelope shape.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if code == fiber.StatusInternalServerError {
		log.Printf("[api] Unhandled error: %v", err)
		return c.Status(code).JSON(fail("Internal server error"))
	}
	return c.Status(code).JSON(fail(err.Error()))
}
