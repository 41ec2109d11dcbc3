package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/event-planner/modules/api"
	"github.com/example/event-planner/modules/auth"
	"github.com/example/event-planner/modules/event"
	"github.com/example/event-planner/modules/suggest"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Smart Event Planner ===")

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework.
	// Order: independent modules first, then dependent modules.
	app.Register(auth.NewModule())    // Provides identity services
	app.Register(event.NewModule())   // Provides event storage services
	app.Register(suggest.NewModule()) // Provides AI suggestion services
	app.Register(api.NewModule())     // Depends on auth, event and suggest

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%s):", port)
	log.Println("")
	log.Println("  Public Endpoints:")
	log.Println("  POST   /api/users/register          - Register a new user")
	log.Println("  POST   /api/users/login             - Login and get tokens")
	log.Println("  POST   /api/users/refresh           - Refresh access token")
	log.Println("  GET    /health                      - Health check")
	log.Println("")
	log.Println("  Protected Endpoints (require Bearer token):")
	log.Println("  GET    /api/users/profile           - Current user profile")
	log.Println("  POST   /api/events                  - Create an event")
	log.Println("  GET    /api/events                  - List own events")
	log.Println("  GET    /api/events/stats            - Portfolio statistics")
	log.Println("  GET    /api/events/:id              - Get an event")
	log.Println("  PUT    /api/events/:id              - Update an event")
	log.Println("  DELETE /api/events/:id              - Delete an event")
	log.Println("  PATCH  /api/events/:id/tasks/:index - Toggle a task")
	log.Println("  POST   /api/ai/suggest              - Generate event suggestions")
	log.Println("  GET    /api/ai/test                 - AI backend diagnostics")
	log.Println("")
	if os.Getenv("GEMINI_API_KEY") == "" {
		log.Println("GEMINI_API_KEY not set: suggestions run in offline template mode")
		log.Println("")
	}
	log.Println("Press Ctrl+C to shutdown gracefully")
}
