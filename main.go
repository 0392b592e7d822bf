package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"projectview/config"
	"projectview/middleware"
	"projectview/models"
	"projectview/routes"
)

func main() {
	logger := log.New(os.Stdout, "PROJECTVIEW: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	if err := config.ConnectDB(); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Make sure the upload tree exists before the first request hits it
	uploadRoot := filepath.Join(config.AppConfig.UploadDir, "ProjectImages")
	if err := os.MkdirAll(uploadRoot, 0o755); err != nil {
		logger.Fatalf("Failed to create upload directory: %v", err)
	}

	// Bootstrap credential so a fresh deployment is reachable
	if err := models.EnsureAdminUser(config.DB, config.AppConfig.AdminPassword); err != nil {
		logger.Fatalf("Failed to ensure admin user: %v", err)
	}

	// Create Fiber app
	app := fiber.New()

	// Add CORS middleware
	app.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(app, config.DB, config.AppConfig)

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "running",
			"version": "1.0.0",
		})
	})

	// Start server
	logger.Printf("Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
