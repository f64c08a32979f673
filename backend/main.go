package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"coursecatalog/backend/config"
	"coursecatalog/backend/middleware"
	"coursecatalog/backend/routes"
	"coursecatalog/backend/storage"
	"coursecatalog/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize storage
	store, err := initStorage(cfg)
	if err != nil {
		log.Fatalf("Error initializing storage: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, store)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}

// initStorage picks the store for the configured driver. The in-memory
// store is always reseeded; Postgres only when the catalog is empty.
func initStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageDriver {
	case "postgres":
		store, err := storage.OpenGorm(cfg.DSN())
		if err != nil {
			return nil, err
		}
		courses, err := store.GetCourses()
		if err != nil {
			return nil, err
		}
		if len(courses) == 0 {
			if err := storage.Seed(store); err != nil {
				return nil, err
			}
		}
		return store, nil
	default:
		store := storage.NewMemStore()
		if err := storage.Seed(store); err != nil {
			return nil, err
		}
		return store, nil
	}
}
