package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/yipfram/DidactypoBack/backend/config"
	"github.com/yipfram/DidactypoBack/backend/database"
	"github.com/yipfram/DidactypoBack/backend/middleware"
	"github.com/yipfram/DidactypoBack/backend/routes"
	"github.com/yipfram/DidactypoBack/backend/scheduler"
	"github.com/yipfram/DidactypoBack/backend/services"
	"github.com/yipfram/DidactypoBack/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Seed the static catalogs on first start
	if err := database.Seed(db, logger); err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}

	// Weekly challenge rotation, Mondays at 04:00
	weekly := services.NewWeeklyChallengeService(db, logger)
	cronJobs, err := scheduler.Start(weekly, logger)
	if err != nil {
		log.Fatalf("Error starting scheduler: %v", err)
	}
	defer cronJobs.Stop()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg, weekly)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
