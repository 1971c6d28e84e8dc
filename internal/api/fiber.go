package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/scanvault/scanvault-backend/database"
	scans "github.com/scanvault/scanvault-backend/events/modules/scans"
	"github.com/scanvault/scanvault-backend/graphql"
	"github.com/scanvault/scanvault-backend/restapi"
	"github.com/scanvault/scanvault-backend/util"
)

// NewFiberApp creates and configures a Fiber app with REST and GraphQL routes
func NewFiberApp(db database.DBConnection, producer *scans.ScanProducer, cfg util.ServerConfig) *fiber.App {
	// Initialize GraphQL schema
	graphql.InitDB(db)
	schema, err := graphql.CreateSchema()
	if err != nil {
		log.Fatalf("Failed to create GraphQL schema: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:     "scanvault-backend API v1.0",
		BodyLimit:   cfg.BodyLimitMB * 1024 * 1024,
		ReadTimeout: 60 * time.Second, // large scan exports
	})

	// Middleware
	app.Use(fiberrecover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowMethods: "GET, POST, HEAD, PUT, DELETE, PATCH, OPTIONS",
	}))

	app.Use(logger.New())

	// Liveness endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// Setup REST and GraphQL routes
	restapi.SetupRoutes(app, db, schema, producer)

	return app
}
