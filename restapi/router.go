// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/scanvault/scanvault-backend/database"
	scans "github.com/scanvault/scanvault-backend/events/modules/scans"
	"github.com/scanvault/scanvault-backend/internal/services"
	"github.com/scanvault/scanvault-backend/restapi/modules/health"
	"github.com/scanvault/scanvault-backend/restapi/modules/reports"
	"github.com/scanvault/scanvault-backend/restapi/modules/vulnerabilities"
)

var logger = database.InitLogger()

// SetupRoutes configures all REST API routes and the GraphQL endpoint.
// producer may be nil when Kafka is not configured.
func SetupRoutes(app *fiber.App, db database.DBConnection, schema graphql.Schema, producer *scans.ScanProducer) {

	reportService := services.NewReportService(db, producer, logger)

	// API Group /api/v1
	api := app.Group("/api/v1")

	// Health
	api.Get("/health", health.Check(db))

	// Upload paths
	api.Post("/vulnerabilities/upload", vulnerabilities.UploadCSV(db, producer, logger))
	api.Post("/reports/upload", reports.UploadReport(reportService, logger))

	// Report reads
	api.Get("/reports", reports.ListReports(db))
	api.Get("/reports/:key", reports.GetReport(db))

	// GraphQL endpoint
	api.Post("/graphql", GraphQLHandler(schema))

	log.Println("API routes initialized successfully")
}
