// package main provides the entry point for the scanvault-backend microservice,
// which ingests vulnerability-scan exports into the hosted database and serves
// the upload, report, and health-check API.
package main

import (
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/scanvault/scanvault-backend/database"
	scans "github.com/scanvault/scanvault-backend/events/modules/scans"
	"github.com/scanvault/scanvault-backend/internal/api"
	"github.com/scanvault/scanvault-backend/util"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize database connection
	db := database.InitializeDatabase()

	// Optional Kafka producer for scan ingestion events
	var producer *scans.ScanProducer
	if brokers := database.GetEnvDefault("KAFKA_BROKERS", ""); brokers != "" {
		topic := database.GetEnvDefault("KAFKA_TOPIC", "scan-events")
		producer = scans.NewScanProducer(strings.Split(brokers, ","), topic)
		defer producer.Close()
		log.Printf("Kafka producer enabled for topic %s", topic)
	}

	cfg := util.LoadServerConfig()

	app := api.NewFiberApp(db, producer, cfg)

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	log.Printf("GraphQL endpoint available at /api/v1/graphql")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
