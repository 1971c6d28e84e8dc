// Package vulnerabilities implements the REST API handlers for the direct CSV upload path.
package vulnerabilities

import (
	"context"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	scans "github.com/scanvault/scanvault-backend/events/modules/scans"
	"github.com/scanvault/scanvault-backend/model"
)

// Store is the subset of database operations the upload handler needs.
// Handlers take it as an interface so tests can substitute a fake client.
type Store interface {
	InsertVulnerabilities(ctx context.Context, records []model.VulnerabilityRecord) (int, error)
}

// UploadCSV handles POST requests for the direct CSV upload path.
// The whole batch is submitted in one insert call; there is no retry and
// no per-row status, the store either takes all rows or rejects the call.
func UploadCSV(store Store, producer *scans.ScanProducer, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "CSV file is required",
			})
		}

		file, err := fileHeader.Open()
		if err != nil {
			log.Sugar().Errorf("Failed to open uploaded file: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong",
			})
		}

		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			log.Sugar().Errorf("Failed to read uploaded file: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong",
			})
		}

		rows, err := ParseCSV(content)
		if err != nil {
			log.Sugar().Errorf("Failed to parse CSV upload: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong",
			})
		}

		uploadID := uuid.New().String()
		records := MapRows(rows, uploadID)

		ctx := context.Background()

		inserted, err := store.InsertVulnerabilities(ctx, records)
		if err != nil {
			log.Sugar().Errorf("Failed to insert vulnerability batch: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if producer != nil {
			event := scans.NewScanIngestedEvent("csv-upload", uploadID, "", fileHeader.Filename, inserted)
			if err := producer.PublishScanIngested(ctx, event); err != nil {
				log.Sugar().Warnf("Failed to publish scan ingested event: %v", err)
			}
		}

		return c.JSON(fiber.Map{
			"message":  fmt.Sprintf("Inserted %d vulnerability records", inserted),
			"inserted": inserted,
		})
	}
}
