// Package reports implements the REST API handlers for report-oriented scan uploads.
package reports

import (
	"context"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/scanvault/scanvault-backend/model"
	"github.com/scanvault/scanvault-backend/util"
)

// UploadProcessor is the report service contract consumed by the upload handler.
type UploadProcessor interface {
	ProcessUpload(ctx context.Context, content []byte, fileName, name, description string) (*model.ReportResult, error)
}

// Store is the subset of database operations the read handlers need.
type Store interface {
	GetReport(ctx context.Context, key string) (*model.ScanReport, error)
	ListReports(ctx context.Context) ([]model.ScanReport, error)
	CountReportVulnerabilities(ctx context.Context, reportKey string) (int64, error)
}

// UploadReport handles POST requests for the report-oriented upload path.
// Name and description default when omitted from the form.
func UploadReport(svc UploadProcessor, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No file provided",
			})
		}

		file, err := fileHeader.Open()
		if err != nil {
			log.Sugar().Errorf("Failed to open uploaded file: %v", err)
			return util.HandleError(c, err)
		}

		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			log.Sugar().Errorf("Failed to read uploaded file: %v", err)
			return util.HandleError(c, err)
		}

		name := c.FormValue("reportName")
		if name == "" {
			name = "Nessus Scan - " + time.Now().Format("2006-01-02")
		}

		description := c.FormValue("reportDescription")
		if description == "" {
			description = "Uploaded from " + fileHeader.Filename
		}

		result, err := svc.ProcessUpload(context.Background(), content, fileHeader.Filename, name, description)
		if err != nil {
			log.Sugar().Errorf("Failed to process report upload: %v", err)
			return util.HandleError(c, err)
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Report uploaded successfully",
			"data":    result,
		})
	}
}

// GetReport handles GET requests for a single report by key.
func GetReport(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")

		ctx := context.Background()

		report, err := store.GetReport(ctx, key)
		if err != nil {
			return util.HandleError(c, err)
		}
		if report == nil {
			return util.HandleError(c, util.NewNotFound("Report not found"))
		}

		count, err := store.CountReportVulnerabilities(ctx, key)
		if err != nil {
			return util.HandleError(c, err)
		}

		return c.JSON(fiber.Map{
			"report":       report,
			"record_count": count,
		})
	}
}

// ListReports handles GET requests for all reports, newest first.
func ListReports(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reports, err := store.ListReports(context.Background())
		if err != nil {
			return util.HandleError(c, err)
		}

		if reports == nil {
			reports = []model.ScanReport{}
		}

		return c.JSON(fiber.Map{
			"reports": reports,
		})
	}
}
