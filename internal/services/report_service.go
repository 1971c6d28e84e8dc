// Package services provides internal service implementations for the scanvault backend.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	scans "github.com/scanvault/scanvault-backend/events/modules/scans"
	"github.com/scanvault/scanvault-backend/model"
	"github.com/scanvault/scanvault-backend/restapi/modules/vulnerabilities"
	"github.com/scanvault/scanvault-backend/util"
)

// Store is the subset of database operations the report service needs.
type Store interface {
	CreateReport(ctx context.Context, report model.ScanReport) (string, error)
	InsertVulnerabilities(ctx context.Context, records []model.VulnerabilityRecord) (int, error)
}

// ReportService processes report-oriented scan uploads: it parses the file,
// constructs the report entity, persists it, and batch-inserts the records
// linked to it.
type ReportService struct {
	store    Store
	producer *scans.ScanProducer
	log      *zap.Logger
}

// NewReportService wires the report service with its collaborators.
// producer may be nil when event publishing is not configured.
func NewReportService(store Store, producer *scans.ScanProducer, log *zap.Logger) *ReportService {
	return &ReportService{
		store:    store,
		producer: producer,
		log:      log,
	}
}

// ProcessUpload parses the uploaded CSV, persists the report document, and
// inserts all mapped records tagged with the report key in one batch call.
func (s *ReportService) ProcessUpload(ctx context.Context, content []byte, fileName, name, description string) (*model.ReportResult, error) {
	if len(content) == 0 {
		return nil, util.NewBadRequest("Uploaded file is empty")
	}

	rows, err := vulnerabilities.ParseCSV(content)
	if err != nil {
		return nil, util.NewBadRequest("Invalid CSV file: " + err.Error())
	}

	uploadID := uuid.New().String()

	report := model.NewScanReport()
	report.Name = name
	report.Description = description
	report.FileName = fileName
	report.RecordCount = len(rows)
	report.UploadID = uploadID

	reportKey, err := s.store.CreateReport(ctx, *report)
	if err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	records := vulnerabilities.MapRows(rows, uploadID)
	for i := range records {
		records[i].ReportKey = reportKey
	}

	inserted, err := s.store.InsertVulnerabilities(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("failed to insert report records: %w", err)
	}

	if s.producer != nil {
		event := scans.NewScanIngestedEvent("report-upload", uploadID, reportKey, fileName, inserted)
		if err := s.producer.PublishScanIngested(ctx, event); err != nil {
			s.log.Sugar().Warnf("Failed to publish scan ingested event: %v", err)
		}
	}

	return &model.ReportResult{
		ReportKey:   reportKey,
		Name:        report.Name,
		Description: report.Description,
		FileName:    fileName,
		RecordCount: inserted,
		UploadedAt:  report.CreatedAt,
	}, nil
}
