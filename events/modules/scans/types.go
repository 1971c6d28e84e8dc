// Package scans defines types for Kafka event production of scan ingestion events.
package scans

import (
	"time"

	"github.com/google/uuid"
)

// ScanIngestedEvent represents a completed scan ingestion published to Kafka.
type ScanIngestedEvent struct {
	EventType     string    `json:"event_type"`
	EventID       string    `json:"event_id"`
	EventTime     time.Time `json:"event_time"`
	SchemaVersion string    `json:"schema_version"`

	// Source identifies the ingestion path ("csv-upload" or "report-upload")
	Source string `json:"source"`

	UploadID    string `json:"upload_id"`
	ReportKey   string `json:"report_key,omitempty"`
	FileName    string `json:"file_name,omitempty"`
	RecordCount int    `json:"record_count"`
}

// NewScanIngestedEvent constructs the event contract for a finished ingestion.
func NewScanIngestedEvent(source, uploadID, reportKey, fileName string, recordCount int) ScanIngestedEvent {
	return ScanIngestedEvent{
		EventType:     "scan.ingested",
		EventID:       uuid.New().String(),
		EventTime:     time.Now().UTC(),
		SchemaVersion: "v1",
		Source:        source,
		UploadID:      uploadID,
		ReportKey:     reportKey,
		FileName:      fileName,
		RecordCount:   recordCount,
	}
}
