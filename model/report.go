// Package model - ScanReport groups the records of one uploaded scan file.
package model

import "time"

// ScanReport represents a report object stored in the database.
type ScanReport struct {
	Key         string    `json:"_key,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	FileName    string    `json:"file_name,omitempty"`
	RecordCount int       `json:"record_count"`
	UploadID    string    `json:"upload_id,omitempty"`
	ObjType     string    `json:"objtype,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// NewScanReport creates a new ScanReport with default values.
func NewScanReport() *ScanReport {
	return &ScanReport{
		ObjType:   "ScanReport",
		CreatedAt: time.Now().UTC(),
	}
}

// ReportResult is the summary returned after a report upload has been processed.
type ReportResult struct {
	ReportKey   string    `json:"report_key"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	FileName    string    `json:"file_name"`
	RecordCount int       `json:"record_count"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
