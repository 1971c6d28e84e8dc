// Package model defines the documents persisted to the vulnerability database.
package model

import "time"

// VulnerabilityRecord represents a single scanner finding stored in the database.
type VulnerabilityRecord struct {
	Key         string    `json:"_key,omitempty"`
	IPAddress   string    `json:"ip_address"`
	CVE         string    `json:"cve"`
	Severity    string    `json:"severity"`
	PluginName  string    `json:"plugin_name"`
	Description string    `json:"description"`
	ReportKey   string    `json:"report_key,omitempty"`
	UploadID    string    `json:"upload_id,omitempty"`
	ObjType     string    `json:"objtype,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// NewVulnerabilityRecord creates a new VulnerabilityRecord with default values.
func NewVulnerabilityRecord() *VulnerabilityRecord {
	return &VulnerabilityRecord{
		ObjType:   "VulnerabilityRecord",
		CreatedAt: time.Now().UTC(),
	}
}
