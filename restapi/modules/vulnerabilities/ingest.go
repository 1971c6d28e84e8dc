// Package vulnerabilities implements CSV scan ingestion for the direct upload path.
package vulnerabilities

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"github.com/scanvault/scanvault-backend/model"
)

// ParseCSV parses raw CSV text into row maps keyed by the header line.
// The first line is the header; blank lines are skipped. Ragged rows are
// tolerated, missing trailing cells leave the field empty.
func ParseCSV(content []byte) ([]map[string]string, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1 // scanner exports are often ragged

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []map[string]string{}, nil
		}
		return nil, err
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// MapRow maps one parsed row to a vulnerability record. Column names are
// matched exactly as the scanner exports them; the only fallback rule is
// that an empty CVE column falls back to the Plugin ID column. No trimming
// or validation happens here, absent columns pass through as empty fields.
func MapRow(row map[string]string) model.VulnerabilityRecord {
	rec := model.NewVulnerabilityRecord()

	rec.IPAddress = row["IP Address"]

	cve := row["CVE"]
	if cve == "" {
		cve = row["Plugin ID"]
	}
	rec.CVE = cve

	rec.Severity = row["Severity"]
	rec.PluginName = row["Plugin Name"]
	rec.Description = row["Description"]

	return *rec
}

// MapRows maps every row in order and stamps the records with the upload batch ID.
func MapRows(rows []map[string]string, uploadID string) []model.VulnerabilityRecord {
	records := make([]model.VulnerabilityRecord, 0, len(rows))
	for _, row := range rows {
		rec := MapRow(row)
		rec.UploadID = uploadID
		records = append(records, rec)
	}
	return records
}
