// Package database - query helpers for vulnerability and report documents.
package database

import (
	"context"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/scanvault/scanvault-backend/model"
)

// InsertVulnerabilities inserts a batch of records in a single query.
// The batch succeeds or fails as one insert call; no per-row status is tracked.
func (db DBConnection) InsertVulnerabilities(ctx context.Context, records []model.VulnerabilityRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	query := `
		FOR doc IN @docs
			INSERT doc INTO vulnerability
	`

	bindVars := map[string]interface{}{
		"docs": records,
	}

	cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: bindVars,
	})
	if err != nil {
		return 0, err
	}
	cursor.Close()

	return len(records), nil
}

// CountVulnerabilities returns the total number of vulnerability documents.
func (db DBConnection) CountVulnerabilities(ctx context.Context) (int64, error) {
	query := `RETURN LENGTH(vulnerability)`

	cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{})
	if err != nil {
		return 0, err
	}
	defer cursor.Close()

	var count int64
	if cursor.HasMore() {
		if _, err := cursor.ReadDocument(ctx, &count); err != nil {
			return 0, err
		}
	}

	return count, nil
}

// CreateReport saves a report document and returns its key.
func (db DBConnection) CreateReport(ctx context.Context, report model.ScanReport) (string, error) {
	meta, err := db.Collections["report"].CreateDocument(ctx, report)
	if err != nil {
		return "", err
	}
	return meta.Key, nil
}

// GetReport fetches a single report by key. Returns nil when not found.
func (db DBConnection) GetReport(ctx context.Context, key string) (*model.ScanReport, error) {
	query := `
		FOR r IN report
			FILTER r._key == @key
			LIMIT 1
			RETURN r
	`
	bindVars := map[string]interface{}{
		"key": key,
	}

	cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: bindVars,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	if cursor.HasMore() {
		var report model.ScanReport
		if _, err := cursor.ReadDocument(ctx, &report); err != nil {
			return nil, err
		}
		return &report, nil
	}

	return nil, nil
}

// ListReports returns all reports, newest first.
func (db DBConnection) ListReports(ctx context.Context) ([]model.ScanReport, error) {
	query := `
		FOR r IN report
			SORT r.created_at DESC
			RETURN r
	`

	cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	var reports []model.ScanReport
	for cursor.HasMore() {
		var report model.ScanReport
		if _, err := cursor.ReadDocument(ctx, &report); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// CountReportVulnerabilities returns the number of records linked to a report.
func (db DBConnection) CountReportVulnerabilities(ctx context.Context, reportKey string) (int64, error) {
	query := `
		RETURN LENGTH(
			FOR v IN vulnerability
				FILTER v.report_key == @report_key
				RETURN 1
		)
	`
	bindVars := map[string]interface{}{
		"report_key": reportKey,
	}

	cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: bindVars,
	})
	if err != nil {
		return 0, err
	}
	defer cursor.Close()

	var count int64
	if cursor.HasMore() {
		if _, err := cursor.ReadDocument(ctx, &count); err != nil {
			return 0, err
		}
	}

	return count, nil
}
