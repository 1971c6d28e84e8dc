// Package vulnerabilities implements the resolvers for vulnerability data.
package vulnerabilities

import (
	"context"

	"github.com/arangodb/go-driver/v2/arangodb"

	"github.com/scanvault/scanvault-backend/database"
)

// ResolveVulnerabilities fetches vulnerability records with optional filters.
func ResolveVulnerabilities(db database.DBConnection, severity, cve, reportKey string, limit int) ([]map[string]interface{}, error) {
	ctx := context.Background()

	if limit <= 0 {
		limit = 100
	}

	query := `
		FOR v IN vulnerability
			FILTER @severity == "" OR v.severity == @severity
			FILTER @cve == "" OR v.cve == @cve
			FILTER @report_key == "" OR v.report_key == @report_key
			SORT v.created_at DESC
			LIMIT @limit
			RETURN {
				key: v._key,
				ip_address: v.ip_address,
				cve: v.cve,
				severity: v.severity,
				plugin_name: v.plugin_name,
				description: v.description,
				report_key: v.report_key,
				upload_id: v.upload_id,
				created_at: v.created_at
			}
	`
	cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"severity":   severity,
			"cve":        cve,
			"report_key": reportKey,
			"limit":      limit,
		},
	})
	if err != nil {
		return []map[string]interface{}{}, err
	}
	defer cursor.Close()

	var results []map[string]interface{}
	for cursor.HasMore() {
		var result map[string]interface{}
		if _, err := cursor.ReadDocument(ctx, &result); err != nil {
			continue
		}
		results = append(results, result)
	}

	return results, nil
}

// ResolveSeverityCounts aggregates record counts per severity label.
func ResolveSeverityCounts(db database.DBConnection) ([]map[string]interface{}, error) {
	ctx := context.Background()

	query := `
		FOR v IN vulnerability
			COLLECT severity = v.severity WITH COUNT INTO count
			SORT count DESC
			RETURN {
				severity: severity,
				count: count
			}
	`
	cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{})
	if err != nil {
		return []map[string]interface{}{}, err
	}
	defer cursor.Close()

	var results []map[string]interface{}
	for cursor.HasMore() {
		var result map[string]interface{}
		if _, err := cursor.ReadDocument(ctx, &result); err != nil {
			continue
		}
		results = append(results, result)
	}

	return results, nil
}
