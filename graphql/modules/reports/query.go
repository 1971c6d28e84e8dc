// Package reports defines the GraphQL queries for scan reports.
package reports

import (
	"context"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/graphql-go/graphql"

	"github.com/scanvault/scanvault-backend/database"
)

// GetQueryFields returns the report queries to be mounted in the root schema.
func GetQueryFields(db database.DBConnection) graphql.Fields {
	return graphql.Fields{
		"reports": &graphql.Field{
			Type: graphql.NewList(ReportType),
			Args: graphql.FieldConfigArgument{
				"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 100},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				limit, _ := p.Args["limit"].(int)
				return resolveReports(db, "", limit)
			},
		},
		"report": &graphql.Field{
			Type: ReportType,
			Args: graphql.FieldConfigArgument{
				"key": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				key := p.Args["key"].(string)
				results, err := resolveReports(db, key, 1)
				if err != nil || len(results) == 0 {
					return nil, err
				}
				return results[0], nil
			},
		},
	}
}

func resolveReports(db database.DBConnection, key string, limit int) ([]map[string]interface{}, error) {
	ctx := context.Background()

	if limit <= 0 {
		limit = 100
	}

	query := `
		FOR r IN report
			FILTER @key == "" OR r._key == @key
			SORT r.created_at DESC
			LIMIT @limit
			RETURN {
				key: r._key,
				name: r.name,
				description: r.description,
				file_name: r.file_name,
				record_count: r.record_count,
				upload_id: r.upload_id,
				created_at: r.created_at
			}
	`
	cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"key":   key,
			"limit": limit,
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
