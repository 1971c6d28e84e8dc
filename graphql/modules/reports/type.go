// Package reports defines the GraphQL types for scan report queries.
package reports

import (
	"github.com/graphql-go/graphql"
)

// ReportType represents a scan report summary.
var ReportType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Report",
	Fields: graphql.Fields{
		"key":          &graphql.Field{Type: graphql.String},
		"name":         &graphql.Field{Type: graphql.String},
		"description":  &graphql.Field{Type: graphql.String},
		"file_name":    &graphql.Field{Type: graphql.String},
		"record_count": &graphql.Field{Type: graphql.Int},
		"upload_id":    &graphql.Field{Type: graphql.String},
		"created_at":   &graphql.Field{Type: graphql.String},
	},
})
