// Package vulnerabilities defines the GraphQL types for vulnerability queries.
package vulnerabilities

import (
	"github.com/graphql-go/graphql"
)

// VulnerabilityType represents a single scanner finding.
var VulnerabilityType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Vulnerability",
	Fields: graphql.Fields{
		"key":         &graphql.Field{Type: graphql.String},
		"ip_address":  &graphql.Field{Type: graphql.String},
		"cve":         &graphql.Field{Type: graphql.String},
		"severity":    &graphql.Field{Type: graphql.String},
		"plugin_name": &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"report_key":  &graphql.Field{Type: graphql.String},
		"upload_id":   &graphql.Field{Type: graphql.String},
		"created_at":  &graphql.Field{Type: graphql.String},
	},
})

// SeverityCountType represents the record count for one severity label.
var SeverityCountType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SeverityCount",
	Fields: graphql.Fields{
		"severity": &graphql.Field{Type: graphql.String},
		"count":    &graphql.Field{Type: graphql.Int},
	},
})
