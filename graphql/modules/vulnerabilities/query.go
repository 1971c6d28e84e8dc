// Package vulnerabilities defines the GraphQL queries for vulnerability data.
package vulnerabilities

import (
	"github.com/graphql-go/graphql"

	"github.com/scanvault/scanvault-backend/database"
)

// GetQueryFields returns the vulnerability queries to be mounted in the root schema.
func GetQueryFields(db database.DBConnection) graphql.Fields {
	return graphql.Fields{
		"vulnerabilities": &graphql.Field{
			Type: graphql.NewList(VulnerabilityType),
			Args: graphql.FieldConfigArgument{
				"severity":   &graphql.ArgumentConfig{Type: graphql.String},
				"cve":        &graphql.ArgumentConfig{Type: graphql.String},
				"report_key": &graphql.ArgumentConfig{Type: graphql.String},
				"limit":      &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 100},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				severity, _ := p.Args["severity"].(string)
				cve, _ := p.Args["cve"].(string)
				reportKey, _ := p.Args["report_key"].(string)
				limit, _ := p.Args["limit"].(int)
				return ResolveVulnerabilities(db, severity, cve, reportKey, limit)
			},
		},
		"severityCounts": &graphql.Field{
			Type: graphql.NewList(SeverityCountType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return ResolveSeverityCounts(db)
			},
		},
	}
}
