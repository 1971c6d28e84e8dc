// Package graphql assembles the read-only query schema from the module packages.
package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/scanvault/scanvault-backend/database"
	gqlreports "github.com/scanvault/scanvault-backend/graphql/modules/reports"
	gqlvulns "github.com/scanvault/scanvault-backend/graphql/modules/vulnerabilities"
)

var db database.DBConnection

// InitDB stores the database connection for the resolvers.
func InitDB(conn database.DBConnection) {
	db = conn
}

// CreateSchema builds the root query schema from the module query fields.
func CreateSchema() (gql.Schema, error) {
	fields := gql.Fields{}

	for name, field := range gqlvulns.GetQueryFields(db) {
		fields[name] = field
	}
	for name, field := range gqlreports.GetQueryFields(db) {
		fields[name] = field
	}

	rootQuery := gql.NewObject(gql.ObjectConfig{
		Name:   "Query",
		Fields: fields,
	})

	return gql.NewSchema(gql.SchemaConfig{
		Query: rootQuery,
	})
}
