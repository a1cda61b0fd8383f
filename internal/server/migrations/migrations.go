// Package migrations embeds the goose SQL migrations for the SQL document
// backend. The statements are portable between PostgreSQL and SQLite.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
