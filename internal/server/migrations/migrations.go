// Package migrations embeds the goose SQL migrations for the store service.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
