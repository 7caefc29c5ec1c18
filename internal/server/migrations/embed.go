// Package migrations embeds the SQL schema migrations so the server binary
// carries its own schema and needs no files on disk at deploy time.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
