// Package migrations embeds the goose SQL migrations of the notes schema so
// that the server and the migrate command ship them inside the binary.
package migrations

import "embed"

// FS holds every *.sql migration in this directory.
//
//go:embed *.sql
var FS embed.FS
