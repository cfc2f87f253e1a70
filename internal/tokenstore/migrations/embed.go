// Package migrations embeds the token store schema so binaries migrate
// themselves on startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
