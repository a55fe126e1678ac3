// Package schemas holds the JSON Schema documents for every artifact the matcher emits.
package schemas

import "embed"

// Files contains every *.schema.json document in this directory.
//
//go:embed *.schema.json
var Files embed.FS
