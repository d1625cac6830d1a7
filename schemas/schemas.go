// Package schemas holds the embedded JSON Schema documents for showcase
// artifacts.
package schemas

import _ "embed"

// Showcase is the structural schema for a raw showcase entry.
//
//go:embed showcase.schema.json
var Showcase []byte
