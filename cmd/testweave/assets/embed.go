//file: cmd/testweave/assets/embed.go

// Package assets embeds the starter project config written by
// "testweave init --quick".
package assets

import _ "embed"

// StarterConfig is the packaged starter project configuration.
//
//go:embed starter.json
var StarterConfig []byte
