// Package assets carries the game data compiled into the binary.
package assets

import _ "embed"

// Defaults is the built-in configuration document.
//
//go:embed defaults.yaml
var Defaults []byte
