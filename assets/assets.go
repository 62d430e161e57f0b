// Package assets embeds the binary assets baked into the firmware image.
// idle.bin is produced by cmd/mkanim; do not edit it by hand.
package assets

import _ "embed"

//go:embed idle.bin
var idle []byte

// Idle returns the encoded idle animation.
func Idle() []byte { return idle }
