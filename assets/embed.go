// Package assets bundles the default word list so the game runs without any
// files configured.
package assets

import (
	_ "embed"
)

//go:embed words.txt
var wordsTxt string

// Words returns the raw newline-delimited default word list.
func Words() string {
	return wordsTxt
}
