// Package locales embeds the translation tables shipped with the binary.
package locales

import "embed"

// FS holds id.json and en.json.
//
//go:embed *.json
var FS embed.FS
