// Package content embeds the markdown pages shipped with the binary.
package content

import "embed"

//go:embed legal
var FS embed.FS
