// Package presets provides embedded layout presets and tile palettes.
package presets

import "embed"

// dataFS embeds all YAML files from this directory at build time.
//
//go:embed *.yaml
var dataFS embed.FS
