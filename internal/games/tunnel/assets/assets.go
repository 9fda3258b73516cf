// Package assets embeds the bundled Gremm Tunnel maps and layouts.
package assets

import "embed"

// DefaultLayout is the layout played when none is configured.
const DefaultLayout = "gbd1/gbd1.layout"

// FS holds the bundled assets. Map references inside layouts are relative to its root.
//
//go:embed gbd1 practice.yaml
var FS embed.FS
