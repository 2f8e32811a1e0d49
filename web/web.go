// Package web embeds the browser front end: the search page and its static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html static
var assets embed.FS

// Assets returns the embedded files, rooted so that index.html and the
// static/ directory sit at the top level.
func Assets() fs.FS {
	return assets
}
