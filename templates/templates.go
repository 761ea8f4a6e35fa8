// Package templates embeds the HTML templates and the document schema so the
// binaries do not depend on the working directory.
package templates

import "embed"

//go:embed *.html *.json
var FS embed.FS

const (
	CV      = "cv.html"
	Divider = "divider.html"
	Home    = "home.html"
	Section = "section.html"
	Schema  = "cv.schema.json"
)
