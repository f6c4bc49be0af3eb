package fragment

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// TemplatesFS exposes the built-in fragment templates.
func TemplatesFS() fs.FS {
	return templatesFS
}
