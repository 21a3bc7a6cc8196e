package templates

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Load parses every view. Templates are referenced by file name, e.g. "index.tmpl"
func Load() (*template.Template, error) {
	return template.New("").ParseFS(files, "*.tmpl")
}
