package templates

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Load parses every page; each one is addressed by its file name, e.g. "user_list.tmpl"
func Load() (*template.Template, error) {
	return template.New("").ParseFS(files, "*.tmpl")
}

func MustLoad() *template.Template {
	return template.Must(Load())
}
