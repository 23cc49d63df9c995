package emitter

import (
	"embed"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("emitter").ParseFS(templateFS, "templates/*.tmpl"))
