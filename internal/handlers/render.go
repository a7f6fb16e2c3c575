package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"path"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer holds the parsed page templates, each combined with the base
// layout. Templates are embedded so the binary and the tests need no
// working-directory setup.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	baseContent, err := templateFS.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("failed to read base template: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template)}

	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to read templates dir: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == "base.html" || !strings.HasSuffix(name, ".html") {
			continue
		}

		pageContent, err := templateFS.ReadFile(path.Join("templates", name))
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", name, err)
		}

		tmpl, err := template.New("base.html").Parse(string(baseContent))
		if err != nil {
			return nil, fmt.Errorf("failed to parse base template for %s: %w", name, err)
		}
		if tmpl, err = tmpl.Parse(string(pageContent)); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}

		r.templates[name] = tmpl
	}

	if len(r.templates) == 0 {
		return nil, fmt.Errorf("no page templates found")
	}

	return r, nil
}

// Render writes the named page with the given status code.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data interface{}) {
	tmpl, ok := r.templates[name]
	if !ok {
		log.Printf("Template %q not found", name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("Template render error: %v", err)
	}
}
