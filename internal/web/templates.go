// Package web renders the server-side HTML pages. It plugs into fiber
// as a Views engine: every page template defines a "content" block
// that is composed into the shared layout at load time.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Engine implements fiber.Views over html/template.
type Engine struct {
	pages map[string]*template.Template
}

func NewEngine() *Engine {
	return &Engine{}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatTime": func(t time.Time) string { return t.Format("Jan 2, 2006 15:04") },
		"truncate": func(s string, n int) string {
			if len(s) <= n {
				return s
			}
			return s[:n] + "…"
		},
		// newlines in stored content become paragraph breaks
		"paragraphs": func(s string) []string {
			var out []string
			for _, p := range strings.Split(s, "\n") {
				if strings.TrimSpace(p) != "" {
					out = append(out, p)
				}
			}
			return out
		},
	}
}

// Load parses the layout and composes every page template with it.
// fiber calls this once at startup and again per render when in
// development views-reload mode.
func (e *Engine) Load() error {
	layout, err := templateFS.ReadFile("templates/layout.html")
	if err != nil {
		return fmt.Errorf("read layout: %w", err)
	}

	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return fmt.Errorf("read templates dir: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".html")
		if name == "layout" {
			continue
		}

		content, err := templateFS.ReadFile(path.Join("templates", entry.Name()))
		if err != nil {
			return fmt.Errorf("read template %s: %w", entry.Name(), err)
		}

		t, err := template.New("layout").Funcs(templateFuncs()).Parse(string(layout))
		if err != nil {
			return fmt.Errorf("parse layout for %s: %w", name, err)
		}
		if _, err := t.Parse(string(content)); err != nil {
			return fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	e.pages = pages
	return nil
}

// Render executes the named page into w. The layout variadic that
// fiber passes is ignored; composition happened in Load.
func (e *Engine) Render(w io.Writer, name string, data any, _ ...string) error {
	t, ok := e.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
