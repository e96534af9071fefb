// Package web serves the embedded storefront pages. Every page is static
// HTML plus a small script that talks to the JSON API; the only server-side
// template data is the entity id on edit and detail pages.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/anagarciahdz/grocerhub-backend/pkg/logger"
)

//go:embed templates static
var assets embed.FS

var pageNames = []string{
	"index",
	"inventory",
	"products",
	"add_product",
	"edit_product",
	"customers",
	"add_customer",
	"edit_customer",
	"orders",
	"order_details",
	"create_order",
	"error",
}

// Renderer holds the parsed page templates.
type Renderer struct {
	pages map[string]*template.Template
	logg  *logger.Logger
}

// NewRenderer parses every embedded page against the shared layout.
func NewRenderer(logg *logger.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(assets, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing page %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages, logg: logg}, nil
}

// Render writes the named page with the given data.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := r.pages[name]
	if !ok {
		http.Error(w, "page not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil && r.logg != nil {
		r.logg.Warn(context.Background(), "web: render "+name+" failed")
	}
}

// Page returns a handler that renders a fixed page with no data.
func (r *Renderer) Page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		r.Render(w, http.StatusOK, name, nil)
	}
}

// PageWithID returns a handler that passes the chi path id into the page.
func (r *Renderer) PageWithID(name string, extract func(*http.Request) string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		r.Render(w, http.StatusOK, name, map[string]string{"ID": extract(req)})
	}
}

// NotFound renders the error page with a 404.
func (r *Renderer) NotFound(w http.ResponseWriter, req *http.Request) {
	r.Render(w, http.StatusNotFound, "error", map[string]any{
		"Code":    404,
		"Message": "Page not found",
	})
}

// Static returns the embedded asset file system rooted at static/.
func Static() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		return http.NotFoundHandler()
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
