// Package view holds the HTML templates and static assets for the public pages.
package view

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/ischool/courseinfo-backend/internal/model"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page template. Page templates are named after their
// path under templates/, e.g. "courseinfo/section_list.html".
func Templates() (*template.Template, error) {
	return template.New("").
		Funcs(template.FuncMap{
			"listPath": func(k model.Kind) string { return k.Path() },
		}).
		ParseFS(templateFS, "templates/*.html", "templates/courseinfo/*.html")
}

// Static returns the stylesheet directory, rooted so "/static/site.css" maps to "site.css".
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// ListTemplate is the template name for an entity's list page.
func ListTemplate(k model.Kind) string {
	return "courseinfo/" + string(k) + "_list.html"
}

// DetailTemplate is the template name for an entity's detail page.
func DetailTemplate(k model.Kind) string {
	return "courseinfo/" + string(k) + "_detail.html"
}

// NotFoundTemplate renders the 404 page.
const NotFoundTemplate = "not_found.html"
