package view

import (
	"html/template"
	"io"
)

var templates = template.Must(template.New("views").Parse(
	tmplBase + tmplDetail + tmplTable + tmplBanner,
))

// RenderPage writes the full page.
func RenderPage(w io.Writer, p Page) error {
	return templates.ExecuteTemplate(w, "page", p)
}

// RenderDetail writes the detail panel fragment for the selected memory.
func RenderDetail(w io.Writer, d *MemoryDetail) error {
	return templates.ExecuteTemplate(w, "detail", Page{Detail: d})
}

// RenderTable writes a result table fragment. All cell values are escaped by
// html/template.
func RenderTable(w io.Writer, t Table) error {
	return templates.ExecuteTemplate(w, "table", t)
}

// RenderBanner writes an inline warning/error/info fragment.
func RenderBanner(w io.Writer, b Banner) error {
	return templates.ExecuteTemplate(w, "banner", b)
}
