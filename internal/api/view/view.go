// Package view renders the portal's HTML pages through echo's Renderer
// interface. Templates are embedded so the binary is self-contained.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Renderer satisfies echo.Renderer over the embedded template set.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.gohtml")),
	}
}

// Render implements echo.Renderer; name is the template file name.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
