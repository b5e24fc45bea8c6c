// Package web holds the embedded HTML templates and static assets of the
// planner site.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/akhilm2223/vertical-farmingg/entities"
	"github.com/akhilm2223/vertical-farmingg/pkg/plan/types"
)

// Template names accepted by Renderer.
const (
	PageForm    = "form"
	PageResults = "results"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// FormPage is the data for the input form.
type FormPage struct {
	Form         types.PlanForm
	Errors       entities.FieldErrors
	LightSources []entities.LightSource
}

// NewFormPage returns the form pre-filled with the default dimensions.
func NewFormPage() FormPage {
	return FormPage{
		Form: types.PlanForm{
			LightSource: string(entities.LightNatural),
			Space:       fmt.Sprint(entities.DefaultVerticalSpaceM),
			FarmWidth:   fmt.Sprint(entities.DefaultWidthM),
			FarmDepth:   fmt.Sprint(entities.DefaultDepthM),
		},
		LightSources: entities.LightSources,
	}
}

type ResultsPage struct {
	Plan entities.FarmingPlan
}

var funcs = template.FuncMap{
	"fixed1": func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
	"join": strings.Join,
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}

// Static returns the asset tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
