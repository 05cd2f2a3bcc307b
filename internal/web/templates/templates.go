// Package templates renders the read-only dashboard pages.
package templates

import (
	"embed"
	"html/template"
	"io"

	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/services/grid"
	"github.com/arturyumaev/casinodesk/internal/services/stats"
)

//go:embed *.html
var files embed.FS

var pages = template.Must(template.ParseFS(files, "*.html"))

// DashboardData feeds the dashboard page.
type DashboardData struct {
	Title   string
	Summary *stats.Summary
	Top     []model.PlayerRecord
}

// GridData feeds the player grid page.
type GridData struct {
	Title string
	View  *grid.GridView

	// PageNumber is the 1-based page for display.
	PageNumber int
}

// Dashboard renders the dashboard page.
func Dashboard(w io.Writer, data DashboardData) error {
	return pages.ExecuteTemplate(w, "dashboard.html", data)
}

// Grid renders the player grid page.
func Grid(w io.Writer, data GridData) error {
	return pages.ExecuteTemplate(w, "grid.html", data)
}
