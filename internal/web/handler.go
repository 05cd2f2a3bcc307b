package web

import (
	"log/slog"
	"net/http"

	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/services/grid"
	"github.com/arturyumaev/casinodesk/internal/services/stats"
	"github.com/arturyumaev/casinodesk/internal/web/templates"
)

const topPlayerCount = 5

type handlers struct {
	stats     stats.ControllerInterface
	grid      grid.ControllerInterface
	sessionID model.SessionID
	logger    *slog.Logger
}

func (h *handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.Summary(r.Context())
	if err != nil {
		h.serverError(w, "failed to build summary", err)
		return
	}

	top, err := h.stats.TopByPlayMoney(r.Context(), topPlayerCount)
	if err != nil {
		h.serverError(w, "failed to rank players", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Dashboard(w, templates.DashboardData{
		Title:   "Dashboard",
		Summary: summary,
		Top:     top,
	}); err != nil {
		h.logger.Error("template render failed", slog.String("error", err.Error()))
	}
}

func (h *handlers) gridPage(w http.ResponseWriter, r *http.Request) {
	view, err := h.grid.View(r.Context(), h.sessionID)
	if err != nil {
		h.serverError(w, "failed to render grid", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Grid(w, templates.GridData{
		Title:      "Players",
		View:       view,
		PageNumber: view.Page.PageIndex + 1,
	}); err != nil {
		h.logger.Error("template render failed", slog.String("error", err.Error()))
	}
}

func (h *handlers) serverError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, slog.String("error", err.Error()))
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
