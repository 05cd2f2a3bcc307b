package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arturyumaev/casinodesk/internal/middleware"
	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/services/grid"
	"github.com/arturyumaev/casinodesk/internal/services/stats"
)

// RouterConfig holds configuration for the dashboard router
type RouterConfig struct {
	Logger          *slog.Logger
	StatsController stats.ControllerInterface
	GridController  grid.ControllerInterface

	// SessionID is the operator session whose grid the dashboard shows.
	SessionID model.SessionID
}

// NewRouter creates the read-only dashboard router. The dashboard renders
// the same session state the CLI manipulates; all mutations go through the
// console.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger, middleware.DefaultPanicHandler))
	r.Use(middleware.Logging(cfg.Logger))

	h := &handlers{
		stats:     cfg.StatsController,
		grid:      cfg.GridController,
		sessionID: cfg.SessionID,
		logger:    cfg.Logger,
	}

	r.HandleFunc("/", h.dashboard).Methods(http.MethodGet)
	r.HandleFunc("/grid", h.gridPage).Methods(http.MethodGet)

	return r
}
