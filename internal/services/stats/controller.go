package stats

import (
	"context"
	"log/slog"
	"sort"

	"github.com/arturyumaev/casinodesk/internal/gameapi"
	"github.com/arturyumaev/casinodesk/internal/model"
)

// Summary aggregates the player collection for the dashboard.
type Summary struct {
	TotalPlayers   int
	TotalPlayMoney float64
	TotalRealMoney float64
	RoleCounts     map[model.Role]int

	// Richest is the player holding the most play money, nil when the
	// collection is empty.
	Richest *model.PlayerRecord
}

// Controller computes aggregates over fresh fetches. Nothing here is
// cached; every call reflects what the service reports right now.
type Controller struct {
	api    gameapi.API
	logger *slog.Logger
}

// NewController creates a stats controller.
func NewController(api gameapi.API, logger *slog.Logger) *Controller {
	return &Controller{
		api:    api,
		logger: logger.With(slog.String("component", "stats")),
	}
}

// Summary fetches the collection and aggregates it.
func (c *Controller) Summary(ctx context.Context) (*Summary, error) {
	records, err := c.api.Users(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalPlayers: len(records),
		RoleCounts:   make(map[model.Role]int),
	}

	for i, r := range records {
		summary.TotalPlayMoney += r.PlayMoney
		summary.TotalRealMoney += r.RealMoney
		summary.RoleCounts[r.Role]++

		if summary.Richest == nil || r.PlayMoney > summary.Richest.PlayMoney {
			summary.Richest = &records[i]
		}
	}

	return summary, nil
}

// TopByPlayMoney returns the n wealthiest players, richest first. Ties keep
// the service's response order.
func (c *Controller) TopByPlayMoney(ctx context.Context, n int) ([]model.PlayerRecord, error) {
	if n <= 0 {
		return []model.PlayerRecord{}, nil
	}

	records, err := c.api.Users(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PlayMoney > records[j].PlayMoney
	})

	if n > len(records) {
		n = len(records)
	}
	return records[:n], nil
}

// Interface for dependency injection
type ControllerInterface interface {
	Summary(ctx context.Context) (*Summary, error)
	TopByPlayMoney(ctx context.Context, n int) ([]model.PlayerRecord, error)
}

var _ ControllerInterface = (*Controller)(nil)
