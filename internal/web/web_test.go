package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturyumaev/casinodesk/internal/dependencies/mocks"
	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/services/grid"
	"github.com/arturyumaev/casinodesk/internal/services/stats"
	"github.com/arturyumaev/casinodesk/internal/storage/memory"
	"github.com/arturyumaev/casinodesk/internal/testutil"
	"github.com/arturyumaev/casinodesk/internal/web"
)

type fakeAPI struct {
	users []model.PlayerRecord
}

func (f *fakeAPI) Users(ctx context.Context) ([]model.PlayerRecord, error) {
	out := make([]model.PlayerRecord, len(f.users))
	copy(out, f.users)
	return out, nil
}

func (f *fakeAPI) SetRole(ctx context.Context, id model.RecordID, role model.Role) error {
	return nil
}

func (f *fakeAPI) GrantReward(ctx context.Context, id model.RecordID, amount float64) error {
	return nil
}

func (f *fakeAPI) FetchAssets(ctx context.Context) (*model.AssetConfig, error) {
	return &model.AssetConfig{}, nil
}

func (f *fakeAPI) SaveAssets(ctx context.Context, cfg *model.AssetConfig) (*model.AssetConfig, error) {
	return cfg, nil
}

func (f *fakeAPI) ResetAssets(ctx context.Context) (*model.AssetConfig, error) {
	return &model.AssetConfig{}, nil
}

type testEnv struct {
	handler http.Handler
	grid    *grid.Controller
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	api := &fakeAPI{
		users: []model.PlayerRecord{
			{ID: "1", Name: "alice", PlayMoney: 5000, RealMoney: 2, Role: model.RoleAdmin},
			{ID: "2", Name: "bob", PlayMoney: 9000, RealMoney: 0, Role: model.RolePlayer},
			{ID: "3", Name: "carol", PlayMoney: 1000, RealMoney: 7.5, Role: model.RolePlayer},
		},
	}

	store := memory.New()
	clk := mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	logger := testutil.NopLogger()

	gridController := grid.NewController(api, store, clk, logger)
	statsController := stats.NewController(api, logger)

	handler := web.NewRouter(web.RouterConfig{
		Logger:          logger,
		StatsController: statsController,
		GridController:  gridController,
		SessionID:       "op-1",
	})

	return &testEnv{handler: handler, grid: gridController}
}

func (e *testEnv) get(t *testing.T, path string) *goquery.Document {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	doc, err := goquery.NewDocumentFromReader(rr.Body)
	require.NoError(t, err)
	return doc
}

func TestDashboardShowsTotals(t *testing.T) {
	env := newTestEnv(t)
	doc := env.get(t, "/")

	assert.Equal(t, "3", doc.Find("#total-players").Text())
	assert.Equal(t, "15000", doc.Find("#total-play-money").Text())
	assert.Equal(t, "9.50", doc.Find("#total-real-money").Text())
	assert.Equal(t, "bob", doc.Find("#richest-player").Text())
}

func TestDashboardRanksTopPlayers(t *testing.T) {
	env := newTestEnv(t)
	doc := env.get(t, "/")

	rows := doc.Find("#top-players tbody tr")
	require.Equal(t, 3, rows.Length())

	first, _ := rows.First().Attr("data-record-id")
	assert.Equal(t, "2", first, "richest player ranks first")
}

func TestGridPageShowsManualOrder(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.grid.Reorder(context.Background(), "op-1", "3", "1"))

	doc := env.get(t, "/grid")
	rows := doc.Find("#player-grid tbody tr")
	require.Equal(t, 3, rows.Length())

	first, _ := rows.First().Attr("data-record-id")
	assert.Equal(t, "3", first)
}

func TestGridPageMarksSelectedRows(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.grid.ToggleSelect(context.Background(), "op-1", "2"))

	doc := env.get(t, "/grid")
	selected := doc.Find("#player-grid tbody tr.selected")
	require.Equal(t, 1, selected.Length())

	id, _ := selected.Attr("data-record-id")
	assert.Equal(t, "2", id)
}

func TestGridPageShowsPagination(t *testing.T) {
	env := newTestEnv(t)
	doc := env.get(t, "/grid")

	assert.Contains(t, doc.Find("#grid-meta").Text(), "Page 1 of 1")
	assert.Contains(t, doc.Find("#grid-meta").Text(), "3 players")
}
