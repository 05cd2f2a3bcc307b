package e2e_test

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturyumaev/casinodesk/internal/factory"
	"github.com/arturyumaev/casinodesk/internal/gameapi"
	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/services/mutation"
	"github.com/arturyumaev/casinodesk/internal/stubapi"
)

// newConsole wires a full console against an in-process stub game service.
func newConsole(t *testing.T) (*factory.TestApp, *stubapi.State) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	state := stubapi.NewState()

	server := httptest.NewServer(stubapi.NewRouter(state, logger))
	t.Cleanup(server.Close)

	client := gameapi.New(gameapi.Config{InternalAPIURL: server.URL}, logger)
	return factory.NewTestApp(client, "op-e2e"), state
}

func TestGridWorkflow(t *testing.T) {
	app, _ := newConsole(t)
	ctx := context.Background()

	view, err := app.GridController.View(ctx, app.SessionID)
	require.NoError(t, err)
	require.Len(t, view.Page.Rows, 5)
	assert.Equal(t, model.RecordID("100001"), view.Page.Rows[0].ID)

	// Manual reorder shows in every view of the current snapshot
	require.NoError(t, app.GridController.Reorder(ctx, app.SessionID, "100004", "100001"))
	view, err = app.GridController.View(ctx, app.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.RecordID("100004"), view.Page.Rows[0].ID)

	// Sorting projects without touching the manual order
	require.NoError(t, app.GridController.SetSort(ctx, app.SessionID, model.SortByPlayMoney, true))
	view, err = app.GridController.View(ctx, app.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.RecordID("100004"), view.Page.Rows[0].ID, "dave holds the most play money")

	require.NoError(t, app.GridController.SetSort(ctx, app.SessionID, "", false))
	view, err = app.GridController.View(ctx, app.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.RecordID("100004"), view.Page.Rows[0].ID)
	assert.Equal(t, model.RecordID("100001"), view.Page.Rows[1].ID)

	// An explicit refresh replaces the snapshot and the service's order wins
	_, err = app.GridController.Refresh(ctx, app.SessionID)
	require.NoError(t, err)
	view, err = app.GridController.View(ctx, app.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.RecordID("100001"), view.Page.Rows[0].ID)
}

func TestRoleChangeRoundTrip(t *testing.T) {
	app, state := newConsole(t)
	ctx := context.Background()

	op, err := app.Pipeline.RoleChange("100002", model.RoleModerator)
	require.NoError(t, err)

	result := app.Pipeline.Run(ctx, app.SessionID, op)
	require.Equal(t, mutation.StatusSucceeded, result.Status)

	for _, p := range state.Players() {
		if p.ID == "100002" {
			assert.Equal(t, model.RoleModerator, p.Role)
		}
	}

	history, err := app.Notifier.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, model.NotifyLoading, history[0].Kind)
	assert.Equal(t, model.NotifySuccess, history[1].Kind)
}

func TestRewardWorkflowRoundTrip(t *testing.T) {
	app, _ := newConsole(t)
	ctx := context.Background()

	require.NoError(t, app.RewardWorkflow.Open("100005"))
	require.NoError(t, app.RewardWorkflow.SetAmount(2500))

	result, err := app.RewardWorkflow.Submit(ctx, app.SessionID)
	require.NoError(t, err)
	require.Equal(t, mutation.StatusSucceeded, result.Status)

	view, err := app.GridController.View(ctx, app.SessionID)
	require.NoError(t, err)
	for _, r := range view.Page.Rows {
		if r.ID == "100005" {
			assert.Equal(t, float64(3500), r.PlayMoney, "seeded 1000 plus the 2500 grant")
		}
	}
}

func TestFailedMutationSurfacesServerMessage(t *testing.T) {
	app, _ := newConsole(t)
	ctx := context.Background()

	op, err := app.Pipeline.RoleChange("999999", model.RolePlayer)
	require.NoError(t, err)

	result := app.Pipeline.Run(ctx, app.SessionID, op)
	require.Equal(t, mutation.StatusFailed, result.Status)

	history, err := app.Notifier.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, model.NotifyError, history[1].Kind)
	assert.Equal(t, "user not found", history[1].Message)
}

func TestAssetDraftRoundTrip(t *testing.T) {
	app, state := newConsole(t)
	ctx := context.Background()

	draft, err := app.AssetEditor.Load(ctx, app.SessionID)
	require.NoError(t, err)
	require.Len(t, draft.Doc.SlotSymbols, 4)

	require.NoError(t, app.AssetEditor.SetTableBackground(ctx, app.SessionID, "/assets/ocean.png"))
	require.NoError(t, app.AssetEditor.SetCardFace(ctx, app.SessionID, model.SuitSpades, model.RankAce, "/assets/cards/as.png"))

	id, err := app.AssetEditor.AddSymbol(ctx, app.SessionID)
	require.NoError(t, err)
	require.NoError(t, app.AssetEditor.UpdateSymbol(ctx, app.SessionID, id,
		model.SlotSymbol{Name: "DIAMOND", ImageURL: "/assets/slots/diamond.png", Payout: 500, Weight: 1}))

	// Nothing reaches the server until save
	assert.Equal(t, "/assets/table-felt.png", state.Assets().TableBackgroundURL)

	saved, err := app.AssetEditor.Save(ctx, app.SessionID)
	require.NoError(t, err)
	assert.False(t, saved.Dirty)

	remote := state.Assets()
	assert.Equal(t, "/assets/ocean.png", remote.TableBackgroundURL)
	assert.Equal(t, "/assets/cards/as.png", remote.CardFaces.Get(model.SuitSpades, model.RankAce))
	require.Len(t, remote.SlotSymbols, 5)
	assert.Equal(t, "DIAMOND", remote.SlotSymbols[4].Name)
}

func TestAssetResetRestoresDefaults(t *testing.T) {
	app, state := newConsole(t)
	ctx := context.Background()

	_, err := app.AssetEditor.Load(ctx, app.SessionID)
	require.NoError(t, err)
	require.NoError(t, app.AssetEditor.SetCardBack(ctx, app.SessionID, "/assets/custom.png"))

	_, err = app.AssetEditor.Save(ctx, app.SessionID)
	require.NoError(t, err)
	require.Equal(t, "/assets/custom.png", state.Assets().CardBackURL)

	fresh, err := app.AssetEditor.Reset(ctx, app.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "/assets/card-back.png", fresh.Doc.CardBackURL)
	assert.Equal(t, "/assets/card-back.png", state.Assets().CardBackURL)
}

func TestStatsAgainstStub(t *testing.T) {
	app, _ := newConsole(t)

	summary, err := app.StatsController.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalPlayers)
	require.NotNil(t, summary.Richest)
	assert.Equal(t, "dave", summary.Richest.Name)
}
