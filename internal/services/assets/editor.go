package assets

import (
	"context"
	"errors"
	"log/slog"

	"github.com/arturyumaev/casinodesk/internal/dependencies/clock"
	"github.com/arturyumaev/casinodesk/internal/dependencies/random"
	"github.com/arturyumaev/casinodesk/internal/gameapi"
	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/notify"
	"github.com/arturyumaev/casinodesk/internal/storage"
)

const (
	elementIDLength   = 6
	notificationIDLen = 8
	idAlphabet        = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Editor manages the session's asset configuration draft. The server's
// document is the only durable copy; the editor holds one draft of it,
// applies edits to clones of the document, and makes changes durable only
// through an explicit save. There is no versioning: the last save wins.
type Editor struct {
	api      gameapi.API
	storage  storage.Storage
	notifier *notify.Service
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
}

// NewEditor creates a draft editor.
func NewEditor(
	api gameapi.API,
	store storage.Storage,
	notifier *notify.Service,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Editor {
	return &Editor{
		api:      api,
		storage:  store,
		notifier: notifier,
		clock:    clk,
		random:   rnd,
		logger:   logger.With(slog.String("component", "assets")),
	}
}

// Load fetches the server's document and starts a fresh draft from it,
// discarding any draft the session already had.
func (e *Editor) Load(ctx context.Context, sessionID model.SessionID) (*model.AssetDraft, error) {
	doc, err := e.api.FetchAssets(ctx)
	if err != nil {
		return nil, err
	}
	return e.startDraft(ctx, sessionID, doc)
}

// Draft returns the session's current draft without touching the server.
func (e *Editor) Draft(ctx context.Context, sessionID model.SessionID) (*model.AssetDraft, error) {
	draft, err := e.storage.GetDraft(ctx, sessionID)
	if errors.Is(err, model.ErrDraftNotFound) {
		return nil, model.ErrNoDraft
	}
	return draft, err
}

// Save submits the whole draft document. On success the draft restarts
// from the server's normalized copy with the dirty flag cleared; on
// failure the draft keeps its edits so nothing is lost.
func (e *Editor) Save(ctx context.Context, sessionID model.SessionID) (*model.AssetDraft, error) {
	draft, err := e.Draft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	id := "assets-" + e.random.String(notificationIDLen, idAlphabet)
	e.notifier.Publish(ctx, model.Notification{
		ID:      id,
		Kind:    model.NotifyLoading,
		Message: "Saving configuration...",
	})

	saved, err := e.api.SaveAssets(ctx, draft.Doc)
	if err != nil {
		e.notifier.Publish(ctx, model.Notification{
			ID:      id,
			Kind:    model.NotifyError,
			Message: errorMessage(err, "Failed to save configuration"),
		})
		return nil, err
	}

	fresh, err := e.startDraft(ctx, sessionID, saved)
	if err != nil {
		return nil, err
	}

	e.notifier.Publish(ctx, model.Notification{
		ID:      id,
		Kind:    model.NotifySuccess,
		Message: "Configuration saved",
	})
	return fresh, nil
}

// Reset asks the server for its default document and restarts the draft
// from it. Unsaved edits are gone once the server answers.
func (e *Editor) Reset(ctx context.Context, sessionID model.SessionID) (*model.AssetDraft, error) {
	id := "assets-" + e.random.String(notificationIDLen, idAlphabet)
	e.notifier.Publish(ctx, model.Notification{
		ID:      id,
		Kind:    model.NotifyLoading,
		Message: "Resetting configuration...",
	})

	defaults, err := e.api.ResetAssets(ctx)
	if err != nil {
		e.notifier.Publish(ctx, model.Notification{
			ID:      id,
			Kind:    model.NotifyError,
			Message: errorMessage(err, "Failed to reset configuration"),
		})
		return nil, err
	}

	fresh, err := e.startDraft(ctx, sessionID, defaults)
	if err != nil {
		return nil, err
	}

	e.notifier.Publish(ctx, model.Notification{
		ID:      id,
		Kind:    model.NotifySuccess,
		Message: "Configuration reset to defaults",
	})
	return fresh, nil
}

// Discard drops the session's draft without talking to the server.
func (e *Editor) Discard(ctx context.Context, sessionID model.SessionID) error {
	return e.storage.DeleteDraft(ctx, sessionID)
}

// startDraft builds and persists a clean draft around a document, minting
// synthetic identities for every ordered list element.
func (e *Editor) startDraft(ctx context.Context, sessionID model.SessionID, doc *model.AssetConfig) (*model.AssetDraft, error) {
	now := e.clock.Now()
	draft := &model.AssetDraft{
		SessionID: sessionID,
		Doc:       doc,
		Elements: model.ElementIDs{
			Symbols:    e.mintIDs(len(doc.SlotSymbols)),
			EasyPrizes: e.mintIDs(len(doc.LotteryPrizesPlayMoney)),
			HardPrizes: e.mintIDs(len(doc.LotteryPrizesRealMoney)),
		},
		Dirty:     false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := e.storage.SaveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (e *Editor) mintIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = e.mintID()
	}
	return ids
}

func (e *Editor) mintID() string {
	return "el-" + e.random.String(elementIDLength, idAlphabet)
}

func errorMessage(err error, fallback string) string {
	var apiErr *gameapi.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
