package grid

import (
	"context"
	"errors"
	"log/slog"

	"github.com/arturyumaev/casinodesk/internal/dependencies/clock"
	"github.com/arturyumaev/casinodesk/internal/gameapi"
	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/storage"
)

// Controller orchestrates the record grid for operator sessions. Views
// render from the snapshot the session last fetched; the service is only
// consulted on the first touch of a session, on an explicit Refresh, and
// after successful mutations. Each fetch replaces the snapshot wholesale,
// resetting the manual order and pruning the selection to surviving
// identities.
type Controller struct {
	api     gameapi.API
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a grid controller.
func NewController(api gameapi.API, store storage.Storage, clk clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		api:     api,
		storage: store,
		clock:   clk,
		logger:  logger.With(slog.String("component", "grid")),
	}
}

// GridView is everything a renderer needs for one look at the grid.
type GridView struct {
	Page      Page
	Selection SelectionState
	Selected  map[model.RecordID]bool
	Spec      model.ViewSpec
}

// sessionOrNew loads the session, creating a fresh one the first time an
// operator shows up.
func (c *Controller) sessionOrNew(ctx context.Context, id model.SessionID) (*model.GridSession, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, model.ErrSessionNotFound) {
		return nil, err
	}

	now := c.clock.Now()
	return &model.GridSession{
		ID:        id,
		Selected:  make(map[model.RecordID]bool),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// fetch pulls a fresh player collection into the session. The snapshot is
// replaced wholesale, so the manual order resets to the service's order and
// the selection is pruned to identities that still exist.
func (c *Controller) fetch(ctx context.Context, session *model.GridSession) (*Store, error) {
	records, err := c.api.Users(ctx)
	if err != nil {
		return nil, err
	}

	store := NewStore()
	store.Load(records)

	session.Records = store.Records()
	if session.Selected == nil {
		session.Selected = make(map[model.RecordID]bool)
	}
	pruneSelection(session.Selected, store)

	return store, nil
}

// snapshot returns the session and a store over its last-fetched snapshot.
// A session that has never fetched gets its first snapshot here; otherwise
// no network call is made.
func (c *Controller) snapshot(ctx context.Context, id model.SessionID) (*model.GridSession, *Store, error) {
	session, err := c.sessionOrNew(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if session.Records == nil {
		store, err := c.fetch(ctx, session)
		if err != nil {
			return nil, nil, err
		}
		return session, store, nil
	}

	if session.Selected == nil {
		session.Selected = make(map[model.RecordID]bool)
	}
	store := NewStore()
	store.Load(session.Records)
	return session, store, nil
}

// save persists the session with a fresh update timestamp.
func (c *Controller) save(ctx context.Context, session *model.GridSession) error {
	session.UpdatedAt = c.clock.Now()
	return c.storage.SaveSession(ctx, session)
}

// Refresh discards the session's snapshot and fetches a new one. It is the
// path every successful mutation takes to bring the grid back in line with
// the service, and any manual reordering is lost to the fetch order.
func (c *Controller) Refresh(ctx context.Context, id model.SessionID) (*Store, error) {
	session, err := c.sessionOrNew(ctx, id)
	if err != nil {
		return nil, err
	}
	store, err := c.fetch(ctx, session)
	if err != nil {
		return nil, err
	}
	if err := c.save(ctx, session); err != nil {
		return nil, err
	}
	return store, nil
}

// View renders the session's current projection of its snapshot.
func (c *Controller) View(ctx context.Context, id model.SessionID) (*GridView, error) {
	session, store, err := c.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.save(ctx, session); err != nil {
		return nil, err
	}

	page := ApplyView(store.Records(), session.View)

	selected := make(map[model.RecordID]bool, len(session.Selected))
	for rid := range session.Selected {
		selected[rid] = true
	}

	return &GridView{
		Page:      page,
		Selection: pageState(session.Selected, page.Rows),
		Selected:  selected,
		Spec:      session.View,
	}, nil
}

// SetSort changes the sort column and direction. An empty key clears
// sorting, letting the manual order show through again.
func (c *Controller) SetSort(ctx context.Context, id model.SessionID, key model.SortKey, desc bool) error {
	if key != "" && !model.ValidSortKey(key) {
		return model.ErrInvalidSortKey
	}

	session, err := c.sessionOrNew(ctx, id)
	if err != nil {
		return err
	}
	session.View.SortKey = key
	session.View.SortDesc = desc
	return c.save(ctx, session)
}

// SetFilters replaces the filter set and returns to the first page, since
// the old page index is meaningless against a different row set.
func (c *Controller) SetFilters(ctx context.Context, id model.SessionID, name, recordID string, role model.Role) error {
	session, err := c.sessionOrNew(ctx, id)
	if err != nil {
		return err
	}
	session.View.FilterName = name
	session.View.FilterID = recordID
	session.View.FilterRole = role
	session.View.PageIndex = 0
	return c.save(ctx, session)
}

// SetPage moves to the given page. Out-of-range indexes are clamped when
// the page renders.
func (c *Controller) SetPage(ctx context.Context, id model.SessionID, index int) error {
	if index < 0 {
		index = 0
	}

	session, err := c.sessionOrNew(ctx, id)
	if err != nil {
		return err
	}
	session.View.PageIndex = index
	return c.save(ctx, session)
}

// SetPageSize switches to one of the allowed page sizes and returns to the
// first page.
func (c *Controller) SetPageSize(ctx context.Context, id model.SessionID, size int) error {
	if !model.ValidPageSize(size) {
		return model.ErrInvalidPageSize
	}

	session, err := c.sessionOrNew(ctx, id)
	if err != nil {
		return err
	}
	session.View.PageSize = size
	session.View.PageIndex = 0
	return c.save(ctx, session)
}

// ToggleSelect flips the selection of one record.
func (c *Controller) ToggleSelect(ctx context.Context, id model.SessionID, recordID model.RecordID) error {
	session, store, err := c.snapshot(ctx, id)
	if err != nil {
		return err
	}
	if !store.Contains(recordID) {
		return model.ErrRecordNotFound
	}

	toggleSelection(session.Selected, recordID)
	return c.save(ctx, session)
}

// TogglePage flips the selection of every row on the current page.
func (c *Controller) TogglePage(ctx context.Context, id model.SessionID) error {
	session, store, err := c.snapshot(ctx, id)
	if err != nil {
		return err
	}

	page := ApplyView(store.Records(), session.View)
	togglePageSelection(session.Selected, page.Rows)
	return c.save(ctx, session)
}

// ClearSelection deselects everything.
func (c *Controller) ClearSelection(ctx context.Context, id model.SessionID) error {
	session, err := c.sessionOrNew(ctx, id)
	if err != nil {
		return err
	}
	session.Selected = make(map[model.RecordID]bool)
	return c.save(ctx, session)
}

// Selected returns the selected identities.
func (c *Controller) Selected(ctx context.Context, id model.SessionID) ([]model.RecordID, error) {
	session, _, err := c.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.save(ctx, session); err != nil {
		return nil, err
	}
	return selectedIDs(session.Selected), nil
}

// Reorder moves one record to the position of another in the manual order.
// The move rearranges the stored snapshot, so it shows in every view until
// the next refresh replaces the snapshot.
func (c *Controller) Reorder(ctx context.Context, id model.SessionID, recordID, target model.RecordID) error {
	session, store, err := c.snapshot(ctx, id)
	if err != nil {
		return err
	}

	if err := store.Move(recordID, target); err != nil {
		return err
	}

	session.Records = store.Records()
	return c.save(ctx, session)
}

// EndSession discards the session's grid state.
func (c *Controller) EndSession(ctx context.Context, id model.SessionID) error {
	return c.storage.DeleteSession(ctx, id)
}

// Interface for dependency injection
type ControllerInterface interface {
	Refresh(ctx context.Context, id model.SessionID) (*Store, error)
	View(ctx context.Context, id model.SessionID) (*GridView, error)
	SetSort(ctx context.Context, id model.SessionID, key model.SortKey, desc bool) error
	SetFilters(ctx context.Context, id model.SessionID, name, recordID string, role model.Role) error
	SetPage(ctx context.Context, id model.SessionID, index int) error
	SetPageSize(ctx context.Context, id model.SessionID, size int) error
	ToggleSelect(ctx context.Context, id model.SessionID, recordID model.RecordID) error
	TogglePage(ctx context.Context, id model.SessionID) error
	ClearSelection(ctx context.Context, id model.SessionID) error
	Selected(ctx context.Context, id model.SessionID) ([]model.RecordID, error)
	Reorder(ctx context.Context, id model.SessionID, recordID, target model.RecordID) error
	EndSession(ctx context.Context, id model.SessionID) error
}

var _ ControllerInterface = (*Controller)(nil)
