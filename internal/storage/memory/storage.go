package memory

import (
	"context"
	"sync"

	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions      map[model.SessionID]*model.GridSession
	drafts        map[model.SessionID]*model.AssetDraft
	notifications map[model.SessionID][]model.Notification
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions:      make(map[model.SessionID]*model.GridSession),
		drafts:        make(map[model.SessionID]*model.AssetDraft),
		notifications: make(map[model.SessionID][]model.Notification),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// The redis backend round-trips everything through JSON, so callers never
// share memory with it. Copying on save and get keeps this backend equally
// isolated from later mutation of the caller's value.

func copySession(session *model.GridSession) *model.GridSession {
	out := *session
	if session.Records != nil {
		out.Records = make([]model.PlayerRecord, len(session.Records))
		copy(out.Records, session.Records)
	}
	if session.Selected != nil {
		out.Selected = make(map[model.RecordID]bool, len(session.Selected))
		for id, v := range session.Selected {
			out.Selected[id] = v
		}
	}
	return &out
}

func copyDraft(draft *model.AssetDraft) *model.AssetDraft {
	out := *draft
	if draft.Doc != nil {
		out.Doc = draft.Doc.Clone()
	}
	out.Elements = model.ElementIDs{
		Symbols:    append([]string(nil), draft.Elements.Symbols...),
		EasyPrizes: append([]string(nil), draft.Elements.EasyPrizes...),
		HardPrizes: append([]string(nil), draft.Elements.HardPrizes...),
	}
	return &out
}

// Grid session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GridSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = copySession(session)
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.GridSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return copySession(session), nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Asset draft operations

func (s *Storage) SaveDraft(ctx context.Context, draft *model.AssetDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.SessionID] = copyDraft(draft)
	return nil
}

func (s *Storage) GetDraft(ctx context.Context, sessionID model.SessionID) (*model.AssetDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[sessionID]
	if !ok {
		return nil, model.ErrDraftNotFound
	}
	return copyDraft(draft), nil
}

func (s *Storage) DeleteDraft(ctx context.Context, sessionID model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
	return nil
}

// Notification history operations

func (s *Storage) AppendNotification(ctx context.Context, sessionID model.SessionID, n model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications[sessionID] = append(s.notifications[sessionID], n)
	return nil
}

func (s *Storage) Notifications(ctx context.Context, sessionID model.SessionID) ([]model.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := s.notifications[sessionID]
	result := make([]model.Notification, len(history))
	copy(result, history)
	return result, nil
}

func (s *Storage) ClearNotifications(ctx context.Context, sessionID model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notifications, sessionID)
	return nil
}
