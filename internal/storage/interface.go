package storage

import (
	"context"

	"github.com/arturyumaev/casinodesk/internal/model"
)

// Storage defines the interface for operator session persistence. It holds
// console-side state only (grid sessions, asset drafts, notification
// history); player records always come fresh from the game service.
type Storage interface {
	// Grid session operations
	SaveSession(ctx context.Context, session *model.GridSession) error
	GetSession(ctx context.Context, id model.SessionID) (*model.GridSession, error)
	DeleteSession(ctx context.Context, id model.SessionID) error

	// Asset draft operations
	SaveDraft(ctx context.Context, draft *model.AssetDraft) error
	GetDraft(ctx context.Context, sessionID model.SessionID) (*model.AssetDraft, error)
	DeleteDraft(ctx context.Context, sessionID model.SessionID) error

	// Notification history operations
	AppendNotification(ctx context.Context, sessionID model.SessionID, n model.Notification) error
	Notifications(ctx context.Context, sessionID model.SessionID) ([]model.Notification, error)
	ClearNotifications(ctx context.Context, sessionID model.SessionID) error
}
