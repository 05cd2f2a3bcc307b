package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/arturyumaev/casinodesk/internal/dependencies/clock"
	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/storage"
)

// subscriberBuffer is the per-subscriber channel capacity. A subscriber
// that falls this far behind starts dropping messages rather than
// blocking publishers.
const subscriberBuffer = 16

// Service is the notification channel for one operator session. Pipelines
// and the draft editor publish lifecycle notifications into it; interested
// parties (the CLI, tests) subscribe. Every published notification is also
// appended to the session's persistent history.
type Service struct {
	mu          sync.RWMutex
	subscribers map[int]chan model.Notification
	nextSub     int

	sessionID model.SessionID
	storage   storage.Storage
	clock     clock.Clock
	logger    *slog.Logger
}

// New creates a notification service bound to one session.
func New(sessionID model.SessionID, store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		subscribers: make(map[int]chan model.Notification),
		sessionID:   sessionID,
		storage:     store,
		clock:       clk,
		logger:      logger.With(slog.String("component", "notify")),
	}
}

// Subscribe registers a listener. The returned cancel function removes the
// subscription and closes the channel.
func (s *Service) Subscribe() (<-chan model.Notification, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++

	ch := make(chan model.Notification, subscriberBuffer)
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if existing, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(existing)
		}
	}

	return ch, cancel
}

// Publish stamps, persists, and fans out one notification. History write
// failures are logged but do not stop delivery; a notification the
// operator sees now beats one archived for later.
func (s *Service) Publish(ctx context.Context, n model.Notification) {
	n.CreatedAt = s.clock.Now()

	if err := s.storage.AppendNotification(ctx, s.sessionID, n); err != nil {
		s.logger.Warn("failed to persist notification",
			slog.String("notification_id", n.ID),
			slog.String("error", err.Error()),
		)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for id, ch := range s.subscribers {
		select {
		case ch <- n:
		default:
			s.logger.Warn("notification dropped - subscriber buffer full",
				slog.Int("subscriber", id),
				slog.String("notification_id", n.ID),
			)
		}
	}
}

// History returns the session's notification history in publish order.
func (s *Service) History(ctx context.Context) ([]model.Notification, error) {
	return s.storage.Notifications(ctx, s.sessionID)
}

// Clear discards the session's notification history.
func (s *Service) Clear(ctx context.Context) error {
	return s.storage.ClearNotifications(ctx, s.sessionID)
}

// SubscriberCount returns the number of active subscriptions.
func (s *Service) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}
