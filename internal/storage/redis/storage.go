package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Grid session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GridSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey(session.ID), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.GridSession, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.GridSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

// Asset draft operations

func (s *Storage) SaveDraft(ctx context.Context, draft *model.AssetDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, draftKey(draft.SessionID), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetDraft(ctx context.Context, sessionID model.SessionID) (*model.AssetDraft, error) {
	data, err := s.client.Get(ctx, draftKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrDraftNotFound
		}
		return nil, err
	}

	var draft model.AssetDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *Storage) DeleteDraft(ctx context.Context, sessionID model.SessionID) error {
	return s.client.Del(ctx, draftKey(sessionID)).Err()
}

// Notification history operations

func (s *Storage) AppendNotification(ctx context.Context, sessionID model.SessionID, n model.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}

	key := notificationsKey(sessionID)

	// Use pipeline for atomic append + TTL refresh
	pipe := s.client.Pipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, s.cfg.SessionTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) Notifications(ctx context.Context, sessionID model.SessionID) ([]model.Notification, error) {
	values, err := s.client.LRange(ctx, notificationsKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	notifications := make([]model.Notification, 0, len(values))
	for _, val := range values {
		var n model.Notification
		if err := json.Unmarshal([]byte(val), &n); err != nil {
			continue // Skip invalid data
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

func (s *Storage) ClearNotifications(ctx context.Context, sessionID model.SessionID) error {
	return s.client.Del(ctx, notificationsKey(sessionID)).Err()
}
