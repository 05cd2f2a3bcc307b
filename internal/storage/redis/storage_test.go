package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/arturyumaev/casinodesk/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Grid session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.GridSession{
		ID: "op-1",
		Records: []model.PlayerRecord{
			{ID: "3", Name: "Carol"},
			{ID: "1", Name: "Alice"},
			{ID: "2", Name: "Bob"},
		},
		Selected: map[model.RecordID]bool{"1": true},
		View: model.ViewSpec{
			SortKey:  model.SortByPlayMoney,
			SortDesc: true,
			PageSize: 20,
		},
		CreatedAt: time.Now().UTC(),
	}

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "op-1")
	s.Require().NoError(err)
	s.Equal(session.Records, retrieved.Records)
	s.True(retrieved.Selected["1"])
	s.Equal(model.SortByPlayMoney, retrieved.View.SortKey)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	session := &model.GridSession{ID: "op-1"}
	_ = s.storage.SaveSession(s.ctx, session)

	err := s.storage.DeleteSession(s.ctx, "op-1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "op-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionExpires() {
	session := &model.GridSession{ID: "op-1"}
	_ = s.storage.SaveSession(s.ctx, session)

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetSession(s.ctx, "op-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

// Asset draft tests

func (s *StorageSuite) TestSaveAndGetDraft() {
	draft := &model.AssetDraft{
		SessionID: "op-1",
		Doc: &model.AssetConfig{
			CardBackURL: "https://cdn.example/back.png",
			SlotSymbols: []model.SlotSymbol{{Name: "CHERRY", Payout: 10, Weight: 5}},
		},
		Elements: model.ElementIDs{Symbols: []string{"sym-a"}},
		Dirty:    true,
	}

	err := s.storage.SaveDraft(s.ctx, draft)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDraft(s.ctx, "op-1")
	s.Require().NoError(err)
	s.Equal("https://cdn.example/back.png", retrieved.Doc.CardBackURL)
	s.Equal([]string{"sym-a"}, retrieved.Elements.Symbols)
	s.True(retrieved.Dirty)
}

func (s *StorageSuite) TestGetDraftNotFound() {
	_, err := s.storage.GetDraft(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrDraftNotFound)
}

func (s *StorageSuite) TestDeleteDraft() {
	draft := &model.AssetDraft{SessionID: "op-1", Doc: &model.AssetConfig{}}
	_ = s.storage.SaveDraft(s.ctx, draft)

	err := s.storage.DeleteDraft(s.ctx, "op-1")
	s.Require().NoError(err)

	_, err = s.storage.GetDraft(s.ctx, "op-1")
	s.ErrorIs(err, model.ErrDraftNotFound)
}

// Notification history tests

func (s *StorageSuite) TestAppendAndListNotifications() {
	n1 := model.Notification{ID: "n-1", Kind: model.NotifyLoading, Message: "Granting reward..."}
	n2 := model.Notification{ID: "n-1", Kind: model.NotifySuccess, Message: "Reward granted"}

	s.Require().NoError(s.storage.AppendNotification(s.ctx, "op-1", n1))
	s.Require().NoError(s.storage.AppendNotification(s.ctx, "op-1", n2))

	history, err := s.storage.Notifications(s.ctx, "op-1")
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal(model.NotifyLoading, history[0].Kind)
	s.Equal(model.NotifySuccess, history[1].Kind)
}

func (s *StorageSuite) TestNotificationsEmptyForUnknownSession() {
	history, err := s.storage.Notifications(s.ctx, "nonexistent")
	s.Require().NoError(err)
	s.Empty(history)
}

func (s *StorageSuite) TestClearNotifications() {
	_ = s.storage.AppendNotification(s.ctx, "op-1", model.Notification{ID: "n-1"})

	err := s.storage.ClearNotifications(s.ctx, "op-1")
	s.Require().NoError(err)

	history, err := s.storage.Notifications(s.ctx, "op-1")
	s.Require().NoError(err)
	s.Empty(history)
}
