package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arturyumaev/casinodesk/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.GridSession{
		ID: "op-1",
		Records: []model.PlayerRecord{
			{ID: "1", Name: "Alice"},
			{ID: "2", Name: "Bob"},
		},
	}

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "op-1")
	s.Require().NoError(err)
	s.Equal(session.Records, retrieved.Records)
}

func (s *StorageSuite) TestSessionIsCopied() {
	session := &model.GridSession{
		ID:       "op-1",
		Records:  []model.PlayerRecord{{ID: "1", Name: "Alice"}},
		Selected: map[model.RecordID]bool{"1": true},
	}
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	retrieved, err := s.storage.GetSession(s.ctx, "op-1")
	s.Require().NoError(err)
	retrieved.Records[0].Name = "mutated"
	retrieved.Selected["2"] = true

	fresh, err := s.storage.GetSession(s.ctx, "op-1")
	s.Require().NoError(err)
	s.Equal("Alice", fresh.Records[0].Name)
	s.Len(fresh.Selected, 1)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, &model.GridSession{ID: "op-1"})

	err := s.storage.DeleteSession(s.ctx, "op-1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "op-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDraftRoundTrip() {
	draft := &model.AssetDraft{
		SessionID: "op-1",
		Doc:       &model.AssetConfig{TableBackgroundURL: "https://cdn.example/felt.png"},
	}

	s.Require().NoError(s.storage.SaveDraft(s.ctx, draft))

	retrieved, err := s.storage.GetDraft(s.ctx, "op-1")
	s.Require().NoError(err)
	s.Equal("https://cdn.example/felt.png", retrieved.Doc.TableBackgroundURL)

	s.Require().NoError(s.storage.DeleteDraft(s.ctx, "op-1"))
	_, err = s.storage.GetDraft(s.ctx, "op-1")
	s.ErrorIs(err, model.ErrDraftNotFound)
}

func (s *StorageSuite) TestDraftIsCopied() {
	draft := &model.AssetDraft{
		SessionID: "op-1",
		Doc:       &model.AssetConfig{TableBackgroundURL: "https://cdn.example/felt.png"},
	}
	s.Require().NoError(s.storage.SaveDraft(s.ctx, draft))

	retrieved, err := s.storage.GetDraft(s.ctx, "op-1")
	s.Require().NoError(err)
	retrieved.Doc.TableBackgroundURL = "mutated"

	fresh, err := s.storage.GetDraft(s.ctx, "op-1")
	s.Require().NoError(err)
	s.Equal("https://cdn.example/felt.png", fresh.Doc.TableBackgroundURL)
}

func (s *StorageSuite) TestNotificationHistory() {
	_ = s.storage.AppendNotification(s.ctx, "op-1", model.Notification{ID: "n-1", Kind: model.NotifyLoading})
	_ = s.storage.AppendNotification(s.ctx, "op-1", model.Notification{ID: "n-1", Kind: model.NotifyError})

	history, err := s.storage.Notifications(s.ctx, "op-1")
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal(model.NotifyError, history[1].Kind)

	s.Require().NoError(s.storage.ClearNotifications(s.ctx, "op-1"))
	history, _ = s.storage.Notifications(s.ctx, "op-1")
	s.Empty(history)
}

func (s *StorageSuite) TestHistoryIsCopied() {
	_ = s.storage.AppendNotification(s.ctx, "op-1", model.Notification{ID: "n-1"})

	history, _ := s.storage.Notifications(s.ctx, "op-1")
	history[0].ID = "mutated"

	fresh, _ := s.storage.Notifications(s.ctx, "op-1")
	s.Equal("n-1", fresh[0].ID)
}
