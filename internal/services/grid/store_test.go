package grid

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arturyumaev/casinodesk/internal/model"
)

type StoreSuite struct {
	suite.Suite
	store *Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.store = NewStore()
}

func records(ids ...model.RecordID) []model.PlayerRecord {
	out := make([]model.PlayerRecord, len(ids))
	for i, id := range ids {
		out[i] = model.PlayerRecord{ID: id, Name: "player-" + string(id)}
	}
	return out
}

func (s *StoreSuite) TestLoadKeepsSnapshotOrder() {
	s.store.Load(records("3", "1", "2"))

	s.Equal([]model.RecordID{"3", "1", "2"}, s.store.Order())
}

func (s *StoreSuite) TestLoadResetsManualOrder() {
	s.store.Load(records("1", "2", "3"))
	s.Require().NoError(s.store.Move("3", "1"))
	s.Require().Equal([]model.RecordID{"3", "1", "2"}, s.store.Order())

	s.store.Load(records("1", "2", "3"))

	s.Equal([]model.RecordID{"1", "2", "3"}, s.store.Order())
}

func (s *StoreSuite) TestLoadDeduplicatesIdentities() {
	s.store.Load(records("1", "2", "1", "3"))

	s.Equal([]model.RecordID{"1", "2", "3"}, s.store.Order())
}

func (s *StoreSuite) TestLoadReplacesWholesale() {
	s.store.Load(records("1", "2"))
	s.store.Load(records("9"))

	s.Equal(1, s.store.Len())
	s.True(s.store.Contains("9"))
	s.False(s.store.Contains("1"))
}

func (s *StoreSuite) TestRecordsReturnsCopy() {
	s.store.Load(records("1", "2"))

	snapshot := s.store.Records()
	snapshot[0].Name = "mutated"

	r, ok := s.store.Get("1")
	s.Require().True(ok)
	s.Equal("player-1", r.Name)
}

func (s *StoreSuite) TestMoveForward() {
	s.store.Load(records("1", "2", "3", "4"))

	s.Require().NoError(s.store.Move("1", "3"))
	s.Equal([]model.RecordID{"2", "3", "1", "4"}, s.store.Order())
}

func (s *StoreSuite) TestMoveBackward() {
	s.store.Load(records("1", "2", "3", "4"))

	s.Require().NoError(s.store.Move("4", "2"))
	s.Equal([]model.RecordID{"1", "4", "2", "3"}, s.store.Order())
}

func (s *StoreSuite) TestMoveOntoItselfIsNoOp() {
	s.store.Load(records("1", "2", "3"))

	s.Require().NoError(s.store.Move("2", "2"))
	s.Equal([]model.RecordID{"1", "2", "3"}, s.store.Order())
}

func (s *StoreSuite) TestMoveUnknownRecord() {
	s.store.Load(records("1", "2"))

	s.ErrorIs(s.store.Move("9", "1"), model.ErrRecordNotFound)
	s.ErrorIs(s.store.Move("1", "9"), model.ErrRecordNotFound)
}

func (s *StoreSuite) TestMovePreservesMultiset() {
	s.store.Load(records("1", "2", "3", "4", "5"))

	s.Require().NoError(s.store.Move("5", "1"))
	s.Require().NoError(s.store.Move("3", "4"))

	s.Equal(5, s.store.Len())
	for _, id := range []model.RecordID{"1", "2", "3", "4", "5"} {
		s.True(s.store.Contains(id), "record %s should survive reordering", id)
	}
}
