package grid

import (
	"github.com/arturyumaev/casinodesk/internal/model"
)

// Store holds the operator's working copy of the player collection: the
// records from the most recent fetch, arranged in the manual order the
// operator has built up. Fetches replace the contents wholesale; the store
// never mutates individual records.
type Store struct {
	records []model.PlayerRecord
	index   map[model.RecordID]int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		index: make(map[model.RecordID]int),
	}
}

// Load replaces the store's contents with a snapshot, taking the order the
// snapshot arrives in. Any manual order built on the previous contents does
// not survive a Load; duplicated identities keep their first occurrence.
func (s *Store) Load(records []model.PlayerRecord) {
	arranged := make([]model.PlayerRecord, 0, len(records))
	placed := make(map[model.RecordID]bool, len(records))
	for _, r := range records {
		if placed[r.ID] {
			continue
		}
		arranged = append(arranged, r)
		placed[r.ID] = true
	}

	s.records = arranged
	s.index = make(map[model.RecordID]int, len(arranged))
	for i, r := range arranged {
		s.index[r.ID] = i
	}
}

// Records returns the records in manual order. The slice is a copy; callers
// may sort or truncate it freely.
func (s *Store) Records() []model.PlayerRecord {
	out := make([]model.PlayerRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Order returns the manual order as a list of identities.
func (s *Store) Order() []model.RecordID {
	out := make([]model.RecordID, len(s.records))
	for i, r := range s.records {
		out[i] = r.ID
	}
	return out
}

// Get looks up one record by identity.
func (s *Store) Get(id model.RecordID) (model.PlayerRecord, bool) {
	i, ok := s.index[id]
	if !ok {
		return model.PlayerRecord{}, false
	}
	return s.records[i], true
}

// Contains reports whether the identity is present in the current fetch.
func (s *Store) Contains(id model.RecordID) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of records held.
func (s *Store) Len() int {
	return len(s.records)
}
