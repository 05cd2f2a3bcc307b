package grid

import (
	"github.com/arturyumaev/casinodesk/internal/model"
)

// Move shifts the record with the given identity to the position currently
// occupied by the target record, sliding everything between by one place.
// Moving a record onto itself is a no-op; an absent identity on either side
// is ErrRecordNotFound.
//
// The move always applies to the manual order. While a sort is active the
// visible grid keeps its sorted arrangement, so the effect of a move only
// becomes apparent once sorting is cleared.
func (s *Store) Move(id, target model.RecordID) error {
	from, ok := s.index[id]
	if !ok {
		return model.ErrRecordNotFound
	}
	to, ok := s.index[target]
	if !ok {
		return model.ErrRecordNotFound
	}
	if from == to {
		return nil
	}

	moved := s.records[from]
	if from < to {
		copy(s.records[from:to], s.records[from+1:to+1])
	} else {
		copy(s.records[to+1:from+1], s.records[to:from])
	}
	s.records[to] = moved

	for i, r := range s.records {
		s.index[r.ID] = i
	}
	return nil
}
