package grid

import (
	"sort"

	"github.com/arturyumaev/casinodesk/internal/model"
)

// SelectionState summarizes the selection against a set of visible rows.
// All and Some are mutually exclusive; both false means no visible row is
// selected.
type SelectionState struct {
	All   bool
	Some  bool
	Count int
}

// toggleSelection flips one identity in the selection set.
func toggleSelection(selected map[model.RecordID]bool, id model.RecordID) {
	if selected[id] {
		delete(selected, id)
	} else {
		selected[id] = true
	}
}

// togglePageSelection flips a whole page at once. If every visible row is
// already selected the page is deselected; otherwise every visible row
// becomes selected. Rows on other pages are untouched.
func togglePageSelection(selected map[model.RecordID]bool, visible []model.PlayerRecord) {
	if pageState(selected, visible).All {
		for _, r := range visible {
			delete(selected, r.ID)
		}
		return
	}
	for _, r := range visible {
		selected[r.ID] = true
	}
}

// pageState reports how the selection relates to the visible rows.
func pageState(selected map[model.RecordID]bool, visible []model.PlayerRecord) SelectionState {
	count := 0
	for _, r := range visible {
		if selected[r.ID] {
			count++
		}
	}
	return SelectionState{
		All:   len(visible) > 0 && count == len(visible),
		Some:  count > 0 && count < len(visible),
		Count: count,
	}
}

// pruneSelection drops identities the store no longer contains. Selection
// is keyed by identity, so records that survive a refresh stay selected
// wherever they land.
func pruneSelection(selected map[model.RecordID]bool, store *Store) {
	for id := range selected {
		if !store.Contains(id) {
			delete(selected, id)
		}
	}
}

// selectedIDs returns the selected identities in a deterministic order.
func selectedIDs(selected map[model.RecordID]bool) []model.RecordID {
	ids := make([]model.RecordID, 0, len(selected))
	for id := range selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
