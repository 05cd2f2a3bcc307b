package grid

import (
	"sort"
	"strings"

	"github.com/arturyumaev/casinodesk/internal/model"
)

// DefaultPageSize is used when a session has not chosen a page size yet.
const DefaultPageSize = 10

// Page is one rendered window of the grid: the visible rows plus enough
// pagination context to describe where the window sits.
type Page struct {
	Rows      []model.PlayerRecord
	PageIndex int
	PageCount int
	TotalRows int
	PageSize  int
}

// ApplyView projects records through a view spec: filter, then sort, then
// paginate. The input order is the manual order, which shows through
// whenever no sort key is set and breaks ties when one is.
func ApplyView(records []model.PlayerRecord, spec model.ViewSpec) Page {
	rows := filterRecords(records, spec)
	sortRecords(rows, spec)
	return paginate(rows, spec)
}

// filterRecords keeps the rows matching every active filter. Name and
// identity filters are case-insensitive substring matches; the role filter
// is an exact match.
func filterRecords(records []model.PlayerRecord, spec model.ViewSpec) []model.PlayerRecord {
	name := strings.ToLower(strings.TrimSpace(spec.FilterName))
	id := strings.ToLower(strings.TrimSpace(spec.FilterID))

	rows := make([]model.PlayerRecord, 0, len(records))
	for _, r := range records {
		if name != "" && !strings.Contains(strings.ToLower(r.Name), name) {
			continue
		}
		if id != "" && !strings.Contains(strings.ToLower(string(r.ID)), id) {
			continue
		}
		if spec.FilterRole != "" && r.Role != spec.FilterRole {
			continue
		}
		rows = append(rows, r)
	}
	return rows
}

// sortRecords sorts rows in place by the active sort key. The sort is
// stable, so rows comparing equal keep their manual order.
func sortRecords(rows []model.PlayerRecord, spec model.ViewSpec) {
	if spec.SortKey == "" {
		return
	}

	less := func(a, b model.PlayerRecord) bool {
		switch spec.SortKey {
		case model.SortByName:
			return a.Name < b.Name
		case model.SortByID:
			return a.ID < b.ID
		case model.SortByPlayMoney:
			return a.PlayMoney < b.PlayMoney
		case model.SortByRealMoney:
			return a.RealMoney < b.RealMoney
		case model.SortByRole:
			return a.Role < b.Role
		}
		return false
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if spec.SortDesc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

// paginate slices one page out of the filtered rows. An out-of-range page
// index is clamped to the last page rather than rendering empty.
func paginate(rows []model.PlayerRecord, spec model.ViewSpec) Page {
	size := spec.PageSize
	if !model.ValidPageSize(size) {
		size = DefaultPageSize
	}

	total := len(rows)
	pageCount := (total + size - 1) / size
	if pageCount == 0 {
		pageCount = 1
	}

	index := spec.PageIndex
	if index < 0 {
		index = 0
	}
	if index > pageCount-1 {
		index = pageCount - 1
	}

	start := index * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Rows:      rows[start:end],
		PageIndex: index,
		PageCount: pageCount,
		TotalRows: total,
		PageSize:  size,
	}
}
