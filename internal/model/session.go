package model

import "time"

// SessionID identifies one operator's console session.
type SessionID string

// SortKey names a grid column usable as a sort key.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByID        SortKey = "id"
	SortByPlayMoney SortKey = "playMoney"
	SortByRealMoney SortKey = "realMoney"
	SortByRole      SortKey = "role"
)

// ValidSortKey reports whether k names a sortable column.
func ValidSortKey(k SortKey) bool {
	switch k {
	case SortByName, SortByID, SortByPlayMoney, SortByRealMoney, SortByRole:
		return true
	}
	return false
}

// PageSizes is the fixed set of allowed page sizes.
var PageSizes = []int{10, 20, 30, 40, 50}

// ValidPageSize reports whether n is an allowed page size.
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if n == s {
			return true
		}
	}
	return false
}

// ViewSpec describes the projection the operator is looking at: sort,
// filters, and pagination. The zero value means "unsorted, unfiltered,
// first page" with the default page size applied by the view engine.
type ViewSpec struct {
	SortKey  SortKey `json:"sort_key,omitempty"`
	SortDesc bool    `json:"sort_desc,omitempty"`

	// Filters are conjunctive: a row must satisfy every active one.
	FilterName string `json:"filter_name,omitempty"`
	FilterID   string `json:"filter_id,omitempty"`
	FilterRole Role   `json:"filter_role,omitempty"`

	PageIndex int `json:"page_index"`
	PageSize  int `json:"page_size"`
}

// GridSession is the operator's grid state between commands: the last
// fetched snapshot in its manual order, the identity-keyed selection, and
// the current view spec. Views render from the stored snapshot; a refresh
// replaces it wholesale and resets the order to whatever the service
// returned. The session stands in for the browser page lifetime of the
// original console and expires with the storage TTL.
type GridSession struct {
	ID       SessionID         `json:"id"`
	Records  []PlayerRecord    `json:"records"`
	Selected map[RecordID]bool `json:"selected"`
	View     ViewSpec          `json:"view"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NotificationKind is the lifecycle phase a notification reports.
type NotificationKind string

const (
	NotifyLoading NotificationKind = "loading"
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is one user-visible lifecycle message. Each asynchronous
// action publishes exactly one loading notification followed by exactly one
// terminal notification sharing the same ID.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}
