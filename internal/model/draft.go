package model

import "time"

// ElementIDs carries the synthetic identities assigned to ordered list
// elements when a draft is loaded. They keep edits addressed at a stable
// element even after an append or a remove compacts positions. Each slice
// is parallel to the corresponding list in the document.
type ElementIDs struct {
	Symbols    []string `json:"symbols"`
	EasyPrizes []string `json:"easy_prizes"`
	HardPrizes []string `json:"hard_prizes"`
}

// AssetDraft is the in-memory, not-yet-persisted copy of the asset
// configuration document, plus the bookkeeping the editor needs. Only a
// successful save makes its contents durable on the server.
type AssetDraft struct {
	SessionID SessionID    `json:"session_id"`
	Doc       *AssetConfig `json:"doc"`
	Elements  ElementIDs   `json:"elements"`

	// Dirty is set by any edit and cleared by save and reset.
	Dirty bool `json:"dirty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
