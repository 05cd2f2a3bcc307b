package model

import "errors"

// Common errors used across the application
var (
	// Grid errors
	ErrRecordNotFound  = errors.New("record not found")
	ErrInvalidSortKey  = errors.New("not a sortable column")
	ErrInvalidPageSize = errors.New("page size is not one of the allowed sizes")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Mutation errors
	ErrInvalidRole    = errors.New("role is not assignable")
	ErrInvalidAmount  = errors.New("reward amount must be greater than zero")
	ErrNoTargetRecord = errors.New("no target record selected")
	ErrNotOpen        = errors.New("reward workflow is not open")

	// Asset draft errors
	ErrNoDraft          = errors.New("no asset draft loaded")
	ErrDraftNotFound    = errors.New("asset draft not found")
	ErrUnknownIconKey   = errors.New("unknown icon key")
	ErrInvalidSuit      = errors.New("invalid suit")
	ErrInvalidRank      = errors.New("invalid rank")
	ErrInvalidPrizeTier = errors.New("invalid prize tier")
	ErrElementNotFound  = errors.New("list element not found")
	ErrNegativeValue    = errors.New("value must not be negative")

	// Client errors
	ErrNoBaseURL = errors.New("no API base URL configured")
)
