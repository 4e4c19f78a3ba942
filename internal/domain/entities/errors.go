package entities

import "errors"

// Domain errors
var (
	ErrEntryNotFound   = errors.New("journal entry not found")
	ErrInsightNotFound = errors.New("ai insight not found")
)
