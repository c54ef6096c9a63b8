package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgPlayerNotFound     = "player not found"
	ErrMsgPlayerNameRequired = "player name is required"
	ErrMsgInvalidRegion      = "invalid region"
	ErrMsgUnknownCrop        = "unknown crop"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	ErrPlayerNameRequired = errors.New(ErrMsgPlayerNameRequired)

	// ErrInvalidRegion is returned when a new player names a region that
	// is not in the region catalog.
	ErrInvalidRegion = errors.New(ErrMsgInvalidRegion)

	// ErrUnknownCrop signals a planted crop that is missing from the crop
	// catalog. That is an invariant violation: plant only accepts known
	// crops, so a save should never reach this state.
	ErrUnknownCrop = errors.New(ErrMsgUnknownCrop)
)
