package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgMethodNotAllowed = "Method not allowed"
	ErrMsgInvalidRequest   = "Invalid request body"

	// Player endpoint error messages
	ErrMsgPlayerNameRequired = "Player name is required."
	ErrMsgInvalidRegion      = "Invalid region selected."
	ErrMsgPlayerNotFound     = "Player not found."
	ErrMsgLoginFailed        = "Failed to load player"

	// Action endpoint error messages
	ErrMsgActionFailed = "Failed to perform action"
)

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)
