package repository

import (
	"context"

	"github.com/mr-omar-21/chawa-farms/internal/domain"
)

// Save defines the interface for player save persistence. The store
// owns the canonical state: callers get a copy, mutate it, and put the
// whole record back. Saves are never deleted.
type Save interface {
	// GetState returns the saved state for a player, or
	// domain.ErrPlayerNotFound if the player has never logged in.
	GetState(ctx context.Context, playerName string) (*domain.PlayerState, error)

	// PutState creates or overwrites the save for a player.
	PutState(ctx context.Context, playerName string, state domain.PlayerState) error

	// Exists reports whether a save exists without loading it.
	Exists(ctx context.Context, playerName string) (bool, error)

	// Ping reports whether the store is reachable, for readiness checks.
	Ping(ctx context.Context) error
}
