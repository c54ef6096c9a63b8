// Package memory implements the save repository as a process-local map.
// All game state is volatile: a restart wipes every farm. That is an
// accepted property of the current deployment, not an oversight.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mr-omar-21/chawa-farms/internal/domain"
	"github.com/mr-omar-21/chawa-farms/internal/repository"
)

// SaveStore is an in-memory implementation of repository.Save keyed by
// player name. Reads and writes exchange deep copies so the store keeps
// exclusive ownership of the stored records.
type SaveStore struct {
	mu    sync.RWMutex
	saves map[string]domain.PlayerState
}

// NewSaveStore creates an empty store.
func NewSaveStore() *SaveStore {
	return &SaveStore{
		saves: make(map[string]domain.PlayerState),
	}
}

var _ repository.Save = (*SaveStore)(nil)

// GetState returns a copy of the saved state for a player.
func (s *SaveStore) GetState(ctx context.Context, playerName string) (*domain.PlayerState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.saves[playerName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerName)
	}
	clone := state.Clone()
	return &clone, nil
}

// PutState creates or overwrites the save for a player.
func (s *SaveStore) PutState(ctx context.Context, playerName string, state domain.PlayerState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saves[playerName] = state.Clone()
	return nil
}

// Exists reports whether a save exists for the player name.
func (s *SaveStore) Exists(ctx context.Context, playerName string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.saves[playerName]
	return ok, nil
}

// Ping always succeeds; the map lives in process memory.
func (s *SaveStore) Ping(ctx context.Context) error {
	return nil
}

// Len returns the number of saves, used by readiness logging and tests.
func (s *SaveStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.saves)
}
