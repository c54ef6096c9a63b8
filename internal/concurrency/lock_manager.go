package concurrency

import (
	"sync"
)

// LockManager hands out named mutexes. The game service uses one lock
// per player name so two simultaneous actions for the same farm apply
// one after the other instead of racing on the full-state overwrite.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager.
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use.
// Locks are never discarded; the key space is player names, which grows
// only as fast as the save store itself.
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
