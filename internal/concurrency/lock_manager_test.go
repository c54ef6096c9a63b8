package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLockReturnsSameMutexForSameKey(t *testing.T) {
	lm := NewLockManager()

	a := lm.GetLock("Amina")
	b := lm.GetLock("Amina")
	c := lm.GetLock("Baraka")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestLockSerializesCounterUpdates(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu := lm.GetLock("Amina")
			mu.Lock()
			counter++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}
