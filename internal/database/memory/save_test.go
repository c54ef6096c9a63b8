package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr-omar-21/chawa-farms/internal/domain"
)

func testState(name string) domain.PlayerState {
	return domain.PlayerState{
		PlayerName: name,
		Region:     "Morogoro",
		Balance:    50000,
		CurrentDay: 1,
		Fields: []domain.Field{
			{ID: 1, Status: domain.FieldStatusFallow, WaterLevel: 0.5, Health: 100},
		},
		Inventory:    map[string]int{domain.ItemMaizeSeed: 10},
		MarketPrices: map[string]int{domain.ItemHarvestedMaize: 600},
	}
}

func TestGetStateUnknownPlayer(t *testing.T) {
	store := NewSaveStore()

	_, err := store.GetState(context.Background(), "nobody")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPlayerNotFound))
}

func TestPutThenGetRoundTrip(t *testing.T) {
	store := NewSaveStore()
	ctx := context.Background()

	require.NoError(t, store.PutState(ctx, "Amina", testState("Amina")))

	got, err := store.GetState(ctx, "Amina")
	require.NoError(t, err)
	assert.Equal(t, "Amina", got.PlayerName)
	assert.Equal(t, 50000, got.Balance)

	exists, err := store.Exists(ctx, "Amina")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 1, store.Len())
}

func TestGetStateReturnsIsolatedCopy(t *testing.T) {
	store := NewSaveStore()
	ctx := context.Background()
	require.NoError(t, store.PutState(ctx, "Amina", testState("Amina")))

	first, err := store.GetState(ctx, "Amina")
	require.NoError(t, err)
	first.Balance = 0
	first.Fields[0].Status = domain.FieldStatusGrowing
	first.Inventory[domain.ItemMaizeSeed] = 0

	second, err := store.GetState(ctx, "Amina")
	require.NoError(t, err)
	assert.Equal(t, 50000, second.Balance)
	assert.Equal(t, domain.FieldStatusFallow, second.Fields[0].Status)
	assert.Equal(t, 10, second.Inventory[domain.ItemMaizeSeed])
}

func TestPutStateOverwrites(t *testing.T) {
	store := NewSaveStore()
	ctx := context.Background()
	require.NoError(t, store.PutState(ctx, "Amina", testState("Amina")))

	updated := testState("Amina")
	updated.CurrentDay = 6
	require.NoError(t, store.PutState(ctx, "Amina", updated))

	got, err := store.GetState(ctx, "Amina")
	require.NoError(t, err)
	assert.Equal(t, 6, got.CurrentDay)
	assert.Equal(t, 1, store.Len())
}

func TestConcurrentAccessDoesNotRace(t *testing.T) {
	store := NewSaveStore()
	ctx := context.Background()
	require.NoError(t, store.PutState(ctx, "Amina", testState("Amina")))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = store.GetState(ctx, "Amina")
		}()
		go func() {
			defer wg.Done()
			_ = store.PutState(ctx, "Amina", testState("Amina"))
		}()
	}
	wg.Wait()

	exists, err := store.Exists(ctx, "Amina")
	require.NoError(t, err)
	assert.True(t, exists)
}
