package guard

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGuard_BlocksReentry(t *testing.T) {
	ctx := context.Background()
	g := NewMemoryGuard()
	key := Key("user-1", "connecting")

	release, err := g.TryAcquire(ctx, key)
	require.NoError(t, err)
	assert.True(t, g.IsHeld(ctx, key))

	_, err = g.TryAcquire(ctx, key)
	assert.ErrorIs(t, err, ErrInProgress)

	// outra operação do mesmo usuário não é bloqueada
	other, err := g.TryAcquire(ctx, Key("user-1", "fetch_put_ad_accounts"))
	require.NoError(t, err)
	other()

	release()
	release()
	assert.False(t, g.IsHeld(ctx, key))

	_, err = g.TryAcquire(ctx, key)
	assert.NoError(t, err)
}

func TestMemoryGuard_Concurrent(t *testing.T) {
	ctx := context.Background()
	g := NewMemoryGuard()

	var acquired int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.TryAcquire(ctx, "k"); err == nil {
				atomic.AddInt32(&acquired, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), acquired)
}
