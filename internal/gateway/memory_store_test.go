package gateway

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"receipt-processor/internal/domain"
)

func TestMemoryStore_PutGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.Put(ctx, "abc", 28))

	points, err := store.Get(ctx, "abc")
	assert.NoError(t, err)
	assert.Equal(t, int64(28), points)
}

func TestMemoryStore_GetUnknownID(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "never-written")
	assert.ErrorIs(t, err, domain.ErrReceiptNotFound)
}

func TestMemoryStore_PutIsWriteOnce(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.Put(ctx, "abc", 28))
	assert.Error(t, store.Put(ctx, "abc", 109))

	points, err := store.Get(ctx, "abc")
	assert.NoError(t, err)
	assert.Equal(t, int64(28), points, "the original binding must survive")
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("id-%d", n)
			assert.NoError(t, store.Put(ctx, id, int64(n)))

			points, err := store.Get(ctx, id)
			assert.NoError(t, err)
			assert.Equal(t, int64(n), points)
		}(i)
	}
	wg.Wait()
}
