package kvstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// gatedStore blocks every Set until the gate is opened.
type gatedStore struct {
	*MemoryStore
	gate    chan struct{}
	mu      sync.Mutex
	written []string
}

func newGatedStore() *gatedStore {
	return &gatedStore{MemoryStore: NewMemoryStore(), gate: make(chan struct{})}
}

func (g *gatedStore) Set(ctx context.Context, key, value string) error {
	<-g.gate
	g.mu.Lock()
	g.written = append(g.written, value)
	g.mu.Unlock()
	return g.MemoryStore.Set(ctx, key, value)
}

func (g *gatedStore) open() { close(g.gate) }

// failingStore rejects every write.
type failingStore struct {
	*MemoryStore
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

func TestAsyncWriter_SetDoesNotWait(t *testing.T) {
	defer goleak.VerifyNone(t)

	inner := newGatedStore()
	w := NewAsyncWriter(inner)

	// The inner store is blocked; Set must still return
	require.NoError(t, w.Set(context.Background(), "k", "v1"))

	v, ok, err := w.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", v, "pending write visible to later Get")

	inner.open()
	require.NoError(t, w.Close())
}

func TestAsyncWriter_FlushPersists(t *testing.T) {
	defer goleak.VerifyNone(t)

	inner := NewMemoryStore()
	w := NewAsyncWriter(inner)
	ctx := context.Background()

	require.NoError(t, w.Set(ctx, "a", "1"))
	require.NoError(t, w.Set(ctx, "a", "2"))
	require.NoError(t, w.Set(ctx, "b", "3"))
	require.NoError(t, w.Flush(ctx))
	assert.Equal(t, 0, w.Pending())

	v, ok, err := inner.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	require.NoError(t, w.Close())
}

func TestAsyncWriter_CloseDrains(t *testing.T) {
	defer goleak.VerifyNone(t)

	inner := newGatedStore()
	w := NewAsyncWriter(inner)
	ctx := context.Background()

	require.NoError(t, w.Set(ctx, "k", "first"))
	require.NoError(t, w.Set(ctx, "k", "last"))
	inner.open()
	require.NoError(t, w.Close())

	inner.mu.Lock()
	written := append([]string(nil), inner.written...)
	inner.mu.Unlock()
	require.NotEmpty(t, written)
	assert.Equal(t, "last", written[len(written)-1], "last write wins")

	assert.ErrorIs(t, w.Set(ctx, "k", "late"), ErrClosed)
	_, _, err := w.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.NoError(t, w.Close(), "second Close is a no-op")
}

func TestAsyncWriter_FlushAfterClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	inner := newGatedStore()
	w := NewAsyncWriter(inner)
	inner.open()
	require.NoError(t, w.Close())

	assert.ErrorIs(t, w.Flush(context.Background()), ErrClosed)

	inner.mu.Lock()
	defer inner.mu.Unlock()
	assert.Empty(t, inner.written, "closed writer touches no store")
}

func TestAsyncWriter_FailedWritesStayVisible(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := NewAsyncWriter(failingStore{NewMemoryStore()})
	ctx := context.Background()

	require.NoError(t, w.Set(ctx, "k", "v"), "Set never reports store failures")
	assert.Error(t, w.Flush(ctx))

	v, ok, err := w.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	assert.Error(t, w.Close(), "Close reports dropped writes")
}
