package kvstore

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"textmathkb/internal/logging"
)

// AsyncWriter makes Set return immediately and applies writes from one
// background goroutine. Writes to the same key coalesce (last write wins),
// and a pending write is visible to Get before it reaches the inner store.
type AsyncWriter struct {
	inner Store

	mu      sync.Mutex
	pending map[string]pendingWrite
	seq     uint64
	closed  bool

	// writeMu serializes drains so a later snapshot never lands before an
	// earlier one.
	writeMu sync.Mutex

	notify chan struct{}
	stop   chan struct{}
	done   chan struct{}
}

type pendingWrite struct {
	value string
	seq   uint64
}

// NewAsyncWriter starts the background writer for inner.
// Close must be called to stop it.
func NewAsyncWriter(inner Store) *AsyncWriter {
	w := &AsyncWriter{
		inner:   inner,
		pending: make(map[string]pendingWrite),
		notify:  make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *AsyncWriter) run() {
	defer close(w.done)
	for {
		select {
		case <-w.notify:
			_ = w.drain(context.Background())
		case <-w.stop:
			_ = w.drain(context.Background())
			return
		}
	}
}

// Get returns a pending value if one exists, else reads the inner store.
func (w *AsyncWriter) Get(ctx context.Context, key string) (string, bool, error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return "", false, ErrClosed
	}
	if p, ok := w.pending[key]; ok {
		w.mu.Unlock()
		return p.value, true, nil
	}
	w.mu.Unlock()
	return w.inner.Get(ctx, key)
}

// Set queues the write and returns without waiting for it.
func (w *AsyncWriter) Set(_ context.Context, key, value string) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	w.seq++
	w.pending[key] = pendingWrite{value: value, seq: w.seq}
	w.mu.Unlock()

	select {
	case w.notify <- struct{}{}:
	default: // a drain is already scheduled
	}
	return nil
}

// Flush writes everything pending and returns the first error.
func (w *AsyncWriter) Flush(ctx context.Context) error {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return ErrClosed
	}
	return w.drain(ctx)
}

// Pending returns the number of writes not yet applied.
func (w *AsyncWriter) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

func (w *AsyncWriter) drain(ctx context.Context) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	w.mu.Lock()
	snapshot := make(map[string]pendingWrite, len(w.pending))
	for k, p := range w.pending {
		snapshot[k] = p
	}
	w.mu.Unlock()

	var firstErr error
	for key, p := range snapshot {
		if err := w.inner.Set(ctx, key, p.value); err != nil {
			// Stays pending; retried on the next drain
			logging.Get(logging.CategoryStore).Warn("async write failed",
				zap.String("key", key), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		w.mu.Lock()
		if cur, ok := w.pending[key]; ok && cur.seq == p.seq {
			delete(w.pending, key)
		}
		w.mu.Unlock()
	}
	return firstErr
}

// Close drains pending writes, stops the writer and closes the inner store.
// Writes that still fail are dropped and reported.
func (w *AsyncWriter) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.stop)
	<-w.done

	var lost error
	if n := w.Pending(); n > 0 {
		logging.Get(logging.CategoryStore).Warn("dropping unwritten settings", zap.Int("count", n))
		lost = errors.New("kvstore: unwritten settings dropped")
	}
	return errors.Join(lost, w.inner.Close())
}
