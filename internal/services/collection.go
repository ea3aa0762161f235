package services

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/liamwears/drcinema/internal/database"
	"github.com/liamwears/drcinema/internal/metrics"
)

// Storage keys of the persisted collections, before the backend prefix
const (
	FavouritesKey = "favourites"
	ReviewsKey    = "reviews"
)

const storageTimeout = 5 * time.Second

// readCollection reads a JSON array from kv. A missing key, a read failure
// or a malformed value all yield an empty collection; failures are logged.
func readCollection[T any](ctx context.Context, kv database.KVStore, key string, logger *zap.Logger) []T {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		logger.Warn("failed to read stored collection", zap.String("key", key), zap.Error(err))
		return []T{}
	}
	if !ok || raw == "" {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warn("ignoring malformed stored collection", zap.String("key", key), zap.Error(err))
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// writeCollection stores the whole collection under key. Failures are
// logged and counted, never returned.
func writeCollection[T any](kv database.KVStore, key string, items []T, logger *zap.Logger) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		logger.Error("failed to encode collection", zap.String("key", key), zap.Error(err))
		metrics.StorageWriteFailures.WithLabelValues(key).Inc()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	if err := kv.Set(ctx, key, string(data)); err != nil {
		logger.Error("failed to persist collection", zap.String("key", key), zap.Error(err))
		metrics.StorageWriteFailures.WithLabelValues(key).Inc()
	}
}

// collectionWriter persists collection snapshots on its own goroutine so a
// slow store never holds up a dispatch. Only the newest pending snapshot is
// written; each one is the whole collection, so skipped ones are superseded.
type collectionWriter[T any] struct {
	kv     database.KVStore
	key    string
	logger *zap.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	next    []T
	pending bool
	writing bool
	closed  bool
}

func newCollectionWriter[T any](kv database.KVStore, key string, logger *zap.Logger) *collectionWriter[T] {
	w := &collectionWriter[T]{kv: kv, key: key, logger: logger}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

// Enqueue schedules items to be written
func (w *collectionWriter[T]) Enqueue(items []T) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		w.logger.Warn("dropping write after close", zap.String("key", w.key))
		return
	}
	w.next = items
	w.pending = true
	w.cond.Broadcast()
}

func (w *collectionWriter[T]) run() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for {
		for !w.pending && !w.closed {
			w.cond.Wait()
		}
		if !w.pending {
			return
		}

		items := w.next
		w.next = nil
		w.pending = false
		w.writing = true
		w.mu.Unlock()

		writeCollection(w.kv, w.key, items, w.logger)

		w.mu.Lock()
		w.writing = false
		w.cond.Broadcast()
	}
}

// Flush blocks until every enqueued snapshot has been written
func (w *collectionWriter[T]) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for w.pending || w.writing {
		w.cond.Wait()
	}
}

// Close writes whatever is pending and stops the writer
func (w *collectionWriter[T]) Close() {
	w.mu.Lock()
	w.closed = true
	w.cond.Broadcast()
	w.mu.Unlock()
	w.Flush()
}
