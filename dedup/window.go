package dedup

import (
	"context"
	"log/slog"
	"sync"
)

// Window remembers the most recently seen points and the value attached
// to each. When full, the least recently used point is evicted.
//
// A typical use is index-buffer construction over a stream of vertices:
// a hit reuses the vertex index emitted earlier, a miss emits a new vertex.
//
// Window is safe for concurrent use.
// Window must not be copied after creation (has mutex).
type Window[V any] struct {
	mu      sync.Mutex
	entries map[Key]*windowEntry[V]
	lru     lruList
	opts    options

	hits      uint64
	misses    uint64
	evictions uint64
}

// windowEntry holds a remembered value with its LRU node.
type windowEntry[V any] struct {
	value V
	node  *lruNode
}

// NewWindow creates an empty window. Its capacity is set by WithCapacity
// and defaults to DefaultWindowCapacity.
func NewWindow[V any](opts ...Option) *Window[V] {
	w := &Window[V]{opts: defaultOptions()}
	for _, opt := range opts {
		opt(&w.opts)
	}
	w.entries = make(map[Key]*windowEntry[V], w.opts.capacity)
	return w
}

// GetOrAdd returns the value remembered for (x, y). If the point is not in
// the window, create is called (with the lock held) and its result is
// remembered. hit reports whether the value was already present.
func (w *Window[V]) GetOrAdd(x, y float32, create func() V) (v V, hit bool) {
	k := w.opts.key(x, y)

	w.mu.Lock()
	defer w.mu.Unlock()

	if e, ok := w.entries[k]; ok {
		w.lru.moveToFront(e.node)
		w.hits++
		return e.value, true
	}

	w.misses++
	v = create()

	for w.lru.len >= w.opts.capacity {
		oldest, ok := w.lru.removeOldest()
		if !ok {
			break
		}
		delete(w.entries, oldest)
		w.evictions++
		if log := w.opts.log(); log.Enabled(context.Background(), slog.LevelDebug) {
			p := oldest.Point()
			log.Debug("dedup: window eviction",
				slog.Float64("x", float64(p.X)),
				slog.Float64("y", float64(p.Y)))
		}
	}

	w.entries[k] = &windowEntry[V]{value: v, node: w.lru.pushFront(k)}
	return v, false
}

// Get returns the value remembered for (x, y) and marks it recently used.
func (w *Window[V]) Get(x, y float32) (v V, ok bool) {
	k := w.opts.key(x, y)

	w.mu.Lock()
	defer w.mu.Unlock()

	e, ok := w.entries[k]
	if !ok {
		return v, false
	}
	w.lru.moveToFront(e.node)
	return e.value, true
}

// Len returns the number of remembered points.
func (w *Window[V]) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

// Capacity returns the maximum number of remembered points.
func (w *Window[V]) Capacity() int {
	return w.opts.capacity
}

// Clear forgets every point. Statistics are kept.
func (w *Window[V]) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries = make(map[Key]*windowEntry[V], w.opts.capacity)
	w.lru.clear()
}

// Stats returns the window's counters.
func (w *Window[V]) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()

	return Stats{
		Len:       len(w.entries),
		Capacity:  w.opts.capacity,
		Hits:      w.hits,
		Misses:    w.misses,
		HitRate:   hitRate(w.hits, w.misses),
		Evictions: w.evictions,
	}
}
