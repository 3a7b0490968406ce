package dedup

import (
	"sync"
	"sync/atomic"
)

// Table assigns a dense id (0, 1, 2, ...) to every distinct point.
//
// Features:
//   - 16 shards selected by key hash for reduced lock contention
//   - ids are assigned in first-seen order across all shards
//   - entries are never evicted
//
// Table is safe for concurrent use.
// Table must not be copied after creation (has mutexes).
type Table struct {
	shards [shardCount]*tableShard
	opts   options
	next   atomic.Uint64

	hits   atomic.Uint64
	misses atomic.Uint64
}

// tableShard is a single shard of the table.
type tableShard struct {
	mu      sync.RWMutex
	entries map[Key]tableEntry
}

// tableEntry is the id assigned to a key and the first point seen for it.
type tableEntry struct {
	id    uint64
	point Point
}

// NewTable creates an empty table.
func NewTable(opts ...Option) *Table {
	t := &Table{opts: defaultOptions()}
	for _, opt := range opts {
		opt(&t.opts)
	}
	for i := range t.shards {
		t.shards[i] = &tableShard{entries: make(map[Key]tableEntry)}
	}
	return t
}

// shard returns the shard for a key.
func (t *Table) shard(k Key) *tableShard {
	return t.shards[k.Hash()&shardMask]
}

// Intern returns the id of (x, y), assigning the next id if the point has
// not been seen. added reports whether a new id was assigned.
func (t *Table) Intern(x, y float32) (id uint64, added bool) {
	k := t.opts.key(x, y)
	s := t.shard(k)

	// Fast path: read lock
	s.mu.RLock()
	e, ok := s.entries[k]
	s.mu.RUnlock()
	if ok {
		t.hits.Add(1)
		return e.id, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check after acquiring write lock
	if e, ok := s.entries[k]; ok {
		t.hits.Add(1)
		return e.id, false
	}

	t.misses.Add(1)
	id = t.next.Add(1) - 1
	s.entries[k] = tableEntry{id: id, point: Point{X: x, Y: y}}
	return id, true
}

// Lookup returns the id of (x, y) without assigning one.
func (t *Table) Lookup(x, y float32) (id uint64, ok bool) {
	k := t.opts.key(x, y)
	s := t.shard(k)

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[k]
	return e.id, ok
}

// Len returns the number of distinct points.
func (t *Table) Len() int {
	return int(t.next.Load())
}

// Points returns the distinct points indexed by id: Points()[id] is the
// first point interned with that id.
//
// Concurrent Intern calls may or may not be reflected; any id assigned
// while Points runs is omitted.
func (t *Table) Points() []Point {
	n := t.Len()
	pts := make([]Point, n)
	for _, s := range t.shards {
		s.mu.RLock()
		for _, e := range s.entries {
			if int(e.id) < n {
				pts[e.id] = e.point
			}
		}
		s.mu.RUnlock()
	}
	return pts
}

// Stats returns hit and miss counters. A hit is an Intern of a point that
// already had an id.
func (t *Table) Stats() Stats {
	hits, misses := t.hits.Load(), t.misses.Load()
	return Stats{
		Len:     t.Len(),
		Hits:    hits,
		Misses:  misses,
		HitRate: hitRate(hits, misses),
	}
}

// Stats contains deduplication statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries (Window only).
	Capacity int
	// Hits is the number of lookups that found an existing entry.
	Hits uint64
	// Misses is the number of lookups that added an entry.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of evicted entries (Window only).
	Evictions uint64
}

func hitRate(hits, misses uint64) float64 {
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}
