package cost

import (
	"errors"

	"github.com/katalvlaran/robochain/route"
)

// ErrNegativeDepth is returned when Score is asked for a depth below zero.
var ErrNegativeDepth = errors.New("cost: depth cannot be negative")

// memoKey is the structural identity of a priced segment.
type memoKey struct {
	r     route.Route
	depth int
}

// Memo caches the price of directional routes per depth.
type Memo struct {
	m            map[memoKey]int
	hits, misses int
}

// NewMemo returns an empty Memo.
func NewMemo() *Memo {
	return &Memo{m: make(map[memoKey]int)}
}

// Len returns the number of cached entries.
func (m *Memo) Len() int { return len(m.m) }

// Hits returns how many lookups were served from the cache.
func (m *Memo) Hits() int { return m.hits }

// Misses returns how many lookups had to be computed.
func (m *Memo) Misses() int { return m.misses }

// Reset drops every entry and the counters.
func (m *Memo) Reset() {
	clear(m.m)
	m.hits, m.misses = 0, 0
}

func (m *Memo) load(k memoKey) (int, bool) {
	v, ok := m.m[k]
	if ok {
		m.hits++
	} else {
		m.misses++
	}
	return v, ok
}

func (m *Memo) store(k memoKey, v int) { m.m[k] = v }
