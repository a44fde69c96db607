package markup

import (
	"sort"
	"sync"
)

// Stats holds monotonically increasing counters describing the calls an engine has
// served. Standard keys are listed in stats_keys.go.
//
// All methods are safe for concurrent use, so one Stats may be shared by every
// document an engine formats.
type Stats struct {
	mu       sync.RWMutex
	counters map[StatKey]int64
}

// NewStats creates an empty Stats.
func NewStats() *Stats {
	return &Stats{
		counters: make(map[StatKey]int64),
	}
}

// IncrCounter increments a counter by delta, creating it if needed.
//
// Panics if delta is negative (counters only go up).
func (s *Stats) IncrCounter(key StatKey, delta int64) {
	if delta < 0 {
		panic("markup: IncrCounter called with negative delta")
	}
	s.mu.Lock()
	s.counters[key] += delta
	s.mu.Unlock()
}

// GetCounter returns the current value of a counter, or 0 if not set.
func (s *Stats) GetCounter(key StatKey) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counters[key]
}

// Counters returns a snapshot of all counters.
func (s *Stats) Counters() map[StatKey]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[StatKey]int64, len(s.counters))
	for k, v := range s.counters {
		out[k] = v
	}
	return out
}

// Keys returns the recorded counter keys in sorted order.
func (s *Stats) Keys() []StatKey {
	s.mu.RLock()
	keys := make([]StatKey, 0, len(s.counters))
	for k := range s.counters {
		keys = append(keys, k)
	}
	s.mu.RUnlock()
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Reset removes all counters.
func (s *Stats) Reset() {
	s.mu.Lock()
	s.counters = make(map[StatKey]int64)
	s.mu.Unlock()
}
