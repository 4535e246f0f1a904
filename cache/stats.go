package cache

import "github.com/puzpuzpuz/xsync/v3"

// Stats is a Notifier that tallies cache activity. Counters are safe for
// concurrent use, so a single Stats can observe many CachedMatrix instances
// across goroutines.
type Stats struct {
	hits   *xsync.Counter
	misses *xsync.Counter
}

// NewStats creates a zeroed Stats collector.
func NewStats() *Stats {
	return &Stats{
		hits:   xsync.NewCounter(),
		misses: xsync.NewCounter(),
	}
}

// Hit implements Notifier.
func (s *Stats) Hit(Event) { s.hits.Inc() }

// Miss implements Notifier.
func (s *Stats) Miss(Event) { s.misses.Inc() }

// Hits returns the number of solves served from the cached inverse.
func (s *Stats) Hits() int64 { return s.hits.Value() }

// Misses returns the number of solves that invoked the inverter.
func (s *Stats) Misses() int64 { return s.misses.Value() }

// Requests returns the total number of observed solves.
func (s *Stats) Requests() int64 { return s.hits.Value() + s.misses.Value() }

// Reset zeroes all counters.
func (s *Stats) Reset() {
	s.hits.Reset()
	s.misses.Reset()
}
