package cache

import (
	"github.com/apex/log"
	"github.com/google/uuid"
)

// Event describes a single cache lookup on a CachedMatrix. It identifies
// the instance (MatrixID) and the current source value (Fingerprint, shape)
// so sinks can attribute hits and misses.
type Event struct {
	MatrixID    uuid.UUID
	Fingerprint string
	Rows        int
	Cols        int
}

// Notifier receives cache observability events. Notifications are a side
// channel only: they carry no functional result and implementations must
// not block the solve path for long.
type Notifier interface {
	// Hit is emitted when a solve returns the cached inverse without
	// recomputation.
	Hit(ev Event)

	// Miss is emitted when a solve had to invoke the inverter and stored a
	// fresh result.
	Miss(ev Event)
}

// NopNotifier discards all events. It is the default sink.
type NopNotifier struct{}

// Hit implements Notifier.
func (NopNotifier) Hit(Event) {}

// Miss implements Notifier.
func (NopNotifier) Miss(Event) {}

// LogNotifier writes hit/miss events to an apex/log logger at debug level.
type LogNotifier struct {
	log log.Interface
}

// NewLogNotifier creates a LogNotifier. Passing nil uses the apex/log
// package-level logger.
func NewLogNotifier(logger log.Interface) *LogNotifier {
	if logger == nil {
		logger = log.Log
	}
	return &LogNotifier{log: logger}
}

func (n *LogNotifier) entry(ev Event) *log.Entry {
	return n.log.WithFields(log.Fields{
		"matrix_id":   ev.MatrixID.String(),
		"fingerprint": ev.Fingerprint,
		"rows":        ev.Rows,
		"cols":        ev.Cols,
	})
}

// Hit implements Notifier.
func (n *LogNotifier) Hit(ev Event) {
	n.entry(ev).Debug("matrix cache hit: using cached inverse")
}

// Miss implements Notifier.
func (n *LogNotifier) Miss(ev Event) {
	n.entry(ev).Debug("matrix cache miss: inverse computed and stored")
}

// MultiNotifier fans an event out to several sinks in order.
type MultiNotifier []Notifier

// Hit implements Notifier.
func (m MultiNotifier) Hit(ev Event) {
	for _, n := range m {
		if n != nil {
			n.Hit(ev)
		}
	}
}

// Miss implements Notifier.
func (m MultiNotifier) Miss(ev Event) {
	for _, n := range m {
		if n != nil {
			n.Miss(ev)
		}
	}
}
