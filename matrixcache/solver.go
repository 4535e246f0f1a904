package matrixcache

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-matrix-cache/cache"
	"github.com/goliatone/go-matrix-cache/internal/linalg"
	"github.com/goliatone/go-matrix-cache/matrix"
)

// Solver is the memoizing orchestrator around an Inverter: it is the only
// component that decides whether the expensive inversion runs. A Solver is
// stateless apart from its collaborators and may be shared freely.
type Solver struct {
	inverter      cache.Inverter
	fingerprinter cache.Fingerprinter
	notifier      cache.Notifier
}

// New creates a Solver around the given inverter. A nil fingerprinter falls
// back to the default msgpack+xxhash implementation, and a nil notifier to
// the no-op sink.
func New(inverter cache.Inverter, fingerprinter cache.Fingerprinter, notifier cache.Notifier) *Solver {
	if fingerprinter == nil {
		fingerprinter = cache.NewDefaultFingerprinter()
	}
	if notifier == nil {
		notifier = cache.NopNotifier{}
	}
	return &Solver{
		inverter:      inverter,
		fingerprinter: fingerprinter,
		notifier:      notifier,
	}
}

// Solve returns the inverse of cm's current value, computing and storing it
// only when no cached inverse is present. Solve options are forwarded to
// the inverter without interpretation.
//
// The whole read-check-compute-store sequence runs under cm's lock, so
// concurrent Solve calls on one instance trigger at most one inverter
// invocation per invalidation epoch. The inverter must therefore not call
// back into cm. A failed inversion propagates to the caller and leaves the
// cached-inverse slot untouched, so a later call retries.
//
// The returned matrix is the cached instance; treat it as read-only.
func (s *Solver) Solve(ctx context.Context, cm *CachedMatrix, opts ...cache.SolveOption) (*matrix.Dense, error) {
	if cm == nil {
		return nil, fmt.Errorf("matrixcache: solve: %w", matrix.ErrNilMatrix)
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.inverse != nil {
		s.notifier.Hit(s.eventLocked(cm))
		return cm.inverse, nil
	}

	inv, err := s.inverter.Invert(ctx, cm.value, opts...)
	if err != nil {
		return nil, err
	}
	cm.inverse = inv
	s.notifier.Miss(s.eventLocked(cm))
	return inv, nil
}

// eventLocked builds the notification event for cm's current value. It must
// be called with cm.mu held.
func (s *Solver) eventLocked(cm *CachedMatrix) cache.Event {
	return cache.Event{
		MatrixID:    cm.id,
		Fingerprint: s.fingerprinter.Fingerprint(cm.value),
		Rows:        cm.value.Rows(),
		Cols:        cm.value.Cols(),
	}
}

var (
	defaultOnce   sync.Once
	defaultSolver *Solver
	defaultErr    error
)

// DefaultSolver returns a process-wide Solver backed by the default
// inverter and default configuration. It is built on first use.
func DefaultSolver() (*Solver, error) {
	defaultOnce.Do(func() {
		inverter, err := linalg.New(cache.DefaultConfig())
		if err != nil {
			defaultErr = err
			return
		}
		defaultSolver = New(inverter, nil, nil)
	})
	return defaultSolver, defaultErr
}

// Solve is a convenience wrapper over DefaultSolver for callers that do not
// need custom wiring.
func Solve(ctx context.Context, cm *CachedMatrix, opts ...cache.SolveOption) (*matrix.Dense, error) {
	s, err := DefaultSolver()
	if err != nil {
		return nil, err
	}
	return s.Solve(ctx, cm, opts...)
}
