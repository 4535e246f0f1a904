package matrixcache

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-matrix-cache/matrix"
)

// CachedMatrix couples one matrix value with one optional memoized inverse.
// The cached inverse is either exactly the inverse of the current value or
// absent — never stale: replacing the value always clears the slot.
//
// All access is serialized by an internal mutex, so a single instance can
// be shared across goroutines. The instance exclusively owns its two slots;
// inputs are cloned on the way in, and matrices returned by Value and
// CachedInverse must be treated as read-only.
type CachedMatrix struct {
	mu      sync.Mutex
	id      uuid.UUID
	value   *matrix.Dense
	inverse *matrix.Dense // nil when absent
}

// NewCachedMatrix creates a CachedMatrix holding a copy of initial, with no
// cached inverse.
func NewCachedMatrix(initial *matrix.Dense) (*CachedMatrix, error) {
	if initial == nil {
		return nil, fmt.Errorf("matrixcache: new cached matrix: %w", matrix.ErrNilMatrix)
	}
	return &CachedMatrix{id: uuid.New(), value: initial.Clone()}, nil
}

// ID returns the stable identity of this instance, used to attribute
// notification events.
func (c *CachedMatrix) ID() uuid.UUID { return c.id }

// Value returns the current source matrix. Treat the result as read-only;
// use SetValue to change the value so the cached inverse is invalidated.
func (c *CachedMatrix) Value() *matrix.Dense {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// SetValue replaces the source matrix with a copy of m and unconditionally
// clears the cached inverse, even when m equals the previous value.
// Invalidation is deliberately conservative: no equality check is attempted.
func (c *CachedMatrix) SetValue(m *matrix.Dense) error {
	if m == nil {
		return fmt.Errorf("matrixcache: set value: %w", matrix.ErrNilMatrix)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = m.Clone()
	c.inverse = nil
	return nil
}

// CachedInverse returns the memoized inverse and whether one is present.
// Treat the result as read-only.
func (c *CachedMatrix) CachedInverse() (*matrix.Dense, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inverse, c.inverse != nil
}

// SetCachedInverse overwrites the cached inverse with a copy of inv. The
// caller is trusted to pass the actual inverse of the current value; no
// verification is performed. Passing nil clears the slot.
func (c *CachedMatrix) SetCachedInverse(inv *matrix.Dense) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if inv == nil {
		c.inverse = nil
		return
	}
	c.inverse = inv.Clone()
}
