// Package linalg provides the default Inverter implementation: dense matrix
// inversion by Gauss-Jordan elimination with partial pivoting. It is the
// internal adapter behind cache.Inverter, constructed through the pkg/di
// container.
package linalg

import (
	"context"
	"fmt"
	"math"

	"github.com/goliatone/go-matrix-cache/cache"
	"github.com/goliatone/go-matrix-cache/matrix"
)

// Inverter inverts square matrices by row reduction of the augmented
// [A | I] system. Partial pivoting keeps invertible matrices with zero
// leading pivots (e.g. permutation matrices) from being misreported as
// singular.
type Inverter struct {
	cfg cache.Config
}

// New creates an Inverter from the given configuration. The configuration
// is validated here so a misconfigured tolerance fails at wiring time, not
// on first solve.
func New(cfg cache.Config) (*Inverter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("linalg: invalid config: %w", err)
	}
	return &Inverter{cfg: cfg}, nil
}

// Invert implements cache.Inverter. It returns matrix.ErrNonSquare for
// rectangular input and matrix.ErrSingular when elimination finds no pivot
// above the tolerance. The input is never mutated; the result is a freshly
// allocated matrix.
func (in *Inverter) Invert(ctx context.Context, m *matrix.Dense, opts ...cache.SolveOption) (*matrix.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("linalg: invert: %w", matrix.ErrNilMatrix)
	}
	if !m.IsSquare() {
		return nil, fmt.Errorf("linalg: invert %dx%d: %w", m.Rows(), m.Cols(), matrix.ErrNonSquare)
	}
	n := m.Rows()
	if in.cfg.MaxDimension > 0 && n > in.cfg.MaxDimension {
		return nil, fmt.Errorf("linalg: invert %dx%d exceeds max dimension %d: %w", n, n, in.cfg.MaxDimension, matrix.ErrInvalidDimensions)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tol := in.cfg.PivotTolerance
	if s := cache.ApplySolveOptions(opts...); s.PivotToleranceSet() && s.PivotTolerance >= 0 {
		tol = s.PivotTolerance
	}

	// Row-reduce a working copy of A while applying the same operations to
	// an identity matrix; when A becomes I, the identity has become A^-1.
	work := m.Clone()
	out, err := matrix.Identity(n)
	if err != nil {
		return nil, fmt.Errorf("linalg: invert: %w", err)
	}
	a, b := work.Raw(), out.Raw()

	for col := 0; col < n; col++ {
		// Partial pivoting: bring the largest remaining entry of this
		// column onto the diagonal.
		pivotRow := col
		maxAbs := math.Abs(a[col*n+col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(a[r*n+col]); v > maxAbs {
				maxAbs, pivotRow = v, r
			}
		}
		if maxAbs <= tol {
			return nil, fmt.Errorf("linalg: invert %dx%d: no pivot above %g in column %d: %w", n, n, tol, col, matrix.ErrSingular)
		}
		if pivotRow != col {
			swapRows(a, n, col, pivotRow)
			swapRows(b, n, col, pivotRow)
		}

		// Normalize the pivot row.
		inv := 1 / a[col*n+col]
		for j := 0; j < n; j++ {
			a[col*n+j] *= inv
			b[col*n+j] *= inv
		}

		// Eliminate the column from every other row.
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := a[r*n+col]
			if f == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				a[r*n+j] -= f * a[col*n+j]
				b[r*n+j] -= f * b[col*n+j]
			}
		}
	}

	return out, nil
}

// swapRows exchanges rows i and j of an n-column row-major slice.
func swapRows(data []float64, n, i, j int) {
	ri, rj := data[i*n:(i+1)*n], data[j*n:(j+1)*n]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
