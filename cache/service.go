package cache

import (
	"context"

	"github.com/goliatone/go-matrix-cache/matrix"
)

// Inverter is the expensive computation the caching layer memoizes. Given a
// square matrix it returns a freshly allocated inverse, or an error when the
// input has no inverse (matrix.ErrSingular) or is not square
// (matrix.ErrNonSquare).
//
// Implementations must not retain or mutate the input matrix. Solve options
// are passed through by the caching layer without interpretation; it is up
// to the implementation which of them it honors.
type Inverter interface {
	Invert(ctx context.Context, m *matrix.Dense, opts ...SolveOption) (*matrix.Dense, error)
}

// SolveSettings carries per-call tuning for an Inverter. The zero value
// means "use the inverter's configured defaults"; options override fields
// selectively.
type SolveSettings struct {
	// PivotTolerance overrides the pivot threshold at or below which the
	// inverter treats the matrix as singular.
	PivotTolerance float64

	// pivotToleranceSet distinguishes an explicit zero from "not provided".
	pivotToleranceSet bool
}

// PivotToleranceSet reports whether WithPivotTolerance was applied.
func (s SolveSettings) PivotToleranceSet() bool { return s.pivotToleranceSet }

// SolveOption customizes a single Invert call.
type SolveOption func(*SolveSettings)

// WithPivotTolerance sets the singularity threshold for this call: any pivot
// with absolute value at or below tol fails the inversion with
// matrix.ErrSingular.
func WithPivotTolerance(tol float64) SolveOption {
	return func(s *SolveSettings) {
		s.PivotTolerance = tol
		s.pivotToleranceSet = true
	}
}

// ApplySolveOptions folds opts into a SolveSettings value. Nil options are
// skipped so callers can pass conditionally-built slices.
func ApplySolveOptions(opts ...SolveOption) SolveSettings {
	var s SolveSettings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
