package linalg_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-matrix-cache/cache"
	"github.com/goliatone/go-matrix-cache/internal/linalg"
	"github.com/goliatone/go-matrix-cache/matrix"
	"github.com/goliatone/go-matrix-cache/pkg/testsupport"
)

func newInverter(t *testing.T, cfg cache.Config) *linalg.Inverter {
	t.Helper()
	inv, err := linalg.New(cfg)
	require.NoError(t, err)
	return inv
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := linalg.New(cache.Config{PivotTolerance: -1})
	assert.Error(t, err)
}

func TestInvert_Known2x2(t *testing.T) {
	in := newInverter(t, cache.DefaultConfig())
	m := testsupport.MustDense(t, [][]float64{{1, 2}, {3, 4}})

	got, err := in.Invert(context.Background(), m)
	require.NoError(t, err)

	want := testsupport.MustDense(t, [][]float64{{-2, 1}, {1.5, -0.5}})
	testsupport.RequireEqualApprox(t, want, got, 1e-9)
}

func TestInvert_Identity(t *testing.T) {
	in := newInverter(t, cache.DefaultConfig())
	id := testsupport.IdentityDense(t, 4)

	got, err := in.Invert(context.Background(), id)
	require.NoError(t, err)
	testsupport.RequireEqualApprox(t, id, got, 1e-12)
}

func TestInvert_ZeroLeadingPivot(t *testing.T) {
	// A permutation matrix has a zero on the leading diagonal; without
	// partial pivoting it would be misreported as singular.
	in := newInverter(t, cache.DefaultConfig())
	perm := testsupport.MustDense(t, [][]float64{{0, 1}, {1, 0}})

	got, err := in.Invert(context.Background(), perm)
	require.NoError(t, err)
	testsupport.RequireEqualApprox(t, perm, got, 1e-12)
}

func TestInvert_DoesNotMutateInput(t *testing.T) {
	in := newInverter(t, cache.DefaultConfig())
	m := testsupport.MustDense(t, [][]float64{{1, 2}, {3, 4}})
	snapshot := m.Clone()

	_, err := in.Invert(context.Background(), m)
	require.NoError(t, err)
	assert.True(t, snapshot.Equal(m))
}

func TestInvert_Singular(t *testing.T) {
	in := newInverter(t, cache.DefaultConfig())
	m := testsupport.MustDense(t, [][]float64{{1, 2}, {2, 4}})

	_, err := in.Invert(context.Background(), m)
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = in.Invert(context.Background(), testsupport.SingularDense(t, 5))
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInvert_NonSquare(t *testing.T) {
	in := newInverter(t, cache.DefaultConfig())
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = in.Invert(context.Background(), m)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInvert_NilMatrix(t *testing.T) {
	in := newInverter(t, cache.DefaultConfig())
	_, err := in.Invert(context.Background(), nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInvert_MaxDimensionGuard(t *testing.T) {
	in := newInverter(t, cache.Config{PivotTolerance: 1e-12, MaxDimension: 3})

	_, err := in.Invert(context.Background(), testsupport.IdentityDense(t, 3))
	require.NoError(t, err)

	_, err = in.Invert(context.Background(), testsupport.IdentityDense(t, 4))
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestInvert_PivotToleranceOption(t *testing.T) {
	in := newInverter(t, cache.DefaultConfig())
	nearSingular := testsupport.MustDense(t, [][]float64{{1, 0}, {0, 1e-14}})

	// Below the default 1e-12 threshold the pivot counts as zero.
	_, err := in.Invert(context.Background(), nearSingular)
	require.ErrorIs(t, err, matrix.ErrSingular)

	// An explicit zero tolerance accepts any nonzero pivot.
	got, err := in.Invert(context.Background(), nearSingular, cache.WithPivotTolerance(0))
	require.NoError(t, err)

	want := testsupport.MustDense(t, [][]float64{{1, 0}, {0, 1e14}})
	testsupport.RequireEqualApprox(t, want, got, 1)
}

func TestInvert_CanceledContext(t *testing.T) {
	in := newInverter(t, cache.DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := in.Invert(ctx, testsupport.IdentityDense(t, 2))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInvert_HilbertFixture(t *testing.T) {
	in := newInverter(t, cache.DefaultConfig())

	hilbert, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.NoError(t, hilbert.Set(i, j, 1/float64(i+j+1)))
		}
	}

	got, err := in.Invert(context.Background(), hilbert)
	require.NoError(t, err)

	want := testsupport.LoadDenseFixture(t, testsupport.FixturePath("hilbert4_inverse.json"))
	testsupport.RequireEqualApprox(t, want, got, 1e-4)
}

func TestInvert_RandomRoundTrip(t *testing.T) {
	in := newInverter(t, cache.DefaultConfig())
	id := testsupport.IdentityDense(t, 8)

	for seed := int64(1); seed <= 3; seed++ {
		m := testsupport.RandomDense(t, 8, seed)

		inv, err := in.Invert(context.Background(), m)
		require.NoError(t, err, "seed %d", seed)

		prod, err := m.Mul(inv)
		require.NoError(t, err)
		testsupport.RequireEqualApprox(t, id, prod, 1e-9)
	}
}
