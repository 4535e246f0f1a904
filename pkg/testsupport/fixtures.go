// Package testsupport provides matrix fixtures and comparison helpers
// shared by the package tests across the module.
package testsupport

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-matrix-cache/matrix"
)

// LoadFixture loads raw test data from a fixture file.
// The path is relative to the test package directory.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture from %s: %v", path, err)
	}

	return data
}

// LoadFixtureJSON loads JSON test data from a fixture file and unmarshals it.
// The path is relative to the test package directory.
func LoadFixtureJSON(t *testing.T, path string, dest interface{}) {
	t.Helper()

	data := LoadFixture(t, path)
	if err := json.Unmarshal(data, dest); err != nil {
		t.Fatalf("failed to unmarshal JSON fixture from %s: %v", path, err)
	}
}

// FixturePath constructs a path to a fixture file relative to the testdata
// directory.
func FixturePath(filename string) string {
	return filepath.Join("testdata", filename)
}

// MustDense builds a Dense from row slices and fails the test on invalid
// input.
func MustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()

	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("failed to build dense matrix: %v", err)
	}

	return m
}

// LoadDenseFixture reads a JSON fixture containing row slices and builds a
// Dense from it.
func LoadDenseFixture(t *testing.T, path string) *matrix.Dense {
	t.Helper()

	var rows [][]float64
	LoadFixtureJSON(t, path, &rows)
	return MustDense(t, rows)
}

// RandomDense builds a deterministic pseudo-random n×n matrix from the
// given seed. Entries are drawn uniformly from [-1, 1) with a boosted
// diagonal, which makes the result comfortably invertible in practice.
func RandomDense(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	if err != nil {
		t.Fatalf("failed to allocate %dx%d matrix: %v", n, n, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := 2*rng.Float64() - 1
			if i == j {
				v += float64(n) // diagonal dominance
			}
			if err := m.Set(i, j, v); err != nil {
				t.Fatalf("failed to fill matrix at (%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// SingularDense builds an n×n matrix with rank 1 (every row is a multiple
// of the first), which has no inverse for n > 1.
func SingularDense(t *testing.T, n int) *matrix.Dense {
	t.Helper()

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = float64(i+1) * float64(j+1)
		}
	}

	return MustDense(t, rows)
}

// IdentityDense builds the n×n identity matrix and fails the test on
// invalid input.
func IdentityDense(t *testing.T, n int) *matrix.Dense {
	t.Helper()

	m, err := matrix.Identity(n)
	if err != nil {
		t.Fatalf("failed to build %dx%d identity: %v", n, n, err)
	}

	return m
}

// RequireEqualApprox fails the test when got and want differ in shape or by
// more than tol in any element.
func RequireEqualApprox(t *testing.T, want, got *matrix.Dense, tol float64) {
	t.Helper()

	if got == nil {
		t.Fatalf("expected matrix, got nil (want %v)", want)
	}
	if !want.EqualApprox(got, tol) {
		t.Fatalf("matrices differ beyond tolerance %g:\nwant %v\ngot  %v", tol, want, got)
	}
}
