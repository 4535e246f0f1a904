package di

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-matrix-cache/cache"
	"github.com/goliatone/go-matrix-cache/matrix"
	"github.com/goliatone/go-matrix-cache/pkg/testsupport"
)

// TestSolveLifecycle walks the full solve / hit / invalidate / resolve
// lifecycle against the real inverter, observing it through Stats.
func TestSolveLifecycle(t *testing.T) {
	stats := cache.NewStats()
	container, err := NewContainerWithNotifier(cache.DefaultConfig(), stats)
	if err != nil {
		t.Fatalf("NewContainerWithNotifier: %v", err)
	}
	solver := container.NewSolver()

	cm, err := container.NewCachedMatrix(testsupport.MustDense(t, [][]float64{{1, 2}, {3, 4}}))
	if err != nil {
		t.Fatalf("NewCachedMatrix: %v", err)
	}

	ctx := context.Background()
	wantInverse := testsupport.MustDense(t, [][]float64{{-2, 1}, {1.5, -0.5}})

	// First solve computes.
	got, err := solver.Solve(ctx, cm)
	if err != nil {
		t.Fatalf("first Solve: %v", err)
	}
	testsupport.RequireEqualApprox(t, wantInverse, got, 1e-9)
	if stats.Misses() != 1 || stats.Hits() != 0 {
		t.Errorf("after first solve: %d misses / %d hits, want 1 / 0", stats.Misses(), stats.Hits())
	}

	// Second solve is a pure cache hit.
	again, err := solver.Solve(ctx, cm)
	if err != nil {
		t.Fatalf("second Solve: %v", err)
	}
	if !got.Equal(again) {
		t.Error("hit returned a different result than the computed inverse")
	}
	if stats.Misses() != 1 || stats.Hits() != 1 {
		t.Errorf("after second solve: %d misses / %d hits, want 1 / 1", stats.Misses(), stats.Hits())
	}

	// Replacing the value invalidates and the next solve recomputes.
	identity := testsupport.IdentityDense(t, 2)
	if err := cm.SetValue(identity); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if _, ok := cm.CachedInverse(); ok {
		t.Fatal("SetValue must clear the cached inverse")
	}

	got, err = solver.Solve(ctx, cm)
	if err != nil {
		t.Fatalf("Solve after SetValue: %v", err)
	}
	testsupport.RequireEqualApprox(t, identity, got, 1e-12)
	if stats.Misses() != 2 {
		t.Errorf("after invalidated solve: %d misses, want 2", stats.Misses())
	}
}

// TestSingularLifecycle verifies that a failed solve caches nothing and the
// instance recovers after the value is corrected.
func TestSingularLifecycle(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults: %v", err)
	}
	solver := container.NewSolver()

	cm, err := container.NewCachedMatrix(testsupport.MustDense(t, [][]float64{{1, 2}, {2, 4}}))
	if err != nil {
		t.Fatalf("NewCachedMatrix: %v", err)
	}

	ctx := context.Background()
	if _, err := solver.Solve(ctx, cm); !errors.Is(err, matrix.ErrSingular) {
		t.Fatalf("expected matrix.ErrSingular, got %v", err)
	}
	if _, ok := cm.CachedInverse(); ok {
		t.Error("failed solve must leave the cached inverse absent")
	}

	if err := cm.SetValue(testsupport.MustDense(t, [][]float64{{1, 2}, {3, 4}})); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	got, err := solver.Solve(ctx, cm)
	if err != nil {
		t.Fatalf("Solve after correcting value: %v", err)
	}
	want := testsupport.MustDense(t, [][]float64{{-2, 1}, {1.5, -0.5}})
	testsupport.RequireEqualApprox(t, want, got, 1e-9)
}

// TestSolveRoundTrip checks A x Solve(A) against the identity for seeded
// random matrices, end to end through the container wiring.
func TestSolveRoundTrip(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults: %v", err)
	}
	solver := container.NewSolver()
	id := testsupport.IdentityDense(t, 12)

	m := testsupport.RandomDense(t, 12, 42)
	cm, err := container.NewCachedMatrix(m)
	if err != nil {
		t.Fatalf("NewCachedMatrix: %v", err)
	}

	inv, err := solver.Solve(context.Background(), cm)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	prod, err := m.Mul(inv)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	testsupport.RequireEqualApprox(t, id, prod, 1e-9)
}
