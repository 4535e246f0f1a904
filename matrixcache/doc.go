// Package matrixcache implements a memoizing wrapper around matrix
// inversion: a CachedMatrix pairs one matrix value with one optional cached
// inverse, and a Solver computes the inverse through a cache.Inverter only
// when no valid cached result exists.
//
// # Overview
//
// The invalidation contract is the heart of the package: whenever the
// cached inverse is present it is exactly the inverse of the current value.
// SetValue unconditionally clears the cached inverse — even when the new
// matrix equals the old one — so the slot is always either correct or
// absent, never stale.
//
// # Basic Usage
//
//	cm, err := matrixcache.NewCachedMatrix(m)
//	if err != nil { ... }
//
//	inv, err := matrixcache.Solve(ctx, cm) // computes and caches
//	inv, err = matrixcache.Solve(ctx, cm)  // served from cache
//
//	_ = cm.SetValue(m2)                    // invalidates
//	inv, err = matrixcache.Solve(ctx, cm)  // recomputes for m2
//
// Custom wiring (own inverter, fingerprinter, notification sink) goes
// through New, or more conveniently through the pkg/di container.
//
// # Concurrency
//
// A CachedMatrix serializes all access behind an internal mutex, and Solve
// holds that mutex across the whole read-check-compute-store sequence.
// Concurrent solves on a shared instance therefore cost at most one
// inversion per invalidation epoch; latecomers block and then read the
// cached result.
//
// # Failure Semantics
//
// When the inverter fails (singular or non-square input), the error
// propagates to the caller unmodified and nothing is cached. A subsequent
// SetValue with an invertible matrix followed by Solve succeeds normally.
package matrixcache
