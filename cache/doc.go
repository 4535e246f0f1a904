// Package cache defines the contracts around the matrix-inverse cache: the
// Inverter capability, matrix fingerprinting, and the notification sinks
// used for observability.
//
// # Overview
//
// This package exports three main interfaces and their default
// implementations:
//
//   - Inverter: the expensive computation being memoized (matrix inversion)
//   - Fingerprinter: builds stable identifiers for matrix values
//   - Notifier: receives cache hit/miss events
//
// The package is designed to work with the matrixcache package, which owns
// the cached value slot and decides when the Inverter runs.
//
// # Basic Usage
//
// Most callers wire these pieces through the pkg/di container, but they can
// be assembled by hand:
//
//	fp := cache.NewDefaultFingerprinter()
//	stats := cache.NewStats()
//	solver := matrixcache.New(inverter, fp, stats)
//
// Per-call inverter tuning travels as opaque options:
//
//	inv, err := solver.Solve(ctx, cm, cache.WithPivotTolerance(1e-9))
//
// # Fingerprinting Strategy
//
// The default fingerprinter hashes the canonical msgpack encoding of a
// matrix with xxhash64, producing keys of the form "dense::3x3::a1b2...".
// Because the hash covers shape and elements, equal matrices share a
// fingerprint across processes and restarts. Fingerprints identify matrices
// in logs and metrics; they are not cache keys — each CachedMatrix carries
// its own single slot and needs no keyed storage.
//
// # Notifications
//
// Hit/miss events are an observability signal only, never part of the
// functional result. NopNotifier discards events, LogNotifier writes them
// at debug level through apex/log, Stats tallies them with concurrent
// counters, and MultiNotifier fans out to several sinks. A slow Notifier
// slows every solve on the instances it observes, so keep sinks cheap.
//
// # Error Handling
//
// Inversion failures surface as sentinel errors from the matrix package
// (matrix.ErrSingular, matrix.ErrNonSquare) and are matched with errors.Is.
// Configuration problems are reported by Config.Validate using
// ozzo-validation. A failed inversion is never cached: the cached-inverse
// slot keeps its previous (absent) state so a later call can retry.
//
// # See Also
//
// For the cached value slot and the memoizing solve operation, see the
// matrixcache package. For the default elimination-based Inverter, see
// internal/linalg (constructed via the pkg/di container).
package cache
