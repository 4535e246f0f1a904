package cache

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/goliatone/go-matrix-cache/matrix"
)

// FingerprintSeparator delimits the segments of a matrix fingerprint.
const FingerprintSeparator = "::"

// Fingerprinter produces a short, stable identifier for a matrix value.
// Fingerprints are used to attribute cache hit/miss events to a concrete
// matrix in logs and metrics; they are never used as cache keys, since the
// cache is the single slot on a CachedMatrix itself.
type Fingerprinter interface {
	Fingerprint(m *matrix.Dense) string
}

// defaultFingerprinter hashes the canonical msgpack encoding of a matrix
// with xxhash64. Unlike pointer-based identities, the result is stable
// across processes: two matrices with equal shape and elements always share
// a fingerprint.
type defaultFingerprinter struct{}

// NewDefaultFingerprinter creates the default msgpack+xxhash fingerprinter.
func NewDefaultFingerprinter() Fingerprinter {
	return &defaultFingerprinter{}
}

// Fingerprint returns "dense::RxC::<16 hex digits>". A nil matrix yields
// "dense::nil" rather than an error; fingerprints are observability data
// and must never fail an operation.
func (f *defaultFingerprinter) Fingerprint(m *matrix.Dense) string {
	if m == nil {
		return "dense" + FingerprintSeparator + "nil"
	}
	payload, err := msgpack.Marshal(m)
	if err != nil {
		// Shape-only fallback; fingerprinting must not fail the operation.
		return fmt.Sprintf("dense%s%dx%d%sunhashed", FingerprintSeparator, m.Rows(), m.Cols(), FingerprintSeparator)
	}
	return fmt.Sprintf("dense%s%dx%d%s%016x", FingerprintSeparator, m.Rows(), m.Cols(), FingerprintSeparator, xxhash.Sum64(payload))
}
