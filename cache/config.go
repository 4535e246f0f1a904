package cache

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config exposes the tuning knobs for the default inverter implementation.
type Config struct {
	// PivotTolerance is the threshold at or below which an elimination
	// pivot's absolute value marks the matrix as singular. Zero means only
	// exact zero pivots are rejected.
	PivotTolerance float64

	// MaxDimension caps the size of matrices the inverter accepts. Zero
	// disables the cap. Inversion is O(n^3); the cap protects services that
	// accept matrix dimensions from untrusted input.
	MaxDimension int
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		PivotTolerance: 1e-12,
		MaxDimension:   0,
	}
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.PivotTolerance, validation.Min(0.0)),
		validation.Field(&c.MaxDimension, validation.Min(0)),
	)
}
