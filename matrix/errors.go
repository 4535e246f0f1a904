package matrix

import "errors"

// Sentinel errors for the matrix package. Callers should match them with
// errors.Is; operations wrap them with additional context where useful.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive, or that a row-slice input is ragged or empty.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// the valid range for the receiver.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required. Inversion is
	// only defined for square input.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when no usable pivot can be found during
	// inversion, i.e. the matrix has no inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense was passed where a value is
	// required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
