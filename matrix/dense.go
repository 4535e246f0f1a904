// Package matrix provides the Dense matrix value type used throughout the
// module. Dense is a row-major float64 matrix with bounds-checked element
// access, a deterministic binary encoding for fingerprinting, and the small
// set of operations the caching layer and its tests need (clone, equality,
// multiplication).
//
// The package deliberately does not try to be a linear-algebra library. The
// inversion routine lives behind the cache.Inverter interface so that any
// correct implementation can be swapped in; the default one is provided by
// the internal linalg package.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a row-major matrix of float64 values. The zero value is not
// usable; construct instances with NewDense, FromRows or Identity.
type Dense struct {
	rows, cols int
	data       []float64 // flat backing storage, length rows*cols
}

// NewDense creates a rows×cols matrix initialized to zeros.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of row slices. The input must be
// non-empty and rectangular; the data is copied, so the caller keeps
// ownership of the slices.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m := &Dense{rows: len(rows), cols: cols, data: make([]float64, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), cols, ErrInvalidDimensions)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// IsSquare reports whether the matrix has as many rows as columns.
func (m *Dense) IsSquare() bool { return m.rows == m.cols }

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("index (%d,%d) of %dx%d matrix: %w", row, col, m.rows, m.cols, ErrIndexOutOfBounds)
	}
	return row*m.cols + col, nil
}

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{rows: m.rows, cols: m.cols, data: data}
}

// Equal reports whether both matrices have the same shape and exactly equal
// elements. NaN entries never compare equal, matching float64 semantics.
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// EqualApprox reports whether both matrices have the same shape and all
// elements are within tol of each other. Use this when comparing results of
// floating-point computations such as inversion.
func (m *Dense) EqualApprox(other *Dense, tol float64) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if math.Abs(v-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// Mul computes the matrix product m × other into a fresh Dense.
func (m *Dense) Mul(other *Dense) (*Dense, error) {
	if other == nil {
		return nil, fmt.Errorf("Mul: %w", ErrNilMatrix)
	}
	if m.cols != other.rows {
		return nil, fmt.Errorf("Mul: %dx%d by %dx%d: %w", m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}
	res := &Dense{rows: m.rows, cols: other.cols, data: make([]float64, m.rows*other.cols)}
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.data[i*m.cols+k]
			if a == 0 {
				continue
			}
			for j := 0; j < other.cols; j++ {
				res.data[i*other.cols+j] += a * other.data[k*other.cols+j]
			}
		}
	}
	return res, nil
}

// String renders the matrix row by row for debugging output.
func (m *Dense) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dense(%dx%d)", m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		b.WriteString("\n  [")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.cols+j])
		}
		b.WriteString("]")
	}
	return b.String()
}

// Raw returns the row-major backing slice. It is intended for numeric
// kernels that need flat access; treat the slice as read-only unless you
// own the matrix.
func (m *Dense) Raw() []float64 { return m.data }
