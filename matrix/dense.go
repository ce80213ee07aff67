// Package matrix: Dense is a concrete row-major matrix, storing elements
// in a flat slice for cache-friendly access.
package matrix

import "fmt"

// Dense is a row-major r×c matrix backed by a flat slice of length r*c.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c Dense initialized to zeros.
// Complexity: O(r*c)
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.c }

// At returns the element at (i,j).
// Complexity: O(1)
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return d.data[i*d.c+j], nil
}

// Set assigns v at (i,j).
// Complexity: O(1)
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	d.data[i*d.c+j] = v

	return nil
}

// Row returns a copy of row i as a plain slice.
// Complexity: O(c)
func (d *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= d.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, d.c)
	copy(out, d.data[i*d.c:(i+1)*d.c])

	return out, nil
}

// SetRow overwrites row i with row (len(row) must equal Cols()).
// Complexity: O(c)
func (d *Dense) SetRow(i int, row []float64) error {
	if i < 0 || i >= d.r {
		return fmt.Errorf("Dense.SetRow(%d): %w", i, ErrOutOfRange)
	}
	if len(row) != d.c {
		return fmt.Errorf("Dense.SetRow(%d): %w", i, ErrDimensionMismatch)
	}
	copy(d.data[i*d.c:(i+1)*d.c], row)

	return nil
}

// Clone returns a deep copy of d.
// Complexity: O(r*c)
func (d *Dense) Clone() *Dense {
	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	copy(out.data, d.data)

	return out
}
