// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every algorithm in this package returns one of these sentinels rather
// than panicking on caller-triggered conditions; tests and callers branch
// with errors.Is, never string comparison.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates an index is outside the matrix bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotPositiveDefinite signals Cholesky failed: the matrix is not
	// symmetric positive definite (a pivot was <= 0).
	ErrNotPositiveDefinite = errors.New("matrix: not symmetric positive definite")

	// ErrNilMatrix indicates a nil *Dense was used where one was required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
