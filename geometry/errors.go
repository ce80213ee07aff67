// SPDX-License-Identifier: MIT
package geometry

import "errors"

// ErrDegenerateGeometry is returned by NewStandardGeometry when the
// Coxeter matrix's Gram matrix is not positive-definite — the diagram
// does not describe a finite (spherical) reflection group realizable in
// the dimension requested.
var ErrDegenerateGeometry = errors.New("geometry: degenerate Coxeter diagram")

// ErrGeneratorRange is returned by Reflect for an out-of-range mirror
// index.
var ErrGeneratorRange = errors.New("geometry: mirror index out of range")
