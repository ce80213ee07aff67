// SPDX-License-Identifier: MIT
// Package descriptor: sentinel errors.
//
// InvalidDescriptor is raised at construction time (New* constructors),
// never during BuildGeometry — callers branch with errors.Is.
package descriptor

import "errors"

// ErrInvalidDescriptor indicates a structurally malformed Coxeter
// descriptor: wrong diagram length, an off-diagonal entry < 2, a
// negative initial distance, or a dimension mismatch between the diagram
// and the initial-distance vector.
var ErrInvalidDescriptor = errors.New("descriptor: invalid descriptor")
