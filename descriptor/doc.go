// Package descriptor is the Coxeter Descriptor: the immutable input data
// model for a uniform-polytope construction.
//
// A Descriptor bundles a Coxeter matrix M (symmetric, diagonal 1,
// off-diagonal rationals ≥ 2 so that star polytopes can express a
// fractional mirror angle p/q), a vector of initial-point distances
// (zero ⇒ the corresponding mirror is inactive, i.e. fixes the initial
// vertex), and an optional set of extra relations used to present star
// polytopes whose symmetry group needs more than the standard Coxeter
// relations to pin down.
//
// A Descriptor never mutates after NewFromUpperTriangle returns; every derived quantity
// (SymmetryRelations, OrthogonalInactive) is computed on demand from the
// fields captured at construction, mirroring the "Lifecycles" contract:
// immutable after construction.
package descriptor
