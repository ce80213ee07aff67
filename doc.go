// Package polywythoff builds uniform polytopes in 3, 4 and 5 dimensions
// from their Coxeter diagram by running Wythoff's kaleidoscopic
// construction over a Todd–Coxeter coset enumeration.
//
// A Coxeter diagram (descriptor.Descriptor) names a reflection group
// and an initial vertex; wythoff.Builder enumerates the cosets of the
// vertex, edge and face stabilizers of that group (cosettable.Table)
// and turns each coset's shortest word into a point via a
// geometry.Geometry and a symmetry.Action, producing a
// polytope.Polytope. snub specializes the same machinery to the
// rotation subgroup for snub polyhedra and the snub 24-cell; dual
// builds the Catalan dual of an already-built polyhedron.
//
// Subpackages, in construction order:
//
//	descriptor/  — Coxeter matrix, initial distances, extra relations
//	cosettable/  — Todd–Coxeter right-coset enumeration (HLT, scan-all)
//	geometry/    — mirror normals, reflections and the initial point
//	symmetry/    — evaluating a coset's word as a point transform
//	polytope/    — the built result and its presentation helpers
//	wythoff/     — the Coxeter-mode vertex/edge/face construction
//	snub/        — the rotation-subgroup specialization
//	dual/        — the Catalan dual of a built polyhedron
//
// core/ and matrix/ are the small in-process collaborators the above
// are built on: an undirected graph used by the dual builder's
// face-adjacency ring walk, and a dense linear-algebra kernel used by
// geometry to realize a Gram matrix as mirror normals.
//
// The module ships no runnable example commands; the concrete scenarios
// (tetrahedron, cube, snub cube, 120-cell, dual of the cube and others)
// are exercised by the package tests.
package polywythoff
