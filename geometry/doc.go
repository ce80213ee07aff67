// Package geometry is the external-collaborator boundary this engine
// leans on for numerical linear algebra: turning a Coxeter matrix and a
// set of initial distances into mirror normals, reflection matrices,
// and an initial point.
//
// The Geometry interface is the seam: wythoff, snub and dual only ever
// call Reflect and InitialPoint, never touch a Dense matrix directly.
// StandardGeometry is the one concrete adapter this repo ships, built
// from a Cholesky factorization of the Coxeter Gram matrix — the same
// stdlib-only dense-linear-algebra idiom the rest of this module's
// matrix package uses, rather than a reflection-group library, since no
// part of this engine's ecosystem supplies one.
package geometry
