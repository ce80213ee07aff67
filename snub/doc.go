// Package snub builds the snub variants of Wythoff's construction: the
// symmetry group acting on vertices is the rotation subgroup of a
// Coxeter group, presented directly by its rotations rather than by
// the group's mirror involutions. Polyhedron generalizes over any
// 3-mirror diagram; Snub24Cell is the fixed demitesseract [3^(1,1,1)]+
// specialization.
//
// Both share the same shape as wythoff.Builder — construct, then call
// BuildGeometry once — but their coset tables are built with an
// explicit, non-identity inverses mapping (cosettable.New rather than
// cosettable.NewInvolutive), since a rotation and its inverse are
// distinct letters here.
package snub
