// Package dual builds the Catalan dual of an already-built polyhedron:
// one dual vertex per primal face (placed along the face centroid's
// outward normal), and one dual face per primal vertex (the cyclic
// ring of primal faces meeting at that vertex).
package dual
