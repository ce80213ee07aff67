// Package wythoff assembles uniform polytopes from a Coxeter descriptor
// by running one coset enumeration per orbit class: the full group
// modulo the vertex stabilizer for vertices, then the edge and face
// stabilizers (built from the descriptor's active/inactive mirror sets)
// for edges and faces.
//
// NewPolyhedron, NewPolychoron and NewPolytope5D are thin,
// dimension-validating constructors over the same construction logic —
// the algorithm itself does not depend on n beyond the diagram length
// check each one performs.
package wythoff
