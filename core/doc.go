// Package core provides a small thread-safe in-memory Graph used internally
// by the dual builder to discover the cyclic face order around a vertex.
//
// Dual construction (see package dual) needs to answer one question: given
// the set of faces of a polyhedron that meet at a vertex v, in what cyclic
// order do they appear around v? Two faces are adjacent in that cycle iff
// they share an undirected edge. core.Graph models exactly that adjacency
// relation — one vertex per incident face, one edge per shared polyhedron
// edge — so the cyclic order can be read off with a plain neighbor walk
// instead of a bespoke ring-building routine.
//
// Graph is deliberately narrow compared to a general-purpose graph library:
// undirected, unweighted, no loops, no parallel edges, string-identified
// vertices. Nothing in this engine needs more than that.
package core
