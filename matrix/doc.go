// Package matrix provides a small dense linear-algebra kernel used by
// package geometry to realize a Coxeter diagram as mirror normals and
// reflection matrices.
//
// Dense is a row-major float64 matrix with bounds-checked At/Set and a
// handful of free functions (RowVecMul, Transpose, Cholesky, Solve, and
// the vector helpers Dot, Norm, Normalize, AddVec, ScaleVec) sufficient
// for that one job: turning a small (n≤5) Gram
// matrix into mirror vectors and solving the small dense system that
// places the initial point. It is not a general-purpose numerical
// library — callers needing eigendecomposition, LU for arbitrary
// matrices, or sparse storage should reach for a dedicated package.
package matrix
