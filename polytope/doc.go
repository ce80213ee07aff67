// Package polytope holds the Polytope result type shared by the
// Wythoff, snub and dual builders, plus two presentation helpers that
// operate purely on a built Polytope's data: LatexWords (a LaTeX
// pretty-printer for vertex words) and Project4D (the stereographic
// 5D→4D projection used to render 5-polytopes).
package polytope
