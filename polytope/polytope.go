package polytope

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/polywythoff/cosettable"
)

// Word is a generator-index sequence, re-exported from cosettable so
// callers of this package never need to import it directly.
type Word = cosettable.Word

// Polytope is the frozen output of a Wythoff, snub or dual build: an
// array of vertex coordinates and two lists of orbits — edges and
// faces, each orbit a group of same-type incidence tuples produced by
// one stabilizer-coset enumeration.
//
// A Polytope's arrays are built once by its builder's BuildGeometry and
// are read-only afterward; nothing in this package mutates them.
type Polytope struct {
	VertexCoords [][]float64
	EdgeIndices  [][][2]int
	FaceIndices  [][][]int
	VWords       []Word
	VTable       *cosettable.Table
}

// NumVertices returns len(VertexCoords).
func (p *Polytope) NumVertices() int { return len(p.VertexCoords) }

// NumEdges returns the total edge count across every orbit.
func (p *Polytope) NumEdges() int {
	n := 0
	for _, orbit := range p.EdgeIndices {
		n += len(orbit)
	}

	return n
}

// NumFaces returns the total face count across every orbit.
func (p *Polytope) NumFaces() int {
	n := 0
	for _, orbit := range p.FaceIndices {
		n += len(orbit)
	}

	return n
}

// LatexWords renders VWords as a LaTeX array, symbol subscripted by
// generator index (or, for snub presentations, by generator index / 2
// since rotation letters come in ⟨gen, gen⁻¹⟩ pairs), cols columns wide.
func (p *Polytope) LatexWords(symbol string, cols int, snub bool) string {
	var b strings.Builder
	for i, word := range p.VWords {
		if i > 0 && i%cols == 0 {
			b.WriteString(`\\`)
		}
		b.WriteString(wordToLatex(word, symbol, snub))
		if i%cols != cols-1 {
			b.WriteString("&")
		}
	}

	cells := strings.Repeat("l", cols)

	return fmt.Sprintf(`\begin{array}{%s}%s\end{array}`, cells, b.String())
}

func wordToLatex(w Word, symbol string, snub bool) string {
	if len(w) == 0 {
		return "e"
	}
	var b strings.Builder
	for _, g := range w {
		idx := g
		if snub {
			idx = g / 2
		}
		fmt.Fprintf(&b, "%s_{%d}", symbol, idx)
	}

	return b.String()
}

// Project4D returns a copy of VertexCoords stereographically projected
// from 5 to 4 dimensions: each vertex v maps to v[0:4]/(pole - v[4]).
// Returns ErrWrongDimension if VertexCoords are not 5-dimensional.
func (p *Polytope) Project4D(pole float64) ([][]float64, error) {
	out := make([][]float64, len(p.VertexCoords))
	for i, v := range p.VertexCoords {
		if len(v) != 5 {
			return nil, fmt.Errorf("polytope.Project4D: vertex %d has dimension %d, want 5: %w", i, len(v), ErrWrongDimension)
		}
		denom := pole - v[4]
		proj := make([]float64, 4)
		for k := 0; k < 4; k++ {
			proj[k] = v[k] / denom
		}
		out[i] = proj
	}

	return out, nil
}
