package polytope_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polywythoff/polytope"
)

func TestNumVerticesEdgesFaces(t *testing.T) {
	p := &polytope.Polytope{
		VertexCoords: [][]float64{{0, 0, 0}, {1, 0, 0}},
		EdgeIndices:  [][][2]int{{{0, 1}}, {{1, 0}}},
		FaceIndices:  [][][]int{{{0, 1}}},
	}
	assert.Equal(t, 2, p.NumVertices())
	assert.Equal(t, 2, p.NumEdges())
	assert.Equal(t, 1, p.NumFaces())
}

func TestLatexWordsIdentityAndWords(t *testing.T) {
	p := &polytope.Polytope{
		VWords: []polytope.Word{{}, {0}, {0, 1}, {2}},
	}
	got := p.LatexWords(`\rho`, 2, false)
	assert.Equal(t, `\begin{array}{ll}e&\rho_{0}\\\rho_{0}\rho_{1}&\rho_{2}`+`\end{array}`, got)
}

func TestLatexWordsSnubHalvesIndex(t *testing.T) {
	p := &polytope.Polytope{VWords: []polytope.Word{{2, 3}}}
	got := p.LatexWords(`\rho`, 1, true)
	assert.Equal(t, `\begin{array}{l}\rho_{1}\rho_{1}\end{array}`, got)
}

func TestProject4D(t *testing.T) {
	p := &polytope.Polytope{
		VertexCoords: [][]float64{{1, 2, 3, 4, 0.3}},
	}
	out, err := p.Project4D(1.3)
	require.NoError(t, err)
	require.Len(t, out, 1)
	denom := 1.3 - 0.3
	assert.InDelta(t, 1/denom, out[0][0], 1e-12)
	assert.InDelta(t, 4/denom, out[0][3], 1e-12)
}

func TestProject4DWrongDimension(t *testing.T) {
	p := &polytope.Polytope{VertexCoords: [][]float64{{1, 2, 3}}}
	_, err := p.Project4D(1.3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, polytope.ErrWrongDimension))
}
