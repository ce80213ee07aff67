package symmetry

import (
	"fmt"

	"github.com/katalvlaran/polywythoff/cosettable"
	"github.com/katalvlaran/polywythoff/geometry"
)

// Word is the letter sequence an Action evaluates; it is the same
// alphabet a cosettable.Table enumerates cosets over.
type Word = cosettable.Word

// Action evaluates a word as a point transform of a geometry.Geometry.
type Action interface {
	// Apply returns the image of p after applying every letter of w in
	// order, left to right.
	Apply(w Word, p []float64) ([]float64, error)
}

// CoxeterAction applies each letter g directly as geo.Reflect(g, ·): the
// reflection-group mode, used by the Wythoff builder.
type CoxeterAction struct {
	Geo geometry.Geometry
}

// Apply implements Action.
func (a CoxeterAction) Apply(w Word, p []float64) ([]float64, error) {
	cur := p
	for _, g := range w {
		var err error
		cur, err = a.Geo.Reflect(g, cur)
		if err != nil {
			return nil, err
		}
	}

	return cur, nil
}

// RotationAction applies each letter as a fixed ordered pair of
// reflections: letters index into Pairs, and each pair (i, j) is
// evaluated as Reflect(i, ·) followed by Reflect(j, ·), realizing the
// oriented rotation R_i R_j a snub or snub-24-cell builder names with a
// single rotation letter.
type RotationAction struct {
	Geo   geometry.Geometry
	Pairs map[int][2]int
}

// Apply implements Action.
func (a RotationAction) Apply(w Word, p []float64) ([]float64, error) {
	cur := p
	for _, letter := range w {
		pair, ok := a.Pairs[letter]
		if !ok {
			return nil, fmt.Errorf("symmetry.RotationAction.Apply: letter %d: %w", letter, ErrUnknownLetter)
		}
		var err error
		cur, err = a.Geo.Reflect(pair[0], cur)
		if err != nil {
			return nil, err
		}
		cur, err = a.Geo.Reflect(pair[1], cur)
		if err != nil {
			return nil, err
		}
	}

	return cur, nil
}
