package snub

import (
	"context"
	"fmt"

	"github.com/katalvlaran/polywythoff/cosettable"
	"github.com/katalvlaran/polywythoff/descriptor"
	"github.com/katalvlaran/polywythoff/geometry"
	"github.com/katalvlaran/polywythoff/polytope"
	"github.com/katalvlaran/polywythoff/symmetry"
)

// rotation generator letters for the snub-polyhedron presentation:
// r = ρ0ρ1, s = ρ1ρ2.
const (
	letterR    = 0
	letterRInv = 1
	letterS    = 2
	letterSInv = 3
)

var polyhedronInverses = []int{letterRInv, letterR, letterSInv, letterS}

var polyhedronPairs = map[int][2]int{
	letterR:    {0, 1},
	letterRInv: {1, 0},
	letterS:    {1, 2},
	letterSInv: {2, 1},
}

// Polyhedron builds a snub polyhedron from the rotation subgroup of a
// 3-mirror Coxeter diagram: r = ρ0ρ1 and s = ρ1ρ2 with r^p = s^q =
// (rs)^M[0][2] = 1.
type Polyhedron struct {
	desc  *descriptor.Descriptor
	built bool
}

// NewPolyhedron validates the diagram and captures its inputs; call
// BuildGeometry to run the construction.
func NewPolyhedron(upper []descriptor.Rational, initDist []float64, extra ...descriptor.Word) (*Polyhedron, error) {
	desc, err := descriptor.NewFromUpperTriangle(upper, initDist, extra...)
	if err != nil {
		return nil, err
	}
	if desc.Dim() != 3 {
		return nil, fmt.Errorf("snub.NewPolyhedron: descriptor has dimension %d, want 3: %w", desc.Dim(), descriptor.ErrInvalidDescriptor)
	}

	return &Polyhedron{desc: desc}, nil
}

type rotation struct {
	word  cosettable.Word
	order int
}

func (b *Polyhedron) rotations() []rotation {
	return []rotation{
		{cosettable.Word{letterR}, b.desc.M(0, 1).P},
		{cosettable.Word{letterS}, b.desc.M(1, 2).P},
		{cosettable.Word{letterR, letterS}, b.desc.M(0, 2).P},
	}
}

func (b *Polyhedron) relators() ([]cosettable.Word, error) {
	rels := []cosettable.Word{
		repeatWord(cosettable.Word{letterR}, b.desc.M(0, 1).P),
		repeatWord(cosettable.Word{letterS}, b.desc.M(1, 2).P),
		repeatWord(cosettable.Word{letterR, letterS}, b.desc.M(0, 2).P),
		{letterR, letterRInv},
		{letterS, letterSInv},
	}
	for _, w := range b.desc.Extra() {
		tw, err := translateExtra(w)
		if err != nil {
			return nil, err
		}
		rels = append(rels, tw)
	}

	return rels, nil
}

// BuildGeometry runs the rotation-subgroup Wythoff construction.
// Calling it twice returns ErrAlreadyBuilt.
func (b *Polyhedron) BuildGeometry(ctx context.Context, opts ...cosettable.Option) (*polytope.Polytope, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}

	geo, err := geometry.NewStandardGeometry(b.desc)
	if err != nil {
		return nil, err
	}
	action := symmetry.RotationAction{Geo: geo, Pairs: polyhedronPairs}

	relators, err := b.relators()
	if err != nil {
		return nil, err
	}

	vtable, err := cosettable.New(4, polyhedronInverses, relators, nil, opts...)
	if err != nil {
		return nil, err
	}
	if err := vtable.Enumerate(ctx); err != nil {
		return nil, err
	}
	nv, err := vtable.NumCosets()
	if err != nil {
		return nil, err
	}
	vwords, err := vtable.Words()
	if err != nil {
		return nil, err
	}

	v0 := geo.InitialPoint()
	coords := make([][]float64, nv)
	for c, w := range vwords {
		coords[c], err = action.Apply(w, v0)
		if err != nil {
			return nil, err
		}
	}

	var edgeOrbits [][][2]int
	var faceOrbits [][][]int
	for _, rot := range b.rotations() {
		e1, err := vtable.Move(0, rot.word)
		if err != nil {
			return nil, err
		}

		reps := vwords
		if rot.order == 2 {
			rtable, err := cosettable.New(4, polyhedronInverses, relators, []cosettable.Word{rot.word}, opts...)
			if err != nil {
				return nil, err
			}
			if err := rtable.Enumerate(ctx); err != nil {
				return nil, err
			}
			reps, err = rtable.Words()
			if err != nil {
				return nil, err
			}
		}
		orbit, err := edgeOrbit(vtable, 0, e1, reps)
		if err != nil {
			return nil, err
		}
		edgeOrbits = append(edgeOrbits, orbit)

		if rot.order > 2 {
			base := make([]int, rot.order)
			for k := 0; k < rot.order; k++ {
				base[k], err = vtable.Move(0, repeatWord(rot.word, k))
				if err != nil {
					return nil, err
				}
			}
			ftable, err := cosettable.New(4, polyhedronInverses, relators, []cosettable.Word{rot.word}, opts...)
			if err != nil {
				return nil, err
			}
			if err := ftable.Enumerate(ctx); err != nil {
				return nil, err
			}
			fwords, err := ftable.Words()
			if err != nil {
				return nil, err
			}
			orbit, err := movePoints(vtable, base, fwords)
			if err != nil {
				return nil, err
			}
			faceOrbits = append(faceOrbits, orbit)
		}
	}

	// the triangular snub face (0, v·s, v·rs): its three edges lie in
	// three different orbits, so its stabilizer is trivial — the full
	// rotation group, same as the vertex orbit.
	vS, err := vtable.Move(0, cosettable.Word{letterS})
	if err != nil {
		return nil, err
	}
	vRS, err := vtable.Move(0, cosettable.Word{letterR, letterS})
	if err != nil {
		return nil, err
	}
	triOrbit, err := movePoints(vtable, []int{0, vS, vRS}, vwords)
	if err != nil {
		return nil, err
	}
	faceOrbits = append(faceOrbits, triOrbit)

	b.built = true

	return &polytope.Polytope{
		VertexCoords: coords,
		EdgeIndices:  edgeOrbits,
		FaceIndices:  faceOrbits,
		VWords:       vwords,
		VTable:       vtable,
	}, nil
}
