package snub

import (
	"context"

	"github.com/katalvlaran/polywythoff/cosettable"
	"github.com/katalvlaran/polywythoff/descriptor"
	"github.com/katalvlaran/polywythoff/geometry"
	"github.com/katalvlaran/polywythoff/polytope"
	"github.com/katalvlaran/polywythoff/symmetry"
)

// cell24Diagram is the demitesseract [3^(1,1,1)] diagram: ρ0-ρ1-ρ2 in a
// chain, with ρ1-ρ3 a second branch (ρ0 and ρ3, ρ2 and ρ3 orthogonal).
var cell24Diagram = []descriptor.Rational{
	descriptor.R(3), descriptor.R(2), descriptor.R(2), // (0,1) (0,2) (0,3)
	descriptor.R(3), descriptor.R(3), // (1,2) (1,3)
	descriptor.R(2), // (2,3)
}

// rotation letters for the snub-24-cell presentation: r = ρ0ρ1,
// s = ρ1ρ2, t = ρ1ρ3.
const (
	cellR    = 0
	cellRInv = 1
	cellS    = 2
	cellSInv = 3
	cellT    = 4
	cellTInv = 5
)

var cell24Inverses = []int{cellRInv, cellR, cellSInv, cellS, cellTInv, cellT}

var cell24Pairs = map[int][2]int{
	cellR:    {0, 1},
	cellRInv: {1, 0},
	cellS:    {1, 2},
	cellSInv: {2, 1},
	cellT:    {1, 3},
	cellTInv: {3, 1},
}

// Snub24Cell builds the snub 24-cell, the fixed demitesseract
// [3^(1,1,1)]+ rotation-subgroup specialization of the snub
// construction: three generating rotations r, s, t with
// r³ = s³ = t³ = (rs)² = (rt)² = (s⁻¹t)² = 1.
type Snub24Cell struct {
	desc  *descriptor.Descriptor
	built bool
}

// NewSnub24Cell builds the (fixed, parameter-free) snub-24-cell
// builder. The error return exists only to mirror the other
// constructors' signatures; the built-in diagram is always valid.
func NewSnub24Cell() (*Snub24Cell, error) {
	desc, err := descriptor.NewFromUpperTriangle(cell24Diagram, []float64{1, 1, 1, 1})
	if err != nil {
		return nil, err
	}

	return &Snub24Cell{desc: desc}, nil
}

func (b *Snub24Cell) relators() []cosettable.Word {
	return []cosettable.Word{
		repeatWord(cosettable.Word{cellR}, 3),
		repeatWord(cosettable.Word{cellS}, 3),
		repeatWord(cosettable.Word{cellT}, 3),
		repeatWord(cosettable.Word{cellR, cellS}, 2),
		repeatWord(cosettable.Word{cellR, cellT}, 2),
		repeatWord(cosettable.Word{cellSInv, cellT}, 2),
		{cellR, cellRInv},
		{cellS, cellSInv},
		{cellT, cellTInv},
	}
}

// BuildGeometry runs the construction. Calling it twice returns
// ErrAlreadyBuilt.
func (b *Snub24Cell) BuildGeometry(ctx context.Context, opts ...cosettable.Option) (*polytope.Polytope, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}

	geo, err := geometry.NewStandardGeometry(b.desc)
	if err != nil {
		return nil, err
	}
	action := symmetry.RotationAction{Geo: geo, Pairs: cell24Pairs}
	relators := b.relators()

	vtable, err := cosettable.New(6, cell24Inverses, relators, nil, opts...)
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

	rotations := []rotation{
		{cosettable.Word{cellR}, 3},
		{cosettable.Word{cellS}, 3},
		{cosettable.Word{cellT}, 3},
		{cosettable.Word{cellR, cellS}, 2},
		{cosettable.Word{cellR, cellT}, 2},
		{cosettable.Word{cellSInv, cellT}, 2},
	}

	var edgeOrbits [][][2]int
	for _, rot := range rotations {
		e1, err := vtable.Move(0, rot.word)
		if err != nil {
			return nil, err
		}
		reps := vwords
		if rot.order == 2 {
			rtable, err := cosettable.New(6, cell24Inverses, relators, []cosettable.Word{rot.word}, opts...)
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
	}

	var faceOrbits [][][]int
	for _, rot := range rotations[:3] { // r, s, t: the only order-3 rotations
		base := make([]int, rot.order)
		for k := 0; k < rot.order; k++ {
			base[k], err = vtable.Move(0, repeatWord(rot.word, k))
			if err != nil {
				return nil, err
			}
		}
		ftable, err := cosettable.New(6, cell24Inverses, relators, []cosettable.Word{rot.word}, opts...)
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

	// four special triangle faces with trivial stabilizers; each pair
	// names the words for the triangle's two non-base vertices.
	triangles := [][2]cosettable.Word{
		{{cellS}, {cellR, cellS}},
		{{cellT}, {cellR, cellT}},
		{{cellS}, {cellTInv, cellS}},
		{{cellR, cellS}, {cellTInv, cellS}},
	}
	for _, tri := range triangles {
		p1, err := vtable.Move(0, tri[0])
		if err != nil {
			return nil, err
		}
		p2, err := vtable.Move(0, tri[1])
		if err != nil {
			return nil, err
		}
		orbit, err := movePoints(vtable, []int{0, p1, p2}, vwords)
		if err != nil {
			return nil, err
		}
		faceOrbits = append(faceOrbits, orbit)
	}

	b.built = true

	return &polytope.Polytope{
		VertexCoords: coords,
		EdgeIndices:  edgeOrbits,
		FaceIndices:  faceOrbits,
		VWords:       vwords,
		VTable:       vtable,
	}, nil
}
