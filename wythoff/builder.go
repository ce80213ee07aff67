package wythoff

import (
	"context"
	"fmt"

	"github.com/katalvlaran/polywythoff/cosettable"
	"github.com/katalvlaran/polywythoff/descriptor"
	"github.com/katalvlaran/polywythoff/geometry"
	"github.com/katalvlaran/polywythoff/polytope"
	"github.com/katalvlaran/polywythoff/symmetry"
)

// Builder constructs a uniform polytope from a Coxeter descriptor via
// Wythoff's kaleidoscopic construction. Construct with NewPolyhedron,
// NewPolychoron or NewPolytope5D, then call BuildGeometry once.
type Builder struct {
	desc  *descriptor.Descriptor
	built bool
}

func newBuilder(upper []descriptor.Rational, initDist []float64, wantDim int, extra ...descriptor.Word) (*Builder, error) {
	desc, err := descriptor.NewFromUpperTriangle(upper, initDist, extra...)
	if err != nil {
		return nil, err
	}
	if desc.Dim() != wantDim {
		return nil, fmt.Errorf("wythoff: descriptor has dimension %d, want %d: %w", desc.Dim(), wantDim, descriptor.ErrInvalidDescriptor)
	}

	return &Builder{desc: desc}, nil
}

// NewPolyhedron builds a 3-mirror (polyhedron) Wythoff construction.
// upper must have length 3, initDist length 3.
func NewPolyhedron(upper []descriptor.Rational, initDist []float64, extra ...descriptor.Word) (*Builder, error) {
	return newBuilder(upper, initDist, 3, extra...)
}

// NewPolychoron builds a 4-mirror (polychoron) Wythoff construction.
// upper must have length 6, initDist length 4.
func NewPolychoron(upper []descriptor.Rational, initDist []float64, extra ...descriptor.Word) (*Builder, error) {
	return newBuilder(upper, initDist, 4, extra...)
}

// NewPolytope5D builds a 5-mirror (5-polytope) Wythoff construction.
// upper must have length 10, initDist length 5.
func NewPolytope5D(upper []descriptor.Rational, initDist []float64, extra ...descriptor.Word) (*Builder, error) {
	return newBuilder(upper, initDist, 5, extra...)
}

// Descriptor returns the underlying Coxeter descriptor.
func (b *Builder) Descriptor() *descriptor.Descriptor { return b.desc }

// toCosetWords converts descriptor relation words to the coset table's
// word type (both are defined as []int; descriptor.Word is a distinct
// named type from cosettable.Word so each element needs its own
// conversion).
func toCosetWords(ws []descriptor.Word) []cosettable.Word {
	out := make([]cosettable.Word, len(ws))
	for i, w := range ws {
		out[i] = cosettable.Word(w)
	}

	return out
}

// singletons builds one subgroup-generator word per generator in gens.
func singletons(gens []int) []cosettable.Word {
	out := make([]cosettable.Word, len(gens))
	for i, g := range gens {
		out[i] = cosettable.Word{g}
	}

	return out
}

// inactiveMirrors returns the indices of every inactive generator.
func inactiveMirrors(desc *descriptor.Descriptor) []int {
	var out []int
	for i := 0; i < desc.Dim(); i++ {
		if !desc.IsActive(i) {
			out = append(out, i)
		}
	}

	return out
}

// stabilizerGens returns base ∪ the inactive mirrors orthogonal to
// every generator in base, the stabilizer-generator idiom shared by the
// edge and face constructions.
func stabilizerGens(desc *descriptor.Descriptor, base []int) []int {
	out := append([]int(nil), base...)

	return append(out, desc.OrthogonalInactive(base)...)
}

// repeatPair returns the word (i,j) repeated k times.
func repeatPair(i, j, k int) cosettable.Word {
	out := make(cosettable.Word, 0, 2*k)
	for n := 0; n < k; n++ {
		out = append(out, i, j)
	}

	return out
}

// BuildGeometry runs the Wythoff construction: one coset enumeration
// for the vertex orbit, then one per active mirror for edges and one
// per generator pair that has a base face for faces. Calling BuildGeometry twice returns
// ErrAlreadyBuilt.
func (b *Builder) BuildGeometry(ctx context.Context, opts ...cosettable.Option) (*polytope.Polytope, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}

	geo, err := geometry.NewStandardGeometry(b.desc)
	if err != nil {
		return nil, err
	}
	action := symmetry.CoxeterAction{Geo: geo}
	n := b.desc.Dim()
	relators := toCosetWords(b.desc.SymmetryRelations())

	vtable, err := cosettable.NewInvolutive(n, relators, singletons(inactiveMirrors(b.desc)), opts...)
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

	edgeOrbits, err := b.buildEdges(ctx, vtable, relators, opts)
	if err != nil {
		return nil, err
	}
	faceOrbits, err := b.buildFaces(ctx, vtable, relators, opts)
	if err != nil {
		return nil, err
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

// buildEdges enumerates one orbit of edges per active mirror i: the
// base edge (0, next(0,i)) carried around by the stabilizer of i.
func (b *Builder) buildEdges(ctx context.Context, vtable *cosettable.Table, relators []cosettable.Word, opts []cosettable.Option) ([][][2]int, error) {
	n := b.desc.Dim()
	var orbits [][][2]int
	for i := 0; i < n; i++ {
		if !b.desc.IsActive(i) {
			continue
		}
		e1, err := vtable.Next(0, i)
		if err != nil {
			return nil, err
		}

		stab := singletons(stabilizerGens(b.desc, []int{i}))
		etable, err := cosettable.NewInvolutive(n, relators, stab, opts...)
		if err != nil {
			return nil, err
		}
		if err := etable.Enumerate(ctx); err != nil {
			return nil, err
		}
		ewords, err := etable.Words()
		if err != nil {
			return nil, err
		}

		orbit := make([][2]int, 0, len(ewords))
		seen := make(map[[2]int]bool, len(ewords))
		for _, w := range ewords {
			a, err := vtable.Move(0, w)
			if err != nil {
				return nil, err
			}
			bb, err := vtable.Move(e1, w)
			if err != nil {
				return nil, err
			}
			key := [2]int{a, bb}
			canon := key
			if canon[0] > canon[1] {
				canon[0], canon[1] = canon[1], canon[0]
			}
			if seen[canon] {
				continue
			}
			seen[canon] = true
			orbit = append(orbit, key)
		}
		orbits = append(orbits, orbit)
	}

	return orbits, nil
}

// buildFaces enumerates one orbit of faces per generator pair (i,j),
// skipping pairs whose base face degenerates (neither mirror active,
// or only one active with a dihedral order of 2).
func (b *Builder) buildFaces(ctx context.Context, vtable *cosettable.Table, relators []cosettable.Word, opts []cosettable.Option) ([][][]int, error) {
	n := b.desc.Dim()
	var orbits [][][]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			base, err := b.baseFace(vtable, i, j)
			if err != nil {
				return nil, err
			}
			if base == nil {
				continue // DegeneratePolytope: no face of this pair-type
			}

			stab := singletons(stabilizerGens(b.desc, []int{i, j}))
			ftable, err := cosettable.NewInvolutive(n, relators, stab, opts...)
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

			orbit := make([][]int, 0, len(fwords))
			for _, w := range fwords {
				face := make([]int, len(base))
				for k, v := range base {
					face[k], err = vtable.Move(v, w)
					if err != nil {
						return nil, err
					}
				}
				orbit = append(orbit, face)
			}
			orbits = append(orbits, orbit)
		}
	}

	return orbits, nil
}

// baseFace returns the base-face vertex-index cycle for mirror pair
// (i,j), or nil if no face of this pair-type exists.
func (b *Builder) baseFace(vtable *cosettable.Table, i, j int) ([]int, error) {
	m := b.desc.M(i, j).P
	activeI, activeJ := b.desc.IsActive(i), b.desc.IsActive(j)

	var base []int
	switch {
	case activeI && activeJ:
		for k := 0; k < m; k++ {
			v1, err := vtable.Move(0, repeatPair(i, j, k))
			if err != nil {
				return nil, err
			}
			w2 := append(cosettable.Word{j}, repeatPair(i, j, k)...)
			v2, err := vtable.Move(0, w2)
			if err != nil {
				return nil, err
			}
			base = append(base, v1, v2)
		}
	case activeI != activeJ && m > 2:
		for k := 0; k < m; k++ {
			v, err := vtable.Move(0, repeatPair(i, j, k))
			if err != nil {
				return nil, err
			}
			base = append(base, v)
		}
	default:
		return nil, nil
	}

	return base, nil
}
