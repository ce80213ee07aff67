package descriptor

import (
	"fmt"
	"math"
)

// epsilon is the numerical tolerance used for active-mirror detection
// from InitDist, per spec: all geometric comparisons use ~1e-8.
const epsilon = 1e-8

// Word is a finite ordered sequence of generator indices. The empty word
// is the identity. Word values are treated as immutable once built.
type Word []int

// Repeat returns w concatenated with itself n times (n==0 yields the
// empty word), the Coxeter-relation idiom "(i,j)^m" meaning the word
// (i,j) repeated m times.
func (w Word) Repeat(n int) Word {
	out := make(Word, 0, len(w)*n)
	for i := 0; i < n; i++ {
		out = append(out, w...)
	}

	return out
}

// Descriptor is the immutable Coxeter Descriptor: a Coxeter matrix, the
// initial-point distances, and any extra relations. Construct with
// NewFromUpperTriangle; nothing in this package mutates a *Descriptor
// after it is returned.
type Descriptor struct {
	n        int
	matrix   [][]Rational
	initDist []float64
	extra    []Word
	active   []bool
}

// NewFromUpperTriangle builds a Descriptor from the upper-triangle
// row-major encoding of an n×n Coxeter matrix — upper has length
// n(n-1)/2, in order (0,1),(0,2),...,(0,n-1),(1,2),...,(n-2,n-1) — plus
// the n initial distances and any extra relations.
//
// Returns ErrInvalidDescriptor if upper's length is not a triangular
// number, if len(initDist) != n, or if any entry is < 2 (Q>0 assumed by
// construction of Rational).
func NewFromUpperTriangle(upper []Rational, initDist []float64, extra ...Word) (*Descriptor, error) {
	n, ok := triangularDim(len(upper))
	if !ok {
		return nil, fmt.Errorf("NewFromUpperTriangle: diagram length %d is not n(n-1)/2 for any n: %w", len(upper), ErrInvalidDescriptor)
	}
	if len(initDist) != n {
		return nil, fmt.Errorf("NewFromUpperTriangle: init_dist length %d != dimension %d: %w", len(initDist), n, ErrInvalidDescriptor)
	}

	m := make([][]Rational, n)
	for i := range m {
		m[i] = make([]Rational, n)
		m[i][i] = R(1)
	}
	idx := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			entry := upper[idx]
			idx++
			if entry.Q <= 0 || entry.Float() < 2 {
				return nil, fmt.Errorf("NewFromUpperTriangle: M[%d][%d]=%s must be >= 2: %w", i, j, entry, ErrInvalidDescriptor)
			}
			m[i][j] = entry
			m[j][i] = entry
		}
	}

	active := make([]bool, n)
	for i, d := range initDist {
		if d < 0 {
			return nil, fmt.Errorf("NewFromUpperTriangle: init_dist[%d]=%g must be non-negative: %w", i, d, ErrInvalidDescriptor)
		}
		active[i] = math.Abs(d) > epsilon
	}

	dist := make([]float64, n)
	copy(dist, initDist)

	extraCopy := make([]Word, len(extra))
	for i, w := range extra {
		wc := make(Word, len(w))
		copy(wc, w)
		extraCopy[i] = wc
	}

	return &Descriptor{n: n, matrix: m, initDist: dist, extra: extraCopy, active: active}, nil
}

// triangularDim returns n such that n(n-1)/2 == length, or ok=false.
func triangularDim(length int) (n int, ok bool) {
	// n(n-1)/2 = length  <=>  n^2 - n - 2*length = 0
	n = int((1 + math.Sqrt(1+8*float64(length))) / 2)
	for _, cand := range []int{n - 1, n, n + 1} {
		if cand > 0 && cand*(cand-1)/2 == length {
			return cand, true
		}
	}

	return 0, false
}

// Dim returns the number of mirrors (the dimension of the reflection
// representation).
func (d *Descriptor) Dim() int { return d.n }

// M returns the Coxeter matrix entry M[i][j].
func (d *Descriptor) M(i, j int) Rational { return d.matrix[i][j] }

// InitDist returns a copy of the initial-point distance vector.
func (d *Descriptor) InitDist() []float64 {
	out := make([]float64, len(d.initDist))
	copy(out, d.initDist)

	return out
}

// Active reports, for each mirror, whether the initial vertex has
// non-zero distance to it (active) or lies on it (inactive).
func (d *Descriptor) Active() []bool {
	out := make([]bool, len(d.active))
	copy(out, d.active)

	return out
}

// IsActive reports whether mirror i is active.
func (d *Descriptor) IsActive(i int) bool { return d.active[i] }

// Extra returns the extra relations supplied at construction.
func (d *Descriptor) Extra() []Word {
	out := make([]Word, len(d.extra))
	copy(out, d.extra)

	return out
}

// SymmetryGens returns the generator alphabet {0, ..., n-1}.
func (d *Descriptor) SymmetryGens() []int {
	out := make([]int, d.n)
	for i := range out {
		out[i] = i
	}

	return out
}

// SymmetryRelations returns the standard Coxeter relations (i,j)^M[i][j]
// for every i<=j (i==j gives the involution relation (i,i)^1 = (i,i)),
// followed by the descriptor's extra relations.
func (d *Descriptor) SymmetryRelations() []Word {
	rels := make([]Word, 0, d.n*(d.n+1)/2+len(d.extra))
	for i := 0; i < d.n; i++ {
		for j := i; j < d.n; j++ {
			m := d.matrix[i][j]
			// The abstract relation order is the numerator P, not the
			// angle ratio P/Q: a pentagram mirror pair (5/2) still
			// satisfies (i,j)^5 = 1 as an abstract group relation — Q
			// only changes how the resulting pentagonal orbit is
			// threaded into a star when drawn, which extra relations
			// and the builder layer handle, not this relation set.
			order := m.P
			base := Word{i, j}
			rels = append(rels, base.Repeat(order))
		}
	}
	rels = append(rels, d.extra...)

	return rels
}

// OrthogonalInactive returns the inactive mirrors that commute with
// every generator in subgens (M[k][x] == 2 for all x in subgens),
// i.e. the generators that the stabilizer of a vertex/edge/face built
// from subgens must also include.
func (d *Descriptor) OrthogonalInactive(subgens []int) []int {
	var out []int
	for k := 0; k < d.n; k++ {
		if d.active[k] {
			continue
		}
		commutes := true
		for _, x := range subgens {
			if d.matrix[k][x].Float() != 2 {
				commutes = false
				break
			}
		}
		if commutes {
			out = append(out, k)
		}
	}

	return out
}
