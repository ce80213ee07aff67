package geometry

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polywythoff/descriptor"
	"github.com/katalvlaran/polywythoff/matrix"
)

// Geometry is the linear-algebra boundary the rest of this engine calls
// through: reflecting a point across a mirror, and the coordinates of
// the construction's initial point.
type Geometry interface {
	// Dim returns the ambient dimension (number of mirrors).
	Dim() int
	// Reflect returns the image of p under the reflection in mirror g.
	Reflect(g int, p []float64) ([]float64, error)
	// InitialPoint returns the starting vertex v0 used by the Wythoff
	// construction: the unique point at the configured distance from
	// every mirror.
	InitialPoint() []float64
}

// StandardGeometry is the default Geometry: mirror normals recovered
// from the Cholesky factor of the Coxeter matrix's Gram matrix, with
// reflection matrices built from those normals and the initial point
// found by solving for the distances supplied by the descriptor.
type StandardGeometry struct {
	dim         int
	normals     *matrix.Dense // row i is mirror i's unit normal
	reflections []*matrix.Dense
	v0          []float64
}

// NewStandardGeometry builds the mirror normals, reflection matrices
// and initial point for desc. Returns ErrDegenerateGeometry if the
// Coxeter matrix does not correspond to a finite reflection group
// realizable by real unit normals (Gram matrix not positive-definite).
func NewStandardGeometry(desc *descriptor.Descriptor) (*StandardGeometry, error) {
	n := desc.Dim()
	gram, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var v float64
			if i == j {
				v = 1
			} else {
				angle := math.Pi / desc.M(i, j).Float()
				v = -math.Cos(angle)
			}
			if err := gram.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	normals, err := matrix.Cholesky(gram)
	if err != nil {
		return nil, fmt.Errorf("geometry.NewStandardGeometry: %v: %w", err, ErrDegenerateGeometry)
	}

	reflections := make([]*matrix.Dense, n)
	for g := 0; g < n; g++ {
		normal, err := normals.Row(g)
		if err != nil {
			return nil, err
		}
		refl, err := reflectionMatrix(normal)
		if err != nil {
			return nil, err
		}
		reflections[g] = refl
	}

	v0, err := matrix.Solve(normals, desc.InitDist())
	if err != nil {
		return nil, fmt.Errorf("geometry.NewStandardGeometry: solving for initial point: %v: %w", err, ErrDegenerateGeometry)
	}

	return &StandardGeometry{dim: n, normals: normals, reflections: reflections, v0: v0}, nil
}

// reflectionMatrix returns I - 2·normal⊗normal, the Householder
// reflection fixing the hyperplane orthogonal to normal. normal is
// assumed unit length, which Cholesky guarantees (row i's self dot
// product equals the Gram diagonal entry, 1).
func reflectionMatrix(normal []float64) (*matrix.Dense, error) {
	n := len(normal)
	r, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := -2 * normal[i] * normal[j]
			if i == j {
				v += 1
			}
			if err := r.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// Dim returns the number of mirrors.
func (g *StandardGeometry) Dim() int { return g.dim }

// Reflect returns p·R_g, p treated as a row vector.
func (g *StandardGeometry) Reflect(gen int, p []float64) ([]float64, error) {
	if gen < 0 || gen >= g.dim {
		return nil, fmt.Errorf("geometry.Reflect: mirror %d out of range [0,%d): %w", gen, g.dim, ErrGeneratorRange)
	}

	return matrix.RowVecMul(p, g.reflections[gen])
}

// InitialPoint returns a copy of the construction's starting vertex.
func (g *StandardGeometry) InitialPoint() []float64 {
	out := make([]float64, len(g.v0))
	copy(out, g.v0)

	return out
}
