package geometry_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polywythoff/descriptor"
	"github.com/katalvlaran/polywythoff/geometry"
	"github.com/katalvlaran/polywythoff/matrix"
)

func tetrahedronDescriptor(t *testing.T) *descriptor.Descriptor {
	t.Helper()
	d, err := descriptor.NewFromUpperTriangle(
		[]descriptor.Rational{descriptor.R(3), descriptor.R(2), descriptor.R(3)},
		[]float64{1, 0, 0},
	)
	require.NoError(t, err)

	return d
}

func TestNewStandardGeometryDim(t *testing.T) {
	g, err := geometry.NewStandardGeometry(tetrahedronDescriptor(t))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Dim())
}

func TestReflectIsInvolution(t *testing.T) {
	g, err := geometry.NewStandardGeometry(tetrahedronDescriptor(t))
	require.NoError(t, err)

	v0 := g.InitialPoint()
	for mirror := 0; mirror < g.Dim(); mirror++ {
		once, err := g.Reflect(mirror, v0)
		require.NoError(t, err)
		twice, err := g.Reflect(mirror, once)
		require.NoError(t, err)
		for k := range v0 {
			assert.InDelta(t, v0[k], twice[k], 1e-9, "reflecting twice must return to the start")
		}
	}
}

func TestReflectPreservesNorm(t *testing.T) {
	g, err := geometry.NewStandardGeometry(tetrahedronDescriptor(t))
	require.NoError(t, err)

	v0 := g.InitialPoint()
	normBefore := matrix.Norm(v0)
	refl, err := g.Reflect(0, v0)
	require.NoError(t, err)
	assert.InDelta(t, normBefore, matrix.Norm(refl), 1e-9)
}

func TestInitialPointSatisfiesDistances(t *testing.T) {
	d := tetrahedronDescriptor(t)
	g, err := geometry.NewStandardGeometry(d)
	require.NoError(t, err)

	v0 := g.InitialPoint()
	dist := d.InitDist()
	for mirror := 0; mirror < g.Dim(); mirror++ {
		reflected, err := g.Reflect(mirror, v0)
		require.NoError(t, err)
		displacement := 0.0
		for k := range v0 {
			diff := v0[k] - reflected[k]
			displacement += diff * diff
		}
		// |v0 - reflect(v0)| = 2*|dist[mirror]| since mirror's unit
		// normal makes the reflection formula p' = p - 2*dot(p,n)*n.
		assert.InDelta(t, 2*dist[mirror], math.Sqrt(displacement), 1e-9)
	}
}

func TestReflectRejectsOutOfRangeMirror(t *testing.T) {
	g, err := geometry.NewStandardGeometry(tetrahedronDescriptor(t))
	require.NoError(t, err)

	_, err = g.Reflect(99, g.InitialPoint())
	require.Error(t, err)
	assert.True(t, errors.Is(err, geometry.ErrGeneratorRange))
}

func TestDegenerateDiagramIsRejected(t *testing.T) {
	// The (4,4,4) triangle group is hyperbolic, not spherical: its Gram
	// matrix has a negative eigenvalue (1/4+1/4+1/4 < 1), so no real
	// unit normals in rank 3 can realize it.
	d, err := descriptor.NewFromUpperTriangle(
		[]descriptor.Rational{descriptor.R(4), descriptor.R(4), descriptor.R(4)},
		[]float64{1, 0, 0},
	)
	require.NoError(t, err)

	_, err = geometry.NewStandardGeometry(d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, geometry.ErrDegenerateGeometry))
}

