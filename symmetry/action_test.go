package symmetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polywythoff/descriptor"
	"github.com/katalvlaran/polywythoff/geometry"
	"github.com/katalvlaran/polywythoff/symmetry"
)

func newCubeGeometry(t *testing.T) geometry.Geometry {
	t.Helper()
	d, err := descriptor.NewFromUpperTriangle(
		[]descriptor.Rational{descriptor.R(4), descriptor.R(2), descriptor.R(3)},
		[]float64{1, 0, 0},
	)
	require.NoError(t, err)
	g, err := geometry.NewStandardGeometry(d)
	require.NoError(t, err)

	return g
}

func TestCoxeterActionEmptyWordIsIdentity(t *testing.T) {
	g := newCubeGeometry(t)
	act := symmetry.CoxeterAction{Geo: g}
	v0 := g.InitialPoint()

	out, err := act.Apply(nil, v0)
	require.NoError(t, err)
	assert.Equal(t, v0, out)
}

func TestCoxeterActionSingleLetterMatchesReflect(t *testing.T) {
	g := newCubeGeometry(t)
	act := symmetry.CoxeterAction{Geo: g}
	v0 := g.InitialPoint()

	want, err := g.Reflect(1, v0)
	require.NoError(t, err)
	got, err := act.Apply(symmetry.Word{1}, v0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCoxeterActionInvolutionReturnsToStart(t *testing.T) {
	g := newCubeGeometry(t)
	act := symmetry.CoxeterAction{Geo: g}
	v0 := g.InitialPoint()

	got, err := act.Apply(symmetry.Word{0, 0}, v0)
	require.NoError(t, err)
	for i := range v0 {
		assert.InDelta(t, v0[i], got[i], 1e-9)
	}
}

func TestRotationActionAppliesPairInOrder(t *testing.T) {
	g := newCubeGeometry(t)
	act := symmetry.RotationAction{Geo: g, Pairs: map[int][2]int{0: {0, 1}}}
	v0 := g.InitialPoint()

	step1, err := g.Reflect(0, v0)
	require.NoError(t, err)
	want, err := g.Reflect(1, step1)
	require.NoError(t, err)

	got, err := act.Apply(symmetry.Word{0}, v0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRotationActionUnknownLetter(t *testing.T) {
	g := newCubeGeometry(t)
	act := symmetry.RotationAction{Geo: g, Pairs: map[int][2]int{0: {0, 1}}}

	_, err := act.Apply(symmetry.Word{7}, g.InitialPoint())
	require.Error(t, err)
	assert.True(t, errors.Is(err, symmetry.ErrUnknownLetter))
}
