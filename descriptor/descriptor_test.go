package descriptor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polywythoff/descriptor"
)

func tetrahedronUpper() []descriptor.Rational {
	return []descriptor.Rational{descriptor.R(3), descriptor.R(2), descriptor.R(3)}
}

func TestNewFromUpperTriangleTetrahedron(t *testing.T) {
	d, err := descriptor.NewFromUpperTriangle(tetrahedronUpper(), []float64{1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, d.Dim())
	assert.Equal(t, descriptor.R(1), d.M(0, 0))
	assert.Equal(t, descriptor.R(3), d.M(0, 1))
	assert.Equal(t, descriptor.R(3), d.M(1, 0), "matrix must be symmetric")
	assert.True(t, d.IsActive(0))
	assert.False(t, d.IsActive(1))
	assert.False(t, d.IsActive(2))
}

func TestNewFromUpperTriangleBadLength(t *testing.T) {
	_, err := descriptor.NewFromUpperTriangle([]descriptor.Rational{descriptor.R(3)}, []float64{1, 0, 0})
	require.ErrorIs(t, err, descriptor.ErrInvalidDescriptor)
}

func TestNewFromUpperTriangleDimMismatch(t *testing.T) {
	_, err := descriptor.NewFromUpperTriangle(tetrahedronUpper(), []float64{1, 0})
	require.ErrorIs(t, err, descriptor.ErrInvalidDescriptor)
}

func TestNewFromUpperTriangleOffDiagonalTooSmall(t *testing.T) {
	upper := []descriptor.Rational{descriptor.R(1), descriptor.R(2), descriptor.R(3)}
	_, err := descriptor.NewFromUpperTriangle(upper, []float64{1, 0, 0})
	require.ErrorIs(t, err, descriptor.ErrInvalidDescriptor)
}

func TestNewFromUpperTriangleNegativeDist(t *testing.T) {
	_, err := descriptor.NewFromUpperTriangle(tetrahedronUpper(), []float64{-1, 0, 0})
	require.ErrorIs(t, err, descriptor.ErrInvalidDescriptor)
}

func TestSymmetryRelationsIncludesInvolutions(t *testing.T) {
	d, err := descriptor.NewFromUpperTriangle(tetrahedronUpper(), []float64{1, 0, 0})
	require.NoError(t, err)
	rels := d.SymmetryRelations()
	// 3 involutions + 3 pair relations = 6
	require.Len(t, rels, 6)
	assert.Equal(t, descriptor.Word{0, 0}, rels[0])
	assert.Equal(t, descriptor.Word{1, 1}, rels[3])
}

func TestOrthogonalInactive(t *testing.T) {
	// Cube: diagram (4,2,3), active = (1,0,0)
	d, err := descriptor.NewFromUpperTriangle([]descriptor.Rational{descriptor.R(4), descriptor.R(2), descriptor.R(3)}, []float64{1, 0, 0})
	require.NoError(t, err)
	// mirror 2 is inactive and M[2][0]=2, so it's orthogonal to subgens={0}
	assert.Equal(t, []int{2}, d.OrthogonalInactive([]int{0}))
	// for subgens={1}: mirror 1 is the generator itself (M[1][1]=1) and
	// M[2][1]=3 != 2, so no inactive mirror commutes with mirror 1
	assert.Empty(t, d.OrthogonalInactive([]int{1}))
}

func TestExtraRelationsAppended(t *testing.T) {
	d, err := descriptor.NewFromUpperTriangle(tetrahedronUpper(), []float64{1, 0, 0}, descriptor.Word{0, 1, 2, 1})
	require.NoError(t, err)
	rels := d.SymmetryRelations()
	assert.Equal(t, descriptor.Word{0, 1, 2, 1}, rels[len(rels)-1])
}

func TestRationalFrac(t *testing.T) {
	r := descriptor.Frac(5, 2)
	assert.Equal(t, "5/2", r.String())
	assert.InDelta(t, 2.5, r.Float(), 1e-12)
}
