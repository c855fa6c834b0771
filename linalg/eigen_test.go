package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlpca/linalg"
)

// TestEig_NilMatrix verifies that a nil input surfaces ErrNilMatrix.
func TestEig_NilMatrix(t *testing.T) {
	_, _, err := linalg.Eig(nil)
	assert.ErrorIs(t, err, linalg.ErrNilMatrix, "nil input must error ErrNilMatrix")
}

// TestEig_NonSquare verifies that a rectangular input surfaces ErrNonSquare.
func TestEig_NonSquare(t *testing.T) {
	_, _, err := linalg.Eig(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, linalg.ErrNonSquare, "2x3 input must error ErrNonSquare")
}

// TestEig_DescendingOrder verifies that eigenvalues come back sorted by
// descending real part for a symmetric input.
func TestEig_DescendingOrder(t *testing.T) {
	s := mat.NewDense(4, 4, []float64{
		2, 1, 0, 0,
		1, 3, 1, 0,
		0, 1, 4, 1,
		0, 0, 1, 5,
	})

	vals, _, err := linalg.Eig(s)
	require.NoError(t, err, "symmetric input should decompose")
	require.Len(t, vals, 4)

	for i := 1; i < len(vals); i++ {
		assert.GreaterOrEqual(t, real(vals[i-1]), real(vals[i]),
			"eigenvalues must be non-increasing at index %d", i)
	}
}

// TestEig_PairingPreserved verifies that after the descending sort every
// returned (value, column) pair still satisfies S·v = λ·v — i.e. the sort
// permuted values and vectors together, never independently.
func TestEig_PairingPreserved(t *testing.T) {
	s := mat.NewDense(3, 3, []float64{
		4, 1, 0,
		1, 3, 0,
		0, 0, 1,
	})

	vals, vecs, err := linalg.Eig(s)
	require.NoError(t, err)

	rvals, err := linalg.RealParts(vals, 0)
	require.NoError(t, err, "symmetric input must have real eigenvalues")
	rvecs, err := linalg.RealColumns(vecs, 3, 0)
	require.NoError(t, err, "symmetric input must have real eigenvectors")

	for j := 0; j < 3; j++ {
		v := mat.NewVecDense(3, mat.Col(nil, j, rvecs))
		var sv mat.VecDense
		sv.MulVec(s, v)
		for i := 0; i < 3; i++ {
			assert.InDelta(t, rvals[j]*v.AtVec(i), sv.AtVec(i), 1e-10,
				"pair %d must satisfy S·v = λ·v at row %d", j, i)
		}
	}
}

// TestEig_ComplexPairSurfaces verifies the numeric policy end to end: a
// genuinely non-symmetric input decomposes fine (the solver is general), but
// coercing its complex eigenvalues to real trips ErrNumericInstability
// instead of silently discarding the imaginary parts.
func TestEig_ComplexPairSurfaces(t *testing.T) {
	rot := mat.NewDense(2, 2, []float64{
		0, -1,
		1, 0,
	}) // 90° rotation: eigenvalues ±i

	vals, _, err := linalg.Eig(rot)
	require.NoError(t, err, "general solver must handle non-symmetric input")

	_, err = linalg.RealParts(vals, 0)
	assert.ErrorIs(t, err, linalg.ErrNumericInstability,
		"discarding ±i must trip the instability gate")
}
