package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlpca/linalg"
)

// frobDiff returns the Frobenius norm of a − b.
func frobDiff(a, b mat.Matrix) float64 {
	var diff mat.Dense
	diff.Sub(a, b)

	return mat.Norm(&diff, 2)
}

// TestProjectionMatrix_IdempotentAndSymmetric verifies the two defining
// properties of an orthogonal projector: P·P = P and P = Pᵀ.
func TestProjectionMatrix_IdempotentAndSymmetric(t *testing.T) {
	b := mat.NewDense(4, 2, []float64{
		1, 0,
		1, 1,
		0, 1,
		0, 2,
	})

	p, err := linalg.ProjectionMatrix(b)
	require.NoError(t, err)

	var pp mat.Dense
	pp.Mul(p, p)
	assert.InDelta(t, 0, frobDiff(&pp, p), 1e-12, "P·P must equal P")
	assert.InDelta(t, 0, frobDiff(p.T(), p), 1e-12, "P must be symmetric")
}

// TestProjectionMatrix_FixesSpan verifies that any vector already inside
// span(B) passes through the projector unchanged.
func TestProjectionMatrix_FixesSpan(t *testing.T) {
	b := mat.NewDense(4, 2, []float64{
		1, 0,
		1, 1,
		0, 1,
		0, 2,
	})

	p, err := linalg.ProjectionMatrix(b)
	require.NoError(t, err)

	// v = 2·b₀ − 3·b₁ lies in the span by construction.
	v := mat.NewVecDense(4, []float64{2, -1, -3, -6})
	var pv mat.VecDense
	pv.MulVec(p, v)
	for i := 0; i < 4; i++ {
		assert.InDelta(t, v.AtVec(i), pv.AtVec(i), 1e-12, "P·v must equal v at row %d", i)
	}
}

// TestProjectionMatrix_NonOrthonormalBasis verifies that the (BᵀB)⁻¹ factor
// makes the projector depend only on the span: a skewed, badly scaled basis
// of the same subspace yields the same P as a clean one.
func TestProjectionMatrix_NonOrthonormalBasis(t *testing.T) {
	clean := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		0, 0,
	})
	skewed := mat.NewDense(3, 2, []float64{
		5, 7,
		0, 3,
		0, 0,
	}) // same span: the x-y plane

	pClean, err := linalg.ProjectionMatrix(clean)
	require.NoError(t, err)
	pSkewed, err := linalg.ProjectionMatrix(skewed)
	require.NoError(t, err)

	assert.InDelta(t, 0, frobDiff(pClean, pSkewed), 1e-12,
		"projectors onto the same span must coincide")
}

// TestProjectionMatrix_DuplicateColumns verifies that a degenerate basis
// (two identical columns) surfaces ErrSingular.
func TestProjectionMatrix_DuplicateColumns(t *testing.T) {
	b := mat.NewDense(3, 2, []float64{
		1, 1,
		0, 0,
		0, 0,
	})

	_, err := linalg.ProjectionMatrix(b)
	assert.ErrorIs(t, err, linalg.ErrSingular, "duplicate columns must error ErrSingular")
}

// TestProjectionMatrix_TooManyColumns verifies that more columns than rows
// is rejected up front: such columns can never be linearly independent.
func TestProjectionMatrix_TooManyColumns(t *testing.T) {
	_, err := linalg.ProjectionMatrix(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

// TestProjectionMatrix_Nil verifies the nil-input sentinel.
func TestProjectionMatrix_Nil(t *testing.T) {
	_, err := linalg.ProjectionMatrix(nil)
	assert.ErrorIs(t, err, linalg.ErrNilMatrix)
}
