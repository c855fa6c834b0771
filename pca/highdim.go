// SPDX-License-Identifier: MIT

package pca

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlpca/linalg"
)

// gramRankFloor is the relative eigenvalue threshold below which a Gram
// eigenvector column is treated as a null direction and excluded from the
// lift. Relative to the leading eigenvalue, so it is scale invariant.
const gramRankFloor = 1e-12

// PCAHighDim — principal component analysis, dual (Gram matrix) method.
//
// Description:
//
//	Computes exactly the same result as PCA through a smaller intermediate.
//	When D ≫ N the D×D covariance matrix is wasteful: its rank is at most N,
//	so all of its nonzero spectrum is already present in the N×N Gram matrix
//	M = XcXcᵀ/N, and the feature-space eigenvectors can be recovered from
//	M's sample-space eigenvectors. For D ≤ N there is no efficiency gain,
//	but the output remains mathematically equivalent to PCA.
//
// Algorithm Outline:
//  1. Center: Xc, mean = Normalize(x).
//  2. Gram: M = XcXcᵀ / N (N×N). Its nonzero eigenvalues coincide with
//     those of the covariance S = XcᵀXc / N, so the principal values are
//     read directly from this decomposition.
//  3. Eigendecompose M; keep the eigenvector columns U whose eigenvalue
//     clears a relative rank floor. The discarded columns pair with
//     numerically-zero eigenvalues, satisfy Xcᵀu ≈ 0, and carry no
//     information about the row space of Xc; dropping them also keeps the
//     degenerate zero cluster, which a general solver may hand back as
//     complex-conjugate vector pairs, out of U entirely.
//  4. Lift to feature space: W = XcᵀU maps each sample-space eigenvector
//     uᵢ to Xcᵀuᵢ, which is an (unnormalized) eigenvector of S — and is the
//     zero vector exactly when uᵢ's eigenvalue is zero. Because U has
//     orthonormal columns and every nonzero-eigenvalue column is retained,
//     WWᵀ = N·S, so the second eigendecomposition of the symmetric D×D
//     matrix WWᵀ/D yields S's eigenvectors directly — the same basis, in
//     the same descending order, that PCA extracts from S.
//  5. Slice top K, coerce to real, normalize, project, reconstruct —
//     identical to PCA from this point on. When K exceeds the data rank
//     (centering always costs one rank in the N ≤ D regime), the slice
//     reaches into the lift's own null cluster; RealEigenBasis rewrites any
//     conjugate pairs there as real columns, so the boundary K = min(N, D)
//     stays valid input.
//
// Inputs:
//   - x: N×D data matrix, never mutated.
//   - numComponents: K, 1 ≤ K ≤ min(N, D).
//   - opts: nil for defaults (see DefaultOptions).
//
// Returns:
//   - *Result, same contract as PCA; for a fixed input the two orchestrators
//     agree on reconstruction, values and (sign-fixed) components within
//     floating-point tolerance.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrBadComponents (validation).
//   - linalg.ErrEigenFailed, linalg.ErrNumericInstability,
//     linalg.ErrSingular propagated from the kernels.
//
// Complexity:
//
//	Time O(N²·D + N³ + D³) — the D³ term is the lift's decomposition; for
//	K ≪ D workloads dominated by the Gram step this is still far cheaper in
//	practice than factorizing a dense D×D covariance of full width, and the
//	N×N factorization replaces the D×D one as the regime-defining cost.
//	Memory O(N² + D²).
func PCAHighDim(x mat.Matrix, numComponents int, opts *Options) (*Result, error) {
	// Center the data; Normalize performs the nil/empty validation.
	xc, mean, err := Normalize(x)
	if err != nil {
		return nil, pcaErrorf(opPCAHighDim, err)
	}
	n, d := xc.Dims()
	if numComponents < 1 || numComponents > min(n, d) {
		return nil, pcaErrorf(opPCAHighDim, ErrBadComponents)
	}
	tol := opts.imagTolerance()

	// Gram matrix M = XcXcᵀ / N.
	var m mat.Dense
	m.Mul(xc, xc.T())
	m.Scale(1/float64(n), &m)

	// First eigendecomposition: sample-space eigenvectors, values descending.
	gramVals, gramVecs, err := linalg.Eig(&m)
	if err != nil {
		return nil, pcaErrorf(opPCAHighDim, err)
	}

	// Keep only columns above the rank floor; the rest are null directions.
	limit := min(n, d)
	floor := gramRankFloor * real(gramVals[0])
	keep := 0
	for keep < limit && real(gramVals[keep]) > floor {
		keep++
	}
	if keep == 0 {
		keep = 1 // constant data: retain one direction so the lift stays well-formed
	}
	u, err := linalg.RealColumns(gramVecs, keep, tol)
	if err != nil {
		return nil, pcaErrorf(opPCAHighDim, err)
	}

	// Lift: W = XcᵀU, then eigendecompose the symmetric WWᵀ/D. The columns
	// dropped by the rank floor satisfy Xcᵀu ≈ 0 and would contribute
	// nothing to the product, so WWᵀ/D carries exactly the covariance's
	// eigenvector structure.
	var w mat.Dense
	w.Mul(xc.T(), u)
	var lift mat.Dense
	lift.Mul(&w, w.T())
	lift.Scale(1/float64(d), &lift)

	// Second eigendecomposition: feature-space principal components. Its
	// eigenvalues are only rescaled copies of the Gram spectrum and serve
	// solely to pair conjugate columns; the principal values are taken from
	// the Gram decomposition above.
	liftVals, liftVecs, err := linalg.Eig(&lift)
	if err != nil {
		return nil, pcaErrorf(opPCAHighDim, err)
	}

	values, err := linalg.RealParts(gramVals[:numComponents], tol)
	if err != nil {
		return nil, pcaErrorf(opPCAHighDim, err)
	}
	raw, err := linalg.RealEigenBasis(liftVals, liftVecs, numComponents, tol)
	if err != nil {
		return nil, pcaErrorf(opPCAHighDim, err)
	}

	return assemble(xc, mean, values, raw, opPCAHighDim)
}
