// SPDX-License-Identifier: MIT

package pca

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlpca/linalg"
)

// PCA — principal component analysis, direct covariance method.
//
// Description:
//
//	Finds the numComponents directions of maximal variance in x and
//	reconstructs x from its projection onto their span. Efficient when the
//	feature count D is small relative to the sample count N; the cost is
//	dominated by eigendecomposing the D×D covariance matrix. For the
//	opposite regime (D ≫ N, e.g. image data) use PCAHighDim, which computes
//	the same result through an N×N intermediate.
//
// Algorithm Outline:
//  1. Center: Xc, mean = Normalize(x).
//  2. Covariance: S = XcᵀXc / N (D×D, symmetric PSD up to fp noise).
//  3. Eigendecompose S; eigenvalues descending, columns paired.
//  4. Slice the top K pairs and coerce to real: values via linalg.RealParts,
//     columns via linalg.RealEigenBasis (tolerance-gated; degenerate
//     eigenvalue clusters returned as conjugate pairs are rewritten as real
//     bases of their invariant subspace). Fix the basis convention with
//     linalg.NormalizeColumns.
//  5. Project the centered data through P = B(BᵀB)⁻¹Bᵀ and re-add the mean.
//
// Inputs:
//   - x: N×D data matrix, never mutated.
//   - numComponents: K, 1 ≤ K ≤ min(N, D).
//   - opts: nil for defaults (see DefaultOptions).
//
// Returns:
//   - *Result with the N×D reconstruction, length-D mean, top-K principal
//     values (descending) and the D×K component basis.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrBadComponents (validation).
//   - linalg.ErrEigenFailed, linalg.ErrNumericInstability,
//     linalg.ErrSingular propagated from the kernels; nothing is retried or
//     swallowed.
//
// Complexity:
//
//	Time O(N·D² + D³), Memory O(D²) for the covariance and projector.
func PCA(x mat.Matrix, numComponents int, opts *Options) (*Result, error) {
	// Center the data; Normalize performs the nil/empty validation.
	xc, mean, err := Normalize(x)
	if err != nil {
		return nil, pcaErrorf(opPCA, err)
	}
	n, d := xc.Dims()
	if numComponents < 1 || numComponents > min(n, d) {
		return nil, pcaErrorf(opPCA, ErrBadComponents)
	}

	// Covariance S = XcᵀXc / N.
	var s mat.Dense
	s.Mul(xc.T(), xc)
	s.Scale(1/float64(n), &s)

	// Eigendecompose; values descending, columns paired through the sort.
	vals, vecs, err := linalg.Eig(&s)
	if err != nil {
		return nil, pcaErrorf(opPCA, err)
	}

	tol := opts.imagTolerance()
	values, err := linalg.RealParts(vals[:numComponents], tol)
	if err != nil {
		return nil, pcaErrorf(opPCA, err)
	}
	raw, err := linalg.RealEigenBasis(vals, vecs, numComponents, tol)
	if err != nil {
		return nil, pcaErrorf(opPCA, err)
	}

	return assemble(xc, mean, values, raw, opPCA)
}

// assemble finishes both orchestrators from the real-coerced decomposition
// onward: fix the basis convention, build the projector, reconstruct, and
// package the Result.
//
// values must already be sliced to length K and raw must hold the matching
// K real basis columns.
func assemble(xc *mat.Dense, mean []float64, values []float64, raw *mat.Dense, opTag string) (*Result, error) {
	components, err := linalg.NormalizeColumns(raw)
	if err != nil {
		return nil, pcaErrorf(opTag, err)
	}

	p, err := linalg.ProjectionMatrix(components)
	if err != nil {
		return nil, pcaErrorf(opTag, err)
	}

	// Reconstruct: P·Xcᵀ transposed back is Xc·P, since P is symmetric.
	// The mean is then re-added row by row (no broadcasting in Go).
	var proj mat.Dense
	proj.Mul(xc, p)
	n, d := xc.Dims()
	rec := mat.NewDense(n, d, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			rec.Set(i, j, proj.At(i, j)+mean[j])
		}
	}

	return &Result{
		Reconstruction: rec,
		Mean:           mean,
		Values:         values,
		Components:     components,
	}, nil
}
