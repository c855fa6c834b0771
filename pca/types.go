// SPDX-License-Identifier: MIT
// Package pca: options and result types shared by both orchestrators.
package pca

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlpca/linalg"
)

// Options configures the PCA orchestrators.
//
// Fields:
//   - ImagTolerance — largest imaginary magnitude silently discarded when
//     coercing eigenvalues/eigenvectors to real. Values <= 0 select
//     linalg.DefaultImagTolerance. Exceeding the tolerance aborts with
//     linalg.ErrNumericInstability: it means the covariance/Gram matrix was
//     not symmetric, which only happens for malformed input.
//
// Example:
//
//	opts := pca.DefaultOptions()
//	opts.ImagTolerance = 1e-6 // looser gate for badly scaled data
//
//	res, err := pca.PCA(x, 2, &opts)
type Options struct {
	ImagTolerance float64
}

// DefaultOptions returns the documented defaults:
// ImagTolerance = linalg.DefaultImagTolerance.
func DefaultOptions() Options {
	return Options{ImagTolerance: linalg.DefaultImagTolerance}
}

// imagTolerance resolves the effective tolerance for a possibly-nil Options.
func (o *Options) imagTolerance() float64 {
	if o == nil || o.ImagTolerance <= 0 {
		return linalg.DefaultImagTolerance
	}

	return o.ImagTolerance
}

// Result holds the output of one PCA or PCAHighDim call.
//
// Both orchestrators fill it identically:
//   - Reconstruction — N×D: centered data projected onto the principal
//     subspace, mapped back to data space with the mean re-added.
//   - Mean — length D: per-feature arithmetic mean of the input; needed to
//     center new data against the same model (see Scores).
//   - Values — length K, descending: variances along the retained
//     components (top eigenvalues of the covariance matrix).
//   - Components — D×K: the retained principal components as columns, real,
//     unit-length, sign-fixed by linalg.NormalizeColumns.
type Result struct {
	Reconstruction *mat.Dense
	Mean           []float64
	Values         []float64
	Components     *mat.Dense
}
