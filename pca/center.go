// SPDX-License-Identifier: MIT

package pca

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Normalize computes the per-feature mean of x and returns the mean-centered
// copy together with the mean vector.
//
// The input is an N×D matrix of N samples (rows) over D features (columns);
// it is never mutated. The mean is the column-wise arithmetic mean, and the
// subtraction is performed with an explicit per-row loop — Go has no implicit
// broadcasting, so the replication of the mean across rows is spelled out.
//
// The returned mean belongs to the caller: reconstruction and Scores both
// need it to move between centered and original data space.
//
// Errors:
//   - ErrNilMatrix when x is nil.
//   - ErrEmptyMatrix when x has zero rows or zero columns.
//
// Complexity: O(N·D).
func Normalize(x mat.Matrix) (*mat.Dense, []float64, error) {
	if x == nil {
		return nil, nil, pcaErrorf(opNormalize, ErrNilMatrix)
	}
	n, d := x.Dims()
	if n == 0 || d == 0 {
		return nil, nil, pcaErrorf(opNormalize, ErrEmptyMatrix)
	}

	// Column-wise arithmetic means.
	mean := make([]float64, d)
	col := make([]float64, n)
	var j int
	for j = 0; j < d; j++ {
		mat.Col(col, j, x)
		mean[j] = stat.Mean(col, nil)
	}

	// Explicit row-wise subtract (mean replicated per row).
	centered := mat.NewDense(n, d, nil)
	var i int
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			centered.Set(i, j, x.At(i, j)-mean[j])
		}
	}

	return centered, mean, nil
}
