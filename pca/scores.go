// SPDX-License-Identifier: MIT

package pca

import "gonum.org/v1/gonum/mat"

// Scores projects x into the principal subspace of a fitted model and
// returns the N×K coordinate matrix (one row of subspace coordinates per
// sample). The projection centers x against the model's own mean, so new
// data is mapped consistently with the data the model was fitted on.
//
// Errors:
//   - ErrNilMatrix when x is nil.
//   - ErrNilResult when res or res.Components is nil or res.Mean is empty.
//   - ErrShapeMismatch when x's column count differs from len(res.Mean).
//
// Complexity: O(N·D·K).
func Scores(x mat.Matrix, res *Result) (*mat.Dense, error) {
	if x == nil {
		return nil, pcaErrorf(opScores, ErrNilMatrix)
	}
	if res == nil || res.Components == nil || len(res.Mean) == 0 {
		return nil, pcaErrorf(opScores, ErrNilResult)
	}
	n, d := x.Dims()
	if d != len(res.Mean) {
		return nil, pcaErrorf(opScores, ErrShapeMismatch)
	}

	// Center against the model mean (explicit row-wise subtract).
	centered := mat.NewDense(n, d, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			centered.Set(i, j, x.At(i, j)-res.Mean[j])
		}
	}

	// Coordinates in the principal subspace: (X − mean)·B.
	var scores mat.Dense
	scores.Mul(centered, res.Components)

	return &scores, nil
}
