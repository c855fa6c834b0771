// SPDX-License-Identifier: MIT

package linalg

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NormalizeColumns rescales every column of b to unit Euclidean length and
// negates any column whose first element is negative. The input is never
// mutated; a fresh matrix is returned.
//
// An eigensolver's sign choice per eigenvector is arbitrary, and its scale
// choice is arbitrary for non-unit conventions. Fixing both — unit length
// plus a non-negative leading element — yields one deterministic,
// reproducible basis for a given subspace, which is what makes bases from
// independent decompositions directly comparable and keeps visualizations
// stable across runs. Both PCA orchestrators apply this same convention, so
// their bases agree exactly (not merely up to sign) wherever the underlying
// eigenvalues are simple.
//
// A column of all zeros has no direction to normalize and is copied
// unchanged; such a column cannot be a unit eigenvector and will be rejected
// later by ProjectionMatrix as a degenerate basis.
//
// Errors:
//   - ErrNilMatrix when b is nil.
//   - ErrDimensionMismatch when b has no elements.
//
// Complexity: O(rows·cols).
func NormalizeColumns(b mat.Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, linalgErrorf(opNormalizeColumns, err)
	}
	r, c := b.Dims()
	if r == 0 || c == 0 {
		return nil, linalgErrorf(opNormalizeColumns, ErrDimensionMismatch)
	}

	out := mat.NewDense(r, c, nil)
	col := make([]float64, r)
	var j int
	var norm float64
	for j = 0; j < c; j++ {
		mat.Col(col, j, b)

		// Unit length first; zero columns are left untouched.
		if norm = floats.Norm(col, 2); norm > 0 {
			floats.Scale(1/norm, col)
		}

		// Then the sign convention: leading element non-negative.
		if col[0] < 0 {
			floats.Scale(-1, col)
		}

		out.SetCol(j, col)
	}

	return out, nil
}
