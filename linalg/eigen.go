// SPDX-License-Identifier: MIT

package linalg

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Eig computes the full eigendecomposition of the square matrix s and
// returns eigenvalues sorted in descending order of their real part together
// with the correspondingly reordered eigenvector columns.
//
// Implementation:
//   - Stage 1: Validate s (non-nil, square, non-empty).
//   - Stage 2: Factorize with gonum's general solver (mat.Eigen, right
//     eigenvectors). The general solver is used deliberately: floating-point
//     asymmetry in nominally symmetric inputs may produce negligible
//     imaginary components, and those must reach the caller unmodified.
//   - Stage 3: Build an index permutation sorted by descending real part and
//     apply that one permutation to both the value slice and the vector
//     columns. Values and vectors are never sorted independently, so the
//     (eigenvalue, eigenvector) pairing is preserved through the reorder.
//
// Behavior highlights:
//   - Ties in the real part keep their original factorization order
//     (stable sort), so results are deterministic for a fixed input.
//   - No sign or scale normalization is applied; callers needing a stable
//     basis must apply NormalizeColumns explicitly.
//   - No implicit real coercion; callers coerce via RealParts and
//     RealColumns/RealEigenBasis, which enforce the imaginary-magnitude
//     policy.
//
// Inputs:
//   - s: square matrix (K×K), typically symmetric up to floating-point noise.
//
// Returns:
//   - []complex128: eigenvalues, length K, descending by real part.
//   - *mat.CDense: eigenvectors, K×K, column j pairs with value j.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNonSquare (validation).
//   - ErrEigenFailed when the factorization does not converge.
//
// Complexity:
//   - Time O(K³) for the factorization, O(K²) for the reorder.
func Eig(s mat.Matrix) ([]complex128, *mat.CDense, error) {
	// Stage 1: validate.
	if err := ValidateNotNil(s); err != nil {
		return nil, nil, linalgErrorf(opEig, err)
	}
	if err := ValidateSquare(s); err != nil {
		return nil, nil, linalgErrorf(opEig, err)
	}

	// Stage 2: factorize with the general (possibly-complex) solver.
	var eig mat.Eigen
	if ok := eig.Factorize(s, mat.EigenRight); !ok {
		return nil, nil, linalgErrorf(opEig, ErrEigenFailed)
	}
	vals := eig.Values(nil)
	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	// Stage 3: one permutation, applied to values and columns together.
	k := len(vals)
	perm := make([]int, k)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return real(vals[perm[a]]) > real(vals[perm[b]])
	})

	sortedVals := make([]complex128, k)
	sortedVecs := mat.NewCDense(k, k, nil)
	var row int
	for dst, src := range perm {
		sortedVals[dst] = vals[src]
		for row = 0; row < k; row++ {
			sortedVecs.Set(row, dst, vecs.At(row, src))
		}
	}

	return sortedVals, sortedVecs, nil
}
