// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ProjectionMatrix builds the orthogonal projector P = B (BᵀB)⁻¹ Bᵀ onto the
// column space of b.
//
// The columns of b must be linearly independent but need not be
// orthonormal — the (BᵀB)⁻¹ factor absorbs any invertible change of basis,
// so P depends only on span(b). For every v in span(b), P·v = v; P is
// symmetric and idempotent (P·P = P).
//
// Implementation:
//   - Stage 1: Validate b (non-nil, D ≥ M ≥ 1). More columns than rows can
//     never be linearly independent, so that shape is rejected up front.
//   - Stage 2: Form the Gram matrix G = BᵀB (M×M) and invert it. A failed
//     inversion means duplicate or dependent basis columns.
//   - Stage 3: Multiply out P = B·G⁻¹·Bᵀ (D×D).
//
// Inputs:
//   - b: basis matrix, D×M, columns spanning the target subspace.
//
// Returns:
//   - *mat.Dense: the D×D projector.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrSingular when BᵀB is not invertible; the wrapped message carries
//     the solver's diagnosis (exact singularity or hopeless conditioning).
//
// Complexity:
//   - Time O(D·M² + M³ + D²·M), dominated by the final D²·M product.
func ProjectionMatrix(b mat.Matrix) (*mat.Dense, error) {
	// Stage 1: validate.
	if err := ValidateNotNil(b); err != nil {
		return nil, linalgErrorf(opProjectionMatrix, err)
	}
	d, m := b.Dims()
	if d == 0 || m == 0 || m > d {
		return nil, linalgErrorf(opProjectionMatrix, ErrDimensionMismatch)
	}

	// Stage 2: Gram matrix and its inverse.
	var gram mat.Dense
	gram.Mul(b.T(), b)
	var inv mat.Dense
	if err := inv.Inverse(&gram); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", opProjectionMatrix, ErrSingular, err)
	}

	// Stage 3: P = B·G⁻¹·Bᵀ.
	var bg mat.Dense
	bg.Mul(b, &inv)
	p := mat.NewDense(d, d, nil)
	p.Mul(&bg, b.T())

	return p, nil
}
