// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package linalg

import "gonum.org/v1/gonum/mat"

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m mat.Matrix) error {
	if m == nil {
		return ErrNilMatrix // single source of truth for "nil argument"
	}

	return nil
}

// ValidateSquare checks that m is square (rows == cols) and non-empty.
//
// Assumes m is not nil (caller must ensure; compose with ValidateNotNil).
// Returns ErrNonSquare when rows != cols, ErrDimensionMismatch when the
// matrix has no elements. Complexity: O(1).
func ValidateSquare(m mat.Matrix) error {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return ErrDimensionMismatch
	}
	if r != c {
		return ErrNonSquare
	}

	return nil
}
