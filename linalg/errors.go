// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the linalg
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package linalg

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linalg: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape (square/dimension) -> factorization failure -> singularity
// -> numeric instability.

var (
	// ErrNilMatrix indicates that a nil mat.Matrix was passed into a kernel.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// or a requested slice/column count outside the operand's bounds.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrEigenFailed indicates that the underlying eigendecomposition did not
	// converge for the given input.
	ErrEigenFailed = errors.New("linalg: eigendecomposition failed")

	// ErrSingular is returned when BᵀB is not invertible while building an
	// orthogonal projector (duplicate or linearly dependent basis columns).
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrNumericInstability signals that a discarded imaginary component
	// exceeded the configured tolerance. A genuinely symmetric input never
	// trips this; tripping it means the input was malformed or severely
	// ill-conditioned, so the failure is surfaced instead of being swallowed.
	ErrNumericInstability = errors.New("linalg: imaginary component exceeds tolerance")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opEig              = "Eig"
	opRealParts        = "RealParts"
	opRealColumns      = "RealColumns"
	opRealEigenBasis   = "RealEigenBasis"
	opNormalizeColumns = "NormalizeColumns"
	opProjectionMatrix = "ProjectionMatrix"
)

// linalgErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across kernels. Use only when err != nil.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
