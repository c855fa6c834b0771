// SPDX-License-Identifier: MIT
// Package pca: sentinel error set (unified, consistent).
// All orchestrators return these sentinels (or wrap the linalg ones); tests
// check them via errors.Is.

package pca

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil input matrix was passed in.
	ErrNilMatrix = errors.New("pca: nil input matrix")

	// ErrNilResult indicates that a nil or incomplete *Result was passed in.
	ErrNilResult = errors.New("pca: nil result")

	// ErrEmptyMatrix indicates an input with zero rows or zero columns.
	ErrEmptyMatrix = errors.New("pca: input matrix has no elements")

	// ErrBadComponents indicates a requested component count outside
	// [1, min(N, D)]; outside that range the principal subspace is
	// degenerate or undefined.
	ErrBadComponents = errors.New("pca: number of components out of range")

	// ErrShapeMismatch indicates that an input's shape does not match the
	// fitted model (e.g. feature count differs from the stored mean).
	ErrShapeMismatch = errors.New("pca: matrix shape mismatch")
)

// Operation name constants for unified error wrapping.
const (
	opNormalize  = "Normalize"
	opPCA        = "PCA"
	opPCAHighDim = "PCAHighDim"
	opScores     = "Scores"
)

// pcaErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil.
func pcaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
