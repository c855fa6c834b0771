// Package linalg provides the shared numeric kernels behind lvlpca's PCA
// orchestrators: a sorted eigendecomposition, explicit complex→real
// coercion, deterministic basis normalization, and orthogonal-projector
// construction.
//
// The linalg package provides:
//
//   - Eig: full eigendecomposition of a square matrix with eigenvalues and
//     eigenvector columns reordered together in descending eigenvalue order
//     (the pairing is never broken by the sort).
//   - RealParts / RealColumns: named "take the real part" operations that
//     fail with ErrNumericInstability instead of silently discarding a
//     significant imaginary component.
//   - RealEigenBasis: the eigenvector-aware variant of RealColumns that
//     rewrites complex-conjugate column pairs (a degenerate eigenvalue
//     cluster split by floating-point noise) as real bases of their
//     invariant subspace.
//   - NormalizeColumns: the one sign/scale convention used throughout
//     lvlpca — unit Euclidean length with a non-negative leading element —
//     so independently computed bases are directly comparable.
//   - ProjectionMatrix: P = B (BᵀB)⁻¹ Bᵀ, the orthogonal projector onto
//     span(B), with ErrSingular on degenerate bases.
//
// Dense storage, multiplication, inversion and the eigensolver itself are
// delegated to gonum.org/v1/gonum/mat; this package layers ordering, sign
// and coercion policy on top rather than reimplementing numerics.
//
// All error conditions surface as package sentinels matched via errors.Is.
package linalg
