// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultImagTolerance is the largest imaginary magnitude that RealParts and
// RealColumns silently discard. Imaginary components of this size are
// floating-point noise from factorizing a nominally symmetric matrix with a
// general solver; anything larger indicates a malformed input.
const DefaultImagTolerance = 1e-9

// RealParts returns the real parts of v, verifying that every discarded
// imaginary component has magnitude at most tol.
//
// The coercion is an explicit, named operation rather than an implicit cast:
// a general eigensolver may legitimately return complex values for a
// non-symmetric input, and dropping a significant imaginary part would
// silently corrupt downstream results.
//
// A tol <= 0 selects DefaultImagTolerance.
//
// Errors:
//   - ErrNumericInstability when any |imag| exceeds tol; the wrapped message
//     carries the offending magnitude for diagnosis.
//
// Complexity: O(len(v)).
func RealParts(v []complex128, tol float64) ([]float64, error) {
	if tol <= 0 {
		tol = DefaultImagTolerance
	}

	out := make([]float64, len(v))
	for i, c := range v {
		if im := math.Abs(imag(c)); im > tol {
			return nil, fmt.Errorf("%s: %w: |imag| = %.6e at index %d (tolerance %.6e)",
				opRealParts, ErrNumericInstability, im, i, tol)
		}
		out[i] = real(c)
	}

	return out, nil
}

// RealColumns copies the first cols columns of m into a real matrix,
// verifying that every discarded imaginary component has magnitude at most
// tol. It is the column-sliced counterpart of RealParts, used to retain the
// leading eigenvector block of a decomposition.
//
// A tol <= 0 selects DefaultImagTolerance.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrDimensionMismatch when cols is outside [1, columns of m].
//   - ErrNumericInstability when any |imag| exceeds tol.
//
// Complexity: O(rows·cols).
func RealColumns(m *mat.CDense, cols int, tol float64) (*mat.Dense, error) {
	if m == nil {
		return nil, linalgErrorf(opRealColumns, ErrNilMatrix)
	}
	r, c := m.Dims()
	if cols < 1 || cols > c {
		return nil, linalgErrorf(opRealColumns, ErrDimensionMismatch)
	}
	if tol <= 0 {
		tol = DefaultImagTolerance
	}

	out := mat.NewDense(r, cols, nil)
	var i, j int
	var v complex128
	for i = 0; i < r; i++ {
		for j = 0; j < cols; j++ {
			v = m.At(i, j)
			if im := math.Abs(imag(v)); im > tol {
				return nil, fmt.Errorf("%s: %w: |imag| = %.6e at (%d,%d) (tolerance %.6e)",
					opRealColumns, ErrNumericInstability, im, i, j, tol)
			}
			out.Set(i, j, real(v))
		}
	}

	return out, nil
}

// RealEigenBasis converts the leading cols eigenvector columns of a general
// eigendecomposition into a real basis of the same invariant subspace, using
// the paired eigenvalues to recognize complex-conjugate clusters.
//
// A symmetric matrix factorized by a general solver can come back complex in
// two very different ways. Floating-point noise on a simple eigenvalue
// leaves imaginary components below tol; those columns are coerced exactly
// as in RealColumns. Noise inside a degenerate eigenvalue cluster instead
// splits the cluster into conjugate pairs λ = a ± bi whose eigenvectors
// v = vr ± i·vi carry imaginary parts of order one even though b is tiny.
// Taking Re of each half would emit vr twice; the pair's invariant subspace
// is span{vr, vi}, so the pair is rewritten as the two real columns vr, vi.
// When cols cuts between the halves of a pair, vr alone is emitted: it lies
// inside the pair's subspace and represents it.
//
// The instability gate stays where it is meaningful: an eigenvalue whose own
// imaginary part exceeds tol signals a genuinely non-symmetric input, as
// does a complex column with no conjugate partner beside it. Conjugate
// halves share their real part, so the stable descending sort in Eig keeps
// them adjacent.
//
// vals must pair index-for-index with the columns of m (the contract Eig
// guarantees). A tol <= 0 selects DefaultImagTolerance.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrDimensionMismatch when len(vals) differs from m's column count or
//     cols is outside [1, columns of m].
//   - ErrNumericInstability for a complex eigenvalue or an unpaired complex
//     eigenvector column.
//
// Complexity: O(rows·cols).
func RealEigenBasis(vals []complex128, m *mat.CDense, cols int, tol float64) (*mat.Dense, error) {
	if m == nil {
		return nil, linalgErrorf(opRealEigenBasis, ErrNilMatrix)
	}
	r, c := m.Dims()
	if len(vals) != c || cols < 1 || cols > c {
		return nil, linalgErrorf(opRealEigenBasis, ErrDimensionMismatch)
	}
	if tol <= 0 {
		tol = DefaultImagTolerance
	}

	out := mat.NewDense(r, cols, nil)
	var i, j int
	for j = 0; j < cols; j++ {
		if im := math.Abs(imag(vals[j])); im > tol {
			return nil, fmt.Errorf("%s: %w: eigenvalue |imag| = %.6e at index %d (tolerance %.6e)",
				opRealEigenBasis, ErrNumericInstability, im, j, tol)
		}
		if columnIsReal(m, j, r, tol) {
			for i = 0; i < r; i++ {
				out.Set(i, j, real(m.At(i, j)))
			}

			continue
		}

		// Complex column: acceptable only as the first half of a pair.
		if j+1 >= c || !columnsConjugate(m, j, r, tol) {
			return nil, fmt.Errorf("%s: %w: unpaired complex eigenvector column %d",
				opRealEigenBasis, ErrNumericInstability, j)
		}
		for i = 0; i < r; i++ {
			out.Set(i, j, real(m.At(i, j)))
		}
		if j+1 < cols {
			for i = 0; i < r; i++ {
				out.Set(i, j+1, imag(m.At(i, j)))
			}
			j++ // the partner column is consumed
		}
	}

	return out, nil
}

// columnIsReal reports whether every imaginary component in column j of m
// stays within tol.
func columnIsReal(m *mat.CDense, j, rows int, tol float64) bool {
	for i := 0; i < rows; i++ {
		if math.Abs(imag(m.At(i, j))) > tol {
			return false
		}
	}

	return true
}

// columnsConjugate reports whether columns j and j+1 of m are complex
// conjugates of each other within tol.
func columnsConjugate(m *mat.CDense, j, rows int, tol float64) bool {
	var a, b complex128
	for i := 0; i < rows; i++ {
		a, b = m.At(i, j), m.At(i, j+1)
		if math.Abs(real(a)-real(b)) > tol || math.Abs(imag(a)+imag(b)) > tol {
			return false
		}
	}

	return true
}
