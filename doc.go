// Package lvlpca is your in-memory toolkit for principal component
// analysis — dimensionality reduction, reconstruction, and the numeric
// kernels underneath, with a deterministic answer in both computational
// regimes.
//
// 🚀 What is lvlpca?
//
//	A small, focused library that brings together:
//		• Centering: per-feature means and mean-subtracted copies, input untouched
//		• Sorted eigendecomposition: descending eigenvalues, pairing never broken
//		• Explicit complex→real coercion with a tolerance-gated instability error
//		• Orthogonal projectors: P = B(BᵀB)⁻¹Bᵀ onto any independent basis
//		• Direct PCA (D×D covariance) and dual PCA (N×N Gram + lift) — one result
//		• Scree and score-scatter plots for quick visual inspection
//
// ✨ Why choose lvlpca?
//
//   - One basis convention everywhere – unit columns, non-negative leading
//     element; the direct and dual paths agree exactly, not just up to sign
//   - Nothing swallowed – every degenerate input surfaces as a sentinel
//     error matched with errors.Is
//   - Pure computation – no goroutines, no I/O, no state between calls
//   - Built on gonum – dense storage, multiplication, inversion and the
//     eigensolver are the ecosystem's, not hand-rolled
//
// Under the hood, everything is organized under three subpackages:
//
//	linalg/  — Eig, RealParts/RealColumns, NormalizeColumns, ProjectionMatrix
//	pca/     — Normalize, PCA, PCAHighDim, Scores
//	pcaplot/ — Scree, Scatter
//
// Quick sketch:
//
//	 x (N×D) ──center──► Xc ──XcᵀXc/N──► S ──eig──► top-K basis ──P──► x̂
//	                      └──XcXcᵀ/N──► M ──eig──► lift ──eig──┘
//
//	both arrive at the same K principal directions.
//
// Dive into pca/example_test.go for a worked dataset and examples/ for a
// runnable end-to-end demo with plots.
//
//	go get github.com/katalvlaran/lvlpca
package lvlpca
