// Package pca computes principal component analysis — dimensionality
// reduction and reconstruction — over dense numeric datasets, in two
// mathematically equivalent regimes.
//
// 🚀 What is PCA?
//
//	PCA finds the orthogonal directions of maximal variance in a dataset of
//	N samples over D features, keeps the top K of them, and reconstructs
//	the data from its projection onto their span. It is the workhorse of:
//	  • Dimensionality reduction before indexing, search or learning
//	  • Lossy compression of image rows and embeddings
//	  • Decorrelation and noise suppression
//	  • 2-D visualization of high-dimensional data
//
// ✨ Key features:
//   - PCA: the direct method — eigendecompose the D×D covariance; best when
//     D is small relative to N.
//   - PCAHighDim: the dual method — eigendecompose the N×N Gram matrix and
//     lift its eigenvectors back to feature space; best when D ≫ N (images),
//     and still exactly equivalent when it isn't.
//   - One deterministic basis convention (unit length, non-negative leading
//     element) applied by both regimes, so their outputs match directly.
//   - Explicit numeric policy: imaginary residue from the eigensolver above
//     a configurable tolerance is an error, never silently dropped.
//   - Pure, synchronous, allocation-per-call computation: no shared state,
//     no caching, no I/O.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlpca/pca"
//
//	res, err := pca.PCA(x, 2, nil) // nil opts → DefaultOptions
//	if err != nil {
//	  // errors.Is against pca.ErrBadComponents, linalg.ErrSingular, ...
//	}
//	_ = res.Reconstruction // N×D, projection of x mapped back to data space
//	_ = res.Values         // top-2 variances, descending
//	_ = res.Components     // D×2 basis, unit columns
//
// Performance:
//
//   - PCA:        O(N·D² + D³) time
//   - PCAHighDim: O(N²·D + N³ + D³) time, with the N×N factorization
//     replacing the D×D one as the regime-defining cost
//
// See example_test.go for a worked dataset and pcaplot for visualization.
package pca
