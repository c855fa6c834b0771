package pca_test

import (
	"testing"

	"github.com/katalvlaran/lvlpca/pca"
)

// benchmarkPCA is a helper that fits one of the two orchestrators on a fixed
// n×d standard-normal dataset. It resets the timer after the data setup and
// fails on unexpected errors.
func benchmarkPCA(b *testing.B, n, d, k int, dual bool) {
	x := randomMatrix(n, d, 99)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		var err error
		if dual {
			_, err = pca.PCAHighDim(x, k, nil)
		} else {
			_, err = pca.PCA(x, k, nil)
		}
		if err != nil {
			b.Fatalf("fit failed: %v", err)
		}
	}
}

// BenchmarkPCA_TallData benchmarks the direct method in its home regime
// (N ≫ D): the covariance is a small 30×30 matrix.
func BenchmarkPCA_TallData(b *testing.B) {
	benchmarkPCA(b, 200, 30, 10, false)
}

// BenchmarkPCA_WideData benchmarks the direct method out of its regime
// (D ≫ N): the covariance blows up to 200×200.
func BenchmarkPCA_WideData(b *testing.B) {
	benchmarkPCA(b, 30, 200, 10, false)
}

// BenchmarkPCAHighDim_WideData benchmarks the dual method in its home regime
// (D ≫ N): the Gram matrix is only 30×30.
func BenchmarkPCAHighDim_WideData(b *testing.B) {
	benchmarkPCA(b, 30, 200, 10, true)
}

// BenchmarkPCAHighDim_TallData benchmarks the dual method out of its regime
// (N ≫ D), where the 200×200 Gram matrix is the wasteful intermediate.
func BenchmarkPCAHighDim_TallData(b *testing.B) {
	benchmarkPCA(b, 200, 30, 10, true)
}
