// SPDX-License-Identifier: MIT

// Package pcaplot renders the two standard PCA diagnostics — the scree plot
// of principal values and the 2-D scatter of subspace scores — on top of
// gonum.org/v1/plot.
//
// The deterministic basis convention used by the pca package (unit length,
// non-negative leading element) is what keeps these pictures stable across
// runs: without it, every re-fit could flip an axis.
package pcaplot

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/lvlpca/pca"
)

var (
	// ErrNoValues indicates an empty principal-value slice.
	ErrNoValues = errors.New("pcaplot: no principal values to plot")

	// ErrNeedTwoComponents indicates a model with fewer than two retained
	// components; a 2-D scatter has nothing to put on its second axis.
	ErrNeedTwoComponents = errors.New("pcaplot: scatter needs at least two components")
)

// Scree builds a line-and-points plot of principal values against component
// index (1-based). The characteristic "elbow" of the curve is the usual
// visual cue for choosing how many components to keep.
//
// Errors: ErrNoValues for an empty slice; plotter construction failures are
// wrapped and returned.
func Scree(values []float64) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, ErrNoValues
	}

	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}

	p := plot.New()
	p.Title.Text = "Scree plot"
	p.X.Label.Text = "component"
	p.Y.Label.Text = "principal value"

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("Scree: %w", err)
	}
	p.Add(line, points)

	return p, nil
}

// Scatter builds a 2-D scatter of x's scores on the first two principal
// components of the fitted model res. x may be the training data or new
// data with the same feature count; it is centered against the model's own
// mean (see pca.Scores).
//
// Errors: everything pca.Scores can return, plus ErrNeedTwoComponents when
// the model retains fewer than two components.
func Scatter(x mat.Matrix, res *pca.Result) (*plot.Plot, error) {
	scores, err := pca.Scores(x, res)
	if err != nil {
		return nil, fmt.Errorf("Scatter: %w", err)
	}
	n, k := scores.Dims()
	if k < 2 {
		return nil, ErrNeedTwoComponents
	}

	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		pts[i].X = scores.At(i, 0)
		pts[i].Y = scores.At(i, 1)
	}

	p := plot.New()
	p.Title.Text = "Principal subspace scores"
	p.X.Label.Text = "PC1"
	p.Y.Label.Text = "PC2"

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("Scatter: %w", err)
	}
	p.Add(sc)

	return p, nil
}
