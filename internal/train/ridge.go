// Package train implements the Training Collaborator: fitting a linear
// classifier's weight matrix to a labeled set of sample files via ridge
// regression, with the ridge penalty chosen by seeded k-fold
// cross-validation.
package train

import (
	"gonum.org/v1/gonum/mat"

	"github.com/lexsleuth/lexsleuth/internal/lexerr"
)

// ridgeRegression solves (XtX + alpha*I)w = Xt*y for w, where X is
// n-by-f (one row per sample, one column per feature) and y is n-by-c
// (one row per sample, one-hot over classes). The normal-equations form
// is the direct Go analogue of the reference implementation's SVD-based
// least-squares solve: gonum's mat.Dense.Solve already picks a
// numerically stable factorization, so there's no need to hand-roll one.
func ridgeRegression(x, y *mat.Dense, alpha float64) (*mat.Dense, error) {
	_, f := x.Dims()

	var xt mat.Dense
	xt.CloneFrom(x.T())

	var xtx mat.Dense
	xtx.Mul(&xt, x)

	for i := 0; i < f; i++ {
		xtx.Set(i, i, xtx.At(i, i)+alpha)
	}

	var xty mat.Dense
	xty.Mul(&xt, y)

	var w mat.Dense
	if err := w.Solve(&xtx, &xty); err != nil {
		return nil, &lexerr.TrainingError{Reason: "normal equations system is singular", Err: err}
	}

	return &w, nil
}

// weightsToSlice flattens an f-by-c weight matrix into the row-major
// slice the classifier package's Model expects.
func weightsToSlice(w *mat.Dense) []float64 {
	f, c := w.Dims()
	out := make([]float64, 0, f*c)
	for i := 0; i < f; i++ {
		for j := 0; j < c; j++ {
			out = append(out, w.At(i, j))
		}
	}
	return out
}
