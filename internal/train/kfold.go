package train

import (
	"log/slog"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// candidateAlphas are the ridge penalties cross-validation chooses among.
// Mirrors the reference implementation's geometric sweep rather than a
// hand-picked single value, since the best penalty depends on how many
// samples were actually provided for training.
var candidateAlphas = []float64{0.0, 1e-4, 1e-3, 1e-2, 1e-1, 1.0, 10.0}

// fold is one cross-validation split: disjoint train/test row indices
// into the full sample set.
type fold struct {
	train []int
	test  []int
}

// kfold partitions n sample indices into k folds using a seeded shuffle,
// so a given seed always produces the same split: reproducibility is the
// whole point of taking a seed as a training manifest parameter rather
// than leaving fold assignment to map iteration order or wall-clock time.
func kfold(n, k int, seed uint64) []fold {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rng.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	folds := make([]fold, k)
	for f := 0; f < k; f++ {
		for i, sample := range idx {
			if i%k == f {
				folds[f].test = append(folds[f].test, sample)
			} else {
				folds[f].train = append(folds[f].train, sample)
			}
		}
	}
	return folds
}

// selectRows builds a new matrix from the given row indices of src.
func selectRows(src *mat.Dense, rows []int) *mat.Dense {
	_, cols := src.Dims()
	out := mat.NewDense(len(rows), cols, nil)
	for i, r := range rows {
		out.SetRow(i, mat.Row(nil, r, src))
	}
	return out
}

// accuracy reports the fraction of rows where the predicted class
// (argmax of the predicted one-hot row) matches the true class (argmax
// of the corresponding row of yTrue).
func accuracy(predicted, yTrue *mat.Dense) float64 {
	rows, _ := predicted.Dims()
	if rows == 0 {
		return 0
	}
	correct := 0
	for i := 0; i < rows; i++ {
		if argmaxRow(predicted, i) == argmaxRow(yTrue, i) {
			correct++
		}
	}
	return float64(correct) / float64(rows)
}

func argmaxRow(m *mat.Dense, row int) int {
	_, cols := m.Dims()
	best, bestVal := 0, m.At(row, 0)
	for c := 1; c < cols; c++ {
		if v := m.At(row, c); v > bestVal {
			best, bestVal = c, v
		}
	}
	return best
}

// determineIdealAlpha picks the candidate alpha with the highest mean
// k-fold held-out accuracy, refitting on each fold's training split in
// turn. Ties keep the earlier (smaller) candidate, same as a stable max
// over candidateAlphas in declaration order.
func determineIdealAlpha(x, y *mat.Dense, folds []fold) (float64, error) {
	bestAlpha := candidateAlphas[0]
	bestAcc := -1.0

	for _, alpha := range candidateAlphas {
		var total float64
		for _, f := range folds {
			xTrain := selectRows(x, f.train)
			yTrain := selectRows(y, f.train)
			xTest := selectRows(x, f.test)
			yTest := selectRows(y, f.test)

			w, err := ridgeRegression(xTrain, yTrain, alpha)
			if err != nil {
				return 0, err
			}
			var pred mat.Dense
			pred.Mul(xTest, w)
			total += accuracy(&pred, yTest)
		}
		mean := total / float64(len(folds))
		slog.Info("cross-validated accuracy", "alpha", alpha, "accuracy", mean)
		if mean > bestAcc {
			bestAcc = mean
			bestAlpha = alpha
		}
	}

	return bestAlpha, nil
}
