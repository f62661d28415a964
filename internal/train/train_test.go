package train

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRidgeRegressionRecoversExactFit(t *testing.T) {
	// y = 2*x, noiseless and overdetermined; with alpha=0 ridge regression
	// should recover the weight exactly.
	x := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})

	w, err := ridgeRegression(x, y, 0)
	if err != nil {
		t.Fatalf("ridgeRegression: %v", err)
	}
	if math.Abs(w.At(0, 0)-2.0) > 1e-6 {
		t.Fatalf("got weight %v, want 2.0", w.At(0, 0))
	}
}

func TestKfoldIsDeterministicForAGivenSeed(t *testing.T) {
	a := kfold(10, 3, 42)
	b := kfold(10, 3, 42)
	for f := range a {
		if len(a[f].train) != len(b[f].train) || len(a[f].test) != len(b[f].test) {
			t.Fatalf("fold %d differs between runs with the same seed", f)
		}
		for i := range a[f].test {
			if a[f].test[i] != b[f].test[i] {
				t.Fatalf("fold %d test set differs between runs with the same seed", f)
			}
		}
	}
}

func TestKfoldPartitionsCoverAllSamples(t *testing.T) {
	n, k := 11, 4
	folds := kfold(n, k, 7)
	seen := make(map[int]int)
	for _, f := range folds {
		for _, idx := range f.test {
			seen[idx]++
		}
	}
	if len(seen) != n {
		t.Fatalf("covered %d distinct samples, want %d", len(seen), n)
	}
	for idx, count := range seen {
		if count != 1 {
			t.Fatalf("sample %d appeared in %d test folds, want exactly 1", idx, count)
		}
	}
}

func TestLogResidualMagnitudesCoversEveryClass(t *testing.T) {
	// predicted == yTrue for class 0 (zero residual), off by 1 in every
	// row for class 1 (residual magnitude == row count).
	predicted := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 0,
		1, 1,
	})
	yTrue := mat.NewDense(3, 2, []float64{
		1, 1,
		0, 1,
		1, 2,
	})

	// logResidualMagnitudes only logs; this exercises it for panics and
	// out-of-range access across every class column rather than asserting
	// on slog output.
	logResidualMagnitudes([]string{"A", "B"}, predicted, yTrue)
}

func TestDetermineIdealAlphaPicksAmongCandidates(t *testing.T) {
	x := mat.NewDense(8, 2, []float64{
		1, 0,
		1, 0,
		1, 0,
		1, 0,
		0, 1,
		0, 1,
		0, 1,
		0, 1,
	})
	y := mat.NewDense(8, 2, []float64{
		1, 0,
		1, 0,
		1, 0,
		1, 0,
		0, 1,
		0, 1,
		0, 1,
		0, 1,
	})
	folds := kfold(8, 4, 0x88)
	alpha, err := determineIdealAlpha(x, y, folds)
	if err != nil {
		t.Fatalf("determineIdealAlpha: %v", err)
	}
	found := false
	for _, c := range candidateAlphas {
		if alpha == c {
			found = true
		}
	}
	if !found {
		t.Fatalf("alpha %v is not one of the candidates", alpha)
	}
}
