package classifier

import (
	"math"
	"testing"

	"github.com/lexsleuth/lexsleuth/internal/lexicon"
)

func TestScore(t *testing.T) {
	// 2 features, 3 classes
	weights := []float64{
		1, 0, 2, // feature 0 contributes to class 0 and class 2
		0, 1, 0, // feature 1 contributes to class 1
	}
	row := []float64{0.5, 0.25}
	got := Score(row, weights, 2, 3)
	want := []float64{0.5, 0.25, 1.0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("Score()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSortedClassesDescendingStable(t *testing.T) {
	scores := []float64{0.1, 0.9, 0.9, 0.5}
	ranked := SortedClasses(scores)

	if len(ranked) != len(scores) {
		t.Fatalf("got %d ranked entries, want %d", len(ranked), len(scores))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Fatalf("ranked list not descending at %d: %v", i, ranked)
		}
	}
	// indices 1 and 2 tie at 0.9; stability keeps them in ascending index order.
	if ranked[0].Index != 1 || ranked[1].Index != 2 {
		t.Fatalf("tie-break order wrong: %+v", ranked[:2])
	}
}

func TestSortedClassesNaNSinksToEnd(t *testing.T) {
	scores := []float64{0.5, math.NaN(), 0.9}
	ranked := SortedClasses(scores)
	if !math.IsNaN(ranked[len(ranked)-1].Score) {
		t.Fatalf("NaN score did not sink to the end: %+v", ranked)
	}
}

func TestProbabilitiesSumToOne(t *testing.T) {
	scores := []float64{-0.2, 0.0, 0.5, 1.3}
	probs := Probabilities(scores)

	var sum float64
	for _, p := range probs {
		if p <= 0 || p >= 1 {
			t.Fatalf("probability out of (0,1): %v", p)
		}
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("probabilities summed to %v, want ~1", sum)
	}
}

func TestProbabilitiesAllZeroScoresUniform(t *testing.T) {
	scores := make([]float64, 4)
	probs := Probabilities(scores)
	want := 1.0 / 4.0
	for _, p := range probs {
		if math.Abs(p-want) > 1e-9 {
			t.Fatalf("got %v, want uniform %v", p, want)
		}
	}
}

func TestNewModelRejectsShapeMismatch(t *testing.T) {
	// 5 weights does not divide evenly by 2 labels.
	_, err := NewModel([]float64{1, 2, 3, 4, 5}, []string{"A", "B"})
	if err == nil {
		t.Fatal("expected a ConfigurationError for mismatched shape, got nil")
	}
}

func TestNewModelRejectsFeatureWidthMismatch(t *testing.T) {
	// Divides evenly by the class count, but not by the live tokenizer
	// set's actual feature width.
	weights := make([]float64, 2*lexicon.FeatureWidth()+1)
	_, err := NewModel(weights, []string{"A"})
	if err == nil {
		t.Fatal("expected a ConfigurationError for a feature width mismatch, got nil")
	}
}

func TestClassifyBytesEmptyInputIsUniform(t *testing.T) {
	labels := []string{"A", "B", "C"}
	featureCount := lexicon.FeatureWidth()
	weights := make([]float64, featureCount*len(labels))
	m, err := NewModel(weights, labels)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	c := m.ClassifyBytes(nil)
	if len(c.Verdicts) != len(labels) {
		t.Fatalf("got %d verdicts, want %d", len(c.Verdicts), len(labels))
	}
	want := 1.0 / float64(len(labels))
	for _, v := range c.Verdicts {
		if math.Abs(v.Probability-want) > 1e-9 {
			t.Fatalf("got probability %v, want uniform %v", v.Probability, want)
		}
	}
}
