package modelstore

import (
	"strings"
	"testing"
)

func TestBakedFeatureCount(t *testing.T) {
	b := Baked{
		ClassLabels:  []string{"HTML", "Python"},
		WeightMatrix: make([]float64, 10),
	}
	if got := b.FeatureCount(); got != 5 {
		t.Fatalf("FeatureCount() = %d, want 5", got)
	}
}

func TestBakedFeatureCountNoLabels(t *testing.T) {
	b := Baked{}
	if got := b.FeatureCount(); got != 0 {
		t.Fatalf("FeatureCount() = %d, want 0", got)
	}
}

func TestWriteBakedGoProducesValidLookingSource(t *testing.T) {
	b := Baked{
		ClassLabels:  []string{"HTML", "Python"},
		WeightMatrix: []float64{0.1, 0.2, 0.3, 0.4},
	}
	var sb strings.Builder
	if err := WriteBakedGo(&sb, "bakedmodel", b); err != nil {
		t.Fatalf("WriteBakedGo: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "package bakedmodel") {
		t.Fatalf("output missing package clause:\n%s", out)
	}
	if !strings.Contains(out, `"HTML"`) || !strings.Contains(out, `"Python"`) {
		t.Fatalf("output missing class labels:\n%s", out)
	}
	if !strings.Contains(out, "var ClassLabels") || !strings.Contains(out, "var WeightMatrix") {
		t.Fatalf("output missing expected var declarations:\n%s", out)
	}
	if !strings.Contains(out, "0.1") {
		t.Fatalf("output missing weight values:\n%s", out)
	}
}

func TestWriteBakedGoHandlesEmptyMatrix(t *testing.T) {
	b := Baked{ClassLabels: nil, WeightMatrix: nil}
	var sb strings.Builder
	if err := WriteBakedGo(&sb, "bakedmodel", b); err != nil {
		t.Fatalf("WriteBakedGo: %v", err)
	}
	if !strings.Contains(sb.String(), "var ClassLabels = []string{\n}") {
		t.Fatalf("expected an empty ClassLabels slice literal, got:\n%s", sb.String())
	}
}
