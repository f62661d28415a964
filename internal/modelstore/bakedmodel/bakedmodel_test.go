package bakedmodel

import (
	"testing"

	"github.com/lexsleuth/lexsleuth/internal/lexicon"
)

func TestDefaultIsShapedForTheBundledTokenizerSet(t *testing.T) {
	b := Default()

	if len(b.ClassLabels) != len(lexicon.Order) {
		t.Fatalf("got %d labels, want %d", len(b.ClassLabels), len(lexicon.Order))
	}
	for i, label := range lexicon.Order {
		if b.ClassLabels[i] != label {
			t.Fatalf("label[%d] = %q, want %q", i, b.ClassLabels[i], label)
		}
	}

	wantWidth := lexicon.FeatureWidth() * len(lexicon.Order)
	if len(b.WeightMatrix) != wantWidth {
		t.Fatalf("got %d weights, want %d", len(b.WeightMatrix), wantWidth)
	}
}

func TestDefaultIsAllZero(t *testing.T) {
	b := Default()
	for i, w := range b.WeightMatrix {
		if w != 0 {
			t.Fatalf("weight[%d] = %v, want 0", i, w)
		}
	}
}
