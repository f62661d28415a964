package sqlitestore

import (
	"path/filepath"
	"testing"

	"github.com/lexsleuth/lexsleuth/internal/modelstore"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.sqlite")

	want := modelstore.Baked{
		ClassLabels:  []string{"HTML", "Python", "Batch"},
		WeightMatrix: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6},
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(got.ClassLabels) != len(want.ClassLabels) {
		t.Fatalf("got %d labels, want %d", len(got.ClassLabels), len(want.ClassLabels))
	}
	for i, l := range want.ClassLabels {
		if got.ClassLabels[i] != l {
			t.Fatalf("label[%d] = %q, want %q", i, got.ClassLabels[i], l)
		}
	}
	if len(got.WeightMatrix) != len(want.WeightMatrix) {
		t.Fatalf("got %d weights, want %d", len(got.WeightMatrix), len(want.WeightMatrix))
	}
	for i, w := range want.WeightMatrix {
		if got.WeightMatrix[i] != w {
			t.Fatalf("weight[%d] = %v, want %v", i, got.WeightMatrix[i], w)
		}
	}
}
