// Package bakedmodel is the seed model lexsleuth classify falls back to
// when no --model flag points it at a trained one. It mirrors the
// training pipeline's baked-source output shape (modelstore.Baked) but
// its weights are a deliberate all-zero placeholder rather than anything
// fit to real samples: scoring against it always produces a uniform
// 1/C probability over the bundled languages, the same degenerate result
// classifier's empty-input edge case (Model.ClassifyBytes) produces. Running lexsleuth train
// and passing the generated file via --model replaces this with a real
// decision boundary.
package bakedmodel

import (
	"github.com/lexsleuth/lexsleuth/internal/lexicon"
	"github.com/lexsleuth/lexsleuth/internal/modelstore"
)

// Default returns the zero-weight placeholder model, sized to the
// currently bundled tokenizer set.
func Default() modelstore.Baked {
	labels := append([]string(nil), lexicon.Order...)
	width := lexicon.FeatureWidth() * len(labels)
	return modelstore.Baked{
		ClassLabels:  labels,
		WeightMatrix: make([]float64, width),
	}
}
