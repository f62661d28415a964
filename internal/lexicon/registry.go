package lexicon

import (
	"github.com/lexsleuth/lexsleuth/internal/scanner"
	"github.com/lexsleuth/lexsleuth/internal/tokenizer"
)

// Order fixes the construction order of the bundled tokenizers. The
// Round-Robin Driver finalizes histograms in this order regardless of
// scheduling order, so this also fixes the layout of a SampleRow's
// per-tokenizer segments. The placeholder model in bakedmodel uses it as
// its class-label order; a trained model's labels follow its manifest.
var Order = []string{"HTML", "VB", "JavaScript", "PowerShell", "Python", "Batch"}

// constructors builds one tokenizer per entry in Order from a fresh clone
// of the root scanner. Declared as a slice rather than a map so
// construction order is visibly tied to Order.
var constructors = []func(scanner.RuneSource) tokenizer.Tokenizer{
	func(src scanner.RuneSource) tokenizer.Tokenizer { return NewHTML(src) },
	func(src scanner.RuneSource) tokenizer.Tokenizer { return NewVB(src) },
	func(src scanner.RuneSource) tokenizer.Tokenizer { return NewJavaScript(src) },
	func(src scanner.RuneSource) tokenizer.Tokenizer { return NewPowerShell(src) },
	func(src scanner.RuneSource) tokenizer.Tokenizer { return NewPython(src) },
	func(src scanner.RuneSource) tokenizer.Tokenizer { return NewBatch(src) },
}

// Build clones root once per bundled tokenizer and returns a
// tokenizer.Adapter wrapping each one, case-folding the clone first when
// the grammar requires it. Callers must Close each returned clone's
// underlying scanner.Scanner once the driver finishes with it; Adapters
// don't own that lifecycle, the caller of Build does.
func Build(root *scanner.Scanner) ([]*tokenizer.Adapter, []*scanner.Scanner) {
	adapters := make([]*tokenizer.Adapter, len(Order))
	clones := make([]*scanner.Scanner, len(Order))

	for i, newTok := range constructors {
		clone := root.Clone()
		clones[i] = clone

		var src scanner.RuneSource = clone
		tok := newTok(src)
		if tok.CaseFold() {
			tok = newTok(scanner.NewCaseFolded(clone))
		}
		adapters[i] = tokenizer.NewAdapter(tok)
	}

	return adapters, clones
}

// FeatureWidth reports the fixed width of a SampleRow built from the
// bundled tokenizers: sum over each tokenizer of (KindCount()+1).
// Constructing a tokenizer never touches its rune source, so this can be
// computed without a real scanner behind it.
func FeatureWidth() int {
	var width int
	for _, newTok := range constructors {
		width += newTok(nil).KindCount() + 1
	}
	return width
}
