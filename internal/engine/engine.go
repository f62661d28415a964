// Package engine assembles the Character Source, Shared Scanner,
// tokenizer adapters, and Round-Robin Driver into the single entry point
// the rest of the system needs: turn a byte stream into one histogram per
// bundled tokenizer.
package engine

import (
	"io"

	"github.com/lexsleuth/lexsleuth/internal/charsource"
	"github.com/lexsleuth/lexsleuth/internal/lexicon"
	"github.com/lexsleuth/lexsleuth/internal/scanner"
	"github.com/lexsleuth/lexsleuth/internal/tokenizer"
)

// Scan decodes r as UTF-8 (dropping invalid sequences), drives every
// bundled tokenizer over the resulting rune stream via the Round-Robin
// Driver, and returns their histograms in lexicon.Order.
func Scan(r io.Reader) []tokenizer.Histogram {
	source := charsource.New(r)
	root := scanner.New(source)

	adapters, clones := lexicon.Build(root)
	// Every clone now holds its own claim on position 0; releasing the
	// root's claim lets compaction drop characters all clones have read.
	root.Close()
	defer func() {
		for _, c := range clones {
			c.Close()
		}
	}()

	return scanner.Drive(adapters)
}
