package engine

import (
	"strings"
	"testing"

	"github.com/lexsleuth/lexsleuth/internal/lexicon"
)

func TestScanReturnsOneHistogramPerTokenizer(t *testing.T) {
	histograms := Scan(strings.NewReader("def f():\n    return 1\n"))
	if len(histograms) != len(lexicon.Order) {
		t.Fatalf("got %d histograms, want %d (one per bundled tokenizer)", len(histograms), len(lexicon.Order))
	}
}

func TestScanEmptyInputProducesZeroHistograms(t *testing.T) {
	histograms := Scan(strings.NewReader(""))
	for i, h := range histograms {
		if h.Sum() != 0 {
			t.Fatalf("histogram %d (%s) sum = %d, want 0 for empty input", i, lexicon.Order[i], h.Sum())
		}
	}
}

func TestScanIsBoundedRegardlessOfContent(t *testing.T) {
	// A large, repetitive file should not panic or hang; this is a smoke
	// test for the Shared Scanner's compaction, not a timing assertion.
	src := strings.Repeat("<div class=\"x\">hello</div>\n", 2000)
	histograms := Scan(strings.NewReader(src))
	if len(histograms) != len(lexicon.Order) {
		t.Fatalf("got %d histograms, want %d", len(histograms), len(lexicon.Order))
	}
}
