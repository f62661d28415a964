// Package feature turns per-tokenizer histograms into the normalized
// numeric row the Linear Classifier scores.
package feature

import "github.com/lexsleuth/lexsleuth/internal/tokenizer"

// Normalize L1-normalizes a histogram: each entry divided by the sum of
// all entries. A histogram that sums to zero (no tokenizer events at all,
// e.g. an empty file) normalizes to all zeroes rather than dividing by
// zero, which is the "uninformative row" edge case the classifier relies
// on to fall back to a uniform probability distribution.
func Normalize(h tokenizer.Histogram) []float64 {
	out := make([]float64, len(h))
	sum := h.Sum()
	if sum == 0 {
		return out
	}
	total := float64(sum)
	for i, v := range h {
		out[i] = float64(v) / total
	}
	return out
}

// BuildRow concatenates the L1-normalized form of each histogram, in the
// order given, into a single SampleRow. The width of the result is fixed
// for a given set of tokenizers: sum over histograms of (KindCount()+1).
func BuildRow(histograms []tokenizer.Histogram) []float64 {
	var width int
	for _, h := range histograms {
		width += len(h)
	}
	row := make([]float64, 0, width)
	for _, h := range histograms {
		row = append(row, Normalize(h)...)
	}
	return row
}
