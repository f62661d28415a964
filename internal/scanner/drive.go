package scanner

import "github.com/lexsleuth/lexsleuth/internal/tokenizer"

// Drive runs the Round-Robin Driver over a fixed set of tokenizer
// adapters: each adapter is advanced until it catches up with the current
// high-water byte offset, or exhausts its input, before the driver moves
// on to the next adapter. Repeating this keeps the slowest adapter no
// more than one token event behind the fastest, which bounds the Shared
// Scanner's retained buffer independent of file size.
//
// The returned histograms are indexed by adapters' construction order,
// never by scheduling order, so callers always know which entry belongs
// to which tokenizer regardless of which one happened to finish first.
func Drive(adapters []*tokenizer.Adapter) []tokenizer.Histogram {
	active := make([]*tokenizer.Adapter, len(adapters))
	copy(active, adapters)

	highWater := 0
	for len(active) > 0 {
		next := active[:0]
		for _, a := range active {
			for {
				offset, ok := a.Advance()
				if !ok {
					break
				}
				if offset >= highWater {
					highWater = offset
					next = append(next, a)
					break
				}
			}
		}
		active = next
	}

	out := make([]tokenizer.Histogram, len(adapters))
	for i, a := range adapters {
		out[i] = a.Finalize()
	}
	return out
}
