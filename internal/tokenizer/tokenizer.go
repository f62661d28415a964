// Package tokenizer defines the opaque per-language tokenizer interface
// the scanning engine drives, and the adapter that turns a tokenizer's
// event stream into a token-kind histogram.
//
// The token grammars themselves (which kinds a given language declares,
// and the rules that recognize them) are treated as a data input, not
// part of the core design: package lexicon supplies the concrete
// implementations, but nothing here depends on any one of them.
package tokenizer

// Event is one step of a Tokenizer: either a recognized token of a given
// kind, ending at a byte offset, or a lex error at a byte offset.
type Event struct {
	Kind   int  // token kind index; meaningless when IsErr is true
	Offset int  // end byte offset of the token, or the error's byte offset
	IsErr  bool
}

// Tokenizer is a finite iterator over a rune stream that produces Events.
// Implementations must resynchronize after an error (skip one character
// and continue) so that Next eventually returns false rather than
// looping forever.
type Tokenizer interface {
	// Next drives the tokenizer one step. ok is false once the tokenizer
	// has exhausted its input.
	Next() (Event, bool)
	// KindCount reports K_t, the number of distinct token kinds this
	// tokenizer declares. The adapter reserves one additional slot past
	// this for the lex-error count.
	KindCount() int
	// CaseFold reports whether the Round-Robin Driver must feed this
	// tokenizer a lower-cased rune stream rather than the raw one.
	CaseFold() bool
	// Label names the tokenizer (and, not coincidentally, the candidate
	// language it recognizes) for logging and class-label wiring.
	Label() string
}

// Histogram is a dense per-kind event count, with one trailing slot for
// lex errors: len(Histogram) == KindCount()+1.
type Histogram []uint64

// Sum is the total number of (token or error) events recorded.
func (h Histogram) Sum() uint64 {
	var total uint64
	for _, v := range h {
		total += v
	}
	return total
}

// Adapter wraps one Tokenizer, accumulating a count per kind and a
// separate error count as the driver advances it.
type Adapter struct {
	tok        Tokenizer
	counts     []uint64
	errorCount uint64
	offset     int
	done       bool
}

// NewAdapter constructs an Adapter around tok with all counts at zero.
func NewAdapter(tok Tokenizer) *Adapter {
	return &Adapter{
		tok:    tok,
		counts: make([]uint64, tok.KindCount()),
	}
}

// Label passes through the wrapped tokenizer's name.
func (a *Adapter) Label() string { return a.tok.Label() }

// Done reports whether this adapter's tokenizer has been exhausted.
func (a *Adapter) Done() bool { return a.done }

// Offset is the byte offset reached by the last successfully processed
// event, used by the Round-Robin Driver to decide which adapter is
// furthest behind.
func (a *Adapter) Offset() int { return a.offset }

// Advance drives the underlying tokenizer one step, folding the result
// into this adapter's counts. It returns the new high-water byte offset
// and whether the tokenizer produced an event at all (false means this
// adapter has reached end of stream and should be retired).
func (a *Adapter) Advance() (offset int, ok bool) {
	if a.done {
		return a.offset, false
	}
	ev, ok := a.tok.Next()
	if !ok {
		a.done = true
		return a.offset, false
	}
	if ev.IsErr {
		a.errorCount++
	} else {
		a.counts[ev.Kind]++
	}
	a.offset = ev.Offset
	return a.offset, true
}

// Finalize consumes the adapter, returning its Histogram: counts ++
// [errorCount].
func (a *Adapter) Finalize() Histogram {
	h := make(Histogram, len(a.counts)+1)
	copy(h, a.counts)
	h[len(a.counts)] = a.errorCount
	return h
}
