package scanner

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseFolded wraps a RuneSource (normally a Scanner clone) and applies full
// Unicode lower-casing, rune by rune, to every character it yields. Some
// grammars (HTML, Visual Basic, PowerShell, Batch) expect case-folded
// input because their keywords are conventionally case-insensitive; others
// (JavaScript, Python) are case-sensitive and read the raw stream.
//
// Full Unicode lower-casing is one-to-many for a handful of code points
// (Turkish dotted İ becomes "i" + a combining dot above, for example), so a
// single input rune can expand into several output runes. cases.Lower does
// the correct mapping (unlike unicode.ToLower, which is one-to-one by
// construction); CaseFolded buffers the expansion and drains it before
// pulling the next input rune. Byte offsets reported by a tokenizer
// reading from a CaseFolded stream describe the folded stream and are used
// only for Round-Robin Driver scheduling, never surfaced to callers.
type CaseFolded struct {
	inner   RuneSource
	caser   cases.Caser
	pending []rune
}

// NewCaseFolded wraps inner with a language-neutral full-Unicode lower
// caser. language.Und is deliberate: per-script special casing (Turkish
// dotless/dotted I, for example) would require knowing the source
// language, which is precisely what this classifier has not decided yet.
func NewCaseFolded(inner RuneSource) *CaseFolded {
	return &CaseFolded{
		inner: inner,
		caser: cases.Lower(language.Und),
	}
}

// Next returns the next folded rune, draining any buffered expansion
// before consuming another rune from the wrapped source.
func (c *CaseFolded) Next() (rune, bool) {
	for len(c.pending) == 0 {
		ch, ok := c.inner.Next()
		if !ok {
			return 0, false
		}
		c.pending = []rune(c.caser.String(string(ch)))
		if len(c.pending) == 0 {
			// a small number of code points fold to nothing; keep pulling
			continue
		}
	}
	head := c.pending[0]
	c.pending = c.pending[1:]
	return head, true
}
