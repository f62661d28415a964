// Package lexicon supplies the concrete, per-language token grammars the
// scanning engine drives. Each grammar is a small deterministic
// finite-state tokenizer implementing tokenizer.Tokenizer; the set of
// kinds a grammar declares, and the textual rules that recognize them,
// are data for this system, not part of its core design (see
// internal/tokenizer). Grammars here are deliberately compact relative to
// a production lexer for each language: they exist to produce a
// plausible, distinguishing token-kind histogram, not to fully validate
// syntax.
package lexicon

import (
	"unicode"
	"unicode/utf8"

	"github.com/lexsleuth/lexsleuth/internal/scanner"
)

// runeWindow adapts a scanner.RuneSource into a small-lookahead cursor and
// tracks the cumulative byte offset of runes already consumed, since the
// underlying source only hands back decoded runes.
type runeWindow struct {
	src    scanner.RuneSource
	lookhd []rune
	offset int
	eof    bool
}

func newRuneWindow(src scanner.RuneSource) *runeWindow {
	return &runeWindow{src: src}
}

func (w *runeWindow) fill(n int) {
	for len(w.lookhd) <= n && !w.eof {
		ch, ok := w.src.Next()
		if !ok {
			w.eof = true
			return
		}
		w.lookhd = append(w.lookhd, ch)
	}
}

// peek returns the nth rune ahead of the read cursor (0 == next rune to be
// consumed) without consuming it.
func (w *runeWindow) peek(n int) (rune, bool) {
	w.fill(n)
	if n >= len(w.lookhd) {
		return 0, false
	}
	return w.lookhd[n], true
}

// advance consumes and returns the next rune, updating the byte offset by
// its UTF-8 encoded length.
func (w *runeWindow) advance() (rune, bool) {
	w.fill(0)
	if len(w.lookhd) == 0 {
		return 0, false
	}
	ch := w.lookhd[0]
	w.lookhd = w.lookhd[1:]
	w.offset += utf8.RuneLen(ch)
	return ch, true
}

// byteOffset is the byte position immediately after the last rune
// returned by advance.
func (w *runeWindow) byteOffset() int { return w.offset }

// matchLiteral consumes exactly the runes of lit if they appear next in
// the stream, returning whether the match succeeded. No runes are
// consumed on failure.
func (w *runeWindow) matchLiteral(lit string) bool {
	runes := []rune(lit)
	for i, r := range runes {
		got, ok := w.peek(i)
		if !ok || got != r {
			return false
		}
	}
	for range runes {
		w.advance()
	}
	return true
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// collectWhile advances while pred holds, returning the consumed runes.
func (w *runeWindow) collectWhile(pred func(rune) bool) []rune {
	var out []rune
	for {
		r, ok := w.peek(0)
		if !ok || !pred(r) {
			break
		}
		w.advance()
		out = append(out, r)
	}
	return out
}
