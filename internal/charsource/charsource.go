// Package charsource decodes a byte stream into a finite, non-restartable
// sequence of Unicode scalar values.
package charsource

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// Source yields one rune at a time from an underlying reader. Malformed
// UTF-8 sequences are silently skipped rather than surfaced; reaching the
// end of the underlying reader yields Next() == (0, false) forever after.
//
// Source carries no state beyond the reader cursor: it is not clonable and
// not restartable. Scanner is the thing callers clone.
type Source struct {
	r    *bufio.Reader
	done bool
}

// New wraps r, buffering reads as needed.
func New(r io.Reader) *Source {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Source{r: br}
}

// Next returns the next decoded rune, or ok == false once the underlying
// reader is exhausted. Invalid byte sequences are dropped one byte at a
// time until a valid rune (or EOF) is found.
func (s *Source) Next() (rune, bool) {
	if s.done {
		return 0, false
	}
	for {
		ch, size, err := s.r.ReadRune()
		if err != nil {
			s.done = true
			return 0, false
		}
		if ch == utf8.RuneError && size <= 1 {
			// malformed sequence: ReadRune already consumed one byte, keep going
			continue
		}
		return ch, true
	}
}
