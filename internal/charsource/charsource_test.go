package charsource

import (
	"bytes"
	"testing"
)

func TestNextDecodesValidUTF8(t *testing.T) {
	s := New(bytes.NewReader([]byte("héllo")))
	want := []rune("héllo")
	for i, w := range want {
		got, ok := s.Next()
		if !ok || got != w {
			t.Fatalf("rune %d: got %q, %v, want %q, true", i, got, ok, w)
		}
	}
	if _, ok := s.Next(); ok {
		t.Fatal("expected end of stream")
	}
}

func TestNextSkipsInvalidBytes(t *testing.T) {
	// 0xFF is never valid UTF-8 on its own; it should be dropped rather
	// than surfaced as U+FFFD or aborting the stream.
	data := append([]byte("a"), 0xFF)
	data = append(data, []byte("b")...)
	s := New(bytes.NewReader(data))

	var got []rune
	for {
		r, ok := s.Next()
		if !ok {
			break
		}
		got = append(got, r)
	}
	if string(got) != "ab" {
		t.Fatalf("got %q, want %q", string(got), "ab")
	}
}

func TestNextAtEOFStaysFalse(t *testing.T) {
	s := New(bytes.NewReader(nil))
	if _, ok := s.Next(); ok {
		t.Fatal("expected immediate end of stream for empty input")
	}
	if _, ok := s.Next(); ok {
		t.Fatal("expected end of stream to remain false on repeated calls")
	}
}
