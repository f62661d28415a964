package tokenizer

import "testing"

// scriptedTokenizer replays a fixed sequence of events, the simplest
// stand-in for a real per-language grammar when testing the Adapter and
// Driver in isolation.
type scriptedTokenizer struct {
	events []Event
	pos    int
	kinds  int
}

func (s *scriptedTokenizer) Next() (Event, bool) {
	if s.pos >= len(s.events) {
		return Event{}, false
	}
	e := s.events[s.pos]
	s.pos++
	return e, true
}
func (s *scriptedTokenizer) KindCount() int { return s.kinds }
func (s *scriptedTokenizer) CaseFold() bool { return false }
func (s *scriptedTokenizer) Label() string  { return "scripted" }

func TestAdapterCountsKindsAndErrors(t *testing.T) {
	tok := &scriptedTokenizer{
		kinds: 2,
		events: []Event{
			{Kind: 0, Offset: 1},
			{Kind: 1, Offset: 2},
			{Kind: 0, Offset: 3},
			{IsErr: true, Offset: 4},
		},
	}
	a := NewAdapter(tok)
	for {
		if _, ok := a.Advance(); !ok {
			break
		}
	}
	h := a.Finalize()
	want := Histogram{2, 1, 1} // kind0=2, kind1=1, errors=1
	if len(h) != len(want) {
		t.Fatalf("len(h) = %d, want %d", len(h), len(want))
	}
	for i := range want {
		if h[i] != want[i] {
			t.Fatalf("h[%d] = %d, want %d", i, h[i], want[i])
		}
	}
	if h.Sum() != 4 {
		t.Fatalf("Sum() = %d, want 4", h.Sum())
	}
}

func TestAdapterDoneAfterExhaustion(t *testing.T) {
	tok := &scriptedTokenizer{kinds: 1, events: []Event{{Kind: 0, Offset: 1}}}
	a := NewAdapter(tok)
	a.Advance()
	if a.Done() {
		t.Fatal("adapter reported done before exhausting its tokenizer")
	}
	if _, ok := a.Advance(); ok {
		t.Fatal("expected Advance to report exhaustion")
	}
	if !a.Done() {
		t.Fatal("adapter should report done once its tokenizer is exhausted")
	}
}
