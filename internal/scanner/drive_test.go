package scanner

import (
	"testing"

	"github.com/lexsleuth/lexsleuth/internal/tokenizer"
)

// pacedTokenizer emits events at offsets spaced by step, for exactly n
// events, letting tests control which adapter is "slow" versus "fast"
// without depending on the real scanning engine.
type pacedTokenizer struct {
	n, step, offset, emitted int
}

func (p *pacedTokenizer) Next() (tokenizer.Event, bool) {
	if p.emitted >= p.n {
		return tokenizer.Event{}, false
	}
	p.offset += p.step
	p.emitted++
	return tokenizer.Event{Kind: 0, Offset: p.offset}, true
}
func (p *pacedTokenizer) KindCount() int { return 1 }
func (p *pacedTokenizer) CaseFold() bool { return false }
func (p *pacedTokenizer) Label() string  { return "paced" }

func TestDriveReturnsHistogramsInConstructionOrder(t *testing.T) {
	fast := tokenizer.NewAdapter(&pacedTokenizer{n: 10, step: 1})
	slow := tokenizer.NewAdapter(&pacedTokenizer{n: 2, step: 5})

	// Construction order is [fast, slow]; Drive must preserve that in its
	// output regardless of which one the round-robin schedule finishes
	// advancing first.
	out := Drive([]*tokenizer.Adapter{fast, slow})
	if len(out) != 2 {
		t.Fatalf("got %d histograms, want 2", len(out))
	}
	if out[0].Sum() != 10 {
		t.Fatalf("fast tokenizer's histogram sum = %d, want 10", out[0].Sum())
	}
	if out[1].Sum() != 2 {
		t.Fatalf("slow tokenizer's histogram sum = %d, want 2", out[1].Sum())
	}
}

func TestDriveHandlesEmptyAdapterSet(t *testing.T) {
	out := Drive(nil)
	if len(out) != 0 {
		t.Fatalf("got %d histograms, want 0", len(out))
	}
}
