// Package scanner implements the Shared Scanner: a clonable cursor over a
// charsource.Source whose clones all read the same underlying stream at
// independent positions, backed by one reference-counted ring buffer.
//
// This is the Go restatement of the "single owner of a growable buffer,
// handed out as lightweight cursor handles" pattern: instead of an
// Rc<RefCell<VecDeque<...>>>, one *sharedBuffer is held by every *Scanner
// clone, and each clone tracks only its own integer read position. No
// synchronization guards the shared buffer: a single file's classification
// is driven by exactly one goroutine (see Drive below), so concurrent
// access never occurs. If tokenizers within a file are ever parallelized,
// this type must gain a mutex first.
package scanner

// compactionPeriod is a performance tunable: the Shared Scanner's buffer is
// compacted this often. Semantics never depend on its value.
const compactionPeriod = 1024

// RuneSource is anything that yields one rune at a time, the shape both
// charsource.Source and Scanner (and the case-folding adapter) satisfy.
type RuneSource interface {
	Next() (rune, bool)
}

type bufEntry struct {
	ch   rune
	refs int
}

type sharedBuffer struct {
	source RuneSource
	buf    []bufEntry
	popped int // number of characters discarded from the front so far
}

// ensure makes sure buf holds at least index+2 entries (the requested
// position plus one character of lookahead), pulling from source as
// needed. Returns false once the source is exhausted and index can never
// be filled.
func (b *sharedBuffer) ensure(index int) bool {
	if index < 0 {
		return false
	}
	for len(b.buf) <= index+1 {
		ch, ok := b.source.Next()
		if !ok {
			break
		}
		b.buf = append(b.buf, bufEntry{ch: ch})
	}
	return index < len(b.buf)
}

func (b *sharedBuffer) at(index int) (rune, bool) {
	if !b.ensure(index) {
		return 0, false
	}
	return b.buf[index].ch, true
}

func (b *sharedBuffer) addRef(index, delta int) {
	if index < 0 || index >= len(b.buf) {
		// edge cases here (buffer-out-of-bounds, refcount underflow) are
		// unreachable under the Round-Robin Driver's scheduling and are
		// treated as no-ops rather than panics.
		return
	}
	b.buf[index].refs += delta
}

// purge drops a prefix of zero-refcount entries from the front of the
// buffer. Observable only via memory usage, never via semantics.
func (b *sharedBuffer) purge() {
	n := 0
	for n < len(b.buf) && b.buf[n].refs <= 0 {
		n++
	}
	if n == 0 {
		return
	}
	b.buf = append([]bufEntry(nil), b.buf[n:]...)
	b.popped += n
}

// Scanner is a single clone's read cursor over a sharedBuffer.
type Scanner struct {
	pos   int
	state *sharedBuffer
}

// New constructs a Scanner over source, polling one character into the
// buffer and registering itself as a reader at position 0.
func New(source RuneSource) *Scanner {
	s := &Scanner{state: &sharedBuffer{source: source}}
	idx := s.index()
	s.state.ensure(idx)
	s.state.addRef(idx, 1)
	return s
}

func (s *Scanner) index() int {
	return s.pos - s.state.popped
}

// Next returns the rune at the scanner's current position and advances it,
// or ok == false at end of stream. A position that has already been
// compacted away (which should not occur under Drive) also degrades to
// end-of-stream rather than panicking.
func (s *Scanner) Next() (rune, bool) {
	idx := s.index()
	ch, ok := s.state.at(idx)
	if !ok {
		return 0, false
	}

	s.state.addRef(idx, -1)
	s.pos++
	next := s.index()
	// pre-register at the new position so later Clone/Close calls at this
	// position find an entry to adjust, mirroring the one-ahead prefetch
	// the original scanner performs.
	if s.state.ensure(next) {
		s.state.addRef(next, 1)
	}

	if s.pos%compactionPeriod == 0 {
		s.state.purge()
	}

	return ch, true
}

// Clone produces a new cursor at the same position, sharing the same
// buffer and incrementing the refcount there. Cloning a cursor whose
// source was already empty at construction yields a clone that
// immediately reports end-of-stream, since there is nothing buffered to
// register a reader against.
func (s *Scanner) Clone() *Scanner {
	idx := s.index()
	s.state.ensure(idx)
	s.state.addRef(idx, 1)
	return &Scanner{pos: s.pos, state: s.state}
}

// Close releases this scanner's claim on its current position. Go has no
// destructors, so the driver must call this explicitly once a scanner is
// no longer needed, mirroring the reference language's Drop impl.
func (s *Scanner) Close() {
	idx := s.index()
	s.state.ensure(idx)
	s.state.addRef(idx, -1)
}
