package lexicon

import (
	"github.com/lexsleuth/lexsleuth/internal/scanner"
	"github.com/lexsleuth/lexsleuth/internal/tokenizer"
)

// HTML token kinds. Grounded on the ANTLR HTMLLexer.g4 grammar: markup is
// recognized structurally (open/close tag machinery, attributes, raw
// script/style bodies), everything else falls into HtmlText.
const (
	htmlComment = iota
	htmlDtd
	htmlTagOpen
	htmlTagEquals
	htmlTagSlash
	htmlTagName
	htmlTagClose
	htmlAttributeValue
	htmlScriptOpen
	htmlScriptClose
	htmlStyleOpen
	htmlStyleClose
	htmlText
	htmlKindCount
)

type htmlMode int

const (
	htmlModeInit htmlMode = iota
	htmlModeTag
	htmlModeAttribute
	htmlModeComment
	htmlModeScript
	htmlModeStyle
)

// HTML tokenizes HTML-like markup. It is case-insensitive the way browsers
// treat tag and attribute names, so the driver feeds it a lower-cased
// stream.
type HTML struct {
	w    *runeWindow
	mode htmlMode
}

// NewHTML wraps src (expected to already be case-folded by the caller).
func NewHTML(src scanner.RuneSource) *HTML {
	return &HTML{w: newRuneWindow(src)}
}

func (h *HTML) KindCount() int { return htmlKindCount }
func (h *HTML) CaseFold() bool { return true }
func (h *HTML) Label() string  { return "HTML" }

func (h *HTML) Next() (ev tokenizer.Event, ok bool) {
	for {
		switch h.mode {
		case htmlModeInit:
			if e, got, done := h.stepInit(); got {
				return e, true
			} else if done {
				return tokenizer.Event{}, false
			}
		case htmlModeTag:
			if e, got, done := h.stepTag(); got {
				return e, true
			} else if done {
				return tokenizer.Event{}, false
			}
		case htmlModeAttribute:
			if e, got, done := h.stepAttribute(); got {
				return e, true
			} else if done {
				return tokenizer.Event{}, false
			}
		case htmlModeComment:
			if e, got, done := h.stepUntil("-->", htmlComment, htmlModeInit); got {
				return e, true
			} else if done {
				return tokenizer.Event{}, false
			}
		case htmlModeScript:
			if e, got, done := h.stepUntilAny([]string{"</script>", "</>"}, htmlScriptClose, htmlModeInit); got {
				return e, true
			} else if done {
				return tokenizer.Event{}, false
			}
		case htmlModeStyle:
			if e, got, done := h.stepUntilAny([]string{"</style>", "</>"}, htmlStyleClose, htmlModeInit); got {
				return e, true
			} else if done {
				return tokenizer.Event{}, false
			}
		}
	}
}

func (h *HTML) stepInit() (tokenizer.Event, bool, bool) {
	r, ok := h.w.peek(0)
	if !ok {
		return tokenizer.Event{}, false, true
	}
	if isSpace(r) {
		h.w.collectWhile(isSpace)
		return tokenizer.Event{}, false, false
	}
	if r == '<' {
		switch {
		case h.w.matchLiteral("<!--"):
			h.mode = htmlModeComment
			return tokenizer.Event{}, false, false
		case h.w.matchLiteral("<script"):
			h.readUntilRune('>')
			h.mode = htmlModeScript
			return tokenizer.Event{Kind: htmlScriptOpen, Offset: h.w.byteOffset()}, true, false
		case h.w.matchLiteral("<style"):
			h.readUntilRune('>')
			h.mode = htmlModeStyle
			return tokenizer.Event{Kind: htmlStyleOpen, Offset: h.w.byteOffset()}, true, false
		case h.w.matchLiteral("<!"):
			h.readUntilRune('>')
			return tokenizer.Event{Kind: htmlDtd, Offset: h.w.byteOffset()}, true, false
		default:
			h.w.advance()
			h.mode = htmlModeTag
			return tokenizer.Event{Kind: htmlTagOpen, Offset: h.w.byteOffset()}, true, false
		}
	}
	h.w.collectWhile(func(r rune) bool { return r != '<' })
	return tokenizer.Event{Kind: htmlText, Offset: h.w.byteOffset()}, true, false
}

func (h *HTML) stepTag() (tokenizer.Event, bool, bool) {
	r, ok := h.w.peek(0)
	if !ok {
		return tokenizer.Event{}, false, true
	}
	if isSpace(r) {
		h.w.collectWhile(isSpace)
		return tokenizer.Event{}, false, false
	}
	switch r {
	case '>':
		h.w.advance()
		h.mode = htmlModeInit
		return tokenizer.Event{Kind: htmlTagClose, Offset: h.w.byteOffset()}, true, false
	case '=':
		h.w.advance()
		h.mode = htmlModeAttribute
		return tokenizer.Event{Kind: htmlTagEquals, Offset: h.w.byteOffset()}, true, false
	case '/':
		h.w.advance()
		return tokenizer.Event{Kind: htmlTagSlash, Offset: h.w.byteOffset()}, true, false
	}
	if isAsciiAlpha(r) {
		h.w.advance()
		h.w.collectWhile(func(r rune) bool { return isAsciiAlnum(r) || r == '-' || r == '_' || r == '.' })
		return tokenizer.Event{Kind: htmlTagName, Offset: h.w.byteOffset()}, true, false
	}
	h.w.advance()
	return tokenizer.Event{IsErr: true, Offset: h.w.byteOffset()}, true, false
}

func (h *HTML) stepAttribute() (tokenizer.Event, bool, bool) {
	r, ok := h.w.peek(0)
	if !ok {
		return tokenizer.Event{}, false, true
	}
	if isSpace(r) {
		h.w.collectWhile(isSpace)
		return tokenizer.Event{}, false, false
	}
	if r == '"' || r == '\'' {
		quote := r
		h.w.advance()
		h.w.collectWhile(func(r rune) bool { return r != quote })
		h.w.advance() // closing quote, if present
		h.mode = htmlModeTag
		return tokenizer.Event{Kind: htmlAttributeValue, Offset: h.w.byteOffset()}, true, false
	}
	consumed := h.w.collectWhile(isAttributeChar)
	h.mode = htmlModeTag
	if len(consumed) == 0 {
		h.w.advance()
		return tokenizer.Event{IsErr: true, Offset: h.w.byteOffset()}, true, false
	}
	return tokenizer.Event{Kind: htmlAttributeValue, Offset: h.w.byteOffset()}, true, false
}

// stepUntil consumes runes until literal lit is matched (inclusive),
// emitting one event of kind. If the stream ends first, everything
// consumed so far is folded into the same event (mirroring the
// underlying grammar's `_` catch-all).
func (h *HTML) stepUntil(lit string, kind int, next htmlMode) (tokenizer.Event, bool, bool) {
	for {
		if h.w.matchLiteral(lit) {
			h.mode = next
			return tokenizer.Event{Kind: kind, Offset: h.w.byteOffset()}, true, false
		}
		if _, ok := h.w.advance(); !ok {
			h.mode = next
			return tokenizer.Event{Kind: kind, Offset: h.w.byteOffset()}, true, false
		}
	}
}

func (h *HTML) stepUntilAny(lits []string, kind int, next htmlMode) (tokenizer.Event, bool, bool) {
	for {
		for _, lit := range lits {
			if h.w.matchLiteral(lit) {
				h.mode = next
				return tokenizer.Event{Kind: kind, Offset: h.w.byteOffset()}, true, false
			}
		}
		if _, ok := h.w.advance(); !ok {
			return tokenizer.Event{}, false, true
		}
	}
}

func (h *HTML) readUntilRune(r rune) {
	h.w.collectWhile(func(c rune) bool { return c != r })
	h.w.advance()
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }
func isAsciiAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
func isAsciiAlnum(r rune) bool { return isAsciiAlpha(r) || isDigit(r) }
func isAttributeChar(r rune) bool {
	switch r {
	case '-', '_', '.', '/', '+', ',', '?', '=', ':', ';', '#':
		return true
	}
	return isAsciiAlnum(r)
}
