package lexicon

import (
	"github.com/lexsleuth/lexsleuth/internal/scanner"
	"github.com/lexsleuth/lexsleuth/internal/tokenizer"
)

// Batch token kinds, trimmed from the original grammar's ~80-command
// enumeration down to the handful of commands and variable forms that
// carry most of the distinguishing signal.
const (
	batComment = iota
	batNewLine
	batAtSymbol
	batPercentSymbol
	batColonSymbol
	batLabel
	batEchoCommand
	batSetCommand
	batIfCommand
	batElseCommand
	batForCommand
	batGotoCommand
	batCallCommand
	batExitCommand
	batPauseCommand
	batRemCommand
	batNamedVariable
	batParameterVariable
	batLoopVariable
	batRedirectionSymbol
	batPipeSymbol
	batAndSymbol
	batStringLiteral
	batWord
	batKindCount
)

var batCommands = map[string]int{
	"echo":  batEchoCommand,
	"set":   batSetCommand,
	"if":    batIfCommand,
	"else":  batElseCommand,
	"for":   batForCommand,
	"goto":  batGotoCommand,
	"call":  batCallCommand,
	"exit":  batExitCommand,
	"pause": batPauseCommand,
	"rem":   batRemCommand,
}

// Batch tokenizes Windows batch-script-like source. It is case-insensitive
// for commands the way cmd.exe is, so it expects a case-folded stream.
type Batch struct {
	w          *runeWindow
	atLineHead bool
}

func NewBatch(src scanner.RuneSource) *Batch {
	return &Batch{w: newRuneWindow(src), atLineHead: true}
}

func (b *Batch) KindCount() int { return batKindCount }
func (b *Batch) CaseFold() bool { return true }
func (b *Batch) Label() string  { return "Batch" }

func (b *Batch) Next() (tokenizer.Event, bool) {
	for {
		r, ok := b.w.peek(0)
		if !ok {
			return tokenizer.Event{}, false
		}

		switch {
		case r == '\n':
			b.w.advance()
			b.atLineHead = true
			return b.emit(batNewLine), true
		case r == ' ' || r == '\t' || r == '\r':
			b.w.collectWhile(func(r rune) bool { return r == ' ' || r == '\t' || r == '\r' })
			continue
		case b.atLineHead && b.w.matchLiteral("rem "):
			b.w.collectWhile(func(r rune) bool { return r != '\n' })
			b.atLineHead = false
			return b.emit(batRemCommand), true
		case r == ':' && b.atLineHead:
			b.w.advance()
			if next, ok := b.w.peek(0); ok && next == ':' {
				b.w.advance()
				b.w.collectWhile(func(r rune) bool { return r != '\n' })
				b.atLineHead = false
				return b.emit(batComment), true
			}
			b.w.collectWhile(func(r rune) bool { return r != '\n' && r != ' ' && r != '\t' })
			b.atLineHead = false
			return b.emit(batLabel), true
		case r == '@':
			// "@" only suppresses echo of the command that follows it, so the
			// next word is still in command position.
			b.w.advance()
			return b.emit(batAtSymbol), true
		case r == '"':
			b.readQuoted()
			b.atLineHead = false
			return b.emit(batStringLiteral), true
		case r == '%':
			b.atLineHead = false
			return b.readVariable(), true
		case r == '|':
			if b.w.matchLiteral("||") {
				b.atLineHead = false
				return b.emit(batAndSymbol), true
			}
			b.w.advance()
			b.atLineHead = false
			return b.emit(batPipeSymbol), true
		case r == '&':
			if b.w.matchLiteral("&&") {
				b.atLineHead = false
				return b.emit(batAndSymbol), true
			}
			b.w.advance()
			b.atLineHead = false
			return b.emit(batAndSymbol), true
		case r == '>' || r == '<':
			b.w.collectWhile(func(r rune) bool { return r == '>' || r == '<' })
			b.atLineHead = false
			return b.emit(batRedirectionSymbol), true
		}

		word := string(b.w.collectWhile(func(r rune) bool {
			switch r {
			case ' ', '\t', '\r', '\n', '%', '"', '|', '&', '>', '<':
				return false
			}
			return true
		}))
		wasHead := b.atLineHead
		b.atLineHead = false
		if word == "" {
			b.w.advance()
			return tokenizer.Event{IsErr: true, Offset: b.w.byteOffset()}, true
		}
		if wasHead {
			if kind, ok := batCommands[word]; ok {
				return b.emit(kind), true
			}
		}
		return b.emit(batWord), true
	}
}

// readVariable recognizes %VAR%, %1-%9 (parameter references), and
// %%v (for-loop variables), collapsing into the three variable kinds.
func (b *Batch) readVariable() tokenizer.Event {
	if b.w.matchLiteral("%%") {
		b.w.collectWhile(isIdentPart)
		return b.emit(batLoopVariable)
	}
	b.w.advance()
	if next, ok := b.w.peek(0); ok && isDigit(next) {
		b.w.advance()
		return b.emit(batParameterVariable)
	}
	b.w.collectWhile(func(r rune) bool { return r != '%' && r != '\n' })
	if next, ok := b.w.peek(0); ok && next == '%' {
		b.w.advance()
	}
	return b.emit(batNamedVariable)
}

func (b *Batch) readQuoted() {
	b.w.advance()
	b.w.collectWhile(func(r rune) bool { return r != '"' && r != '\n' })
	if next, ok := b.w.peek(0); ok && next == '"' {
		b.w.advance()
	}
}

func (b *Batch) emit(kind int) tokenizer.Event {
	return tokenizer.Event{Kind: kind, Offset: b.w.byteOffset()}
}
