package lexicon

import (
	"strings"

	"github.com/lexsleuth/lexsleuth/internal/scanner"
	"github.com/lexsleuth/lexsleuth/internal/tokenizer"
)

// PowerShell token kinds. PowerShell's comparison operators and keywords
// are case-insensitive (`-EQ`/`-eq`/`-Eq` are all the same operator), which
// is why this tokenizer asks the driver for a case-folded stream rather
// than folding ad hoc here.
const (
	psComment = iota
	psNewLine
	psStringLiteral
	psNumericLiteral
	psBasicVariable
	psForeachKeyword
	psParamKeyword
	psIfKeyword
	psElseKeyword
	psElseifKeyword
	psWhileKeyword
	psFunctionKeyword
	psReturnKeyword
	psBreakKeyword
	psContinueKeyword
	psTryKeyword
	psCatchKeyword
	psFinallyKeyword
	psSwitchKeyword
	psEqComparisonOperator
	psNeComparisonOperator
	psGtComparisonOperator
	psLtComparisonOperator
	psGeComparisonOperator
	psLeComparisonOperator
	psLikeComparisonOperator
	psMatchComparisonOperator
	psAndOperator
	psOrOperator
	psNotOperator
	psCommandParameter
	psRecognizedCommand
	psPipeSymbol
	psAssignSymbol
	psOpenParenSymbol
	psCloseParenSymbol
	psOpenBraceSymbol
	psCloseBraceSymbol
	psSemiColonSymbol
	psIdentifier
	psKindCount
)

var psKeywords = map[string]int{
	"foreach":  psForeachKeyword,
	"param":    psParamKeyword,
	"if":       psIfKeyword,
	"else":     psElseKeyword,
	"elseif":   psElseifKeyword,
	"while":    psWhileKeyword,
	"function": psFunctionKeyword,
	"return":   psReturnKeyword,
	"break":    psBreakKeyword,
	"continue": psContinueKeyword,
	"try":      psTryKeyword,
	"catch":    psCatchKeyword,
	"finally":  psFinallyKeyword,
	"switch":   psSwitchKeyword,
}

// psComparisonWords maps the bare (case-folded) word after a leading "-"
// to its comparison/logical operator kind. PowerShell also accepts
// case/culture-sensitivity prefixes ("-ceq", "-ieq"); those collapse to
// the same kind here since the distinction doesn't change the grammar's
// shape for classification purposes.
var psComparisonWords = map[string]int{
	"eq":    psEqComparisonOperator,
	"ceq":   psEqComparisonOperator,
	"ieq":   psEqComparisonOperator,
	"ne":    psNeComparisonOperator,
	"cne":   psNeComparisonOperator,
	"ine":   psNeComparisonOperator,
	"gt":    psGtComparisonOperator,
	"cgt":   psGtComparisonOperator,
	"igt":   psGtComparisonOperator,
	"lt":    psLtComparisonOperator,
	"clt":   psLtComparisonOperator,
	"ilt":   psLtComparisonOperator,
	"ge":    psGeComparisonOperator,
	"cge":   psGeComparisonOperator,
	"ige":   psGeComparisonOperator,
	"le":    psLeComparisonOperator,
	"cle":   psLeComparisonOperator,
	"ile":   psLeComparisonOperator,
	"like":  psLikeComparisonOperator,
	"match": psMatchComparisonOperator,
	"and":   psAndOperator,
	"or":    psOrOperator,
	"not":   psNotOperator,
}

// PowerShell tokenizes PowerShell-like source. recognizedCommandNext
// tracks whether the next bare word should be read as a command name
// (e.g. right after a pipe or at statement start) versus a plain
// identifier, mirroring PowerShell's command/expression mode split.
type PowerShell struct {
	w                     *runeWindow
	recognizedCommandNext bool
}

func NewPowerShell(src scanner.RuneSource) *PowerShell {
	return &PowerShell{w: newRuneWindow(src), recognizedCommandNext: true}
}

func (p *PowerShell) KindCount() int { return psKindCount }
func (p *PowerShell) CaseFold() bool { return true }
func (p *PowerShell) Label() string  { return "PowerShell" }

func (p *PowerShell) Next() (tokenizer.Event, bool) {
	for {
		r, ok := p.w.peek(0)
		if !ok {
			return tokenizer.Event{}, false
		}

		switch {
		case r == '\n':
			p.w.advance()
			p.recognizedCommandNext = true
			return p.emit(psNewLine), true
		case r == ' ' || r == '\t' || r == '\r':
			p.w.collectWhile(func(r rune) bool { return r == ' ' || r == '\t' || r == '\r' })
			continue
		case r == '#':
			p.w.collectWhile(func(r rune) bool { return r != '\n' })
			return p.emit(psComment), true
		case p.w.matchLiteral("<#"):
			for {
				if p.w.matchLiteral("#>") {
					break
				}
				if _, ok := p.w.advance(); !ok {
					break
				}
			}
			return p.emit(psComment), true
		case r == '"' || r == '\'':
			p.readQuoted(r)
			p.recognizedCommandNext = false
			return p.emit(psStringLiteral), true
		case r == '$':
			p.w.advance()
			p.w.collectWhile(func(r rune) bool { return isIdentPart(r) || r == ':' })
			p.recognizedCommandNext = false
			return p.emit(psBasicVariable), true
		case r == '-' && isAsciiAlpha(p.peekAt(1)):
			word := string(p.w.collectWhile(func(r rune) bool { return r != ' ' && r != '\t' && r != '\n' && r != '(' }))
			bare := strings.TrimPrefix(word, "-")
			if kind, ok := psComparisonWords[bare]; ok {
				p.recognizedCommandNext = false
				return p.emit(kind), true
			}
			p.recognizedCommandNext = false
			return p.emit(psCommandParameter), true
		case isDigit(r):
			p.w.collectWhile(func(r rune) bool { return isDigit(r) || r == '.' })
			p.recognizedCommandNext = false
			return p.emit(psNumericLiteral), true
		case isIdentStart(r):
			word := string(p.w.collectWhile(isIdentPart))
			if kind, ok := psKeywords[word]; ok {
				p.recognizedCommandNext = word == "foreach" || word == "if" || word == "while"
				return p.emit(kind), true
			}
			if p.recognizedCommandNext {
				p.recognizedCommandNext = false
				return p.emit(psRecognizedCommand), true
			}
			return p.emit(psIdentifier), true
		}

		if kind, ok := p.matchSymbol(r); ok {
			return p.emit(kind), true
		}

		p.w.advance()
		return tokenizer.Event{IsErr: true, Offset: p.w.byteOffset()}, true
	}
}

func (p *PowerShell) peekAt(n int) rune {
	r, ok := p.w.peek(n)
	if !ok {
		return 0
	}
	return r
}

func (p *PowerShell) matchSymbol(r rune) (int, bool) {
	switch r {
	case '|':
		p.w.advance()
		p.recognizedCommandNext = true
		return psPipeSymbol, true
	case ';':
		p.w.advance()
		p.recognizedCommandNext = true
		return psSemiColonSymbol, true
	case '(':
		p.w.advance()
		return psOpenParenSymbol, true
	case ')':
		p.w.advance()
		return psCloseParenSymbol, true
	case '{':
		p.w.advance()
		p.recognizedCommandNext = true
		return psOpenBraceSymbol, true
	case '}':
		p.w.advance()
		return psCloseBraceSymbol, true
	case '=':
		p.w.advance()
		p.recognizedCommandNext = false
		return psAssignSymbol, true
	}
	return 0, false
}

func (p *PowerShell) readQuoted(quote rune) {
	p.w.advance()
	for {
		r, ok := p.w.peek(0)
		if !ok || r == quote {
			break
		}
		if r == '`' {
			p.w.advance()
		}
		p.w.advance()
	}
	p.w.advance()
}

func (p *PowerShell) emit(kind int) tokenizer.Event {
	return tokenizer.Event{Kind: kind, Offset: p.w.byteOffset()}
}
