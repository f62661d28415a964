package lexicon

import (
	"github.com/lexsleuth/lexsleuth/internal/scanner"
	"github.com/lexsleuth/lexsleuth/internal/tokenizer"
)

// VB token kinds. Visual Basic's keyword set is case-insensitive the same
// way Batch's commands and PowerShell's comparison operators are, so this
// grammar shares that family's texture: a case-folded input stream and a
// flat keyword lookup rather than a mode-switching state machine.
const (
	vbComment = iota
	vbNewLine
	vbLineContinuation
	vbStringLiteral
	vbNumericLiteral
	vbDimKeyword
	vbSubKeyword
	vbFunctionKeyword
	vbEndKeyword
	vbIfKeyword
	vbThenKeyword
	vbElseKeyword
	vbElseIfKeyword
	vbForKeyword
	vbNextKeyword
	vbDoKeyword
	vbLoopKeyword
	vbWhileKeyword
	vbReturnKeyword
	vbCallKeyword
	vbSetKeyword
	vbNewKeyword
	vbClassKeyword
	vbPublicKeyword
	vbPrivateKeyword
	vbAsKeyword
	vbTrueKeyword
	vbFalseKeyword
	vbNothingKeyword
	vbAndKeyword
	vbOrKeyword
	vbNotKeyword
	vbIdentifier
	vbDotSymbol
	vbCommaSymbol
	vbOpenParenSymbol
	vbCloseParenSymbol
	vbAssignSymbol
	vbOperatorSymbol
	vbKindCount
)

var vbKeywords = map[string]int{
	"dim":      vbDimKeyword,
	"sub":      vbSubKeyword,
	"function": vbFunctionKeyword,
	"end":      vbEndKeyword,
	"if":       vbIfKeyword,
	"then":     vbThenKeyword,
	"else":     vbElseKeyword,
	"elseif":   vbElseIfKeyword,
	"for":      vbForKeyword,
	"next":     vbNextKeyword,
	"do":       vbDoKeyword,
	"loop":     vbLoopKeyword,
	"while":    vbWhileKeyword,
	"return":   vbReturnKeyword,
	"call":     vbCallKeyword,
	"set":      vbSetKeyword,
	"new":      vbNewKeyword,
	"class":    vbClassKeyword,
	"public":   vbPublicKeyword,
	"private":  vbPrivateKeyword,
	"as":       vbAsKeyword,
	"true":     vbTrueKeyword,
	"false":    vbFalseKeyword,
	"nothing":  vbNothingKeyword,
	"and":      vbAndKeyword,
	"or":       vbOrKeyword,
	"not":      vbNotKeyword,
}

var vbOperators = []string{"<>", "<=", ">=", "+", "-", "*", "/", "\\", "^", "&", "<", ">"}

// VB tokenizes Visual Basic-like source.
type VB struct {
	w *runeWindow
}

func NewVB(src scanner.RuneSource) *VB {
	return &VB{w: newRuneWindow(src)}
}

func (v *VB) KindCount() int { return vbKindCount }
func (v *VB) CaseFold() bool { return true }
func (v *VB) Label() string  { return "VB" }

func (v *VB) Next() (tokenizer.Event, bool) {
	for {
		r, ok := v.w.peek(0)
		if !ok {
			return tokenizer.Event{}, false
		}

		switch {
		case r == '\n':
			v.w.advance()
			return v.emit(vbNewLine), true
		case r == ' ' || r == '\t' || r == '\r':
			v.w.collectWhile(func(r rune) bool { return r == ' ' || r == '\t' || r == '\r' })
			continue
		case r == '\'':
			v.w.collectWhile(func(r rune) bool { return r != '\n' })
			return v.emit(vbComment), true
		case v.w.matchLiteral("rem ") || v.w.matchLiteral("REM "):
			v.w.collectWhile(func(r rune) bool { return r != '\n' })
			return v.emit(vbComment), true
		case r == '_' && v.isLineContinuation():
			v.w.advance()
			return v.emit(vbLineContinuation), true
		case r == '"':
			v.readQuoted()
			return v.emit(vbStringLiteral), true
		case isDigit(r):
			v.w.collectWhile(func(r rune) bool { return isDigit(r) || r == '.' })
			return v.emit(vbNumericLiteral), true
		case isIdentStart(r):
			word := string(v.w.collectWhile(isIdentPart))
			if kind, ok := vbKeywords[word]; ok {
				return v.emit(kind), true
			}
			return v.emit(vbIdentifier), true
		}

		if kind, ok := v.matchSymbol(r); ok {
			return v.emit(kind), true
		}

		v.w.advance()
		return tokenizer.Event{IsErr: true, Offset: v.w.byteOffset()}, true
	}
}

// isLineContinuation reports whether the underscore at the read cursor is
// VB's trailing line-continuation marker: the last non-space character
// before a newline.
func (v *VB) isLineContinuation() bool {
	i := 1
	for {
		r, ok := v.w.peek(i)
		if !ok || r == '\n' {
			return true
		}
		if r != ' ' && r != '\r' {
			return false
		}
		i++
	}
}

func (v *VB) matchSymbol(r rune) (int, bool) {
	switch r {
	case '.':
		v.w.advance()
		return vbDotSymbol, true
	case ',':
		v.w.advance()
		return vbCommaSymbol, true
	case '(':
		v.w.advance()
		return vbOpenParenSymbol, true
	case ')':
		v.w.advance()
		return vbCloseParenSymbol, true
	case '=':
		v.w.advance()
		return vbAssignSymbol, true
	}
	for _, op := range vbOperators {
		if v.w.matchLiteral(op) {
			return vbOperatorSymbol, true
		}
	}
	return 0, false
}

func (v *VB) readQuoted() {
	v.w.advance()
	for {
		r, ok := v.w.peek(0)
		if !ok {
			return
		}
		if r == '"' {
			if next, ok := v.w.peek(1); ok && next == '"' {
				v.w.advance()
				v.w.advance()
				continue
			}
			v.w.advance()
			return
		}
		if r == '\n' {
			return
		}
		v.w.advance()
	}
}

func (v *VB) emit(kind int) tokenizer.Event {
	return tokenizer.Event{Kind: kind, Offset: v.w.byteOffset()}
}
