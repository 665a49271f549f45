package annotation

import (
	"fmt"
	"strings"

	"github.com/teranos/uibind/diag"
)

// tokenKind identifies lexical tokens of the annotation language
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokFloat
	tokString
	tokLParen
	tokRParen
	tokComma
	tokAssign
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of annotation"
	case tokIdent:
		return "identifier"
	case tokInt:
		return "integer"
	case tokFloat:
		return "float"
	case tokString:
		return "string"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokComma:
		return "','"
	case tokAssign:
		return "'='"
	}
	return "token"
}

type token struct {
	kind  tokenKind
	text  string // raw source text
	value string // decoded value for strings
	span  diag.Span
}

// lexer splits annotation text into tokens
type lexer struct {
	src string
	pos int
}

func (l *lexer) next() (token, error) {
	l.skipSpace()
	start := l.pos
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, span: diag.Span{From: start, To: start}}, nil
	}

	c := l.src[l.pos]
	switch {
	case c == '(':
		return l.single(tokLParen), nil
	case c == ')':
		return l.single(tokRParen), nil
	case c == ',':
		return l.single(tokComma), nil
	case c == '=':
		return l.single(tokAssign), nil
	case c == '\'' || c == '"':
		return l.str(c)
	case c == '-' || c == '+' || c == '.' || isDigit(c):
		return l.number()
	case isIdentStart(c):
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}
		return l.tok(tokIdent, start), nil
	}

	l.pos++
	return token{}, diag.New(diag.InvalidFormat, diag.Span{From: start, To: l.pos},
		"unexpected character %q", rune(c))
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func (l *lexer) single(kind tokenKind) token {
	l.pos++
	return l.tok(kind, l.pos-1)
}

func (l *lexer) tok(kind tokenKind, start int) token {
	text := l.src[start:l.pos]
	return token{kind: kind, text: text, value: text, span: diag.Span{From: start, To: l.pos}}
}

// number scans [sign] digits [. digits] [e [sign] digits]
func (l *lexer) number() (token, error) {
	start := l.pos
	if c := l.src[l.pos]; c == '-' || c == '+' {
		l.pos++
	}

	digits := l.digits()
	kind := tokInt
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		kind = tokFloat
		l.pos++
		digits += l.digits()
	}
	if digits == 0 {
		return token{}, diag.New(diag.InvalidFormat, diag.Span{From: start, To: l.pos + 1},
			"malformed number %q", l.src[start:l.pos])
	}

	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		kind = tokFloat
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '-' || l.src[l.pos] == '+') {
			l.pos++
		}
		if l.digits() == 0 {
			return token{}, diag.New(diag.InvalidFormat, diag.Span{From: start, To: l.pos},
				"malformed exponent in %q", l.src[start:l.pos])
		}
	}

	if l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		end := l.pos
		for end < len(l.src) && isIdentPart(l.src[end]) {
			end++
		}
		return token{}, diag.New(diag.InvalidFormat, diag.Span{From: start, To: end},
			"malformed number %q", l.src[start:end])
	}
	return l.tok(kind, start), nil
}

func (l *lexer) digits() int {
	n := 0
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
		n++
	}
	return n
}

// str scans a quoted string. Both quote characters accept the same escapes.
func (l *lexer) str(quote byte) (token, error) {
	start := l.pos
	l.pos++

	var sb strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == quote:
			l.pos++
			t := l.tok(tokString, start)
			t.value = sb.String()
			return t, nil
		case c == '\\':
			if l.pos+1 >= len(l.src) {
				l.pos++
				continue
			}
			r, ok := unescape(l.src[l.pos+1])
			if !ok {
				return token{}, diag.New(diag.InvalidFormat, diag.Span{From: l.pos, To: l.pos + 2},
					"unknown escape sequence %q", l.src[l.pos:l.pos+2])
			}
			sb.WriteByte(r)
			l.pos += 2
		default:
			sb.WriteByte(c)
			l.pos++
		}
	}

	return token{}, diag.New(diag.InvalidFormat, diag.Span{From: start, To: l.pos},
		"unterminated string literal")
}

func unescape(c byte) (byte, bool) {
	switch c {
	case '\\', '\'', '"':
		return c, true
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	}
	return 0, false
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) }

// tokenError reports an unexpected token
func tokenError(t token, want string) *diag.Error {
	if t.kind == tokEOF {
		return diag.New(diag.InvalidFormat, t.span, "expected %s, found %s", want, t.kind)
	}
	return diag.New(diag.InvalidFormat, t.span, "expected %s, found %s", want, describe(t))
}

func describe(t token) string {
	switch t.kind {
	case tokIdent, tokInt, tokFloat, tokString:
	default:
		return t.kind.String()
	}
	return fmt.Sprintf("%s %s", t.kind, t.text)
}
