package lexer

import (
	"coral66/internal/diag"
	"coral66/internal/token"
)

// scanIdentOrKeyword scans [A-Za-z][A-Za-z0-9]* and classifies it through
// LookupKeyword (case-insensitive). A COMMENT keyword is consumed together
// with its region up to the terminating semicolon and yields no token; the
// Invalid kind signals the caller to scan again.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		if k == token.KwComment {
			lx.skipCommentRegion(start)
			return token.Token{Kind: token.Invalid}
		}
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// skipCommentRegion consumes a COMMENT ... ; region, semicolon included.
// The bytes stay in place, so all following token offsets are unaffected.
func (lx *Lexer) skipCommentRegion(start Mark) {
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == ';' {
			return
		}
	}
	lx.errLex(diag.LexUnterminatedComment, lx.cursor.SpanFrom(start),
		"COMMENT region is missing its closing semicolon")
}

// scanNumber scans a numeral: a digit run with an optional fraction part.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Numeral,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanOperatorOrPunct scans operators and punctuation, longest match first.
// Anything unrecognized becomes a one-byte Unknown token plus a diagnostic;
// the scanner never fails.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	kind := token.Unknown
	switch b {
	case ':':
		if lx.cursor.Eat('=') {
			kind = token.Assign
		} else {
			kind = token.Colon
		}
	case '<':
		switch {
		case lx.cursor.Eat('='):
			kind = token.LtEq
		case lx.cursor.Eat('>'):
			kind = token.NotEq
		default:
			kind = token.Lt
		}
	case '>':
		if lx.cursor.Eat('=') {
			kind = token.GtEq
		} else {
			kind = token.Gt
		}
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '=':
		kind = token.Eq
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if kind == token.Unknown {
		lx.errLex(diag.LexUnknownChar, sp, "unrecognized character "+quoteByte(b))
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

func quoteByte(b byte) string {
	if b >= 0x20 && b < 0x7F {
		return "'" + string(rune(b)) + "'"
	}
	const hex = "0123456789ABCDEF"
	return "0x" + string(hex[b>>4]) + string(hex[b&0xF])
}

// skipTrivia consumes whitespace.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\n', '\r':
			lx.cursor.Bump()
		default:
			return
		}
	}
}
