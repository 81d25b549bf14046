// Package lexer converts CORAL 66 source text into a position-tagged token
// stream. It is total: every input produces a token sequence terminated by
// EOF, with unrecognized bytes kept as one-byte Unknown tokens. Comment
// regions (COMMENT ... ; and the words following END) are consumed in place,
// so every emitted span indexes the original, unmodified text.
package lexer

import (
	"coral66/internal/source"
	"coral66/internal/token"
)

type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	look    *token.Token // one-token lookahead buffer
	endTail bool         // inside the comment words permitted after END
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		lx.skipTrivia()
		if lx.cursor.EOF() {
			return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
		}

		ch := lx.cursor.Peek()
		var tok token.Token
		switch {
		case isLetter(ch):
			tok = lx.scanIdentOrKeyword()
			if tok.Kind == token.Invalid {
				// COMMENT region consumed as trivia; scan again.
				continue
			}
		case isDec(ch):
			tok = lx.scanNumber()
		default:
			tok = lx.scanOperatorOrPunct()
		}

		// Words after END are comment, up to a delimiter (official CORAL 66
		// convention). Swallow identifiers and numerals while it lasts.
		if lx.endTail {
			switch tok.Kind {
			case token.Ident, token.Numeral:
				continue
			default:
				lx.endTail = false
			}
		}
		if tok.Kind == token.KwEnd {
			lx.endTail = true
		}
		return tok
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokenize scans the whole file eagerly, including the trailing EOF token.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinue(b byte) bool {
	return isLetter(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
