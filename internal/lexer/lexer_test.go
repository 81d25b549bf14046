package lexer

import (
	"strings"
	"testing"

	"coral66/internal/diag"
	"coral66/internal/source"
	"coral66/internal/token"
)

func tokenize(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	file := source.NewVirtualFile("test.cor", []byte(src))
	bag := diag.NewBag(64)
	toks := Tokenize(file, Options{Reporter: diag.BagReporter{Bag: bag}})
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("token stream must end with EOF, got %v", toks)
	}
	return toks[:len(toks)-1], bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func expectKinds(t *testing.T, got []token.Token, want ...token.Kind) {
	t.Helper()
	gk := kinds(got)
	if len(gk) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(gk), gk, len(want), want)
	}
	for i := range want {
		if gk[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v (stream %v)", i, gk[i], want[i], gk)
		}
	}
}

func TestKeywordsCaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		want  token.Kind
	}{
		{"BEGIN", token.KwBegin},
		{"begin", token.KwBegin},
		{"Begin", token.KwBegin},
		{"pRoCeDuRe", token.KwProcedure},
		{"integer", token.KwInteger},
		{"OVERLAY", token.KwOverlay},
	}
	for _, tt := range tests {
		toks, _ := tokenize(t, tt.input)
		if len(toks) != 1 || toks[0].Kind != tt.want {
			t.Errorf("%q: got %v, want %v", tt.input, kinds(toks), tt.want)
		}
	}
}

func TestIdentifierShape(t *testing.T) {
	toks, _ := tokenize(t, "alpha42 b9c")
	expectKinds(t, toks, token.Ident, token.Ident)
	if toks[0].Text != "alpha42" || toks[1].Text != "b9c" {
		t.Fatalf("unexpected texts: %q %q", toks[0].Text, toks[1].Text)
	}
}

func TestAssignIsOneToken(t *testing.T) {
	toks, _ := tokenize(t, "x := 1; lab: y = 2")
	expectKinds(t, toks,
		token.Ident, token.Assign, token.Numeral, token.Semicolon,
		token.Ident, token.Colon, token.Ident, token.Eq, token.Numeral)
}

func TestOperators(t *testing.T) {
	toks, _ := tokenize(t, "< <= <> >= > + - * / = . , ( ) [ ]")
	expectKinds(t, toks,
		token.Lt, token.LtEq, token.NotEq, token.GtEq, token.Gt,
		token.Plus, token.Minus, token.Star, token.Slash, token.Eq,
		token.Dot, token.Comma, token.LParen, token.RParen,
		token.LBracket, token.RBracket)
}

func TestNumerals(t *testing.T) {
	toks, _ := tokenize(t, "42 3.25 7.")
	expectKinds(t, toks, token.Numeral, token.Numeral, token.Numeral, token.Dot)
	if toks[1].Text != "3.25" {
		t.Fatalf("fraction numeral: got %q", toks[1].Text)
	}
	// A trailing dot with no digit after it is not part of the numeral.
	if toks[2].Text != "7" {
		t.Fatalf("bare-dot numeral: got %q", toks[2].Text)
	}
}

func TestCommentRegionKeepsOffsets(t *testing.T) {
	src := "COMMENT anything at all, even BEGIN END; INTEGER x;"
	toks, bag := tokenize(t, src)
	expectKinds(t, toks, token.KwInteger, token.Ident, token.Semicolon)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}

	wantOff := uint32(strings.Index(src, "x;"))
	if toks[1].Span.Start != wantOff {
		t.Fatalf("identifier offset drifted: got %d, want %d", toks[1].Span.Start, wantOff)
	}
}

func TestUnterminatedComment(t *testing.T) {
	toks, bag := tokenize(t, "COMMENT never closed")
	expectKinds(t, toks)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedComment {
		t.Fatalf("want LexUnterminatedComment, got %v", bag.Items())
	}
}

func TestEndTailSwallowed(t *testing.T) {
	src := "BEGIN INTEGER a; END finish of program 2 ; INTEGER b;"
	toks, bag := tokenize(t, src)
	expectKinds(t, toks,
		token.KwBegin, token.KwInteger, token.Ident, token.Semicolon,
		token.KwEnd, token.Semicolon,
		token.KwInteger, token.Ident, token.Semicolon)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestEndTailStopsAtKeyword(t *testing.T) {
	toks, _ := tokenize(t, "END of loop END of block ;")
	expectKinds(t, toks, token.KwEnd, token.KwEnd, token.Semicolon)
}

func TestUnknownByte(t *testing.T) {
	toks, bag := tokenize(t, "x # y")
	expectKinds(t, toks, token.Ident, token.Unknown, token.Ident)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("want LexUnknownChar, got %v", bag.Items())
	}
}

func TestSpansIndexOriginalText(t *testing.T) {
	src := "  FIXED(13, 4)  total"
	file := source.NewVirtualFile("spans.cor", []byte(src))
	toks := Tokenize(file, Options{Reporter: diag.NopReporter{}})
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		if got := file.Text(tok.Span); got != tok.Text {
			t.Fatalf("span/text mismatch for %v: span text %q, token text %q", tok.Kind, got, tok.Text)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	file := source.NewVirtualFile("peek.cor", []byte("alpha beta"))
	lx := New(file, Options{Reporter: diag.NopReporter{}})
	if lx.Peek().Text != "alpha" {
		t.Fatal("peek should see first token")
	}
	if lx.Next().Text != "alpha" {
		t.Fatal("next after peek should return the same token")
	}
	if lx.Next().Text != "beta" {
		t.Fatal("stream should advance past peeked token")
	}
}
