package lsp

import (
	"strings"
	"testing"

	"coral66/internal/source"
)

func TestPositionOffsetRoundTrip(t *testing.T) {
	src := "INTEGER a;\nINTEGER b;\n"
	file := source.NewVirtualFile("t.cor", []byte(src))

	bOff := uint32(strings.Index(src, "b"))
	pos := positionForOffsetInFile(file, bOff)
	if pos.Line != 1 || pos.Character != 8 {
		t.Fatalf("position: got %+v", pos)
	}
	if back := offsetForPositionInFile(file, pos); back != bOff {
		t.Fatalf("round trip: got %d, want %d", back, bOff)
	}
}

func TestUTF16CharacterCounting(t *testing.T) {
	// The comment carries a 4-byte rune, which is two UTF-16 units.
	src := "COMMENT \U0001F600 ok;\nINTEGER a;"
	file := source.NewVirtualFile("t.cor", []byte(src))

	okOff := uint32(strings.Index(src, "ok"))
	pos := positionForOffsetInFile(file, okOff)
	// "COMMENT " is 8 units, the emoji 2, the space 1.
	if pos.Line != 0 || pos.Character != 11 {
		t.Fatalf("position: got %+v", pos)
	}
	if back := offsetForPositionInFile(file, pos); back != okOff {
		t.Fatalf("round trip: got %d, want %d", back, okOff)
	}
}

func TestOffsetClampedPastEnd(t *testing.T) {
	file := source.NewVirtualFile("t.cor", []byte("ab"))
	if off := offsetForPositionInFile(file, position{Line: 9, Character: 9}); off != 2 {
		t.Fatalf("past-end line: got %d", off)
	}
	if off := offsetForPositionInFile(file, position{Line: 0, Character: 99}); off != 2 {
		t.Fatalf("past-end character: got %d", off)
	}
	if pos := positionForOffsetInFile(file, 99); pos.Character != 2 {
		t.Fatalf("past-end offset: got %+v", pos)
	}
}

func TestRangeForSpan(t *testing.T) {
	src := "INTEGER a;\nINTEGER bee;"
	file := source.NewVirtualFile("t.cor", []byte(src))
	start := uint32(strings.Index(src, "bee"))
	rng := rangeForSpan(file, source.Span{File: file.ID, Start: start, End: start + 3})
	if rng.Start != (position{Line: 1, Character: 8}) || rng.End != (position{Line: 1, Character: 11}) {
		t.Fatalf("range: got %+v", rng)
	}
}
