package diagfmt

import (
	"strings"
	"testing"

	"coral66/internal/diag"
	"coral66/internal/source"
)

func testFile(t *testing.T, text string) *source.File {
	t.Helper()
	return source.NewVirtualFile("prog.cor", []byte(text))
}

func spanOf(t *testing.T, text, needle string) source.Span {
	t.Helper()
	idx := strings.Index(text, needle)
	if idx < 0 {
		t.Fatalf("needle %q not found", needle)
	}
	return source.Span{File: 1, Start: uint32(idx), End: uint32(idx + len(needle))}
}

func TestPrettyHeadingAndUnderline(t *testing.T) {
	text := "INTEGER count;\ncount := missing;\n"
	file := testFile(t, text)

	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.SemaUnresolvedReference, spanOf(t, text, "missing"), "name 'missing' is not declared"))

	var sb strings.Builder
	Pretty(&sb, bag, file, PrettyOpts{})

	want := "prog.cor:2:10: WARNING SemaUnresolvedReference: name 'missing' is not declared\n" +
		"  count := missing;\n" +
		"           ^~~~~~~\n"
	if got := sb.String(); got != want {
		t.Errorf("pretty output mismatch:\ngot:\n%swant:\n%s", got, want)
	}
}

func TestPrettyNotesFollowDiagnostic(t *testing.T) {
	text := "INTEGER x;\nFLOATING x;\n"
	file := testFile(t, text)

	first := spanOf(t, text, "x")
	second := source.Span{File: 1, Start: first.Start + 12, End: first.End + 12}

	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.SemaDuplicateSymbol, second, "'x' is already declared").
		WithNote(first, "first declared here"))

	var sb strings.Builder
	Pretty(&sb, bag, file, PrettyOpts{ShowNotes: true})

	out := sb.String()
	if !strings.Contains(out, "WARNING SemaDuplicateSymbol: 'x' is already declared") {
		t.Errorf("missing diagnostic heading:\n%s", out)
	}
	if !strings.Contains(out, "prog.cor:1:9: INFO note: first declared here") {
		t.Errorf("missing note heading:\n%s", out)
	}
}

func TestPrettyNotesSuppressedByDefault(t *testing.T) {
	text := "INTEGER x;\n"
	file := testFile(t, text)

	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.SemaDuplicateSymbol, spanOf(t, text, "x"), "dup").
		WithNote(spanOf(t, text, "x"), "first declared here"))

	var sb strings.Builder
	Pretty(&sb, bag, file, PrettyOpts{})

	if strings.Contains(sb.String(), "note") {
		t.Errorf("notes should not be printed without ShowNotes:\n%s", sb.String())
	}
}

func TestPrettyEmptySpanGetsSingleCaret(t *testing.T) {
	text := "END\n"
	file := testFile(t, text)

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynPatternMismatch, source.Span{File: 1, Start: 0, End: 0}, "unexpected end"))

	var sb strings.Builder
	Pretty(&sb, bag, file, PrettyOpts{})

	if !strings.Contains(sb.String(), "\n  ^\n") {
		t.Errorf("expected a lone caret for an empty span:\n%s", sb.String())
	}
}
