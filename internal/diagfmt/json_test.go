package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"coral66/internal/diag"
	"coral66/internal/source"
)

func TestBuildDiagnosticsOutput(t *testing.T) {
	text := "INTEGER count;\ncount := missing;\n"
	file := testFile(t, text)

	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.SemaUnresolvedReference, spanOf(t, text, "missing"), "name 'missing' is not declared").
		WithNote(spanOf(t, text, "count"), "nearest declaration"))

	out := BuildDiagnosticsOutput(bag, file, JSONOpts{})
	if out.Count != 1 {
		t.Fatalf("Count = %d, want 1", out.Count)
	}
	if len(out.Diagnostics) != 1 {
		t.Fatalf("len(Diagnostics) = %d, want 1", len(out.Diagnostics))
	}

	d := out.Diagnostics[0]
	if d.Severity != "WARNING" || d.Code != "SemaUnresolvedReference" {
		t.Errorf("severity/code = %q/%q", d.Severity, d.Code)
	}
	if d.Location.File != "prog.cor" {
		t.Errorf("Location.File = %q", d.Location.File)
	}
	if d.Location.StartByte != 24 || d.Location.EndByte != 31 {
		t.Errorf("byte range = [%d, %d), want [24, 31)", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 0 {
		t.Errorf("positions should be omitted without IncludePositions, got StartLine %d", d.Location.StartLine)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "nearest declaration" {
		t.Errorf("notes = %+v", d.Notes)
	}
}

func TestJSONIncludePositions(t *testing.T) {
	text := "INTEGER count;\ncount := missing;\n"
	file := testFile(t, text)

	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.SemaUnresolvedReference, spanOf(t, text, "missing"), "unresolved"))

	out := BuildDiagnosticsOutput(bag, file, JSONOpts{IncludePositions: true})
	loc := out.Diagnostics[0].Location
	if loc.StartLine != 2 || loc.StartCol != 10 {
		t.Errorf("start = %d:%d, want 2:10", loc.StartLine, loc.StartCol)
	}
	if loc.EndLine != 2 || loc.EndCol != 17 {
		t.Errorf("end = %d:%d, want 2:17", loc.EndLine, loc.EndCol)
	}
}

func TestJSONMaxTruncatesButCountsAll(t *testing.T) {
	text := "a;\nb;\nc;\n"
	file := testFile(t, text)

	bag := diag.NewBag(10)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.NewWarning(diag.SemaUnresolvedReference, source.Span{File: 1, Start: i * 3, End: i*3 + 1}, "unresolved"))
	}

	out := BuildDiagnosticsOutput(bag, file, JSONOpts{Max: 2})
	if len(out.Diagnostics) != 2 {
		t.Errorf("len(Diagnostics) = %d, want 2", len(out.Diagnostics))
	}
	if out.Count != 3 {
		t.Errorf("Count = %d, want 3", out.Count)
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	text := "INTEGER x;\n"
	file := testFile(t, text)

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynPatternMismatch, spanOf(t, text, "x"), "bad declaration"))

	var sb strings.Builder
	if err := WriteJSON(&sb, bag, file, JSONOpts{}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Count != 1 || decoded.Diagnostics[0].Code != "SynPatternMismatch" {
		t.Errorf("decoded = %+v", decoded)
	}
}
