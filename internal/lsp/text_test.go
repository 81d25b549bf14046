package lsp

import "testing"

func TestApplyChangesFullReplace(t *testing.T) {
	got := applyChanges("old text", []textDocumentContentChangeEvent{{Text: "new text"}})
	if got != "new text" {
		t.Fatalf("got %q", got)
	}
}

func TestApplyChangesRanged(t *testing.T) {
	text := "INTEGER a;\nINTEGER b;"
	change := textDocumentContentChangeEvent{
		Range: &lspRange{
			Start: position{Line: 1, Character: 8},
			End:   position{Line: 1, Character: 9},
		},
		Text: "count",
	}
	got := applyChanges(text, []textDocumentContentChangeEvent{change})
	if got != "INTEGER a;\nINTEGER count;" {
		t.Fatalf("got %q", got)
	}
}

func TestApplyChangesSequence(t *testing.T) {
	got := applyChanges("", []textDocumentContentChangeEvent{
		{Text: "INTEGER a;"},
		{Range: &lspRange{
			Start: position{Line: 0, Character: 10},
			End:   position{Line: 0, Character: 10},
		}, Text: "\nINTEGER b;"},
	})
	if got != "INTEGER a;\nINTEGER b;" {
		t.Fatalf("got %q", got)
	}
}

func TestApplyChangesClampsBadRanges(t *testing.T) {
	got := applyChanges("ab", []textDocumentContentChangeEvent{{
		Range: &lspRange{
			Start: position{Line: 5, Character: 0},
			End:   position{Line: 0, Character: 0},
		},
		Text: "!",
	}})
	if got != "ab!" {
		t.Fatalf("got %q", got)
	}
}
