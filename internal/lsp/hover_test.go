package lsp

import (
	"strings"
	"testing"
)

func TestHoverOnFunctionCall(t *testing.T) {
	src := strings.Join([]string{
		"INTEGER PROCEDURE square(VALUE INTEGER: x);",
		"BEGIN END;",
		"INTEGER count;",
		"count := square(count);",
	}, "\n")
	snap := testSnapshot(t, src)

	h := buildHover(snap, posAt(t, snap, src, "square(count)", 0))
	if h == nil {
		t.Fatal("expected hover on call site")
	}
	if !strings.Contains(h.Contents.Value, "INTEGER PROCEDURE square") {
		t.Fatalf("hover missing signature: %q", h.Contents.Value)
	}
	if !strings.Contains(h.Contents.Value, "returns INTEGER") {
		t.Fatalf("hover missing documentation: %q", h.Contents.Value)
	}
	if h.Range == nil {
		t.Fatal("hover should carry the token range")
	}
}

func TestHoverOnKeyword(t *testing.T) {
	src := "BEGIN INTEGER a; END;"
	snap := testSnapshot(t, src)

	h := buildHover(snap, posAt(t, snap, src, "BEGIN", 0))
	if h == nil {
		t.Fatal("expected keyword hover")
	}
	if !strings.Contains(h.Contents.Value, "BEGIN") {
		t.Fatalf("keyword hover content: %q", h.Contents.Value)
	}
}

func TestHoverKeywordWinsOverElementName(t *testing.T) {
	// An element spelled like a keyword hovers as the keyword.
	src := "TABLE sensors[4,100][ value FIXED(16,8) 0; ];\nINTEGER x;\nx := sensors.value;"
	snap := testSnapshot(t, src)

	h := buildHover(snap, posAt(t, snap, src, "value", 1))
	if h == nil {
		t.Fatal("expected hover")
	}
	if strings.Contains(h.Contents.Value, "Element of TABLE") {
		t.Fatalf("keyword must take precedence: %q", h.Contents.Value)
	}
}

func TestHoverOnVariable(t *testing.T) {
	src := "FIXED(16, 8) level;\nlevel := 1;"
	snap := testSnapshot(t, src)

	h := buildHover(snap, posAt(t, snap, src, "level", 1))
	if h == nil {
		t.Fatal("expected hover")
	}
	if !strings.Contains(h.Contents.Value, "FIXED(16,8) level") {
		t.Fatalf("hover signature: %q", h.Contents.Value)
	}
	if !strings.Contains(h.Contents.Value, "Declared on line 1") {
		t.Fatalf("hover location: %q", h.Contents.Value)
	}
}

func TestHoverOnUnresolvedIdentifier(t *testing.T) {
	src := "mystery := 1;"
	snap := testSnapshot(t, src)
	if h := buildHover(snap, posAt(t, snap, src, "mystery", 0)); h != nil {
		t.Fatalf("unresolved identifier must not hover, got %q", h.Contents.Value)
	}
}

func TestHoverOutsideAnyToken(t *testing.T) {
	src := "INTEGER a;"
	snap := testSnapshot(t, src)
	if h := buildHover(snap, position{Line: 5, Character: 0}); h != nil {
		t.Fatal("no token, no hover")
	}
}
