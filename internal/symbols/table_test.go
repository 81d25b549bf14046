package symbols

import (
	"testing"

	"coral66/internal/source"
)

func newTestTable() *Table {
	return NewTable(Hints{}, source.Span{File: 1, Start: 0, End: 1000})
}

func TestDeclareAndLookup(t *testing.T) {
	tb := newTestTable()
	id, err := tb.Declare(tb.Global, &Symbol{Name: "Count", Kind: SymbolVariable, Type: "INTEGER"})
	if err != nil {
		t.Fatalf("declare: %v", err)
	}

	// Lookup is case-insensitive through normalization.
	for _, name := range []string{"count", "COUNT", "Count"} {
		if got := tb.Lookup(tb.Global, name); got != id {
			t.Fatalf("lookup %q: got %v, want %v", name, got, id)
		}
	}
	if sym := tb.Symbols.Get(id); sym.Name != "count" {
		t.Fatalf("stored name not normalized: %q", sym.Name)
	}
}

func TestDuplicateFirstWins(t *testing.T) {
	tb := newTestTable()
	first, err := tb.Declare(tb.Global, &Symbol{Name: "x", Kind: SymbolVariable, Type: "INTEGER"})
	if err != nil {
		t.Fatalf("declare: %v", err)
	}
	winner, err := tb.Declare(tb.Global, &Symbol{Name: "X", Kind: SymbolVariable, Type: "FLOATING"})
	if err != ErrDuplicateSymbol {
		t.Fatalf("want ErrDuplicateSymbol, got %v", err)
	}
	if winner != first {
		t.Fatalf("duplicate should report the first declaration, got %v want %v", winner, first)
	}
	if sym := tb.Symbols.Get(tb.Lookup(tb.Global, "x")); sym.Type != "INTEGER" {
		t.Fatalf("first declaration must stay authoritative, got type %q", sym.Type)
	}
}

func TestShadowingWalksParentChain(t *testing.T) {
	tb := newTestTable()
	outer, _ := tb.Declare(tb.Global, &Symbol{Name: "n", Kind: SymbolVariable, Type: "INTEGER"})
	proc := tb.OpenScope(ScopeProcedure, "p", tb.Global, source.Span{File: 1, Start: 100, End: 200})
	inner, _ := tb.Declare(proc, &Symbol{Name: "n", Kind: SymbolParameter, Type: "FLOATING"})

	if got := tb.Lookup(proc, "n"); got != inner {
		t.Fatalf("inner lookup: got %v, want shadowing %v", got, inner)
	}
	if got := tb.Lookup(tb.Global, "n"); got != outer {
		t.Fatalf("outer lookup: got %v, want %v", got, outer)
	}
	if got := tb.Lookup(proc, "missing"); got != NoSymbolID {
		t.Fatalf("missing name should be NoSymbolID, got %v", got)
	}
}

func TestQualifiedLookupOnlyThroughContainer(t *testing.T) {
	tb := newTestTable()
	body := tb.OpenScope(ScopeTable, "sensors", tb.Global, source.Span{File: 1, Start: 10, End: 80})
	tb.Declare(tb.Global, &Symbol{Name: "sensors", Kind: SymbolTable, Body: body})
	elem, _ := tb.Declare(body, &Symbol{Name: "id", Kind: SymbolElement, Type: "INTEGER"})

	if got := tb.LookupQualified(tb.Global, "sensors", "id"); got != elem {
		t.Fatalf("qualified lookup: got %v, want %v", got, elem)
	}
	// Elements never leak into unqualified visibility outside the table.
	if got := tb.Lookup(tb.Global, "id"); got != NoSymbolID {
		t.Fatalf("element leaked into global lookup: %v", got)
	}
	if got := tb.LookupQualified(tb.Global, "sensors", "nope"); got != NoSymbolID {
		t.Fatalf("unknown member should be NoSymbolID, got %v", got)
	}
	if got := tb.LookupQualified(tb.Global, "ghost", "id"); got != NoSymbolID {
		t.Fatalf("unknown container should be NoSymbolID, got %v", got)
	}
}

func TestScopeAtDescendsToInnermost(t *testing.T) {
	tb := newTestTable()
	proc := tb.OpenScope(ScopeProcedure, "p", tb.Global, source.Span{File: 1, Start: 100, End: 400})
	block := tb.OpenScope(ScopeBlock, "", proc, source.Span{File: 1, Start: 200, End: 300})

	tests := []struct {
		off  uint32
		want ScopeID
	}{
		{50, tb.Global},
		{150, proc},
		{250, block},
		{350, proc},
		{999, tb.Global},
	}
	for _, tt := range tests {
		if got := tb.ScopeAt(tt.off); got != tt.want {
			t.Errorf("ScopeAt(%d): got %v, want %v", tt.off, got, tt.want)
		}
	}
}

func TestVisibleDedupsShadowedNames(t *testing.T) {
	tb := newTestTable()
	tb.Declare(tb.Global, &Symbol{Name: "a", Kind: SymbolVariable})
	outerB, _ := tb.Declare(tb.Global, &Symbol{Name: "b", Kind: SymbolVariable})
	_ = outerB
	proc := tb.OpenScope(ScopeProcedure, "p", tb.Global, source.Span{File: 1, Start: 100, End: 200})
	innerB, _ := tb.Declare(proc, &Symbol{Name: "b", Kind: SymbolParameter})

	vis := tb.Visible(proc)
	seen := make(map[string]SymbolID)
	for _, id := range vis {
		sym := tb.Symbols.Get(id)
		if _, dup := seen[sym.Name]; dup {
			t.Fatalf("name %q listed twice", sym.Name)
		}
		seen[sym.Name] = id
	}
	if seen["b"] != innerB {
		t.Fatalf("visible 'b' should be the inner declaration, got %v", seen["b"])
	}
	if _, ok := seen["a"]; !ok {
		t.Fatal("outer 'a' should remain visible")
	}
}

func TestAttachSkipsNameIndex(t *testing.T) {
	tb := newTestTable()
	tb.Declare(tb.Global, &Symbol{Name: "buffer", Kind: SymbolArray})
	id := tb.Attach(tb.Global, &Symbol{Name: "buffer", Kind: SymbolOverlay, Base: "buffer"})
	if !id.IsValid() {
		t.Fatal("attach should allocate a symbol")
	}
	// The overlay keeps the array as the referable declaration.
	if sym := tb.Symbols.Get(tb.Lookup(tb.Global, "buffer")); sym.Kind != SymbolArray {
		t.Fatalf("lookup should still find the array, got %v", sym.Kind)
	}
	sc := tb.Scopes.Get(tb.Global)
	if len(sc.Symbols) != 2 {
		t.Fatalf("attached symbol should appear in declaration order, got %d entries", len(sc.Symbols))
	}
}
