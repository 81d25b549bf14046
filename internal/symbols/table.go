package symbols

import (
	"errors"
	"strings"

	"coral66/internal/source"
)

// ErrDuplicateSymbol is returned by Declare when the name already exists
// directly in the target scope. The first declaration wins.
var ErrDuplicateSymbol = errors.New("duplicate symbol in scope")

// Hints provide optional capacity suggestions for the arenas.
type Hints struct{ Scopes, Symbols uint32 }

// Table aggregates the scope and symbol arenas for one analyzed document.
type Table struct {
	Scopes  *Scopes
	Symbols *Symbols
	Global  ScopeID
}

// NewTable builds a fresh table whose global scope covers span.
func NewTable(h Hints, span source.Span) *Table {
	t := &Table{
		Scopes:  NewScopes(h.Scopes),
		Symbols: NewSymbols(h.Symbols),
	}
	t.Global = t.Scopes.New(ScopeGlobal, "", NoScopeID, span)
	return t
}

// Normalize folds an identifier to its canonical stored form.
// CORAL 66 names are case-insensitive and ASCII.
func Normalize(name string) string {
	return strings.ToLower(name)
}

// OpenScope allocates a child scope.
func (t *Table) OpenScope(kind ScopeKind, name string, parent ScopeID, span source.Span) ScopeID {
	return t.Scopes.New(kind, Normalize(name), parent, span)
}

// Declare adds sym to scope. Fails with ErrDuplicateSymbol when the
// normalized name is already taken directly in that scope; the arena is left
// untouched in that case so the first declaration stays authoritative.
func (t *Table) Declare(scope ScopeID, sym *Symbol) (SymbolID, error) {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoSymbolID, errors.New("declare into invalid scope")
	}
	name := Normalize(sym.Name)
	if _, taken := sc.NameIndex[name]; taken {
		return sc.NameIndex[name], ErrDuplicateSymbol
	}
	sym.Name = name
	sym.Scope = scope
	id := t.Symbols.New(sym)
	sc.NameIndex[name] = id
	sc.Symbols = append(sc.Symbols, id)
	return id, nil
}

// Attach records sym in scope's declaration order without entering it into
// the name index. Overlay symbols use this: they alias existing storage and
// do not introduce a new referable name, but still belong in the outline.
func (t *Table) Attach(scope ScopeID, sym *Symbol) SymbolID {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoSymbolID
	}
	sym.Name = Normalize(sym.Name)
	sym.Scope = scope
	id := t.Symbols.New(sym)
	sc.Symbols = append(sc.Symbols, id)
	return id
}

// LookupLocal finds a name directly in one scope, without walking parents.
func (t *Table) LookupLocal(scope ScopeID, name string) SymbolID {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoSymbolID
	}
	if id, ok := sc.NameIndex[Normalize(name)]; ok {
		return id
	}
	return NoSymbolID
}

// Lookup walks the parent chain from scope and returns the first symbol whose
// name matches; the innermost declaration shadows outer ones.
func (t *Table) Lookup(scope ScopeID, name string) SymbolID {
	key := Normalize(name)
	for scope.IsValid() {
		sc := t.Scopes.Get(scope)
		if sc == nil {
			return NoSymbolID
		}
		if id, ok := sc.NameIndex[key]; ok {
			return id
		}
		scope = sc.Parent
	}
	return NoSymbolID
}

// LookupQualified resolves container.member: container by ordinary lookup,
// member only within the container's own scope. Elements of a table are never
// reachable through unqualified lookup from outside the table.
func (t *Table) LookupQualified(scope ScopeID, container, member string) SymbolID {
	ownerID := t.Lookup(scope, container)
	owner := t.Symbols.Get(ownerID)
	if owner == nil || !owner.Body.IsValid() {
		return NoSymbolID
	}
	return t.LookupLocal(owner.Body, member)
}

// ScopeAt returns the deepest scope whose span contains the byte offset,
// starting from global. Position-addressed queries resolve from here.
func (t *Table) ScopeAt(off uint32) ScopeID {
	cur := t.Global
	for {
		sc := t.Scopes.Get(cur)
		if sc == nil {
			return cur
		}
		descended := false
		for _, child := range sc.Children {
			cs := t.Scopes.Get(child)
			if cs != nil && cs.Span.Contains(off) {
				cur = child
				descended = true
				break
			}
		}
		if !descended {
			return cur
		}
	}
}

// Visible collects every symbol reachable by ordinary lookup from scope,
// outward along the parent chain, innermost first. Shadowed outer names are
// excluded. Declaration order is preserved within each scope.
func (t *Table) Visible(scope ScopeID) []SymbolID {
	var out []SymbolID
	seen := make(map[string]bool)
	for scope.IsValid() {
		sc := t.Scopes.Get(scope)
		if sc == nil {
			break
		}
		for _, id := range sc.Symbols {
			sym := t.Symbols.Get(id)
			if sym == nil || seen[sym.Name] {
				continue
			}
			seen[sym.Name] = true
			out = append(out, id)
		}
		scope = sc.Parent
	}
	return out
}
