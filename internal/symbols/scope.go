package symbols

import (
	"coral66/internal/source"
)

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid   ScopeKind = iota
	ScopeGlobal              // outermost program scope
	ScopeProcedure           // procedure body, including its parameters
	ScopeTable               // table body holding element symbols
	ScopeBlock               // generic BEGIN..END block
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeProcedure:
		return "procedure"
	case ScopeTable:
		return "table"
	case ScopeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// Scope models a lexical scope with a parent-child hierarchy. The child does
// not own its parent: the link exists for lookup only. NameIndex enforces
// per-scope name uniqueness; Symbols preserves declaration order.
type Scope struct {
	Kind      ScopeKind
	Name      string // owning symbol's normalized name; "" for global/block
	Parent    ScopeID
	Span      source.Span
	NameIndex map[string]SymbolID
	Symbols   []SymbolID
	Children  []ScopeID
}
