package symbols

import (
	"coral66/internal/source"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolVariable
	SymbolArray
	SymbolTable
	SymbolElement
	SymbolProcedure
	SymbolFunction
	SymbolSwitch
	SymbolLabel
	SymbolParameter
	SymbolOverlay
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVariable:
		return "variable"
	case SymbolArray:
		return "array"
	case SymbolTable:
		return "table"
	case SymbolElement:
		return "element"
	case SymbolProcedure:
		return "procedure"
	case SymbolFunction:
		return "function"
	case SymbolSwitch:
		return "switch"
	case SymbolLabel:
		return "label"
	case SymbolParameter:
		return "parameter"
	case SymbolOverlay:
		return "overlay"
	default:
		return "invalid"
	}
}

// Symbol describes a named entity declared in a scope. Name is stored
// lower-normalized (CORAL 66 identifiers are case-insensitive); Type is a
// free-form structured descriptor such as "FIXED(16,8)" or "INTEGER ARRAY".
type Symbol struct {
	Name  string
	Kind  SymbolKind
	Type  string
	Scope ScopeID
	Span  source.Span
	Doc   string

	// Kind-specific payload.
	Dims       []string   // array: lower:upper bound descriptors, in order
	Elements   []SymbolID // table: child element symbols, in order
	Width      string     // table: words per entry
	Length     string     // table: number of entries
	Params     []SymbolID // procedure/function: parameter symbols, in order
	Result     string     // function: return-type descriptor
	Recursive  bool       // procedure/function: declared RECURSIVE
	Mode       string     // parameter: VALUE or LOCATION
	Targets    []string   // switch: target label names, unresolved
	TargetSyms []SymbolID // switch: labels resolved by the reference pass
	Base       string     // overlay: aliased base name
	Body       ScopeID    // procedure/table: the scope this symbol owns
}
