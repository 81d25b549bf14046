package lsp

import (
	"coral66/internal/analysis"
	"coral66/internal/symbols"
)

// buildDocumentSymbols answers textDocument/documentSymbol with the
// hierarchical outline: global declarations in order, table elements and
// procedure-local declarations (parameters first) nested under their owner.
func buildDocumentSymbols(snap *analysis.Snapshot) []documentSymbol {
	global := snap.Table.Scopes.Get(snap.Table.Global)
	if global == nil {
		return []documentSymbol{}
	}
	return symbolsForScope(snap, global.Symbols)
}

func symbolsForScope(snap *analysis.Snapshot, ids []symbols.SymbolID) []documentSymbol {
	out := make([]documentSymbol, 0, len(ids))
	for _, id := range ids {
		sym := snap.Table.Symbols.Get(id)
		if sym == nil {
			continue
		}
		out = append(out, newDocumentSymbol(snap, sym))
	}
	return out
}

func newDocumentSymbol(snap *analysis.Snapshot, sym *symbols.Symbol) documentSymbol {
	selection := rangeForSpan(snap.File, sym.Span)
	full := selection

	var children []documentSymbol
	if sym.Body.IsValid() {
		if body := snap.Table.Scopes.Get(sym.Body); body != nil {
			full = rangeForSpan(snap.File, body.Span)
			children = symbolsForScope(snap, body.Symbols)
		}
	}

	return documentSymbol{
		Name:           sym.Name,
		Detail:         sym.Type,
		Kind:           symbolKindCode(sym.Kind),
		Range:          full,
		SelectionRange: selection,
		Children:       children,
	}
}
