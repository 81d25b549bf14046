package lsp

import (
	"sort"

	"coral66/internal/analysis"
	"coral66/internal/source"
	"coral66/internal/token"
)

// buildDefinition answers textDocument/definition with the declaration span
// of the symbol under the cursor. Keywords and unresolved names yield an
// empty result.
func buildDefinition(snap *analysis.Snapshot, uri string, pos position) []location {
	offset := offsetForPositionInFile(snap.File, pos)
	tok, ok := snap.TokenAt(offset)
	if !ok || tok.Kind != token.Ident {
		return []location{}
	}
	id := snap.SymbolAt(offset)
	if !id.IsValid() {
		return []location{}
	}
	sym := snap.Table.Symbols.Get(id)
	if sym == nil || sym.Span.Empty() {
		return []location{}
	}
	return []location{{URI: uri, Range: rangeForSpan(snap.File, sym.Span)}}
}

// buildReferences answers textDocument/references: every occurrence bound to
// the same symbol identity as the cursor token, in document order.
func buildReferences(snap *analysis.Snapshot, uri string, pos position, includeDecl bool) []location {
	offset := offsetForPositionInFile(snap.File, pos)
	tok, ok := snap.TokenAt(offset)
	if !ok || tok.Kind != token.Ident {
		return []location{}
	}
	id := snap.SymbolAt(offset)
	if !id.IsValid() {
		return []location{}
	}

	var spans []source.Span
	if includeDecl {
		if sym := snap.Table.Symbols.Get(id); sym != nil && !sym.Span.Empty() {
			spans = append(spans, sym.Span)
		}
	}
	for _, ref := range snap.ReferencesTo(id) {
		spans = append(spans, ref.Span)
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	out := make([]location, 0, len(spans))
	for _, sp := range spans {
		out = append(out, location{URI: uri, Range: rangeForSpan(snap.File, sp)})
	}
	return out
}
