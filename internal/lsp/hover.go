package lsp

import (
	"strconv"
	"strings"

	"coral66/internal/analysis"
	"coral66/internal/symbols"
	"coral66/internal/token"
)

// buildHover answers textDocument/hover. Keywords take precedence over
// symbols: an element that happens to be spelled like a keyword hovers as
// the keyword. Unresolved identifiers yield nothing.
func buildHover(snap *analysis.Snapshot, pos position) *hover {
	offset := offsetForPositionInFile(snap.File, pos)
	tok, ok := snap.TokenAt(offset)
	if !ok {
		return nil
	}

	if tok.IsKeyword() {
		doc := token.KeywordDoc(tok.Kind)
		if doc == "" {
			return nil
		}
		rng := rangeForSpan(snap.File, tok.Span)
		return &hover{
			Contents: markupContent{
				Kind:  "markdown",
				Value: "```coral66\n" + strings.ToUpper(tok.Text) + "\n```\n" + doc,
			},
			Range: &rng,
		}
	}

	if tok.Kind != token.Ident {
		return nil
	}
	id := snap.SymbolAt(offset)
	if !id.IsValid() {
		return nil
	}
	sym := snap.Table.Symbols.Get(id)
	if sym == nil {
		return nil
	}

	lines := []string{"```coral66\n" + symbolSignature(sym) + "\n```"}
	if sym.Doc != "" {
		lines = append(lines, sym.Doc)
	}
	lc := snap.File.Resolve(sym.Span.Start)
	lines = append(lines, "Declared on line "+strconv.Itoa(int(lc.Line)))

	rng := rangeForSpan(snap.File, tok.Span)
	return &hover{
		Contents: markupContent{Kind: "markdown", Value: strings.Join(lines, "\n\n")},
		Range:    &rng,
	}
}

// symbolSignature renders a one-line declaration-shaped summary.
func symbolSignature(sym *symbols.Symbol) string {
	switch sym.Kind {
	case symbols.SymbolSwitch:
		return "SWITCH " + sym.Name + " := " + strings.Join(sym.Targets, ", ")
	case symbols.SymbolOverlay:
		return "OVERLAY " + sym.Base + " WITH ..."
	case symbols.SymbolArray:
		sig := sym.Type + " " + sym.Name
		if len(sym.Dims) > 0 {
			sig += " [" + strings.Join(sym.Dims, ", ") + "]"
		}
		return sig
	default:
		if sym.Type == "" {
			return sym.Name
		}
		return sym.Type + " " + sym.Name
	}
}
