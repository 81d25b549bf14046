package lsp

import (
	"coral66/internal/analysis"
	"coral66/internal/symbols"
	"coral66/internal/token"
)

// buildCompletion answers textDocument/completion. After `table.` only the
// table's elements are offered; everywhere else the keyword set plus every
// symbol visible from the enclosing scope, innermost first.
func buildCompletion(snap *analysis.Snapshot, pos position) []completionItem {
	offset := offsetForPositionInFile(snap.File, pos)

	if owner, ok := memberAccessOwner(snap, offset); ok {
		return memberItems(snap, owner)
	}

	items := make([]completionItem, 0, 64)
	for _, name := range token.KeywordNames() {
		doc, _ := token.KeywordDocByName(name)
		items = append(items, completionItem{
			Label:         name,
			Kind:          completionKindKeyword,
			Documentation: doc,
		})
	}

	scope := snap.Table.ScopeAt(offset)
	for _, id := range snap.Table.Visible(scope) {
		sym := snap.Table.Symbols.Get(id)
		if sym == nil {
			continue
		}
		items = append(items, completionItem{
			Label:         sym.Name,
			Kind:          completionKindCode(sym.Kind),
			Detail:        sym.Type,
			Documentation: sym.Doc,
		})
	}
	return items
}

// memberAccessOwner detects a `container.` context immediately before the
// cursor (with a possibly half-typed member after the dot) and resolves the
// container from the scope enclosing its own occurrence.
func memberAccessOwner(snap *analysis.Snapshot, offset uint32) (symbols.SymbolID, bool) {
	content := snap.File.Content
	i := int(offset)
	if i > len(content) {
		i = len(content)
	}
	for i > 0 && isIdentByte(content[i-1]) {
		i--
	}
	if i == 0 || content[i-1] != '.' {
		return symbols.NoSymbolID, false
	}
	dot := i - 1
	j := dot
	for j > 0 && isIdentByte(content[j-1]) {
		j--
	}
	if j == dot {
		return symbols.NoSymbolID, false
	}
	name := string(content[j:dot])
	scope := snap.Table.ScopeAt(uint32(j))
	return snap.Table.Lookup(scope, name), true
}

func memberItems(snap *analysis.Snapshot, owner symbols.SymbolID) []completionItem {
	sym := snap.Table.Symbols.Get(owner)
	if sym == nil || sym.Kind != symbols.SymbolTable {
		return []completionItem{}
	}
	items := make([]completionItem, 0, len(sym.Elements))
	for _, elemID := range sym.Elements {
		elem := snap.Table.Symbols.Get(elemID)
		if elem == nil {
			continue
		}
		items = append(items, completionItem{
			Label:         elem.Name,
			Kind:          completionKindCode(elem.Kind),
			Detail:        elem.Type,
			Documentation: elem.Doc,
		})
	}
	return items
}

func isIdentByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
