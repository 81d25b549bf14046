package analysis

import (
	"coral66/internal/diag"
	"coral66/internal/symbols"
	"coral66/internal/token"
)

// resolve walks the token stream a second time, after every declaration in
// the file is known, and binds each identifier use to a symbol. Running
// after extraction makes forward references (GOTO targets, switch labels,
// procedure calls ahead of their declaration) resolve without any special
// casing.
func resolve(toks []token.Token, table *symbols.Table, decls map[uint32]symbols.SymbolID, rep diag.Reporter) []Reference {
	var refs []Reference

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind != token.Ident {
			continue
		}
		if _, isDecl := decls[t.Span.Start]; isDecl {
			continue
		}

		name := symbols.Normalize(t.Text)
		scope := table.ScopeAt(t.Span.Start)

		// Qualified element access: table.element binds the member through
		// the table's own scope, never through ordinary visibility.
		if i+2 < len(toks) && toks[i+1].Kind == token.Dot &&
			(toks[i+2].Kind == token.Ident || toks[i+2].IsKeyword()) {
			owner := table.Lookup(scope, name)
			refs = append(refs, Reference{Span: t.Span, Name: name, Sym: owner})
			if owner == symbols.NoSymbolID {
				rep.Report(diag.SemaUnresolvedReference, diag.SevWarning, t.Span,
					"cannot resolve '"+name+"'")
				i += 2
				continue
			}

			memTok := toks[i+2]
			member := symbols.Normalize(memTok.Text)
			memID := table.LookupQualified(scope, name, member)
			if memTok.Kind == token.Ident {
				refs = append(refs, Reference{Span: memTok.Span, Name: member, Sym: memID})
				if memID == symbols.NoSymbolID {
					rep.Report(diag.SemaUnresolvedReference, diag.SevWarning, memTok.Span,
						"'"+name+"' has no element '"+member+"'")
				}
			}
			i += 2
			continue
		}

		id := table.Lookup(scope, name)
		refs = append(refs, Reference{Span: t.Span, Name: name, Sym: id})
		if id == symbols.NoSymbolID {
			rep.Report(diag.SemaUnresolvedReference, diag.SevWarning, t.Span,
				"cannot resolve '"+name+"'")
		}
	}

	resolveSwitchTargets(table, rep)
	return refs
}

// resolveSwitchTargets binds each switch's recorded label names from the
// switch's own scope. Labels declared after the switch are visible here; a
// name that resolves to something other than a label is diagnosed, while a
// name that resolves to nothing was already reported during the token walk.
func resolveSwitchTargets(table *symbols.Table, rep diag.Reporter) {
	for id := symbols.SymbolID(1); id <= symbols.SymbolID(table.Symbols.Len()); id++ {
		sym := table.Symbols.Get(id)
		if sym == nil || sym.Kind != symbols.SymbolSwitch {
			continue
		}
		sym.TargetSyms = make([]symbols.SymbolID, len(sym.Targets))
		for i, name := range sym.Targets {
			target := table.Lookup(sym.Scope, name)
			sym.TargetSyms[i] = target
			if target == symbols.NoSymbolID {
				continue
			}
			if ts := table.Symbols.Get(target); ts != nil && ts.Kind != symbols.SymbolLabel {
				rep.Report(diag.SemaUnresolvedTarget, diag.SevWarning, sym.Span,
					"switch target '"+name+"' is not a label (resolves to a "+ts.Kind.String()+")")
			}
		}
	}
}
