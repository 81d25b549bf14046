// Package analysis turns CORAL 66 source text into a scope-aware symbol
// table and a resolved reference index. The pipeline per document is strictly
// linear: text → tokens → (scopes + symbols) → resolved references, all
// collected into an immutable Snapshot. Malformed input never aborts a pass;
// problems downgrade to diagnostics carried by the snapshot.
package analysis

import (
	"sort"

	"coral66/internal/diag"
	"coral66/internal/lexer"
	"coral66/internal/source"
	"coral66/internal/symbols"
	"coral66/internal/token"
)

// Reference records one identifier occurrence and its binding.
// Sym is NoSymbolID when the name had no visible declaration.
type Reference struct {
	Span source.Span
	Name string
	Sym  symbols.SymbolID
}

// Snapshot is the complete result of one analysis pass over one document
// version. It is immutable once built: an edit produces a fresh snapshot and
// the old one is dropped, never patched.
type Snapshot struct {
	File   *source.File
	Tokens []token.Token
	Table  *symbols.Table
	Decls  map[uint32]symbols.SymbolID // declared-name token start → symbol
	Refs   []Reference
	Bag    *diag.Bag
}

// Options tunes one analysis run.
type Options struct {
	MaxDiagnostics int
}

// Analyze runs the full pipeline over text. It always returns a usable
// snapshot; degradation is expressed through the snapshot's diagnostics.
func Analyze(path string, text []byte, opts Options) *Snapshot {
	file := source.NewVirtualFile(path, text)
	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	tokens := lexer.Tokenize(file, lexer.Options{Reporter: reporter})

	wholeFile := source.Span{File: file.ID, Start: 0, End: uint32(len(file.Content))}
	table := symbols.NewTable(symbols.Hints{}, wholeFile)

	decls := extract(file, tokens, table, reporter)
	refs := resolve(tokens, table, decls, reporter)

	bag.Sort()
	return &Snapshot{
		File:   file,
		Tokens: tokens,
		Table:  table,
		Decls:  decls,
		Refs:   refs,
		Bag:    bag,
	}
}

// TokenAt returns the token whose span contains the byte offset. A position
// sitting exactly at a token's end is still attributed to it, the way an
// editor caret touching the last character should be.
func (s *Snapshot) TokenAt(off uint32) (token.Token, bool) {
	toks := s.Tokens
	idx := sort.Search(len(toks), func(i int) bool { return toks[i].Span.End >= off })
	if idx >= len(toks) {
		return token.Token{}, false
	}
	tok := toks[idx]
	if tok.Kind == token.EOF || tok.Span.Start > off {
		return token.Token{}, false
	}
	return tok, true
}

// SymbolAt resolves the identifier token containing off to a symbol, whether
// the occurrence is the declaration itself or a bound reference.
func (s *Snapshot) SymbolAt(off uint32) symbols.SymbolID {
	tok, ok := s.TokenAt(off)
	if !ok {
		return symbols.NoSymbolID
	}
	if id, found := s.Decls[tok.Span.Start]; found {
		return id
	}
	for _, ref := range s.Refs {
		if ref.Span.Start == tok.Span.Start {
			return ref.Sym
		}
	}
	return symbols.NoSymbolID
}

// ReferencesTo returns every reference bound to the given symbol identity,
// in document order. Same-spelled names bound elsewhere never appear.
func (s *Snapshot) ReferencesTo(id symbols.SymbolID) []Reference {
	if !id.IsValid() {
		return nil
	}
	var out []Reference
	for _, ref := range s.Refs {
		if ref.Sym == id {
			out = append(out, ref)
		}
	}
	return out
}
