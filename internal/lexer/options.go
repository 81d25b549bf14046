package lexer

import (
	"coral66/internal/diag"
	"coral66/internal/source"
)

// Options configures a Lexer. Reporter may be nil, in which case lexical
// problems are dropped (lexing continues either way).
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg)
	}
}
