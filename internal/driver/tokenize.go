package driver

import (
	"os"

	"coral66/internal/diag"
	"coral66/internal/lexer"
	"coral66/internal/source"
	"coral66/internal/token"
)

// TokenizeResult is one file scanned into its token stream.
type TokenizeResult struct {
	File   *source.File
	Tokens []token.Token
	Bag    *diag.Bag
}

// Tokenize scans a single file without running the later passes.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	file := source.NewVirtualFile(path, content)
	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	return &TokenizeResult{
		File:   file,
		Tokens: tokens,
		Bag:    bag,
	}, nil
}
