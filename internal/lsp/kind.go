package lsp

import "coral66/internal/symbols"

// LSP SymbolKind codes used by documentSymbol responses.
const (
	lspSymbolField    = 8
	lspSymbolEnum     = 10
	lspSymbolFunction = 12
	lspSymbolVariable = 13
	lspSymbolConstant = 14
	lspSymbolArray    = 18
	lspSymbolObject   = 19
	lspSymbolStruct   = 23
)

// LSP CompletionItemKind codes.
const (
	completionKindFunction  = 3
	completionKindField     = 5
	completionKindVariable  = 6
	completionKindValue     = 12
	completionKindEnum      = 13
	completionKindKeyword   = 14
	completionKindReference = 18
	completionKindStruct    = 22
)

// symbolKindCode translates the analyzer's symbol kinds to protocol codes.
// The switch is exhaustive over the closed kind set; anything unexpected
// degrades to Variable rather than breaking the response.
func symbolKindCode(kind symbols.SymbolKind) int {
	switch kind {
	case symbols.SymbolVariable:
		return lspSymbolVariable
	case symbols.SymbolArray:
		return lspSymbolArray
	case symbols.SymbolTable:
		return lspSymbolStruct
	case symbols.SymbolElement:
		return lspSymbolField
	case symbols.SymbolProcedure, symbols.SymbolFunction:
		return lspSymbolFunction
	case symbols.SymbolSwitch:
		return lspSymbolEnum
	case symbols.SymbolLabel:
		return lspSymbolConstant
	case symbols.SymbolParameter:
		return lspSymbolVariable
	case symbols.SymbolOverlay:
		return lspSymbolObject
	default:
		return lspSymbolVariable
	}
}

func completionKindCode(kind symbols.SymbolKind) int {
	switch kind {
	case symbols.SymbolVariable, symbols.SymbolParameter:
		return completionKindVariable
	case symbols.SymbolArray:
		return completionKindVariable
	case symbols.SymbolTable:
		return completionKindStruct
	case symbols.SymbolElement:
		return completionKindField
	case symbols.SymbolProcedure, symbols.SymbolFunction:
		return completionKindFunction
	case symbols.SymbolSwitch:
		return completionKindEnum
	case symbols.SymbolLabel:
		return completionKindReference
	case symbols.SymbolOverlay:
		return completionKindValue
	default:
		return completionKindVariable
	}
}
