package diag

import (
	"fmt"
)

// Code identifies a diagnostic category. Ranges are reserved per phase:
// 1xxx lexical, 2xxx declaration extraction, 3xxx reference resolution.
type Code uint16

const (
	// UnknownCode is the zero value, used when no better code applies.
	UnknownCode Code = 0

	// Lexical.
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedComment Code = 1002

	// Declaration extraction.
	SynInfo               Code = 2000
	SynPatternMismatch    Code = 2001
	SynUnclosedBracket    Code = 2002
	SynUnclosedParen      Code = 2003
	SemaAmbiguousContext  Code = 2004
	SemaDuplicateSymbol   Code = 2005

	// Reference resolution.
	SemaInfo                Code = 3000
	SemaUnresolvedReference Code = 3001
	SemaUnresolvedTarget    Code = 3002
)

var codeNames = map[Code]string{
	UnknownCode:             "UnknownCode",
	LexInfo:                 "LexInfo",
	LexUnknownChar:          "LexUnknownChar",
	LexUnterminatedComment:  "LexUnterminatedComment",
	SynInfo:                 "SynInfo",
	SynPatternMismatch:      "SynPatternMismatch",
	SynUnclosedBracket:      "SynUnclosedBracket",
	SynUnclosedParen:        "SynUnclosedParen",
	SemaAmbiguousContext:    "SemaAmbiguousContext",
	SemaDuplicateSymbol:     "SemaDuplicateSymbol",
	SemaInfo:                "SemaInfo",
	SemaUnresolvedReference: "SemaUnresolvedReference",
	SemaUnresolvedTarget:    "SemaUnresolvedTarget",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}
