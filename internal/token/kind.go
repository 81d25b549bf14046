package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Numeral represents a numeric literal token.
	Numeral
	// Unknown represents an unrecognized character kept as one-byte punctuation.
	Unknown

	// KwBegin represents the 'BEGIN' keyword.
	KwBegin
	// KwEnd represents the 'END' keyword.
	KwEnd
	// KwIf represents the 'IF' keyword.
	KwIf
	// KwThen represents the 'THEN' keyword.
	KwThen
	// KwElse represents the 'ELSE' keyword.
	KwElse
	// KwFor represents the 'FOR' keyword.
	KwFor
	// KwDo represents the 'DO' keyword.
	KwDo
	// KwWhile represents the 'WHILE' keyword.
	KwWhile
	// KwStep represents the 'STEP' keyword.
	KwStep
	// KwUntil represents the 'UNTIL' keyword.
	KwUntil
	// KwGoto represents the 'GOTO' keyword.
	KwGoto
	// KwProcedure represents the 'PROCEDURE' keyword.
	KwProcedure
	// KwRecursive represents the 'RECURSIVE' keyword.
	KwRecursive
	// KwAnswer represents the 'ANSWER' keyword.
	KwAnswer
	// KwFloating represents the 'FLOATING' keyword.
	KwFloating
	// KwFixed represents the 'FIXED' keyword.
	KwFixed
	// KwInteger represents the 'INTEGER' keyword.
	KwInteger
	// KwUnsigned represents the 'UNSIGNED' keyword.
	KwUnsigned
	// KwArray represents the 'ARRAY' keyword.
	KwArray
	// KwTable represents the 'TABLE' keyword.
	KwTable
	// KwSwitch represents the 'SWITCH' keyword.
	KwSwitch
	// KwOverlay represents the 'OVERLAY' keyword.
	KwOverlay
	// KwWith represents the 'WITH' keyword.
	KwWith
	// KwPreset represents the 'PRESET' keyword.
	KwPreset
	// KwValue represents the 'VALUE' keyword.
	KwValue
	// KwLocation represents the 'LOCATION' keyword.
	KwLocation
	// KwCommon represents the 'COMMON' keyword.
	KwCommon
	// KwLibrary represents the 'LIBRARY' keyword.
	KwLibrary
	// KwExternal represents the 'EXTERNAL' keyword.
	KwExternal
	// KwAbsolute represents the 'ABSOLUTE' keyword.
	KwAbsolute
	// KwBits represents the 'BITS' keyword.
	KwBits
	// KwLabel represents the 'LABEL' keyword.
	KwLabel
	// KwAnd represents the 'AND' word-logic operator keyword.
	KwAnd
	// KwOr represents the 'OR' word-logic operator keyword.
	KwOr
	// KwDiffer represents the 'DIFFER' word-logic operator keyword.
	KwDiffer
	// KwUnion represents the 'UNION' word-logic operator keyword.
	KwUnion
	// KwMask represents the 'MASK' word-logic operator keyword.
	KwMask
	// KwOctal represents the 'OCTAL' keyword.
	KwOctal
	// KwLiteral represents the 'LITERAL' keyword.
	KwLiteral
	// KwComment represents the 'COMMENT' keyword. Only produced when a
	// comment region is unterminated; complete comments are trivia.
	KwComment
	// KwDefine represents the 'DEFINE' keyword.
	KwDefine
	// KwDelete represents the 'DELETE' keyword.
	KwDelete
	// KwCode represents the 'CODE' keyword.
	KwCode

	// Assign represents the assign operator token.
	Assign // :=
	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Eq represents the equals operator token.
	Eq // =
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Gt represents the greater-than operator token.
	Gt // >
	// NotEq represents the not-equal operator token.
	NotEq // <>

	// Colon represents the colon punctuation token.
	Colon // :
	// Semicolon represents the semicolon punctuation token.
	Semicolon // ;
	// Comma represents the comma punctuation token.
	Comma // ,
	// Dot represents the dot punctuation token.
	Dot // .
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
)

var kindNames = map[Kind]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	Numeral:   "Numeral",
	Unknown:   "Unknown",
	Assign:    ":=",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Lt:        "<",
	LtEq:      "<=",
	Eq:        "=",
	GtEq:      ">=",
	Gt:        ">",
	NotEq:     "<>",
	Colon:     ":",
	Semicolon: ";",
	Comma:     ",",
	Dot:       ".",
	LParen:    "(",
	RParen:    ")",
	LBracket:  "[",
	RBracket:  "]",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if name, ok := keywordNameByKind[k]; ok {
		return name
	}
	return "Invalid"
}
