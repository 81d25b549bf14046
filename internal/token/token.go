package token

import (
	"coral66/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsKeyword reports whether the token is a CORAL 66 keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwBegin && t.Kind <= KwCode
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsNumberType reports whether the token starts a number-type descriptor
// (INTEGER, FLOATING, FIXED, UNSIGNED).
func (t Token) IsNumberType() bool {
	switch t.Kind {
	case KwInteger, KwFloating, KwFixed, KwUnsigned:
		return true
	default:
		return false
	}
}

// IsOperator reports whether the token is an arithmetic or comparison operator.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Assign, Plus, Minus, Star, Slash, Lt, LtEq, Eq, GtEq, Gt, NotEq:
		return true
	default:
		return false
	}
}
