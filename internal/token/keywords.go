package token

import (
	"sort"
	"strings"
)

var keywords = map[string]Kind{
	"BEGIN":     KwBegin,
	"END":       KwEnd,
	"IF":        KwIf,
	"THEN":      KwThen,
	"ELSE":      KwElse,
	"FOR":       KwFor,
	"DO":        KwDo,
	"WHILE":     KwWhile,
	"STEP":      KwStep,
	"UNTIL":     KwUntil,
	"GOTO":      KwGoto,
	"PROCEDURE": KwProcedure,
	"RECURSIVE": KwRecursive,
	"ANSWER":    KwAnswer,
	"FLOATING":  KwFloating,
	"FIXED":     KwFixed,
	"INTEGER":   KwInteger,
	"UNSIGNED":  KwUnsigned,
	"ARRAY":     KwArray,
	"TABLE":     KwTable,
	"SWITCH":    KwSwitch,
	"OVERLAY":   KwOverlay,
	"WITH":      KwWith,
	"PRESET":    KwPreset,
	"VALUE":     KwValue,
	"LOCATION":  KwLocation,
	"COMMON":    KwCommon,
	"LIBRARY":   KwLibrary,
	"EXTERNAL":  KwExternal,
	"ABSOLUTE":  KwAbsolute,
	"BITS":      KwBits,
	"LABEL":     KwLabel,
	"AND":       KwAnd,
	"OR":        KwOr,
	"DIFFER":    KwDiffer,
	"UNION":     KwUnion,
	"MASK":      KwMask,
	"OCTAL":     KwOctal,
	"LITERAL":   KwLiteral,
	"COMMENT":   KwComment,
	"DEFINE":    KwDefine,
	"DELETE":    KwDelete,
	"CODE":      KwCode,
}

var keywordNameByKind = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords))
	for name, kind := range keywords {
		m[kind] = name
	}
	return m
}()

// LookupKeyword reports whether ident names a keyword. CORAL 66 keywords are
// case-insensitive; the candidate is uppercased before matching.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[strings.ToUpper(ident)]
	return k, ok
}

// IsKeywordName reports whether name (any casing) is a keyword.
func IsKeywordName(name string) bool {
	_, ok := LookupKeyword(name)
	return ok
}

// KeywordNames returns every keyword in sorted order, for completion lists.
func KeywordNames() []string {
	out := make([]string, 0, len(keywords))
	for name := range keywords {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// keywordDocs carries the hover text for each keyword.
var keywordDocs = map[Kind]string{
	KwBegin:     "Opens a block. Blocks group statements and delimit procedure bodies.",
	KwEnd:       "Closes a block opened by BEGIN. Text after END up to the next delimiter is comment.",
	KwIf:        "Starts a conditional statement or expression.",
	KwThen:      "Introduces the consequent of an IF.",
	KwElse:      "Introduces the alternative of an IF.",
	KwFor:       "Starts a for-statement over a control variable.",
	KwDo:        "Introduces the controlled statement of a FOR loop.",
	KwWhile:     "FOR list element: repeat while a condition holds.",
	KwStep:      "FOR list element: arithmetic progression step.",
	KwUntil:     "FOR list element: arithmetic progression limit.",
	KwGoto:      "Transfers control to a label or switch element.",
	KwProcedure: "Declares a procedure. A preceding number type makes it a function.",
	KwRecursive: "Marks a procedure as recursive, permitting self-activation.",
	KwAnswer:    "Returns a value from a function procedure.",
	KwFloating:  "Floating-point number type.",
	KwFixed:     "Fixed-point number type: FIXED(totalbits, fractionbits).",
	KwInteger:   "Integer number type.",
	KwUnsigned:  "Unsigned part-word type: UNSIGNED(bits).",
	KwArray:     "Declares an array with lower:upper dimension bounds.",
	KwTable:     "Declares a packed table with bit/word-addressed elements.",
	KwSwitch:    "Declares a switch: an ordered list of labels selected by index.",
	KwOverlay:   "Overlays a data declaration onto existing storage.",
	KwWith:      "Joins an OVERLAY base to the overlaid declaration.",
	KwPreset:    "Presets declared data with initial values.",
	KwValue:     "Parameter mode: pass by value.",
	KwLocation:  "Parameter mode: pass by location (reference).",
	KwCommon:    "Communicator: data shared between segments.",
	KwLibrary:   "Communicator: names imported from a library.",
	KwExternal:  "Communicator: names defined outside this program.",
	KwAbsolute:  "Communicator: names bound to fixed store addresses.",
	KwBits:      "Part-word selector: BITS[width, position].",
	KwLabel:     "Declares label names in a communicator.",
	KwAnd:       "Word-logic operator: bitwise conjunction.",
	KwOr:        "Word-logic operator: bitwise inclusive or.",
	KwDiffer:    "Word-logic operator: bitwise exclusive or.",
	KwUnion:     "Word-logic operator: bitwise inclusive or (synonym of OR).",
	KwMask:      "Word-logic operator: bitwise conjunction (synonym of AND).",
	KwOctal:     "Octal literal prefix.",
	KwLiteral:   "Literal character value.",
	KwComment:   "Starts a comment region terminated by a semicolon.",
	KwDefine:    "Defines a macro.",
	KwDelete:    "Deletes a macro definition.",
	KwCode:      "Embeds implementation-specific code.",
}

// KeywordDoc returns the hover description for a keyword kind.
func KeywordDoc(k Kind) string {
	return keywordDocs[k]
}

// KeywordDocByName returns the hover description for a keyword name in any casing.
func KeywordDocByName(name string) (string, bool) {
	k, ok := LookupKeyword(name)
	if !ok {
		return "", false
	}
	return keywordDocs[k], true
}
