// Package token defines lexical token kinds for CORAL 66 source.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Keywords are recognized case-insensitively; Token.Text preserves the
//     original casing.
//   - COMMENT ... ; regions never appear in the token stream; the lexer
//     consumes them as trivia with offsets intact.
package token
