// Package diag carries the diagnostic model shared by every analysis phase.
//
// The engine never fails on malformed input: lexing, extraction and
// resolution all downgrade problems to Diagnostics collected in a Bag that
// travels with the analysis snapshot. Severity policy: unrecognized input and
// duplicate declarations are errors local to their span; unresolved
// references are warnings, because in-progress documents routinely mention
// names that do not exist yet.
package diag
