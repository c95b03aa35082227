package expr

import "errors"

// Error policy mirrors the teacher's: only sentinel variables are exported,
// callers branch with errors.Is, and context is attached with fmt.Errorf's
// %w rather than by minting new sentinel values per call site.

// ErrManagerClosed is returned by any Mgr method invoked after Close, and by
// any Handle method with an error return whose handle belongs to a closed
// Mgr; Handle's query methods have no error return and panic instead (see
// Mgr.Close). It implements the
// "clear_memory leaves all outstanding handles dangling" contract (§5) as an
// explicit error instead of undefined behavior.
var ErrManagerClosed = errors.New("expr: manager is closed")

// ErrForeignHandle is returned when a Handle produced by one Mgr is passed
// to a method of a different Mgr (e.g. mixing Compose arguments across two
// managers). The two engines' arenas are disjoint address spaces; there is
// no meaningful way to combine them.
var ErrForeignHandle = errors.New("expr: handle belongs to a different manager")

// ErrNegativeVar is returned by PosLit/NegLit/Lit when given a negative
// variable index.
var ErrNegativeVar = errors.New("expr: variable index must be nonnegative")

// ErrTruthTableSize is returned by FromTruthTable when the supplied table's
// length does not match 2^len(vars), and by MakeTV when asked for a
// negative input count.
var ErrTruthTableSize = errors.New("expr: truth table size mismatch")

// ErrTruncated is returned by Decode when the input ends before a complete
// encoding has been read.
var ErrTruncated = errors.New("expr: truncated encoding")

// ErrBadEncoding is returned by Decode when the input contains a structurally
// invalid encoding: an unknown node tag, or bytes left over after one
// complete encoding.
var ErrBadEncoding = errors.New("expr: malformed encoding")
