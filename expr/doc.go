// Package expr implements the hash-consed-style Boolean expression engine:
// a manager (Mgr) owning a DAG of AND/OR/XOR/literal/constant nodes,
// addressed through reference-counted Handle values.
//
// Unlike the subject package's two-input graph, expr nodes are n-ary:
// make_and, make_or and make_xor each build one flat node over an arbitrary
// number of children, matching the original Expr/ExprMgr design (see
// original_source/include/YmLogic/Expr.h) rather than the two-input AIG
// restriction that only applies once a design is lowered into a subject
// graph.
//
// Negation never allocates a dedicated "not" node: not() always recurses
// structurally (De Morgan's on AND/OR, single-child negation on XOR,
// polarity swap on literals and constants) and returns a handle to an
// ordinary node of one of the other five kinds. This mirrors
// Expr::operator~ in the original and keeps Handle free of any top-level
// inversion tag — contrast subject.Handle, which does carry one, because
// two-input nodes cannot always re-express a negation structurally.
//
// Only constants and literals are pinned (never freed, shared by every
// Mgr-internal reference to the same variable); general AND/OR/XOR
// subexpressions are plain reference-counted nodes and are not
// hash-consed — two structurally identical subexpressions built via
// separate calls may get distinct ids, exactly as the spec allows.
package expr
