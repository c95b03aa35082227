// Package subject implements the two-input subject graph (AIG/XIG): the
// structural form downstream cell mapping is actually performed over, built
// from expr.Handle trees by new_logic's recursive AND/OR/XOR decomposition.
//
// Three differences from package expr are deliberate, not oversights:
//
//   - Every Logic node has exactly two fanins. A wide AND/OR/XOR from the
//     expression layer is rebuilt here as a balanced binary tree.
//   - Negation is never structural. subject.Handle carries an explicit
//     inversion bit, because a two-input node cannot always be restructured
//     to absorb a negation the way an n-ary AND/OR/XOR can.
//   - OR is not a distinct node kind. new_or(a, b) builds an AND of the
//     complemented inputs and returns it with the inversion bit set — the
//     graph only ever contains AND-kind and XOR-kind Logic nodes.
package subject
