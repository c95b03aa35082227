// Package mindepth computes, for a fixed LUT input count k, the minimum
// achievable depth of every Logic node in a subject.Graph once its fanin
// cone is packed into k-input lookup tables.
//
// A node whose fanin cone contains at most k distinct Input nodes can be
// realized by a single k-LUT no deeper than its deepest fanin — packing the
// whole cone into one table costs nothing extra. Once a cone needs more than
// k distinct inputs, at least one extra level of LUTs is unavoidable, so the
// node's depth is one more than the deeper of its two fanins'.
package mindepth
