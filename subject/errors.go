package subject

import "errors"

// ErrGraphClosed is returned by most Graph methods called after Close. The
// list accessors (Inputs, Outputs, DFFs, Latches, Ports) return empty
// results instead, DFFAt and LatchAt report ErrNoSuchCell, and HandleOf,
// PortOf, Mark, SetMark, POReach and SetPOReach do not check for a closed
// graph.
var ErrGraphClosed = errors.New("subject: graph is closed")

// ErrForeignHandle is returned when a Handle produced by one Graph is passed
// to a method of a different Graph.
var ErrForeignHandle = errors.New("subject: handle belongs to a different graph")

// ErrLeafOutOfRange is returned by NewLogic when an expr.Handle's literal
// refers to a variable index with no corresponding entry in the leaves slice.
var ErrLeafOutOfRange = errors.New("subject: expr literal has no matching leaf")

// ErrUnsupportedExpr is returned by NewLogic if the expr.Handle tree contains
// a node shape the subject graph has no way to represent. In practice this
// cannot happen for handles produced by expr.Mgr, since every node kind it
// can produce (const, literal, AND, OR, XOR) has a subject-graph translation.
var ErrUnsupportedExpr = errors.New("subject: expr node has no subject-graph translation")

// ErrNotLogic is returned when a node-targeted operation (ChangeOutput's
// source check aside) is given a node id that is not a Logic node where a
// Logic node was required.
var ErrNotLogic = errors.New("subject: node is not a Logic node")

// ErrNotOutput is returned when ChangeOutput is given a node id that is not
// an Output node.
var ErrNotOutput = errors.New("subject: node is not an Output node")

// ErrNodeHasFanout is returned when a caller attempts to remove a node that
// still has live fanout — deleting it would leave a dangling edge.
var ErrNodeHasFanout = errors.New("subject: node still has fanout")

// ErrPortBitTaken is returned by Graph.NewPort when the target node is
// already bound to a port bit.
var ErrPortBitTaken = errors.New("subject: node is already bound to a port")

// ErrPortKindMismatch is returned by Graph.NewPort when a port bit's
// direction does not match the node's kind (Input bits need an Input node,
// Output bits need an Output node).
var ErrPortKindMismatch = errors.New("subject: port bit direction does not match node kind")

// ErrNoSuchCell is returned by Graph.DFFAt / LatchAt lookups given an
// index outside the current DFF/Latch list.
var ErrNoSuchCell = errors.New("subject: no such DFF or latch index")
