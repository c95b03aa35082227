// Package netlist is the default cellmap.Network: a concrete sink the map
// generator can emit into when a caller has no emitter of its own. It adapts
// the teacher's core.Graph — a directed, multi-edge-capable, weighted graph
// store — from a generic weighted multigraph into a cell-instance netlist:
// ports, DFF/latch instances and logic-cell instances all become vertices,
// and connect becomes AddEdge with the destination pin index carried as the
// edge's Weight.
//
// Nothing here is required reading for cellmap.Generate — it depends only
// on the cellmap.Network interface — but most callers need *some* concrete
// place to put the result, and this keeps core.Graph's adjacency bookkeeping
// (ensureAdjacency, deterministic "e"+decimal edge ids)
// exercised rather than unused.
package netlist
