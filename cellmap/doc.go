// Package cellmap implements the map generator (C6): given a subject.Graph,
// a pre-computed MapRecord assigning a library cell and cut to every
// (subject node, polarity) pair actually needed, and a writable Network
// sink, it emits a gate-level netlist by recursive back-trace from every
// port output, DFF and latch control pin down to the design's primary
// inputs and constants.
//
// Generate never decides which cell matches which cone — that is the
// upstream technology-mapping pass's job, represented here only as the
// MapRecord it hands over. This package's only algorithm is the back-trace
// itself: walk outputs to their driving cones, instantiate one cell per
// distinct (node, polarity) pair, share instances across fanout, and insert
// constant cells where a cone bottoms out at a tied-off value.
package cellmap
