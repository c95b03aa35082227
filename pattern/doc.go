// Package pattern implements the structural pattern matcher (C5): a
// library pattern graph — a small read-only DAG of Input/And/Xor nodes with
// polarity-tagged edges — is walked against a cone of a subject.Graph rooted
// at a candidate node. A successful match produces a Cut: the subject
// handles that correspond to the pattern's Input nodes, in pattern-input
// order, as seen at the boundary of the matched cone.
//
// Matching never mutates the subject graph and never allocates per call
// beyond the two small binding maps — a failed match leaves no trace, and a
// caller doing many matches against the same pattern can reuse a Matcher to
// avoid repeated map allocation.
package pattern
