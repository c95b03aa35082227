package cellmap

import (
	"github.com/leiko-dev/synthcore/expr"
	"github.com/leiko-dev/synthcore/pattern"
)

// Sense records whether a DFF/latch control pin is active-high or
// active-low, per spec §6's "(clock_sense, clear_sense, preset_sense)"
// cell-library contract.
type Sense bool

const (
	ActiveHigh Sense = true
	ActiveLow  Sense = false
)

// Cell is one library cell, as exposed by the cell library per spec §6: the
// pattern-graph roots it can realize, its output as an expression (both
// metadata for the upstream matching pass that builds a MapRecord, not used
// by Generate itself), its input pin count, and — for DFF/latch cells — the
// sense of each control pin.
type Cell struct {
	Name         string
	PatternRoots []int
	Output       expr.Handle
	NumInputs    int

	IsSequential bool
	HasClear     bool
	HasPreset    bool
	ClockSense   Sense
	ClearSense   Sense
	PresetSense  Sense
}

type matchKey struct {
	node int
	inv  bool
}

// Match pairs the cell chosen for a (node, polarity) pair with the cut
// identifying its fanins at the subject-graph boundary.
type Match struct {
	Cell *Cell
	Cut  *pattern.Cut
}

// MapRecord is C6's input: a pre-computed assignment of a cell and a cut to
// every (subject node, polarity) pair a back-trace will need, plus the
// DFF/latch cell choices (one entry per Q polarity) and the constant-0/1
// cells. It is built by an external technology-mapping pass; Generate only
// reads it.
type MapRecord struct {
	matches   map[matchKey]Match
	dffCell   [2]*Cell
	latchCell [2]*Cell
	constCell [2]*Cell
}

// NewMapRecord returns an empty MapRecord ready for SetMatch/SetDFFCell/
// SetLatchCell/SetConstCell calls.
func NewMapRecord() *MapRecord {
	return &MapRecord{matches: make(map[matchKey]Match)}
}

// SetMatch records the cell and cut chosen for node read at polarity inv.
func (r *MapRecord) SetMatch(node int, inv bool, cell *Cell, cut *pattern.Cut) {
	r.matches[matchKey{node: node, inv: inv}] = Match{Cell: cell, Cut: cut}
}

// GetMatch looks up the match recorded for node at polarity inv.
func (r *MapRecord) GetMatch(node int, inv bool) (Match, bool) {
	m, ok := r.matches[matchKey{node: node, inv: inv}]
	return m, ok
}

func polarityIndex(invertedQ bool) int {
	if invertedQ {
		return 1
	}
	return 0
}

// SetDFFCell records the cell chosen to realize a D-FF's Q at the given
// polarity (invertedQ selects the "Q is available inverted" variant).
func (r *MapRecord) SetDFFCell(invertedQ bool, cell *Cell) {
	r.dffCell[polarityIndex(invertedQ)] = cell
}

// DFFCell returns the cell recorded for the given Q polarity, if any.
func (r *MapRecord) DFFCell(invertedQ bool) (*Cell, bool) {
	c := r.dffCell[polarityIndex(invertedQ)]
	return c, c != nil
}

// SetLatchCell mirrors SetDFFCell for latches.
func (r *MapRecord) SetLatchCell(invertedQ bool, cell *Cell) {
	r.latchCell[polarityIndex(invertedQ)] = cell
}

// LatchCell mirrors DFFCell for latches.
func (r *MapRecord) LatchCell(invertedQ bool) (*Cell, bool) {
	c := r.latchCell[polarityIndex(invertedQ)]
	return c, c != nil
}

// SetConstCell records the cell that realizes the tied constant value.
func (r *MapRecord) SetConstCell(value bool, cell *Cell) {
	r.constCell[polarityIndex(value)] = cell
}

// ConstCell returns the cell recorded for the given constant value, if any.
func (r *MapRecord) ConstCell(value bool) (*Cell, bool) {
	c := r.constCell[polarityIndex(value)]
	return c, c != nil
}
