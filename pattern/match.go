package pattern

import (
	"fmt"

	"github.com/leiko-dev/synthcore/subject"
)

// Cut is the ordered list of (leaf-subject-handle) pairs bound to a
// pattern's Input nodes by a successful Match, in pattern-input order. Each
// handle already carries the polarity the leaf must be read at.
type Cut struct {
	Leaves []subject.Handle
}

// Matcher holds the forward (pattern→subject) and reverse (subject→pattern)
// binding maps a match attempt needs, reused across calls so that repeated
// matching against the same cell library shares no per-call allocation once
// the maps are warm.
type Matcher struct {
	internal []int            // pattern id -> subject node id, -1 if unbound
	leaf     []subject.Handle // pattern id -> bound leaf handle
	leafSet  []bool           // pattern id -> leaf bound?
	reverse  map[int]int      // subject node id -> pattern id
	touched  []int            // subject node ids claimed this attempt, for reset
}

// NewMatcher returns an empty Matcher.
func NewMatcher() *Matcher {
	return &Matcher{reverse: make(map[int]int)}
}

func (m *Matcher) reset(n int) {
	if cap(m.internal) < n {
		m.internal = make([]int, n)
		m.leaf = make([]subject.Handle, n)
		m.leafSet = make([]bool, n)
	} else {
		m.internal = m.internal[:n]
		m.leaf = m.leaf[:n]
		m.leafSet = m.leafSet[:n]
	}
	for i := range m.internal {
		m.internal[i] = -1
		m.leafSet[i] = false
	}
	for _, id := range m.touched {
		delete(m.reverse, id)
	}
	m.touched = m.touched[:0]
}

// Match walks p against the cone of s rooted at rootSubject, per spec §4.5's
// structural-edge-walk algorithm: bind the root with no inversion, then
// recurse over p's edges checking subject kind and polarity compatibility,
// maintaining a forward and reverse binding map to catch conflicting binds
// and injectivity violations. A false result with a nil error means the
// pattern simply does not match — not a failure.
func (m *Matcher) Match(p *Graph, s *subject.Graph, rootSubject int) (*Cut, bool, error) {
	m.reset(p.NumNodes())

	root, err := s.HandleOf(rootSubject)
	if err != nil {
		return nil, false, fmt.Errorf("%w: node %d: %v", ErrForeignGraph, rootSubject, err)
	}

	ok, err := m.bind(p, s, p.Root(), root)
	if err != nil || !ok {
		return nil, false, err
	}

	inputs := p.Inputs()
	leaves := make([]subject.Handle, len(inputs))
	for i, id := range inputs {
		leaves[i] = m.leaf[id]
	}
	return &Cut{Leaves: leaves}, true, nil
}

// Match is a convenience wrapper for a single one-off match, allocating its
// own Matcher. Callers doing many matches against the same library should
// construct a Matcher once and call its Match method instead.
func Match(p *Graph, s *subject.Graph, rootSubject int) (*Cut, bool, error) {
	return NewMatcher().Match(p, s, rootSubject)
}

func (m *Matcher) bind(p *Graph, s *subject.Graph, pID int, sH subject.Handle) (bool, error) {
	node := p.NodeAt(pID)

	if node.Kind == KindInput {
		return m.bindLeaf(pID, sH)
	}

	if sH.IsConst() {
		return false, nil
	}
	sID, _ := sH.NodeID()

	if bound := m.internal[pID]; bound != -1 {
		return bound == sID, nil
	}
	if owner, claimed := m.reverse[sID]; claimed && owner != pID {
		return false, nil
	}

	kind, err := s.NodeKind(sID)
	if err != nil {
		return false, err
	}
	if kind != subject.KindLogic {
		return false, nil
	}
	isXor, err := s.IsXor(sID)
	if err != nil {
		return false, err
	}
	if (node.Kind == KindAnd) == isXor {
		return false, nil
	}

	m.internal[pID] = sID
	m.reverse[sID] = pID
	m.touched = append(m.touched, sID)

	for slot := 0; slot < 2; slot++ {
		edge := node.Fanins[slot]
		childH, err := s.Fanin(sID, slot)
		if err != nil {
			return false, err
		}
		childNode := p.NodeAt(edge.From)
		if childNode.Kind == KindInput {
			if edge.Inv {
				childH = childH.Invert()
			}
		} else {
			if childH.IsConst() {
				return false, nil
			}
			if edge.Inv != childH.Inverted() {
				return false, nil
			}
		}
		ok, err := m.bind(p, s, edge.From, childH)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (m *Matcher) bindLeaf(pID int, h subject.Handle) (bool, error) {
	if m.leafSet[pID] {
		return m.leaf[pID].Equal(h), nil
	}
	if !h.IsConst() {
		id, _ := h.NodeID()
		if owner, claimed := m.reverse[id]; claimed && owner != pID {
			return false, nil
		}
		m.reverse[id] = pID
		m.touched = append(m.touched, id)
	}
	m.leaf[pID] = h
	m.leafSet[pID] = true
	return true, nil
}
