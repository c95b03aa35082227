package expr

// own reports whether h is usable against m: not a foreign handle, and m
// not yet closed.
func (m *Mgr) own(h Handle) error {
	if m.closed {
		return ErrManagerClosed
	}
	if h.mgr != m {
		return ErrForeignHandle
	}
	return nil
}

// rebuild walks id bottom-up, applying leaf at every node until it claims
// one (returning ok=true), and otherwise reconstructing operator nodes
// through the normal mk* constructors so every invariant is re-verified.
// When no child changes under a node, the node's own id is returned
// untouched — compose/remap/simplify all rely on this to leave
// unaffected subtrees structurally identical to the input. memo caches one
// result per visited id so a subexpression reachable by more than one path
// through the DAG is only rebuilt once.
func (m *Mgr) rebuild(id int, memo map[int]int, leaf func(id int, n *node) (int, bool)) int {
	if cached, ok := memo[id]; ok {
		return cached
	}
	n := m.pool.Get(id)
	var result int
	if newID, ok := leaf(id, n); ok {
		result = newID
	} else if !n.isOperator() {
		result = id
	} else {
		children := make([]int, len(n.children))
		changed := false
		for i, c := range n.children {
			nc := m.rebuild(c, memo, leaf)
			children[i] = nc
			if nc != c {
				changed = true
			}
		}
		if !changed {
			result = id
		} else {
			switch n.kind {
			case kAnd:
				result = m.mkAnd(children)
			case kOr:
				result = m.mkOr(children)
			default:
				result = m.mkXor(children)
			}
		}
	}
	memo[id] = result
	return result
}

// Compose substitutes sub for every occurrence of variable v in h (negated
// occurrences receive Not(sub), not a recursive substitution into sub
// itself). If h does not mention v, the returned Handle refers to the same
// node as h.
func (m *Mgr) Compose(h Handle, v int, sub Handle) (Handle, error) {
	if err := m.own(h); err != nil {
		return Handle{}, err
	}
	if err := m.own(sub); err != nil {
		return Handle{}, err
	}
	memo := map[int]int{}
	leaf := func(_ int, n *node) (int, bool) {
		if n.kind == kPosLit && n.varID == v {
			return sub.id, true
		}
		if n.kind == kNegLit && n.varID == v {
			return m.mkNot(sub.id), true
		}
		return 0, false
	}
	root := m.rebuild(h.id, memo, leaf)
	m.retain(root)
	return Handle{m, root}, nil
}

// ComposeMap substitutes every variable named in subs simultaneously, each
// with its own replacement; variables absent from subs are left alone.
func (m *Mgr) ComposeMap(h Handle, subs map[int]Handle) (Handle, error) {
	if err := m.own(h); err != nil {
		return Handle{}, err
	}
	for _, s := range subs {
		if err := m.own(s); err != nil {
			return Handle{}, err
		}
	}
	memo := map[int]int{}
	leaf := func(_ int, n *node) (int, bool) {
		if n.kind != kPosLit && n.kind != kNegLit {
			return 0, false
		}
		sub, ok := subs[n.varID]
		if !ok {
			return 0, false
		}
		if n.kind == kNegLit {
			return m.mkNot(sub.id), true
		}
		return sub.id, true
	}
	root := m.rebuild(h.id, memo, leaf)
	m.retain(root)
	return Handle{m, root}, nil
}

// RemapVar renames every variable named in mapping to its image, preserving
// polarity; variables absent from mapping are left alone.
func (m *Mgr) RemapVar(h Handle, mapping map[int]int) (Handle, error) {
	if err := m.own(h); err != nil {
		return Handle{}, err
	}
	memo := map[int]int{}
	leaf := func(_ int, n *node) (int, bool) {
		if n.kind != kPosLit && n.kind != kNegLit {
			return 0, false
		}
		nv, ok := mapping[n.varID]
		if !ok {
			return 0, false
		}
		return m.mkLit(nv, n.kind == kNegLit), true
	}
	root := m.rebuild(h.id, memo, leaf)
	m.retain(root)
	return Handle{m, root}, nil
}

// Simplify reapplies every construction-time rule to h's subtree. Because
// this engine has no API for mutating a node after construction, every
// reachable node is already canonical and Simplify is the identity — it is
// provided, and implemented as a genuine rebuild rather than a bare
// passthrough, so that it stays correct if that ever changes.
func (m *Mgr) Simplify(h Handle) (Handle, error) {
	if err := m.own(h); err != nil {
		return Handle{}, err
	}
	memo := map[int]int{}
	never := func(int, *node) (int, bool) { return 0, false }
	root := m.rebuild(h.id, memo, never)
	m.retain(root)
	return Handle{m, root}, nil
}

// Eval evaluates h under assignment, which must map every variable in h's
// support to a Boolean value; variables absent from assignment evaluate as
// false.
func (m *Mgr) Eval(h Handle, assignment map[int]bool) (bool, error) {
	if err := m.own(h); err != nil {
		return false, err
	}
	memo := make(map[int]bool)
	var walk func(id int) bool
	walk = func(id int) bool {
		if v, ok := memo[id]; ok {
			return v
		}
		n := m.pool.Get(id)
		var v bool
		switch n.kind {
		case kConst0:
			v = false
		case kConst1:
			v = true
		case kPosLit:
			v = assignment[n.varID]
		case kNegLit:
			v = !assignment[n.varID]
		case kAnd:
			v = true
			for _, c := range n.children {
				if !walk(c) {
					v = false
					break
				}
			}
		case kOr:
			for _, c := range n.children {
				if walk(c) {
					v = true
					break
				}
			}
		case kXor:
			for _, c := range n.children {
				v = v != walk(c)
			}
		}
		memo[id] = v
		return v
	}
	return walk(h.id), nil
}

// TruthTable is a function's value at every row of an n-variable input
// space, indexed the same way MakeTV and FromTruthTable agree on: row r's
// bit j (LSB first, j counting up from 0) is input variable j's value.
type TruthTable []bool

// FromTruthTable builds the canonical sum-of-minterms expression over vars
// whose truth table is table. table must have exactly 2^len(vars) entries;
// entry row encodes the assignment where bit j of row (LSB first) is
// vars[j]'s value. The result is a valid, but not necessarily minimal,
// two-level cover — FromTruthTable does no tautology or minimality
// reasoning, matching the engine's general policy of only ever applying
// the fixed local simplification rules (see the package doc comment).
func (m *Mgr) FromTruthTable(vars []int, table TruthTable) (Handle, error) {
	if m.closed {
		return Handle{}, ErrManagerClosed
	}
	n := len(vars)
	want := 1 << uint(n)
	if len(table) != want {
		return Handle{}, ErrTruthTableSize
	}
	if n == 0 {
		if table[0] {
			return m.One()
		}
		return m.Zero()
	}
	var minterms []Handle
	for row := 0; row < want; row++ {
		if !table[row] {
			continue
		}
		lits := make([]Handle, n)
		for j, v := range vars {
			inv := (row>>uint(j))&1 == 0
			h, err := m.Lit(v, inv)
			if err != nil {
				return Handle{}, err
			}
			lits[j] = h
		}
		cube, err := m.MakeAnd(lits...)
		if err != nil {
			return Handle{}, err
		}
		minterms = append(minterms, cube)
	}
	return m.MakeOr(minterms...)
}

// MakeTV evaluates h over every assignment of its first n input variables
// (0..n-1) and returns the resulting TruthTable, using the row encoding
// FromTruthTable's table parameter agrees on (row r's bit j, LSB first, is
// variable j's value) — so for any h built by FromTruthTable(vars, t),
// MakeTV(h, len(vars)) reconstructs a table equal to t, and for any h and
// n, Eval(h, assignment) agrees with MakeTV(h, n)'s entry at assignment's
// packed row. Variables at or above n are treated as false, matching
// Eval's own policy for variables absent from its assignment argument.
func (m *Mgr) MakeTV(h Handle, n int) (TruthTable, error) {
	if err := m.own(h); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrTruthTableSize
	}
	rows := 1 << uint(n)
	table := make(TruthTable, rows)
	assignment := make(map[int]bool, n)
	for row := 0; row < rows; row++ {
		for j := 0; j < n; j++ {
			assignment[j] = (row>>uint(j))&1 == 1
		}
		v, err := m.Eval(h, assignment)
		if err != nil {
			return nil, err
		}
		table[row] = v
	}
	return table, nil
}
