package expr

import "github.com/leiko-dev/synthcore/arena"

// Option configures a Mgr before first use.
type Option func(*mgrConfig)

type mgrConfig struct {
	prereserveVars int
}

// WithPrereservedVars pre-allocates the positive/negative literal pair for
// variables 0..n-1 at construction time, trading a small up-front cost for
// fewer map probes once synthesis is under way.
func WithPrereservedVars(n int) Option {
	return func(c *mgrConfig) { c.prereserveVars = n }
}

// Mgr owns the arena of expr nodes and is the sole entry point for
// constructing Handles. It is not safe for concurrent use and has no
// locking at all, by design (spec §5: the core is strictly single-threaded);
// unlike the teacher's core.Graph, which guards its maps with its own locks.
type Mgr struct {
	pool   *arena.Pool[node]
	lits   map[int]litPair
	zero   int
	one    int
	closed bool
}

type litPair struct {
	pos, neg int
}

// NewMgr returns a Mgr with its two constant nodes already installed.
func NewMgr(opts ...Option) *Mgr {
	cfg := mgrConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &Mgr{
		pool: arena.New[node](),
		lits: make(map[int]litPair, cfg.prereserveVars),
	}
	id0, slot0 := m.pool.Alloc()
	*slot0 = node{kind: kConst0, pinned: true}
	id1, slot1 := m.pool.Alloc()
	*slot1 = node{kind: kConst1, pinned: true}
	m.zero, m.one = id0, id1

	for v := 0; v < cfg.prereserveVars; v++ {
		m.mkLit(v, false)
	}
	return m
}

// Close implements the spec's clear_memory: every node in the arena is
// dropped at once. Handles obtained before Close become invalid. Any Mgr
// method given such a handle, or called on the closed Mgr directly, returns
// ErrManagerClosed. Handle's own query methods (IsAnd, Var, String, ...)
// have no error return and instead panic on a closed Mgr, the same
// contract-violation treatment as reusing a Handle past its Release.
func (m *Mgr) Close() error {
	if m.closed {
		return ErrManagerClosed
	}
	m.closed = true
	m.pool = nil
	m.lits = nil
	return nil
}

// Stats is a read-only snapshot of arena occupancy: cheap, deterministic,
// useful for tests and assertions.
type Stats struct {
	// Live is the number of arena slots currently allocated and not yet
	// freed, pinned constants and literals included. It is an occupancy
	// count, not a reachability count.
	Live int
	// Allocated is the number of arena slots ever handed out, including
	// ones since freed and not yet recycled.
	Allocated int
}

// Stats reports the manager's current arena occupancy.
// Complexity: O(1). Concurrency: not safe for concurrent use.
func (m *Mgr) Stats() (Stats, error) {
	if m.closed {
		return Stats{}, ErrManagerClosed
	}
	return Stats{Live: m.pool.Len(), Allocated: m.pool.Cap()}, nil
}

func (m *Mgr) retain(id int) {
	n := m.pool.Get(id)
	if n.pinned {
		return
	}
	n.refcount++
}

// release drops one reference to id. When the count reaches zero the node's
// slot is returned to the arena and, recursively, its children lose the
// reference this node held on them — so a whole now-unreachable subtree is
// reclaimed in one call, mirroring the spec's "freeing the top handle may
// cascade" note.
func (m *Mgr) release(id int) {
	n := m.pool.Get(id)
	if n.pinned {
		return
	}
	if n.refcount == 0 {
		return
	}
	n.refcount--
	if n.refcount == 0 {
		children := n.children
		n.children = nil
		m.pool.Free(id)
		for _, c := range children {
			m.release(c)
		}
	}
}

func (m *Mgr) mkLit(v int, inv bool) int {
	lp, ok := m.lits[v]
	if !ok {
		posID, posSlot := m.pool.Alloc()
		*posSlot = node{kind: kPosLit, varID: v, pinned: true}
		negID, negSlot := m.pool.Alloc()
		*negSlot = node{kind: kNegLit, varID: v, pinned: true}
		lp = litPair{pos: posID, neg: negID}
		m.lits[v] = lp
	}
	if inv {
		return lp.neg
	}
	return lp.pos
}

// mkNot returns a raw (unretained) id for the negation of id, built
// structurally: De Morgan's on AND/OR, single-child negation on XOR,
// polarity swap on literals and constants. A call-local memo avoids
// re-deriving the negation of a subexpression reachable from id through
// more than one path.
func (m *Mgr) mkNot(id int) int {
	return m.mkNotMemo(id, make(map[int]int))
}

func (m *Mgr) mkNotMemo(id int, memo map[int]int) int {
	if r, ok := memo[id]; ok {
		return r
	}
	n := m.pool.Get(id)
	var result int
	switch n.kind {
	case kConst0:
		result = m.one
	case kConst1:
		result = m.zero
	case kPosLit:
		result = m.mkLit(n.varID, true)
	case kNegLit:
		result = m.mkLit(n.varID, false)
	case kAnd:
		children := make([]int, len(n.children))
		for i, c := range n.children {
			children[i] = m.mkNotMemo(c, memo)
		}
		result = m.mkOr(children)
	case kOr:
		children := make([]int, len(n.children))
		for i, c := range n.children {
			children[i] = m.mkNotMemo(c, memo)
		}
		result = m.mkAnd(children)
	case kXor:
		children := append([]int(nil), n.children...)
		children[0] = m.mkNotMemo(children[0], memo)
		result = m.mkXor(children)
	}
	memo[id] = result
	return result
}

func (m *Mgr) mkAnd(ids []int) int { return m.mkAndOr(kAnd, ids) }
func (m *Mgr) mkOr(ids []int) int  { return m.mkAndOr(kOr, ids) }

// mkAndOr builds a flat AND or OR node, applying every construction-time
// simplification in one pass: identity-element drop, annihilator
// short-circuit, eager flattening of same-kind children, duplicate removal,
// and complement absorption. Complement absorption looks up each child's
// mkNot id among the other children's ids, so it collapses the node to the
// annihilator for a complementary literal pair (x and ~x are pinned nodes,
// one per polarity). Two operator children that are negations of each other
// are not detected and are both kept: mkNot builds a fresh node for an
// operator, and operator nodes are not hash-consed.
func (m *Mgr) mkAndOr(op kind, ids []int) int {
	identity, annihilator := m.one, m.zero
	if op == kOr {
		identity, annihilator = m.zero, m.one
	}

	seen := make(map[int]bool, len(ids))
	flat := make([]int, 0, len(ids))
	short := false

	var walk func(id int)
	walk = func(id int) {
		if short {
			return
		}
		if id == annihilator {
			short = true
			return
		}
		if id == identity {
			return
		}
		n := m.pool.Get(id)
		if n.kind == op {
			for _, c := range n.children {
				walk(c)
				if short {
					return
				}
			}
			return
		}
		if !seen[id] {
			seen[id] = true
			flat = append(flat, id)
		}
	}
	for _, id := range ids {
		walk(id)
		if short {
			return annihilator
		}
	}

	present := make(map[int]bool, len(flat))
	for _, id := range flat {
		present[id] = true
	}
	for _, id := range flat {
		if present[m.mkNot(id)] {
			return annihilator
		}
	}

	switch len(flat) {
	case 0:
		return identity
	case 1:
		return flat[0]
	default:
		nid, slot := m.pool.Alloc()
		*slot = node{kind: op, children: flat}
		for _, c := range flat {
			m.retain(c)
		}
		return nid
	}
}

// mkXor builds a flat XOR node: nested XOR children are spliced in directly
// (XOR is associative and commutative, and a nested node's own encoding of
// any residual negation is preserved verbatim by the splice), constant-1
// children toggle an overall parity bit instead of appearing as children,
// and any child appearing an even number of times cancels out entirely.
// A final odd parity is folded back in by negating one surviving child
// rather than by a dedicated top-level inversion.
func (m *Mgr) mkXor(ids []int) int {
	counts := make(map[int]int, len(ids))
	var order []int
	parity := false

	var walk func(id int)
	walk = func(id int) {
		switch id {
		case m.zero:
			return
		case m.one:
			parity = !parity
			return
		}
		n := m.pool.Get(id)
		if n.kind == kXor {
			for _, c := range n.children {
				walk(c)
			}
			return
		}
		if _, ok := counts[id]; !ok {
			order = append(order, id)
		}
		counts[id]++
	}
	for _, id := range ids {
		walk(id)
	}

	flat := make([]int, 0, len(order))
	for _, id := range order {
		if counts[id]%2 == 1 {
			flat = append(flat, id)
		}
	}

	switch {
	case len(flat) == 0:
		if parity {
			return m.one
		}
		return m.zero
	case len(flat) == 1:
		if parity {
			return m.mkNot(flat[0])
		}
		return flat[0]
	default:
		if parity {
			negated := append([]int(nil), flat...)
			negated[0] = m.mkNot(negated[0])
			flat = negated
		}
		nid, slot := m.pool.Alloc()
		*slot = node{kind: kXor, children: flat}
		for _, c := range flat {
			m.retain(c)
		}
		return nid
	}
}
