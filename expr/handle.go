package expr

import "fmt"

// Handle is a reference-counted pointer into a Mgr's arena. The zero Handle
// is not valid; every Handle in circulation was returned by a Mgr method.
//
// Handles are plain values — assigning one makes a second reference to the
// same underlying node without adjusting any refcount, the same way copying
// a Go slice header shares the backing array. Go has no destructors, so
// unlike the original's Expr (which releases its reference when it goes out
// of scope), a Handle's reference is only released by an explicit call to
// Release. Retain takes an additional reference before handing a copy to
// code that will Release it independently; failing to do so is safe (the
// node simply never drops below its true number of holders), but Releasing
// a Handle more times than Retain/construction granted is a contract
// violation with the same consequences as a double free.
type Handle struct {
	mgr *Mgr
	id  int
}

func (h Handle) node() *node { return h.mgr.pool.Get(h.id) }

func sameMgr(a, b Handle) error {
	if a.mgr != b.mgr {
		return ErrForeignHandle
	}
	return nil
}

// Zero returns the constant-0 handle.
func (m *Mgr) Zero() (Handle, error) {
	if m.closed {
		return Handle{}, ErrManagerClosed
	}
	return Handle{m, m.zero}, nil
}

// One returns the constant-1 handle.
func (m *Mgr) One() (Handle, error) {
	if m.closed {
		return Handle{}, ErrManagerClosed
	}
	return Handle{m, m.one}, nil
}

// PosLit returns the handle for variable v in its positive (uninverted) form.
func (m *Mgr) PosLit(v int) (Handle, error) {
	return m.Lit(v, false)
}

// NegLit returns the handle for variable v in its negative (inverted) form.
func (m *Mgr) NegLit(v int) (Handle, error) {
	return m.Lit(v, true)
}

// Lit returns the handle for variable v, inverted if inv is set.
func (m *Mgr) Lit(v int, inv bool) (Handle, error) {
	if m.closed {
		return Handle{}, ErrManagerClosed
	}
	if v < 0 {
		return Handle{}, ErrNegativeVar
	}
	return Handle{m, m.mkLit(v, inv)}, nil
}

// Not returns the negation of h, built structurally rather than by tagging
// a top-level inversion bit (see the package doc comment).
func (h Handle) Not() (Handle, error) {
	if h.mgr == nil {
		return Handle{}, ErrForeignHandle
	}
	if h.mgr.closed {
		return Handle{}, ErrManagerClosed
	}
	id := h.mgr.mkNot(h.id)
	h.mgr.retain(id)
	return Handle{h.mgr, id}, nil
}

// And returns h AND other.
func (h Handle) And(other Handle) (Handle, error) {
	return h.mgr.MakeAnd(h, other)
}

// Or returns h OR other.
func (h Handle) Or(other Handle) (Handle, error) {
	return h.mgr.MakeOr(h, other)
}

// Xor returns h XOR other.
func (h Handle) Xor(other Handle) (Handle, error) {
	return h.mgr.MakeXor(h, other)
}

// MakeAnd builds the (possibly n-ary) conjunction of hs, applying identity
// drop, annihilator short-circuit, flattening, dedup and complement
// absorption. MakeAnd() with no arguments returns the constant 1.
func (m *Mgr) MakeAnd(hs ...Handle) (Handle, error) {
	return m.makeNary(kAnd, hs)
}

// MakeOr builds the (possibly n-ary) disjunction of hs. MakeOr() with no
// arguments returns the constant 0.
func (m *Mgr) MakeOr(hs ...Handle) (Handle, error) {
	return m.makeNary(kOr, hs)
}

// MakeXor builds the (possibly n-ary) exclusive-or of hs. MakeXor() with no
// arguments returns the constant 0.
func (m *Mgr) MakeXor(hs ...Handle) (Handle, error) {
	return m.makeNary(kXor, hs)
}

func (m *Mgr) makeNary(op kind, hs []Handle) (Handle, error) {
	if m.closed {
		return Handle{}, ErrManagerClosed
	}
	ids := make([]int, len(hs))
	for i, h := range hs {
		if h.mgr == nil {
			return Handle{}, ErrForeignHandle
		}
		if h.mgr != m {
			return Handle{}, ErrForeignHandle
		}
		ids[i] = h.id
	}
	var raw int
	switch op {
	case kAnd:
		raw = m.mkAnd(ids)
	case kOr:
		raw = m.mkOr(ids)
	default:
		raw = m.mkXor(ids)
	}
	m.retain(raw)
	return Handle{m, raw}, nil
}

// Retain returns a new Handle holding an additional reference to the same
// node. Use it when a copy of h must be Released independently of h.
func (h Handle) Retain() Handle {
	h.mgr.retain(h.id)
	return h
}

// Release drops the reference this Handle represents. After Release, h must
// not be used again.
func (h Handle) Release() {
	h.mgr.release(h.id)
}

// Equal reports whether h and other are structurally equal expressions of
// the same Mgr: the same arena slot, or the same operator over pairwise
// equal children in the same stored order. Separately constructed but
// identical subexpressions therefore compare equal even though the engine
// does not hash-cons them; the same operands stored in a different order do
// not. Like the other query methods, it panics on a closed Mgr.
func (h Handle) Equal(other Handle) bool {
	return h.mgr == other.mgr && (h.id == other.id || h.String() == other.String())
}

// IsZero reports whether h is the constant 0.
func (h Handle) IsZero() bool { return h.id == h.mgr.zero }

// IsOne reports whether h is the constant 1.
func (h Handle) IsOne() bool { return h.id == h.mgr.one }

// IsConst reports whether h is a constant.
func (h Handle) IsConst() bool { return h.IsZero() || h.IsOne() }

// IsLiteral reports whether h is a single variable, positive or negative.
func (h Handle) IsLiteral() bool {
	k := h.node().kind
	return k == kPosLit || k == kNegLit
}

// IsAnd, IsOr and IsXor report the node's top-level operator, if any.
func (h Handle) IsAnd() bool { return h.node().kind == kAnd }
func (h Handle) IsOr() bool  { return h.node().kind == kOr }
func (h Handle) IsXor() bool { return h.node().kind == kXor }

// Children returns the operator's child handles in construction order, or
// nil for a constant or literal. Children are borrowed — reading them costs
// no extra reference, but a caller that wants to Release one independently
// of h must Retain it first. This is the hook subject.Graph.NewLogic uses
// to walk an expr DAG without either package reaching into the other's
// unexported node representation.
func (h Handle) Children() []Handle {
	n := h.node()
	if !n.isOperator() {
		return nil
	}
	out := make([]Handle, len(n.children))
	for i, c := range n.children {
		out[i] = Handle{h.mgr, c}
	}
	return out
}

// Var returns the variable index for a literal handle; ok is false for
// anything else.
func (h Handle) Var() (v int, ok bool) {
	n := h.node()
	if n.kind != kPosLit && n.kind != kNegLit {
		return 0, false
	}
	return n.varID, true
}

// Polarity reports whether a literal handle is inverted; ok is false for
// anything else.
func (h Handle) Polarity() (inverted bool, ok bool) {
	n := h.node()
	if n.kind != kPosLit && n.kind != kNegLit {
		return false, false
	}
	return n.kind == kNegLit, true
}

// IsSimple reports whether h is a constant or a literal — the original's
// Expr::is_simple(): true for the handful of shapes that need no recursive
// traversal to interpret.
func (h Handle) IsSimple() bool {
	return h.IsConst() || h.IsLiteral()
}

// IsSOP reports whether h is already in flat sum-of-products form: either
// simple, or a single OR-of-ANDs-of-literals (or a bare AND-of-literals, the
// one-term case), or a single AND-of-literals. Mirrors Expr::is_sop().
func (h Handle) IsSOP() bool {
	n := h.node()
	switch n.kind {
	case kConst0, kConst1, kPosLit, kNegLit:
		return true
	case kAnd:
		return isLiteralCube(n, h.mgr)
	case kOr:
		for _, c := range n.children {
			cn := h.mgr.pool.Get(c)
			if cn.kind == kAnd {
				if !isLiteralCube(cn, h.mgr) {
					return false
				}
			} else if cn.kind != kPosLit && cn.kind != kNegLit && cn.kind != kConst1 {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isLiteralCube(n *node, m *Mgr) bool {
	for _, c := range n.children {
		cn := m.pool.Get(c)
		if cn.kind != kPosLit && cn.kind != kNegLit {
			return false
		}
	}
	return true
}

// InputSize returns one more than the largest variable id appearing
// anywhere in h (0 when h contains no literal), mirroring
// Expr::input_size().
func (h Handle) InputSize() int {
	seen := make(map[int]bool)
	size := 0
	var walk func(id int)
	walk = func(id int) {
		if seen[id] {
			return
		}
		seen[id] = true
		n := h.mgr.pool.Get(id)
		switch n.kind {
		case kPosLit, kNegLit:
			if n.varID+1 > size {
				size = n.varID + 1
			}
		default:
			for _, c := range n.children {
				walk(c)
			}
		}
	}
	walk(h.id)
	return size
}

// String renders a small, human-readable (not round-trippable) expression,
// useful for test failure messages and debugging. Use Encode for a format
// meant to be parsed back.
func (h Handle) String() string {
	n := h.node()
	switch n.kind {
	case kConst0:
		return "0"
	case kConst1:
		return "1"
	case kPosLit:
		return fmt.Sprintf("v%d", n.varID)
	case kNegLit:
		return fmt.Sprintf("!v%d", n.varID)
	case kAnd, kOr, kXor:
		sep := map[kind]string{kAnd: " & ", kOr: " | ", kXor: " ^ "}[n.kind]
		s := "("
		for i, c := range n.children {
			if i > 0 {
				s += sep
			}
			s += Handle{h.mgr, c}.String()
		}
		return s + ")"
	default:
		return "?"
	}
}
