package expr

// sopPair is a (cube count, literal count) pair for a node's sum-of-products
// expansion.
type sopPair struct {
	cubes int
	lits  int
}

// sopBoth holds a node's own (pos) and its logical complement's (neg)
// sopPair, computed together in one pass. Carrying both at every step lets
// AND/OR/XOR fold their complement (needed for De Morgan expansion and for
// XOR's incremental fold) without ever materializing a complement node in
// the arena — sop stats are a read-only query and must not allocate.
type sopBoth struct {
	pos, neg sopPair
}

// sopStats computes (cubenum, litnum) exactly, including for XOR, by
// tracking a running node's stats alongside its complement's at every fold
// step: XOR is associative, so XOR(c1..ck) is computed incrementally as
// XOR(XOR(c1..c(k-1)), ck), and each step needs both polarities of the
// accumulator to expand the next term (a'b + ab' for the value, ab + a'b'
// for its complement). A node's complement stats are derived structurally
// (AND's complement is the OR of its children's complements, and vice
// versa) rather than via mkNot, so this never allocates. Every id is
// memoized once per call since, unlike a two-input AIG handle, an expr node
// carries no external polarity tag — its sop stats are intrinsic to its id.
func (m *Mgr) sopStats(id int, memo map[int]sopBoth) sopBoth {
	if v, ok := memo[id]; ok {
		return v
	}
	n := m.pool.Get(id)
	var result sopBoth
	switch n.kind {
	case kConst0:
		result = sopBoth{pos: sopPair{cubes: 0, lits: 0}, neg: sopPair{cubes: 1, lits: 0}}
	case kConst1:
		result = sopBoth{pos: sopPair{cubes: 1, lits: 0}, neg: sopPair{cubes: 0, lits: 0}}
	case kPosLit, kNegLit:
		result = sopBoth{pos: sopPair{cubes: 1, lits: 1}, neg: sopPair{cubes: 1, lits: 1}}
	case kAnd:
		pos := sopPair{cubes: 1}
		for _, c := range n.children {
			pos.cubes *= m.sopStats(c, memo).pos.cubes
		}
		for _, c := range n.children {
			cs := m.sopStats(c, memo).pos
			if cs.cubes > 0 {
				pos.lits += cs.lits * (pos.cubes / cs.cubes)
			}
		}
		var neg sopPair
		for _, c := range n.children {
			cs := m.sopStats(c, memo).neg
			neg.cubes += cs.cubes
			neg.lits += cs.lits
		}
		result = sopBoth{pos: pos, neg: neg}
	case kOr:
		var pos sopPair
		for _, c := range n.children {
			cs := m.sopStats(c, memo).pos
			pos.cubes += cs.cubes
			pos.lits += cs.lits
		}
		neg := sopPair{cubes: 1}
		for _, c := range n.children {
			neg.cubes *= m.sopStats(c, memo).neg.cubes
		}
		for _, c := range n.children {
			cs := m.sopStats(c, memo).neg
			if cs.cubes > 0 {
				neg.lits += cs.lits * (neg.cubes / cs.cubes)
			}
		}
		result = sopBoth{pos: pos, neg: neg}
	case kXor:
		first := m.sopStats(n.children[0], memo)
		acc, accNot := first.pos, first.neg
		for _, c := range n.children[1:] {
			both := m.sopStats(c, memo)
			cs, csNot := both.pos, both.neg

			nextCubes := acc.cubes*csNot.cubes + accNot.cubes*cs.cubes
			nextLits := acc.lits*csNot.cubes + acc.cubes*csNot.lits +
				accNot.lits*cs.cubes + accNot.cubes*cs.lits

			nextNotCubes := acc.cubes*cs.cubes + accNot.cubes*csNot.cubes
			nextNotLits := acc.lits*cs.cubes + acc.cubes*cs.lits +
				accNot.lits*csNot.cubes + accNot.cubes*csNot.lits

			acc = sopPair{cubes: nextCubes, lits: nextLits}
			accNot = sopPair{cubes: nextNotCubes, lits: nextNotLits}
		}
		result = sopBoth{pos: acc, neg: accNot}
	}
	memo[id] = result
	return result
}

// SopCubenum returns the number of product terms in h's sum-of-products
// expansion (Expr::sop_cubenum in the original).
func (m *Mgr) SopCubenum(h Handle) (int, error) {
	if err := m.own(h); err != nil {
		return 0, err
	}
	return m.sopStats(h.id, make(map[int]sopBoth)).pos.cubes, nil
}

// SopLitnum returns the total literal count across h's sum-of-products
// expansion (Expr::sop_litnum in the original).
func (m *Mgr) SopLitnum(h Handle) (int, error) {
	if err := m.own(h); err != nil {
		return 0, err
	}
	return m.sopStats(h.id, make(map[int]sopBoth)).pos.lits, nil
}

// sopVarPair is the (positive-literal, negative-literal) occurrence count of
// one target variable within a node's sum-of-products expansion.
type sopVarPair struct {
	cubes  int
	litPos int
	litNeg int
}

// sopVarBoth holds a node's own (pos) and its complement's (neg) sopVarPair
// for one target variable v, mirroring sopBoth's pos/neg-together shape so
// AND/OR/XOR can fold without materializing complement nodes.
type sopVarBoth struct {
	pos, neg sopVarPair
}

// sopVarStats computes, for variable v, how many times it appears as a
// positive and as a negative literal across id's sum-of-products expansion
// (and across its complement's expansion), using the same structural
// complement-folding discipline as sopStats.
func (m *Mgr) sopVarStats(id, v int, memo map[int]sopVarBoth) sopVarBoth {
	if r, ok := memo[id]; ok {
		return r
	}
	n := m.pool.Get(id)
	var result sopVarBoth
	switch n.kind {
	case kConst0:
		result = sopVarBoth{pos: sopVarPair{cubes: 0}, neg: sopVarPair{cubes: 1}}
	case kConst1:
		result = sopVarBoth{pos: sopVarPair{cubes: 1}, neg: sopVarPair{cubes: 0}}
	case kPosLit:
		if n.varID == v {
			result = sopVarBoth{pos: sopVarPair{cubes: 1, litPos: 1}, neg: sopVarPair{cubes: 1, litNeg: 1}}
		} else {
			result = sopVarBoth{pos: sopVarPair{cubes: 1}, neg: sopVarPair{cubes: 1}}
		}
	case kNegLit:
		if n.varID == v {
			result = sopVarBoth{pos: sopVarPair{cubes: 1, litNeg: 1}, neg: sopVarPair{cubes: 1, litPos: 1}}
		} else {
			result = sopVarBoth{pos: sopVarPair{cubes: 1}, neg: sopVarPair{cubes: 1}}
		}
	case kAnd:
		pos := sopVarPair{cubes: 1}
		for _, c := range n.children {
			pos.cubes *= m.sopVarStats(c, v, memo).pos.cubes
		}
		for _, c := range n.children {
			cs := m.sopVarStats(c, v, memo).pos
			if cs.cubes > 0 {
				mult := pos.cubes / cs.cubes
				pos.litPos += cs.litPos * mult
				pos.litNeg += cs.litNeg * mult
			}
		}
		var neg sopVarPair
		for _, c := range n.children {
			cs := m.sopVarStats(c, v, memo).neg
			neg.cubes += cs.cubes
			neg.litPos += cs.litPos
			neg.litNeg += cs.litNeg
		}
		result = sopVarBoth{pos: pos, neg: neg}
	case kOr:
		var pos sopVarPair
		for _, c := range n.children {
			cs := m.sopVarStats(c, v, memo).pos
			pos.cubes += cs.cubes
			pos.litPos += cs.litPos
			pos.litNeg += cs.litNeg
		}
		neg := sopVarPair{cubes: 1}
		for _, c := range n.children {
			neg.cubes *= m.sopVarStats(c, v, memo).neg.cubes
		}
		for _, c := range n.children {
			cs := m.sopVarStats(c, v, memo).neg
			if cs.cubes > 0 {
				mult := neg.cubes / cs.cubes
				neg.litPos += cs.litPos * mult
				neg.litNeg += cs.litNeg * mult
			}
		}
		result = sopVarBoth{pos: pos, neg: neg}
	case kXor:
		first := m.sopVarStats(n.children[0], v, memo)
		accP, accN := first.pos, first.neg
		for _, c := range n.children[1:] {
			both := m.sopVarStats(c, v, memo)
			csP, csN := both.pos, both.neg

			nextCubes := accP.cubes*csN.cubes + accN.cubes*csP.cubes
			nextLitPos := accP.litPos*csN.cubes + accP.cubes*csN.litPos +
				accN.litPos*csP.cubes + accN.cubes*csP.litPos
			nextLitNeg := accP.litNeg*csN.cubes + accP.cubes*csN.litNeg +
				accN.litNeg*csP.cubes + accN.cubes*csP.litNeg

			nextNotCubes := accP.cubes*csP.cubes + accN.cubes*csN.cubes
			nextNotLitPos := accP.litPos*csP.cubes + accP.cubes*csP.litPos +
				accN.litPos*csN.cubes + accN.cubes*csN.litPos
			nextNotLitNeg := accP.litNeg*csP.cubes + accP.cubes*csP.litNeg +
				accN.litNeg*csN.cubes + accN.cubes*csN.litNeg

			accP = sopVarPair{cubes: nextCubes, litPos: nextLitPos, litNeg: nextLitNeg}
			accN = sopVarPair{cubes: nextNotCubes, litPos: nextNotLitPos, litNeg: nextNotLitNeg}
		}
		result = sopVarBoth{pos: accP, neg: accN}
	}
	memo[id] = result
	return result
}

// SopLitnumVar returns how many times variable v appears, at either
// polarity, in h's sum-of-products expansion (Expr::sop_litnum(VarId) in
// the original).
func (m *Mgr) SopLitnumVar(h Handle, v int) (int, error) {
	if err := m.own(h); err != nil {
		return 0, err
	}
	p := m.sopVarStats(h.id, v, make(map[int]sopVarBoth)).pos
	return p.litPos + p.litNeg, nil
}

// SopLitnumVarPol returns how many times variable v appears with polarity
// inv (true = negated literal, false = positive literal) in h's
// sum-of-products expansion (Expr::sop_litnum(VarId, bool) in the
// original).
func (m *Mgr) SopLitnumVarPol(h Handle, v int, inv bool) (int, error) {
	if err := m.own(h); err != nil {
		return 0, err
	}
	p := m.sopVarStats(h.id, v, make(map[int]sopVarBoth)).pos
	if inv {
		return p.litNeg, nil
	}
	return p.litPos, nil
}
