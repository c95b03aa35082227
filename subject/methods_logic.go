package subject

import "github.com/leiko-dev/synthcore/expr"

// And builds a two-input AND node, folding constant inputs: 0 AND x is 0,
// 1 AND x is x. Otherwise a new Logic node is allocated storing h1 and h2
// as its fanins verbatim — their own inversion bits are the AND-kind
// node's 2-bit function code — and the result itself carries no inversion.
func (g *Graph) And(h1, h2 Handle) (Handle, error) {
	if g.closed {
		return Handle{}, ErrGraphClosed
	}
	if err := g.own(h1); err != nil {
		return Handle{}, err
	}
	if err := g.own(h2); err != nil {
		return Handle{}, err
	}
	if h1.IsConst() {
		if !h1.inv {
			return Const0(), nil
		}
		return h2, nil
	}
	if h2.IsConst() {
		if !h2.inv {
			return Const0(), nil
		}
		return h1, nil
	}
	if h1.node == h2.node && h1.inv != h2.inv {
		// h AND NOT h: the immediate complement contradiction, caught by
		// handle comparison rather than allocating a node to find out.
		return Const0(), nil
	}
	id, n := g.nodes.Alloc()
	*n = Node{id: id, kind: kindLogic, portID: -1, fanins: [2]Handle{h1, h2}}
	g.addFanout(h1.node, id, 0)
	g.addFanout(h2.node, id, 1)
	g.invalidateLevel()
	return Handle{g: g, node: id, inv: false}, nil
}

// Or builds a two-input OR node. The graph has no OR-kind node: Or(a, b) is
// realized as Not(And(Not(a), Not(b))), returned with its inversion bit
// already set — so De Morgan's does the constant folding for free (0 OR x
// reduces to x, 1 OR x reduces to 1) without Or needing its own cases.
func (g *Graph) Or(h1, h2 Handle) (Handle, error) {
	and, err := g.And(h1.Invert(), h2.Invert())
	if err != nil {
		return Handle{}, err
	}
	return and.Invert(), nil
}

// Xor builds a two-input XOR node, folding constants (0 XOR x is x, 1 XOR x
// is Not(x)). The two inputs' own inversion bits combine into the result's
// inversion bit (XOR(Not(a),b) == Not(XOR(a,b)), and double inversion
// cancels), so the stored node's fanins never carry inversion of their own —
// see the isXor field's doc comment.
func (g *Graph) Xor(h1, h2 Handle) (Handle, error) {
	if g.closed {
		return Handle{}, ErrGraphClosed
	}
	if err := g.own(h1); err != nil {
		return Handle{}, err
	}
	if err := g.own(h2); err != nil {
		return Handle{}, err
	}
	if h1.IsConst() {
		if h1.inv {
			return h2.Invert(), nil
		}
		return h2, nil
	}
	if h2.IsConst() {
		if h2.inv {
			return h1.Invert(), nil
		}
		return h1, nil
	}
	resultInv := h1.inv != h2.inv
	id, n := g.nodes.Alloc()
	*n = Node{
		id: id, kind: kindLogic, isXor: true, portID: -1,
		fanins: [2]Handle{{g: g, node: h1.node}, {g: g, node: h2.node}},
	}
	g.addFanout(h1.node, id, 0)
	g.addFanout(h2.node, id, 1)
	g.invalidateLevel()
	return Handle{g: g, node: id, inv: resultInv}, nil
}

// NewAnd builds the n-ary AND of handles as a balanced binary tree of
// two-input And nodes, filtering constant-1 inputs (the AND identity) and
// short-circuiting to Const0 the moment a constant-0 input appears.
// NewAnd(nil) returns Const1.
func (g *Graph) NewAnd(handles []Handle) (Handle, error) {
	return g.buildWide(handles, g.And, Const1(), Const0())
}

// NewOr builds the n-ary OR of handles as a balanced binary tree of
// two-input Or nodes. NewOr(nil) returns Const0.
func (g *Graph) NewOr(handles []Handle) (Handle, error) {
	return g.buildWide(handles, g.Or, Const0(), Const1())
}

// NewXor builds the n-ary XOR of handles as a balanced binary tree of
// two-input Xor nodes, dropping constant-0 inputs and toggling an overall
// parity bit for each constant-1 input rather than treating 1 as an
// annihilator (XOR has none). NewXor(nil) returns Const0.
func (g *Graph) NewXor(handles []Handle) (Handle, error) {
	if g.closed {
		return Handle{}, ErrGraphClosed
	}
	filtered := make([]Handle, 0, len(handles))
	parity := false
	for _, h := range handles {
		if err := g.own(h); err != nil {
			return Handle{}, err
		}
		switch {
		case h.Equal(Const0()):
		case h.Equal(Const1()):
			parity = !parity
		default:
			filtered = append(filtered, h)
		}
	}
	var (
		result Handle
		err    error
	)
	if len(filtered) == 0 {
		result = Const0()
	} else {
		result, err = g.balancedFold(filtered, g.Xor)
		if err != nil {
			return Handle{}, err
		}
	}
	if parity {
		result = result.Invert()
	}
	return result, nil
}

// buildWide applies the balanced-tree construction shared by NewAnd and
// NewOr: identity inputs are dropped, an annihilator input short-circuits
// the whole call, and what remains is folded pairwise.
func (g *Graph) buildWide(handles []Handle, op func(a, b Handle) (Handle, error), identity, annihilator Handle) (Handle, error) {
	if g.closed {
		return Handle{}, ErrGraphClosed
	}
	filtered := make([]Handle, 0, len(handles))
	for _, h := range handles {
		if err := g.own(h); err != nil {
			return Handle{}, err
		}
		switch {
		case h.Equal(annihilator):
			return annihilator, nil
		case h.Equal(identity):
		default:
			filtered = append(filtered, h)
		}
	}
	if len(filtered) == 0 {
		return identity, nil
	}
	return g.balancedFold(filtered, op)
}

// balancedFold combines hs pairwise into a balanced binary tree, splitting
// an odd remainder so the left half gets the extra element (ceil(n/2) to
// the left) — an arbitrary but fixed tie-break recorded as an Open Question
// in DESIGN.md, since the spec accepts either side as long as it is
// consistent.
func (g *Graph) balancedFold(hs []Handle, op func(a, b Handle) (Handle, error)) (Handle, error) {
	if len(hs) == 1 {
		return hs[0], nil
	}
	mid := (len(hs) + 1) / 2
	left, err := g.balancedFold(hs[:mid], op)
	if err != nil {
		return Handle{}, err
	}
	right, err := g.balancedFold(hs[mid:], op)
	if err != nil {
		return Handle{}, err
	}
	return op(left, right)
}

// NewLogic translates an expr.Handle tree into subject-graph structure,
// recursively calling NewAnd/NewOr/NewXor on its operator nodes and
// resolving each literal against leaves (indexed by the expr variable id the
// literal names). The expr DAG's sharing is preserved: a subexpression
// reachable from e through more than one path is translated once.
func (g *Graph) NewLogic(e expr.Handle, leaves []Handle) (Handle, error) {
	if g.closed {
		return Handle{}, ErrGraphClosed
	}
	memo := map[expr.Handle]Handle{}
	return g.buildExpr(e, leaves, memo)
}

func (g *Graph) buildExpr(e expr.Handle, leaves []Handle, memo map[expr.Handle]Handle) (Handle, error) {
	if h, ok := memo[e]; ok {
		return h, nil
	}
	var (
		result Handle
		err    error
	)
	switch {
	case e.IsZero():
		result = Const0()
	case e.IsOne():
		result = Const1()
	case e.IsLiteral():
		v, _ := e.Var()
		if v < 0 || v >= len(leaves) {
			return Handle{}, ErrLeafOutOfRange
		}
		inv, _ := e.Polarity()
		result = leaves[v]
		if err := g.own(result); err != nil {
			return Handle{}, err
		}
		if inv {
			result = result.Invert()
		}
	case e.IsAnd():
		result, err = g.buildNary(e.Children(), leaves, memo, g.NewAnd)
	case e.IsOr():
		result, err = g.buildNary(e.Children(), leaves, memo, g.NewOr)
	case e.IsXor():
		result, err = g.buildNary(e.Children(), leaves, memo, g.NewXor)
	default:
		err = ErrUnsupportedExpr
	}
	if err != nil {
		return Handle{}, err
	}
	memo[e] = result
	return result, nil
}

func (g *Graph) buildNary(children []expr.Handle, leaves []Handle, memo map[expr.Handle]Handle, wide func([]Handle) (Handle, error)) (Handle, error) {
	hs := make([]Handle, len(children))
	for i, c := range children {
		h, err := g.buildExpr(c, leaves, memo)
		if err != nil {
			return Handle{}, err
		}
		hs[i] = h
	}
	return wide(hs)
}
