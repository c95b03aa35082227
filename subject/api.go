package subject

// Kind identifies a Node's role in the graph.
type Kind = nodeKind

// KindInput, KindOutput and KindLogic are the three node kinds a Graph ever
// produces.
const (
	KindInput  = kindInput
	KindOutput = kindOutput
	KindLogic  = kindLogic
)

// NodeKind reports id's kind.
func (g *Graph) NodeKind(id int) (Kind, error) {
	if g.closed {
		return 0, ErrGraphClosed
	}
	n, err := g.node(id)
	if err != nil {
		return 0, err
	}
	return n.kind, nil
}

// IsXor reports whether a Logic node is the XOR shape rather than AND.
func (g *Graph) IsXor(id int) (bool, error) {
	n, err := g.requireKind(id, kindLogic)
	if err != nil {
		return false, err
	}
	return n.isXor, nil
}

// NumFanins reports how many fanin slots id has: 2 for Logic, 1 for Output,
// 0 for Input.
func (g *Graph) NumFanins(id int) (int, error) {
	if g.closed {
		return 0, ErrGraphClosed
	}
	n, err := g.node(id)
	if err != nil {
		return 0, err
	}
	switch n.kind {
	case kindLogic:
		return 2, nil
	case kindOutput:
		return 1, nil
	default:
		return 0, nil
	}
}

// Fanin returns the handle driving id's slot-th fanin, including that edge's
// own inversion (meaningful for Output and AND-kind Logic nodes; an XOR-kind
// Logic node's fanin edges never carry inversion — see the isXor field's
// doc comment).
func (g *Graph) Fanin(id, slot int) (Handle, error) {
	if g.closed {
		return Handle{}, ErrGraphClosed
	}
	n, err := g.node(id)
	if err != nil {
		return Handle{}, err
	}
	if n.kind == kindInput || slot < 0 || slot > 1 {
		return Handle{}, ErrNotLogic
	}
	if n.kind == kindOutput && slot != 0 {
		return Handle{}, ErrNotLogic
	}
	return n.fanins[slot], nil
}

// FanoutEdge names one consumer of a node's output: the downstream node id
// and which of its (at most two) fanin slots this edge occupies.
type FanoutEdge struct {
	Node int
	Slot int
}

// Fanout returns id's fanout edges, in no particular order.
func (g *Graph) Fanout(id int) ([]FanoutEdge, error) {
	if g.closed {
		return nil, ErrGraphClosed
	}
	n, err := g.node(id)
	if err != nil {
		return nil, err
	}
	out := make([]FanoutEdge, len(n.fanout))
	for i, fr := range n.fanout {
		out[i] = FanoutEdge{Node: fr.node, Slot: fr.slot}
	}
	return out, nil
}

// HandleOf returns the natural, uninverted handle naming node id — the
// binding the pattern matcher assigns a match's root before walking any
// edge (spec §4.5 step 1: "bind r_p -> (r_s, inv=false)").
func (g *Graph) HandleOf(id int) (Handle, error) {
	if _, err := g.node(id); err != nil {
		return Handle{}, err
	}
	return Handle{g: g, node: id, inv: false}, nil
}

// Inputs returns every Input node id, in creation order.
func (g *Graph) Inputs() []int { return append([]int(nil), g.inputs...) }

// Outputs returns every Output node id, in creation order.
func (g *Graph) Outputs() []int { return append([]int(nil), g.outputs...) }

// Mark reports a node's scratch mark bit, a general-purpose flag algorithms
// that walk the graph can use instead of allocating their own visited set.
// It carries no meaning to Graph itself.
func (g *Graph) Mark(id int) (bool, error) {
	n, err := g.node(id)
	if err != nil {
		return false, err
	}
	return n.mark, nil
}

// SetMark sets a node's scratch mark bit.
func (g *Graph) SetMark(id int, v bool) error {
	n, err := g.node(id)
	if err != nil {
		return err
	}
	n.mark = v
	return nil
}

// POReach reports a node's primary-output-reachability bit, set by whatever
// analysis pass needs to cache that fact. Graph itself never sets it.
func (g *Graph) POReach(id int) (bool, error) {
	n, err := g.node(id)
	if err != nil {
		return false, err
	}
	return n.poReach, nil
}

// SetPOReach sets a node's primary-output-reachability bit.
func (g *Graph) SetPOReach(id int, v bool) error {
	n, err := g.node(id)
	if err != nil {
		return err
	}
	n.poReach = v
	return nil
}

func (g *Graph) requireKind(id int, want nodeKind) (*Node, error) {
	if g.closed {
		return nil, ErrGraphClosed
	}
	n, err := g.node(id)
	if err != nil {
		return nil, err
	}
	if n.kind != want {
		if want == kindLogic {
			return nil, ErrNotLogic
		}
		return nil, ErrNotOutput
	}
	return n, nil
}
