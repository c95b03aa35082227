package subject

import "github.com/leiko-dev/synthcore/arena"

// Graph owns every node, port and sequential-element record in a single
// subject graph. Like expr.Mgr it is not safe for concurrent use — the core
// is strictly single-threaded (spec §5).
type Graph struct {
	nodes *arena.Pool[Node]

	inputs  []int
	outputs []int

	dffs    []DFF
	latches []Latch
	ports   []Port

	levelValid bool
	closed     bool
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: arena.New[Node]()}
}

// Close invalidates every Handle and Node id this Graph ever produced.
func (g *Graph) Close() error {
	if g.closed {
		return ErrGraphClosed
	}
	g.closed = true
	g.nodes = nil
	g.inputs, g.outputs, g.dffs, g.latches, g.ports = nil, nil, nil, nil, nil
	return nil
}

// Stats is a read-only snapshot of graph occupancy.
type Stats struct {
	Inputs    int
	Outputs   int
	Logic     int
	DFFs      int
	Latches   int
	Ports     int
	Live      int
	Allocated int
}

// Stats reports the graph's current size.
func (g *Graph) Stats() (Stats, error) {
	if g.closed {
		return Stats{}, ErrGraphClosed
	}
	// DFF/latch sinks are Output-kind nodes outside g.outputs, so Logic is
	// counted by kind; a freed slot is zeroed and reads as kindInput.
	logic := 0
	for id := 0; id < g.nodes.Cap(); id++ {
		if g.nodes.Get(id).kind == kindLogic {
			logic++
		}
	}
	return Stats{
		Inputs:    len(g.inputs),
		Outputs:   len(g.outputs),
		Logic:     logic,
		DFFs:      len(g.dffs),
		Latches:   len(g.latches),
		Ports:     len(g.ports),
		Live:      g.nodes.Len(),
		Allocated: g.nodes.Cap(),
	}, nil
}

// NewInput allocates a fresh Input node and returns the positive handle to
// it.
func (g *Graph) NewInput() (Handle, error) {
	if g.closed {
		return Handle{}, ErrGraphClosed
	}
	id, n := g.nodes.Alloc()
	*n = Node{id: id, kind: kindInput, portID: -1}
	g.inputs = append(g.inputs, id)
	n.subid = len(g.inputs) - 1
	return Handle{g: g, node: id, inv: false}, nil
}

// NewOutput allocates a fresh primary-output Output node wired to h and
// returns its node id. h may be Const0/Const1, in which case the output is
// tied directly to a constant with no Logic fanin at all.
func (g *Graph) NewOutput(h Handle) (int, error) {
	id, err := g.newSink(h)
	if err != nil {
		return 0, err
	}
	g.outputs = append(g.outputs, id)
	n, _ := g.node(id)
	n.subid = len(g.outputs) - 1
	return id, nil
}

// newSink allocates an Output-kind node wired to h without registering it as
// a primary output — used for DFF/latch data-in, clock, clear and preset
// ports, which terminate a combinational region exactly like a primary
// output but are not themselves part of the design's external interface.
func (g *Graph) newSink(h Handle) (int, error) {
	if g.closed {
		return 0, ErrGraphClosed
	}
	if err := g.own(h); err != nil {
		return 0, err
	}
	id, n := g.nodes.Alloc()
	*n = Node{id: id, kind: kindOutput, portID: -1, fanins: [2]Handle{h}}
	if !h.IsConst() {
		g.addFanout(h.node, id, 0)
	}
	g.invalidateLevel()
	return id, nil
}

// ChangeOutput rewires an existing Output node's sole fanin to newHandle,
// replacing whatever drove it before.
func (g *Graph) ChangeOutput(outID int, newHandle Handle) error {
	if g.closed {
		return ErrGraphClosed
	}
	n, err := g.node(outID)
	if err != nil {
		return err
	}
	if n.kind != kindOutput {
		return ErrNotOutput
	}
	if err := g.own(newHandle); err != nil {
		return err
	}
	old := n.fanins[0]
	if !old.IsConst() {
		g.removeFanout(old.node, outID, 0)
	}
	n.fanins[0] = newHandle
	if !newHandle.IsConst() {
		g.addFanout(newHandle.node, outID, 0)
	}
	g.invalidateLevel()
	return nil
}

// node returns a live node's record by id. Callers that already hold a
// Handle should prefer own, which also checks the handle was minted by g.
func (g *Graph) node(id int) (*Node, error) {
	if id < 0 || id >= g.nodes.Cap() {
		return nil, ErrForeignHandle
	}
	return g.nodes.Get(id), nil
}

// own validates that h is either a constant or a live node minted by g.
func (g *Graph) own(h Handle) error {
	if h.IsConst() {
		return nil
	}
	if h.g != g {
		return ErrForeignHandle
	}
	_, err := g.node(h.node)
	return err
}

func (g *Graph) addFanout(upstream, downstream, slot int) {
	un := g.nodes.Get(upstream)
	un.fanout = append(un.fanout, fanoutRef{node: downstream, slot: slot})
}

func (g *Graph) removeFanout(upstream, downstream, slot int) {
	un := g.nodes.Get(upstream)
	for i, fr := range un.fanout {
		if fr.node == downstream && fr.slot == slot {
			un.fanout = append(un.fanout[:i], un.fanout[i+1:]...)
			return
		}
	}
}

// RemoveLogic deletes a Logic node with no remaining fanout. Deleting a node
// that still has fanout is a contract violation (ErrNodeHasFanout) — the
// caller must rewire or remove every consumer first.
func (g *Graph) RemoveLogic(id int) error {
	if g.closed {
		return ErrGraphClosed
	}
	n, err := g.node(id)
	if err != nil {
		return err
	}
	if n.kind != kindLogic {
		return ErrNotLogic
	}
	if len(n.fanout) != 0 {
		return ErrNodeHasFanout
	}
	for slot, fi := range n.fanins {
		if !fi.IsConst() {
			g.removeFanout(fi.node, id, slot)
		}
	}
	g.nodes.Free(id)
	g.invalidateLevel()
	return nil
}
