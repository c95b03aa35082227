package subject

type nodeKind uint8

const (
	kindInput nodeKind = iota
	kindOutput
	kindLogic
)

func (k nodeKind) String() string {
	switch k {
	case kindInput:
		return "Input"
	case kindOutput:
		return "Output"
	case kindLogic:
		return "Logic"
	default:
		return "invalid"
	}
}

// Handle is a (graph, node, inversion) triple: the output of a
// subject-graph construction call. Two reserved values, with g nil and node
// set to -1, represent the constants — Const0 has inv false, Const1 has inv
// true, and inverting one yields the other. Every other Handle names a live
// node id in a specific Graph, which is how ChangeOutput, NewLogic and
// friends detect a Handle minted by a different Graph.
type Handle struct {
	g    *Graph
	node int
	inv  bool
}

// Const0 returns the constant-0 handle.
func Const0() Handle { return Handle{node: -1, inv: false} }

// Const1 returns the constant-1 handle.
func Const1() Handle { return Handle{node: -1, inv: true} }

// IsConst reports whether h is one of the two constant handles.
func (h Handle) IsConst() bool { return h.node < 0 }

// Invert returns h with its inversion bit flipped. Inverting a constant
// swaps it with the other constant, per the spec's sentinel-handle rule.
func (h Handle) Invert() Handle { return Handle{g: h.g, node: h.node, inv: !h.inv} }

// Equal reports whether h and other name the same node in the same graph
// under the same inversion.
func (h Handle) Equal(other Handle) bool {
	return h.g == other.g && h.node == other.node && h.inv == other.inv
}

// NodeID reports the underlying node id and whether h is a constant (in
// which case id -1 is returned and ok is false).
func (h Handle) NodeID() (id int, ok bool) {
	if h.IsConst() {
		return -1, false
	}
	return h.node, true
}

// Inverted reports h's inversion bit.
func (h Handle) Inverted() bool { return h.inv }

// Node is a single subject-graph vertex: an Input, an Output, or a
// two-input Logic gate (AND or XOR — OR has no node kind of its own, see
// the package doc comment).
type Node struct {
	id   int
	kind nodeKind

	// subid is this node's position within Graph.inputs (kindInput) or
	// Graph.outputs (kindOutput). Unused for Logic.
	subid int

	// isXor distinguishes the two Logic shapes. false means AND, with the
	// per-fanin inversion carried in fanins[i].inv (the node's 2-bit
	// function code). true means XOR, whose fanins never carry their own
	// inversion — the caller's Handle.inv is the only place XOR/XNOR
	// polarity lives, so the same node can stand for both.
	isXor bool

	// fanins holds the node's upstream operands. Logic nodes use both
	// slots; Output uses fanins[0] only (holding Const0 or Const1 when the
	// output is tied directly to a constant — see NewOutput and
	// ChangeOutput); Input has none.
	fanins [2]Handle

	fanout []fanoutRef

	// level is valid only while the owning Graph's levelValid flag is set;
	// Graph.Level recomputes every node's level in one topological pass
	// whenever a mutation has cleared that flag.
	level int

	poReach bool
	mark    bool

	portID  int
	portBit int
}

// fanoutRef names one edge leaving a node: the downstream node it feeds, and
// which of that node's (at most two) fanin slots it occupies.
type fanoutRef struct {
	node int
	slot int
}

// Port is a named, ordered collection of node bits, each bound to exactly
// one Input or Output node.
type Port struct {
	Name      string
	Direction PortDirection
	Bits      []int // node ids, in bit order
}

// PortDirection says whether a Port's bits are Input or Output nodes.
type PortDirection uint8

const (
	// PortInput marks a port whose bits are Input nodes.
	PortInput PortDirection = iota
	// PortOutput marks a port whose bits are Output nodes.
	PortOutput
)

// DFF is an edge-triggered flip-flop: a bundle of subject nodes with no
// algebraic meaning of their own. It is the boundary between two
// combinational regions: DataIn, Clock and the optional Clear/Preset are
// Output-kind sinks fed by the upstream region, Q is an Input-kind source
// read by the downstream region, and none of the five take part in the
// topological sort over Logic nodes.
type DFF struct {
	DataIn int // Output-node id
	Q      int // Input-node id
	Clock  int // Output-node id
	HasClr bool
	Clear  int // Output-node id, valid only if HasClr
	HasPre bool
	Preset int // Output-node id, valid only if HasPre
}

// Latch is a level-sensitive counterpart to DFF, with the same
// no-combinational-meaning treatment.
type Latch struct {
	DataIn int
	Q      int
	Enable int
	HasClr bool
	Clear  int
	HasPre bool
	Preset int
}
