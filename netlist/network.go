package netlist

import (
	"fmt"

	"github.com/leiko-dev/synthcore/cellmap"
	"github.com/leiko-dev/synthcore/core"
	"github.com/leiko-dev/synthcore/subject"
)

type portInfo struct {
	name string
	dir  subject.PortDirection
	bits []int
}

type seqInfo struct {
	cell *cellmap.Cell
	pins map[cellmap.Pin]int
}

// Network adapts a core.Graph into a cellmap.Network: every port bit, DFF/
// latch pin and logic-cell output is its own core.Graph vertex, addressed
// from the cellmap side by a dense int handle this type hands out and
// tracks internally.
type Network struct {
	g *core.Graph

	nextID   int
	vertexOf map[int]string

	ports   map[int]portInfo
	dffs    map[int]seqInfo
	latches map[int]seqInfo
	cells   map[int]*cellmap.Cell
}

// New returns an empty Network backed by a fresh directed, weighted,
// multi-edge-capable core.Graph — directed because signal flow has a
// direction, weighted so Weight can carry a destination pin index, and
// multi-edge because two pins of the same cell instance may legitimately be
// driven by the same upstream vertex (e.g. And(x, x)).
func New() *Network {
	return &Network{
		g:        core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges()),
		vertexOf: make(map[int]string),
		ports:    make(map[int]portInfo),
		dffs:     make(map[int]seqInfo),
		latches:  make(map[int]seqInfo),
		cells:    make(map[int]*cellmap.Cell),
	}
}

// Graph exposes the underlying core.Graph so callers can inspect the emitted
// netlist through its own accessors (Edges, EdgeCount, VertexCount).
func (n *Network) Graph() *core.Graph { return n.g }

func (n *Network) allocVertex(label string) (int, error) {
	n.nextID++
	id := n.nextID
	vid := fmt.Sprintf("%s#%d", label, id)
	if err := n.g.AddVertex(vid); err != nil {
		return 0, err
	}
	n.vertexOf[id] = vid
	return id, nil
}

// NewPort implements cellmap.Network.
func (n *Network) NewPort(name string, dir subject.PortDirection, width int) (int, error) {
	id, err := n.allocVertex("port:" + name)
	if err != nil {
		return 0, err
	}
	bits := make([]int, width)
	for i := range bits {
		bitID, err := n.allocVertex(fmt.Sprintf("port:%s:bit%d", name, i))
		if err != nil {
			return 0, err
		}
		bits[i] = bitID
	}
	n.ports[id] = portInfo{name: name, dir: dir, bits: bits}
	return id, nil
}

// PortBit implements cellmap.Network.
func (n *Network) PortBit(port, bit int) (int, error) {
	p, ok := n.ports[port]
	if !ok {
		return 0, ErrUnknownPort
	}
	if bit < 0 || bit >= len(p.bits) {
		return 0, ErrUnknownPin
	}
	return p.bits[bit], nil
}

var seqPins = [...]cellmap.Pin{cellmap.PinQ, cellmap.PinDataIn, cellmap.PinClock, cellmap.PinClear, cellmap.PinPreset}

func (n *Network) newSeqInstance(label string, cell *cellmap.Cell) (int, map[cellmap.Pin]int, error) {
	id, err := n.allocVertex(label)
	if err != nil {
		return 0, nil, err
	}
	pins := make(map[cellmap.Pin]int, len(seqPins))
	for _, pin := range seqPins {
		pid, err := n.allocVertex(fmt.Sprintf("%s:pin%d", label, pin))
		if err != nil {
			return 0, nil, err
		}
		pins[pin] = pid
	}
	return id, pins, nil
}

// NewDFF implements cellmap.Network.
func (n *Network) NewDFF(name string, cell *cellmap.Cell) (int, error) {
	id, pins, err := n.newSeqInstance("dff:"+name, cell)
	if err != nil {
		return 0, err
	}
	n.dffs[id] = seqInfo{cell: cell, pins: pins}
	return id, nil
}

// DFFPin implements cellmap.Network.
func (n *Network) DFFPin(dff int, pin cellmap.Pin) (int, error) {
	d, ok := n.dffs[dff]
	if !ok {
		return 0, ErrUnknownInstance
	}
	pid, ok := d.pins[pin]
	if !ok {
		return 0, ErrUnknownPin
	}
	return pid, nil
}

// NewLatch implements cellmap.Network.
func (n *Network) NewLatch(name string, cell *cellmap.Cell) (int, error) {
	id, pins, err := n.newSeqInstance("latch:"+name, cell)
	if err != nil {
		return 0, err
	}
	n.latches[id] = seqInfo{cell: cell, pins: pins}
	return id, nil
}

// LatchPin implements cellmap.Network.
func (n *Network) LatchPin(latch int, pin cellmap.Pin) (int, error) {
	l, ok := n.latches[latch]
	if !ok {
		return 0, ErrUnknownInstance
	}
	pid, ok := l.pins[pin]
	if !ok {
		return 0, ErrUnknownPin
	}
	return pid, nil
}

// NewLogicCell implements cellmap.Network: it allocates one output vertex
// for the cell instance and wires each fanin to it as an edge whose Weight
// carries the fanin's cut-leaf position — the pin it occupies.
func (n *Network) NewLogicCell(name string, cell *cellmap.Cell, fanins []int) (int, error) {
	id, err := n.allocVertex("cell:" + name)
	if err != nil {
		return 0, err
	}
	n.cells[id] = cell
	dst := n.vertexOf[id]
	for pin, fanin := range fanins {
		src, ok := n.vertexOf[fanin]
		if !ok {
			return 0, ErrUnknownInstance
		}
		if _, err := n.g.AddEdge(src, dst, int64(pin)); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// Connect implements cellmap.Network.
func (n *Network) Connect(src, dst, pin int) error {
	svid, ok := n.vertexOf[src]
	if !ok {
		return ErrUnknownInstance
	}
	dvid, ok := n.vertexOf[dst]
	if !ok {
		return ErrUnknownInstance
	}
	_, err := n.g.AddEdge(svid, dvid, int64(pin))
	return err
}
