package cellmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leiko-dev/synthcore/pattern"
	"github.com/leiko-dev/synthcore/subject"
)

// fakeNetwork is a minimal in-memory Network recording every call, enough
// to assert Generate's emission order and sharing behavior without needing
// a real netlist sink.
type fakeNetwork struct {
	nextID int

	portBits   map[int][]int // port handle -> bit network ids
	dffPins    map[int]map[Pin]int
	latchPins  map[int]map[Pin]int
	dffCells   []*Cell // cell passed to each NewDFF call, in call order
	logicCalls []logicCall
	connects   []connectCall
}

type logicCall struct {
	name   string
	cell   *Cell
	fanins []int
}

type connectCall struct {
	src, dst, pin int
}

func newFakeNetwork() *fakeNetwork {
	return &fakeNetwork{
		portBits:  make(map[int][]int),
		dffPins:   make(map[int]map[Pin]int),
		latchPins: make(map[int]map[Pin]int),
	}
}

func (n *fakeNetwork) alloc() int {
	n.nextID++
	return n.nextID
}

func (n *fakeNetwork) NewPort(name string, dir subject.PortDirection, width int) (int, error) {
	id := n.alloc()
	bits := make([]int, width)
	for i := range bits {
		bits[i] = n.alloc()
	}
	n.portBits[id] = bits
	return id, nil
}

func (n *fakeNetwork) PortBit(port, bit int) (int, error) {
	return n.portBits[port][bit], nil
}

func (n *fakeNetwork) NewDFF(name string, cell *Cell) (int, error) {
	n.dffCells = append(n.dffCells, cell)
	id := n.alloc()
	n.dffPins[id] = map[Pin]int{
		PinQ: n.alloc(), PinDataIn: n.alloc(), PinClock: n.alloc(),
		PinClear: n.alloc(), PinPreset: n.alloc(),
	}
	return id, nil
}

func (n *fakeNetwork) DFFPin(dff int, pin Pin) (int, error) {
	return n.dffPins[dff][pin], nil
}

func (n *fakeNetwork) NewLatch(name string, cell *Cell) (int, error) {
	id := n.alloc()
	n.latchPins[id] = map[Pin]int{
		PinQ: n.alloc(), PinDataIn: n.alloc(), PinClock: n.alloc(),
		PinClear: n.alloc(), PinPreset: n.alloc(),
	}
	return id, nil
}

func (n *fakeNetwork) LatchPin(latch int, pin Pin) (int, error) {
	return n.latchPins[latch][pin], nil
}

func (n *fakeNetwork) NewLogicCell(name string, cell *Cell, fanins []int) (int, error) {
	id := n.alloc()
	n.logicCalls = append(n.logicCalls, logicCall{name: name, cell: cell, fanins: append([]int(nil), fanins...)})
	return id, nil
}

func (n *fakeNetwork) Connect(src, dst, pin int) error {
	n.connects = append(n.connects, connectCall{src: src, dst: dst, pin: pin})
	return nil
}

func TestGenerate_SimpleAndEmitsOneCellAndConnectsOutput(t *testing.T) {
	g := subject.NewGraph()
	i0, _ := g.NewInput()
	i1, _ := g.NewInput()
	and, err := g.And(i0, i1)
	require.NoError(t, err)
	i0ID, _ := i0.NodeID()
	i1ID, _ := i1.NodeID()
	andID, _ := and.NodeID()

	_, err = g.NewPort("a", subject.PortInput, []int{i0ID})
	require.NoError(t, err)
	_, err = g.NewPort("b", subject.PortInput, []int{i1ID})
	require.NoError(t, err)
	outID, err := g.NewOutput(and)
	require.NoError(t, err)
	_, err = g.NewPort("y", subject.PortOutput, []int{outID})
	require.NoError(t, err)

	and2 := &Cell{Name: "AND2", NumInputs: 2}
	r := NewMapRecord()
	r.SetMatch(andID, false, and2, &pattern.Cut{Leaves: []subject.Handle{i0, i1}})

	n := newFakeNetwork()
	require.NoError(t, Generate(g, r, n))

	require.Len(t, n.logicCalls, 1)
	assert.Equal(t, and2, n.logicCalls[0].cell)
	require.Len(t, n.connects, 1)
	assert.Equal(t, n.connects[0].dst, n.portBits[5][0]) // "y" port is the third port allocated (a=1, b=3, y=5)
}

func TestGenerate_SharedConeInstantiatedOnce(t *testing.T) {
	g := subject.NewGraph()
	i0, _ := g.NewInput()
	i1, _ := g.NewInput()
	and, err := g.And(i0, i1)
	require.NoError(t, err)
	i0ID, _ := i0.NodeID()
	i1ID, _ := i1.NodeID()
	andID, _ := and.NodeID()

	out1, err := g.NewOutput(and)
	require.NoError(t, err)
	out2, err := g.NewOutput(and)
	require.NoError(t, err)
	_, err = g.NewPort("a", subject.PortInput, []int{i0ID})
	require.NoError(t, err)
	_, err = g.NewPort("b", subject.PortInput, []int{i1ID})
	require.NoError(t, err)
	_, err = g.NewPort("y1", subject.PortOutput, []int{out1})
	require.NoError(t, err)
	_, err = g.NewPort("y2", subject.PortOutput, []int{out2})
	require.NoError(t, err)

	and2 := &Cell{Name: "AND2", NumInputs: 2}
	r := NewMapRecord()
	r.SetMatch(andID, false, and2, &pattern.Cut{Leaves: []subject.Handle{i0, i1}})

	n := newFakeNetwork()
	require.NoError(t, Generate(g, r, n))

	assert.Len(t, n.logicCalls, 1, "the same (node, polarity) cone must be instantiated only once")
	assert.Len(t, n.connects, 2, "but both outputs still get wired to it")
}

func TestGenerate_ConstantOutputEmitsConstCell(t *testing.T) {
	g := subject.NewGraph()
	outID, err := g.NewOutput(subject.Const0())
	require.NoError(t, err)
	_, err = g.NewPort("y", subject.PortOutput, []int{outID})
	require.NoError(t, err)

	const0Cell := &Cell{Name: "CONST0", NumInputs: 0}
	r := NewMapRecord()
	r.SetConstCell(false, const0Cell)

	n := newFakeNetwork()
	require.NoError(t, Generate(g, r, n))

	require.Len(t, n.logicCalls, 1)
	assert.Equal(t, const0Cell, n.logicCalls[0].cell)
	require.Len(t, n.connects, 1)
}

func TestGenerate_MissingMatchIsAMappingViolation(t *testing.T) {
	g := subject.NewGraph()
	i0, _ := g.NewInput()
	i1, _ := g.NewInput()
	and, err := g.And(i0, i1)
	require.NoError(t, err)
	outID, err := g.NewOutput(and)
	require.NoError(t, err)
	_, err = g.NewPort("y", subject.PortOutput, []int{outID})
	require.NoError(t, err)

	r := NewMapRecord() // no match recorded for the AND node
	n := newFakeNetwork()

	err = Generate(g, r, n)
	assert.ErrorIs(t, err, ErrMissingMatch)
}

func TestGenerate_DFFPrefersNonInvertedQCell(t *testing.T) {
	g := subject.NewGraph()
	d, _ := g.NewInput()
	clk, _ := g.NewInput()
	dffID, err := g.NewDFF(d, clk, nil, nil)
	require.NoError(t, err)
	_ = dffID

	dffs := g.DFFs()
	require.Len(t, dffs, 1)

	dID, _ := d.NodeID()
	clkID, _ := clk.NodeID()
	_, err = g.NewPort("d", subject.PortInput, []int{dID})
	require.NoError(t, err)
	_, err = g.NewPort("clk", subject.PortInput, []int{clkID})
	require.NoError(t, err)

	// Both cells clock on the rising edge; Sense's zero value is ActiveLow.
	cellQ := &Cell{Name: "DFFQ", NumInputs: 1, ClockSense: ActiveHigh}
	cellQN := &Cell{Name: "DFFQN", NumInputs: 1, ClockSense: ActiveHigh}
	r := NewMapRecord()
	r.SetDFFCell(false, cellQ)
	r.SetDFFCell(true, cellQN)

	n := newFakeNetwork()
	require.NoError(t, Generate(g, r, n))
	require.Len(t, n.dffCells, 1)
	assert.Same(t, cellQ, n.dffCells[0])
}
