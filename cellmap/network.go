package cellmap

import "github.com/leiko-dev/synthcore/subject"

// Pin names one of a sequential cell's control pins, shared by DFF and
// latch instances (a latch's PinClock slot carries its enable signal).
type Pin int

const (
	PinQ Pin = iota
	PinDataIn
	PinClock
	PinClear
	PinPreset
)

// Network is the cell-network emission sink, exactly spec §6's "cell
// network emission" contract: new_port, new_dff, new_logic_cell, connect,
// plus queries for port bits and DFF/latch pins. Generate depends only on
// this interface — it never depends on how a concrete Network stores or
// renders the instantiated netlist.
type Network interface {
	// NewPort allocates a width-bit port named name with the given
	// direction and returns its network-assigned handle.
	NewPort(name string, dir subject.PortDirection, width int) (int, error)
	// PortBit returns the network node id of port's bit-th bit.
	PortBit(port int, bit int) (int, error)

	// NewDFF allocates an instance of cell and returns its handle.
	NewDFF(name string, cell *Cell) (int, error)
	// DFFPin returns the network node id of a DFF instance's named pin.
	DFFPin(dff int, pin Pin) (int, error)

	// NewLatch allocates a latch instance of cell and returns its handle.
	NewLatch(name string, cell *Cell) (int, error)
	// LatchPin returns the network node id of a latch instance's named pin.
	LatchPin(latch int, pin Pin) (int, error)

	// NewLogicCell allocates an instance of cell wired to fanins, in cut-
	// leaf order, and returns the network node id of its output.
	NewLogicCell(name string, cell *Cell, fanins []int) (int, error)

	// Connect wires src's output to dst's pin-th input pin.
	Connect(src, dst int, pin int) error
}
