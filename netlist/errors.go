package netlist

import "errors"

// ErrUnknownPort is returned by PortBit for a port handle Network never
// allocated.
var ErrUnknownPort = errors.New("netlist: unknown port handle")

// ErrUnknownInstance is returned for a DFF, latch, or logic-cell handle
// Network never allocated.
var ErrUnknownInstance = errors.New("netlist: unknown instance handle")

// ErrUnknownPin is returned for a pin Network's instance tracking has no
// vertex for.
var ErrUnknownPin = errors.New("netlist: unknown pin")
