package subject

// NewPort declares a named port over the given node ids, in bit order, and
// returns its index into Ports(). Each node must be unbound and must match
// dir: PortInput needs Input nodes, PortOutput needs Output nodes. On any
// error no partial binding is left behind.
func (g *Graph) NewPort(name string, dir PortDirection, nodeIDs []int) (int, error) {
	if g.closed {
		return 0, ErrGraphClosed
	}
	wantKind := kindInput
	if dir == PortOutput {
		wantKind = kindOutput
	}
	for _, id := range nodeIDs {
		n, err := g.node(id)
		if err != nil {
			return 0, err
		}
		if n.kind != wantKind {
			return 0, ErrPortKindMismatch
		}
		if n.portID != -1 {
			return 0, ErrPortBitTaken
		}
	}
	idx := len(g.ports)
	for bit, id := range nodeIDs {
		n, _ := g.node(id)
		n.portID = idx
		n.portBit = bit
	}
	g.ports = append(g.ports, Port{Name: name, Direction: dir, Bits: append([]int(nil), nodeIDs...)})
	return idx, nil
}

// Ports returns every declared port, in declaration order.
func (g *Graph) Ports() []Port { return append([]Port(nil), g.ports...) }

// PortOf reports the port index and bit position a node is bound to, if
// any.
func (g *Graph) PortOf(id int) (port, bit int, ok bool) {
	n, err := g.node(id)
	if err != nil {
		return 0, 0, false
	}
	if n.portID == -1 {
		return 0, 0, false
	}
	return n.portID, n.portBit, true
}
