package subject

// NewDFF allocates a D-flip-flop: Output-kind sinks for dataIn and clock
// (and, if given, clear/preset), and an Input-kind source for the registered
// value Q. None of the five take part in the combinational topological sort
// — a DFF is the boundary between the region driving its inputs and the
// region reading Q.
func (g *Graph) NewDFF(dataIn, clock Handle, clear, preset *Handle) (int, error) {
	if g.closed {
		return 0, ErrGraphClosed
	}
	dataInID, err := g.newSink(dataIn)
	if err != nil {
		return 0, err
	}
	clockID, err := g.newSink(clock)
	if err != nil {
		return 0, err
	}
	q, err := g.NewInput()
	if err != nil {
		return 0, err
	}
	qID, _ := q.NodeID()

	d := DFF{DataIn: dataInID, Q: qID, Clock: clockID}
	if clear != nil {
		clearID, err := g.newSink(*clear)
		if err != nil {
			return 0, err
		}
		d.HasClr, d.Clear = true, clearID
	}
	if preset != nil {
		presetID, err := g.newSink(*preset)
		if err != nil {
			return 0, err
		}
		d.HasPre, d.Preset = true, presetID
	}

	idx := len(g.dffs)
	g.dffs = append(g.dffs, d)
	return idx, nil
}

// DFFs returns every declared DFF, in declaration order.
func (g *Graph) DFFs() []DFF { return append([]DFF(nil), g.dffs...) }

// DFFAt returns the idx-th DFF.
func (g *Graph) DFFAt(idx int) (DFF, error) {
	if idx < 0 || idx >= len(g.dffs) {
		return DFF{}, ErrNoSuchCell
	}
	return g.dffs[idx], nil
}

// NewLatch allocates a level-sensitive latch, structured exactly like a DFF
// but with an enable input in place of a clock.
func (g *Graph) NewLatch(dataIn, enable Handle, clear, preset *Handle) (int, error) {
	if g.closed {
		return 0, ErrGraphClosed
	}
	dataInID, err := g.newSink(dataIn)
	if err != nil {
		return 0, err
	}
	enableID, err := g.newSink(enable)
	if err != nil {
		return 0, err
	}
	q, err := g.NewInput()
	if err != nil {
		return 0, err
	}
	qID, _ := q.NodeID()

	l := Latch{DataIn: dataInID, Q: qID, Enable: enableID}
	if clear != nil {
		clearID, err := g.newSink(*clear)
		if err != nil {
			return 0, err
		}
		l.HasClr, l.Clear = true, clearID
	}
	if preset != nil {
		presetID, err := g.newSink(*preset)
		if err != nil {
			return 0, err
		}
		l.HasPre, l.Preset = true, presetID
	}

	idx := len(g.latches)
	g.latches = append(g.latches, l)
	return idx, nil
}

// Latches returns every declared latch, in declaration order.
func (g *Graph) Latches() []Latch { return append([]Latch(nil), g.latches...) }

// LatchAt returns the idx-th latch.
func (g *Graph) LatchAt(idx int) (Latch, error) {
	if idx < 0 || idx >= len(g.latches) {
		return Latch{}, ErrNoSuchCell
	}
	return g.latches[idx], nil
}
