package cellmap

import (
	"fmt"

	"github.com/leiko-dev/synthcore/subject"
)

// source records that reading subject node id at polarity inv costs nothing
// further — its value is already available at network node net, because it
// is a primary input or a DFF/latch Q pin.
type source struct {
	net int
	inv bool
}

// request is a queued map request: once sink's driving cone is resolved at
// the required polarity, connect the result to dstNet's dstPin.
type request struct {
	sink   int
	extInv bool
	dstNet int
	dstPin int
}

type walker struct {
	g *subject.Graph
	r *MapRecord
	n Network

	source     map[int]source
	cache      map[matchKey]int
	constCache map[bool]int
}

// Generate runs the map generator: ports, then DFFs, then latches, then the
// combinational back-trace from every queued output down to primary inputs
// and constants, per spec §4.6 steps 1–5.
func Generate(g *subject.Graph, r *MapRecord, n Network) error {
	w := &walker{
		g:          g,
		r:          r,
		n:          n,
		source:     make(map[int]source),
		cache:      make(map[matchKey]int),
		constCache: make(map[bool]int),
	}

	var queue []request

	if err := w.mapPorts(&queue); err != nil {
		return err
	}
	if err := w.mapDFFs(&queue); err != nil {
		return err
	}
	if err := w.mapLatches(&queue); err != nil {
		return err
	}

	for _, req := range queue {
		netID, err := w.resolveSink(req.sink, req.extInv)
		if err != nil {
			return err
		}
		if err := w.n.Connect(netID, req.dstNet, req.dstPin); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) mapPorts(queue *[]request) error {
	for _, p := range w.g.Ports() {
		portH, err := w.n.NewPort(p.Name, p.Direction, len(p.Bits))
		if err != nil {
			return err
		}
		for bit, nodeID := range p.Bits {
			netID, err := w.n.PortBit(portH, bit)
			if err != nil {
				return err
			}
			if p.Direction == subject.PortInput {
				w.source[nodeID] = source{net: netID, inv: false}
				continue
			}
			*queue = append(*queue, request{sink: nodeID, extInv: false, dstNet: netID, dstPin: 0})
		}
	}
	return nil
}

func (w *walker) mapDFFs(queue *[]request) error {
	for _, d := range w.g.DFFs() {
		cell, invertedQ, ok := pickSeqCell(w.r.DFFCell)
		if !ok {
			return ErrMissingDFFCell
		}
		name := fmt.Sprintf("dff%d", d.Q)
		inst, err := w.n.NewDFF(name, cell)
		if err != nil {
			return err
		}

		qNet, err := w.n.DFFPin(inst, PinQ)
		if err != nil {
			return err
		}
		w.source[d.Q] = source{net: qNet, inv: invertedQ}

		dataInNet, err := w.n.DFFPin(inst, PinDataIn)
		if err != nil {
			return err
		}
		*queue = append(*queue, request{sink: d.DataIn, extInv: false, dstNet: dataInNet, dstPin: 0})

		clockNet, err := w.n.DFFPin(inst, PinClock)
		if err != nil {
			return err
		}
		*queue = append(*queue, request{sink: d.Clock, extInv: cell.ClockSense == ActiveLow, dstNet: clockNet, dstPin: 0})

		clearNode, clearOK, presetNode, presetOK := d.Clear, d.HasClr, d.Preset, d.HasPre
		if invertedQ {
			clearNode, presetNode = presetNode, clearNode
			clearOK, presetOK = presetOK, clearOK
		}
		if cell.HasClear && clearOK {
			clearNet, err := w.n.DFFPin(inst, PinClear)
			if err != nil {
				return err
			}
			*queue = append(*queue, request{sink: clearNode, extInv: cell.ClearSense == ActiveLow, dstNet: clearNet, dstPin: 0})
		}
		if cell.HasPreset && presetOK {
			presetNet, err := w.n.DFFPin(inst, PinPreset)
			if err != nil {
				return err
			}
			*queue = append(*queue, request{sink: presetNode, extInv: cell.PresetSense == ActiveLow, dstNet: presetNet, dstPin: 0})
		}
	}
	return nil
}

func (w *walker) mapLatches(queue *[]request) error {
	for _, l := range w.g.Latches() {
		cell, invertedQ, ok := pickSeqCell(w.r.LatchCell)
		if !ok {
			return ErrMissingLatchCell
		}
		name := fmt.Sprintf("latch%d", l.Q)
		inst, err := w.n.NewLatch(name, cell)
		if err != nil {
			return err
		}

		qNet, err := w.n.LatchPin(inst, PinQ)
		if err != nil {
			return err
		}
		w.source[l.Q] = source{net: qNet, inv: invertedQ}

		dataInNet, err := w.n.LatchPin(inst, PinDataIn)
		if err != nil {
			return err
		}
		*queue = append(*queue, request{sink: l.DataIn, extInv: false, dstNet: dataInNet, dstPin: 0})

		enableNet, err := w.n.LatchPin(inst, PinClock)
		if err != nil {
			return err
		}
		*queue = append(*queue, request{sink: l.Enable, extInv: cell.ClockSense == ActiveLow, dstNet: enableNet, dstPin: 0})

		clearNode, clearOK, presetNode, presetOK := l.Clear, l.HasClr, l.Preset, l.HasPre
		if invertedQ {
			clearNode, presetNode = presetNode, clearNode
			clearOK, presetOK = presetOK, clearOK
		}
		if cell.HasClear && clearOK {
			clearNet, err := w.n.LatchPin(inst, PinClear)
			if err != nil {
				return err
			}
			*queue = append(*queue, request{sink: clearNode, extInv: cell.ClearSense == ActiveLow, dstNet: clearNet, dstPin: 0})
		}
		if cell.HasPreset && presetOK {
			presetNet, err := w.n.LatchPin(inst, PinPreset)
			if err != nil {
				return err
			}
			*queue = append(*queue, request{sink: presetNode, extInv: cell.PresetSense == ActiveLow, dstNet: presetNet, dstPin: 0})
		}
	}
	return nil
}

// pickSeqCell tries the non-inverted-Q cell first, falling back to the
// inverted-Q one, per spec §4.6 step 2.
func pickSeqCell(lookup func(invertedQ bool) (*Cell, bool)) (*Cell, bool, bool) {
	if cell, ok := lookup(false); ok {
		return cell, false, true
	}
	if cell, ok := lookup(true); ok {
		return cell, true, true
	}
	return nil, false, false
}

func (w *walker) resolveSink(sink int, extInv bool) (int, error) {
	fanin, err := w.g.Fanin(sink, 0)
	if err != nil {
		return 0, err
	}
	return w.resolveFanin(fanin, extInv)
}

func (w *walker) resolveFanin(h subject.Handle, extInv bool) (int, error) {
	finalInv := h.Inverted() != extInv
	if h.IsConst() {
		return w.resolveConst(finalInv)
	}
	id, _ := h.NodeID()
	return w.resolve(id, finalInv)
}

func (w *walker) resolve(nodeID int, inv bool) (int, error) {
	key := matchKey{node: nodeID, inv: inv}
	if id, ok := w.cache[key]; ok {
		return id, nil
	}
	if src, ok := w.source[nodeID]; ok && src.inv == inv {
		w.cache[key] = src.net
		return src.net, nil
	}

	match, ok := w.r.GetMatch(nodeID, inv)
	if !ok {
		return 0, ErrMissingMatch
	}
	if match.Cell.NumInputs != len(match.Cut.Leaves) {
		return 0, ErrCutLengthMismatch
	}

	fanins := make([]int, len(match.Cut.Leaves))
	for i, leaf := range match.Cut.Leaves {
		leafNet, err := w.resolveFanin(leaf, false)
		if err != nil {
			return 0, err
		}
		fanins[i] = leafNet
	}

	name := fmt.Sprintf("c%d_%d", nodeID, boolIndex(inv))
	netID, err := w.n.NewLogicCell(name, match.Cell, fanins)
	if err != nil {
		return 0, err
	}
	w.cache[key] = netID
	return netID, nil
}

func (w *walker) resolveConst(value bool) (int, error) {
	if id, ok := w.constCache[value]; ok {
		return id, nil
	}
	cell, ok := w.r.ConstCell(value)
	if !ok {
		return 0, ErrMissingConstCell
	}
	name := "const0"
	if value {
		name = "const1"
	}
	netID, err := w.n.NewLogicCell(name, cell, nil)
	if err != nil {
		return 0, err
	}
	w.constCache[value] = netID
	return netID, nil
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
