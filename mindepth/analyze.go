package mindepth

import "github.com/leiko-dev/synthcore/subject"

// DepthMap is a dense, read-only result of Analyze: the minimum depth of
// every Logic node in a graph once packed into k-input LUTs.
type DepthMap struct {
	k     int
	depth map[int]int
}

// Depth reports a Logic node's minimum depth. ok is false for a node id
// Analyze never visited (not a Logic node, or from a different graph).
func (d *DepthMap) Depth(id int) (depth int, ok bool) {
	v, ok := d.depth[id]
	return v, ok
}

// K reports the LUT input count this DepthMap was computed for.
func (d *DepthMap) K() int { return d.k }

// Analyze computes DepthMap for every Logic node in g, assuming k-input
// LUTs: Input nodes have depth 0; a Logic node v with fanins f1, f2 has
// depth max(d(f1), d(f2)) if v's fanin cone contains at most k distinct
// Input nodes (the whole cone fits in one LUT no deeper than its deepest
// fanin), or max(d(f1), d(f2)) + 1 otherwise.
func Analyze(g *subject.Graph, k int) (*DepthMap, error) {
	if k < 2 {
		return nil, ErrInvalidK
	}
	order, err := g.Sort()
	if err != nil {
		return nil, err
	}
	dm := &DepthMap{k: k, depth: make(map[int]int, len(order))}
	for _, id := range order {
		f0, err := g.Fanin(id, 0)
		if err != nil {
			return nil, err
		}
		f1, err := g.Fanin(id, 1)
		if err != nil {
			return nil, err
		}
		d0, err := depthOf(g, dm, f0)
		if err != nil {
			return nil, err
		}
		d1, err := depthOf(g, dm, f1)
		if err != nil {
			return nil, err
		}
		best := d0
		if d1 > best {
			best = d1
		}
		distinct, err := countConeInputs(g, id, k)
		if err != nil {
			return nil, err
		}
		if distinct > k {
			best++
		}
		dm.depth[id] = best
	}
	return dm, nil
}

// MaxOutputDepth reports the maximum depth reached by any Output's fanin —
// the mapped design's overall depth under k-input LUTs.
func MaxOutputDepth(g *subject.Graph, dm *DepthMap) (int, error) {
	best := 0
	for _, outID := range g.Outputs() {
		fi, err := g.Fanin(outID, 0)
		if err != nil {
			return 0, err
		}
		d, err := depthOf(g, dm, fi)
		if err != nil {
			return 0, err
		}
		if d > best {
			best = d
		}
	}
	return best, nil
}

func depthOf(g *subject.Graph, dm *DepthMap, h subject.Handle) (int, error) {
	if h.IsConst() {
		return 0, nil
	}
	id, _ := h.NodeID()
	kind, err := g.NodeKind(id)
	if err != nil {
		return 0, err
	}
	if kind != subject.KindLogic {
		return 0, nil
	}
	d, ok := dm.depth[id]
	if !ok {
		return 0, nil
	}
	return d, nil
}

// countConeInputs counts the distinct Input nodes reachable from root
// through Logic-node fanins, stopping the moment more than limit distinct
// leaves have been seen — the exact count beyond that point never changes
// the depth decision, only whether it exceeds limit.
func countConeInputs(g *subject.Graph, root, limit int) (int, error) {
	visited := make(map[int]bool)
	leaves := make(map[int]bool)

	var walk func(id int) error
	walk = func(id int) error {
		if len(leaves) > limit || visited[id] {
			return nil
		}
		visited[id] = true
		kind, err := g.NodeKind(id)
		if err != nil {
			return err
		}
		if kind == subject.KindInput {
			leaves[id] = true
			return nil
		}
		if kind != subject.KindLogic {
			return nil
		}
		for slot := 0; slot < 2; slot++ {
			if len(leaves) > limit {
				return nil
			}
			fi, err := g.Fanin(id, slot)
			if err != nil {
				return err
			}
			if fi.IsConst() {
				continue
			}
			fid, _ := fi.NodeID()
			if err := walk(fid); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root); err != nil {
		return 0, err
	}
	return len(leaves), nil
}
