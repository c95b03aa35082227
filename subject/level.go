package subject

func (g *Graph) invalidateLevel() {
	g.levelValid = false
}

func (g *Graph) recomputeLevels() error {
	order, err := g.Sort()
	if err != nil {
		return err
	}
	for _, id := range order {
		n, _ := g.node(id)
		best := 0
		for _, fi := range n.fanins {
			if fi.IsConst() {
				continue
			}
			un, _ := g.node(fi.node)
			if un.kind == kindLogic && un.level > best {
				best = un.level
			}
		}
		n.level = best + 1
	}
	g.levelValid = true
	return nil
}

// Level reports a Logic node's level: the number of Logic nodes, itself
// included, on its longest fanin chain back to an Input or constant, so a
// Logic node fed only by Inputs or constants is at level 1. Any graph
// mutation invalidates the cache; the next Level or GraphLevel call pays for
// a fresh topological pass.
func (g *Graph) Level(id int) (int, error) {
	if g.closed {
		return 0, ErrGraphClosed
	}
	n, err := g.node(id)
	if err != nil {
		return 0, err
	}
	if n.kind != kindLogic {
		return 0, ErrNotLogic
	}
	if !g.levelValid {
		if err := g.recomputeLevels(); err != nil {
			return 0, err
		}
	}
	return n.level, nil
}

// GraphLevel reports the maximum level reached by any Output's fanin —
// the graph's overall combinational depth.
func (g *Graph) GraphLevel() (int, error) {
	if g.closed {
		return 0, ErrGraphClosed
	}
	if !g.levelValid {
		if err := g.recomputeLevels(); err != nil {
			return 0, err
		}
	}
	best := 0
	for _, outID := range g.outputs {
		n, _ := g.node(outID)
		fi := n.fanins[0]
		if fi.IsConst() {
			continue
		}
		un, _ := g.node(fi.node)
		if un.kind == kindLogic && un.level > best {
			best = un.level
		}
	}
	return best, nil
}
