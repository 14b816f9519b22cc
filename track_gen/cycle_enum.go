package track_gen

// ExhaustiveCycle enumerates every simple directed cycle of the grid graph
// (each 4-adjacent pair contributes arcs both ways) and picks one uniformly
// at random from the enumeration. This is intentionally NOT uniform over
// track shapes: every undirected loop appears once per direction, and small
// loops vastly outnumber large ones, so 2x2 blocks dominate. That bias is
// documented, preserved behavior. The cycle count grows combinatorially with
// grid area, so this strategy is only sensible on small grids; the walk
// strategy is the default.
func (g *CycleGenerator) ExhaustiveCycle() (Cycle, error) {
	cycles := g.enumerateCycles()
	if len(cycles) == 0 {
		// Unreachable for any grid NewCycleGenerator accepts.
		return nil, ErrGridTooSmall
	}
	return cycles[g.rng.Intn(len(cycles))], nil
}

// enumerateCycles lists the simple directed cycles of the grid, each exactly
// once, rooted at its lowest-index cell. The DFS only descends into cells
// with a higher scanline index than the root, which is the standard trick
// for deduplicating rotations of the same directed cycle. Back-and-forth
// two-cycles (a->b->a) are skipped: they are not drivable loops and would
// violate the Cycle length invariant. Grid bipartiteness excludes odd
// lengths, so everything emitted has length >= 4.
//
// Enumeration order is deterministic (root order, then neighbor order), so
// the uniform pick above is reproducible for a fixed seed.
func (g *CycleGenerator) enumerateCycles() (cycles []Cycle) {
	onPath := make([]bool, g.width*g.height)
	var path []GridCell

	var extend func(root, cur GridCell)
	extend = func(root, cur GridCell) {
		for _, next := range cur.Neighbors() {
			if !g.inBounds(next) {
				continue
			}
			if next == root && len(path) >= 4 {
				cycles = append(cycles, append(Cycle{}, path...))
				continue
			}
			if g.cellIndex(next) <= g.cellIndex(root) || onPath[g.cellIndex(next)] {
				continue
			}
			path = append(path, next)
			onPath[g.cellIndex(next)] = true
			extend(root, next)
			path = path[:len(path)-1]
			onPath[g.cellIndex(next)] = false
		}
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			root := GridCell{x, y}
			path = append(path[:0], root)
			onPath[g.cellIndex(root)] = true
			extend(root, root)
			onPath[g.cellIndex(root)] = false
		}
	}

	return
}
