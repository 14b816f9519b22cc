package track_gen

// walkState is the explicit state of the random-walk construction. The walk
// is a two-state machine: extend the path while Walking, then prune the tail
// once Closed. Keeping the states explicit (rather than break/continue soup)
// makes the closing condition and the pruning step independently testable.
type walkState int

const (
	walking walkState = iota
	closed
)

// walkStepFactor bounds the total walk iterations (including rejected
// candidates) at walkStepFactor * width * height. The walk closes in O(cells)
// expected steps; the factor just guarantees termination on adversarial
// rand streams.
const walkStepFactor = 256

// RandomWalkCycle builds a cycle by constrained random walk: start anywhere,
// repeatedly step to a uniformly random neighbor, rejecting out-of-bounds
// moves and immediate backtracking. The walk stops the moment the current
// cell sees two or more already-visited neighbors, i.e. the path has curled
// back onto itself somewhere. The dangling tail walked before the loop
// closed is then discarded, leaving only the simple cyclic portion, in path
// order.
//
// The resulting distribution over track shapes is whatever the walk gives;
// no attempt is made to make it uniform.
func (g *CycleGenerator) RandomWalkCycle() (Cycle, error) {
	start := GridCell{g.rng.Intn(g.width), g.rng.Intn(g.height)}
	path := []GridCell{start}
	visited := map[GridCell]bool{start: true}

	state := walking
	maxSteps := walkStepFactor * g.width * g.height
	for step := 0; state == walking; step++ {
		if step >= maxSteps {
			return nil, ErrWalkExhausted
		}

		cur := path[len(path)-1]
		if g.countVisitedNeighbors(cur, visited) >= 2 {
			state = closed
			continue
		}

		cand := cur.Neighbors()[g.rng.Intn(4)]
		if !g.inBounds(cand) {
			continue
		}
		if len(path) > 1 && cand == path[len(path)-2] {
			// Immediate backtrack; would walk the same edge in reverse.
			continue
		}

		path = append(path, cand)
		visited[cand] = true
	}

	return pruneTail(path), nil
}

// countVisitedNeighbors counts how many of the cell's in-bounds neighbors
// the walk has already passed through. While the walk is extending, the
// current cell always has exactly one (its predecessor); a count of two
// means the loop just closed.
func (g *CycleGenerator) countVisitedNeighbors(c GridCell, visited map[GridCell]bool) (n int) {
	for _, neigh := range c.Neighbors() {
		if visited[neigh] {
			n++
		}
	}
	return
}

// pruneTail cuts the pre-loop tail off a closed walk path. The final path
// cell is adjacent to its predecessor and to at least one earlier path cell
// (the junction where the loop closed). The cycle is the path suffix from
// the junction onward; everything before it was just the walk finding its
// way there. When the final cell touches several earlier cells, the latest
// junction wins, which keeps the shortest closed loop — the same cells the
// original construction erased, taken as the union of its per-junction
// prefix erasures.
func pruneTail(path []GridCell) Cycle {
	last := path[len(path)-1]
	junction := -1
	// The last two entries are the cell itself and its predecessor; any
	// earlier adjacent cell closes a loop.
	for i := 0; i < len(path)-2; i++ {
		if adjacent(path[i], last) {
			junction = i
		}
	}
	// The walk's stop condition guarantees a junction exists, and that it
	// sits at least three entries back (two neighbors of a shared cell are
	// never themselves adjacent), so the suffix is always a valid >=4 cycle.
	return Cycle(path[junction:])
}
