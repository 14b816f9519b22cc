// track_gen builds closed-loop tracks on a rectangular grid. A track is a
// Cycle: an ordered, non-repeating sequence of 4-adjacent cells whose last
// cell neighbors its first. Two construction strategies are provided, a
// constrained random walk and an exhaustive enumeration of simple directed
// cycles; both draw from an explicit *rand.Rand so that a fixed seed fully
// determines the result. Nothing in this package touches the global rand
// state.
package track_gen

import (
	"errors"
	"fmt"
	"math/rand"
)

// GridCell is one cell of the track grid. Y grows southward, matching the
// row order of the serialized tile array.
type GridCell struct {
	X, Y int
}

// Neighbors returns the four adjacent cells in a fixed order (E, W, S, N).
// Candidates may be out of bounds; callers filter. The order matters for
// reproducibility: the walk indexes into it with the generator's rand.
func (c GridCell) Neighbors() [4]GridCell {
	return [4]GridCell{
		{c.X + 1, c.Y},
		{c.X - 1, c.Y},
		{c.X, c.Y + 1},
		{c.X, c.Y - 1},
	}
}

// adjacent reports whether two cells are 4-adjacent (manhattan distance 1).
func adjacent(a, b GridCell) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// Cycle is an ordered closed loop of grid cells. Consecutive cells (including
// last back to first) are 4-adjacent, no cell repeats, and the length is at
// least four (the smallest loop a rectangular grid admits).
type Cycle []GridCell

// Validate checks the Cycle invariants against the given grid bounds.
// It exists mostly for tests and for callers feeding externally supplied
// cycles into the connectivity mapper.
func (c Cycle) Validate(width, height int) error {
	if len(c) < 4 {
		return fmt.Errorf("cycle has %d cells, need at least 4", len(c))
	}
	seen := make(map[GridCell]bool, len(c))
	for i, cell := range c {
		if cell.X < 0 || cell.Y < 0 || cell.X >= width || cell.Y >= height {
			return fmt.Errorf("cell %v out of %dx%d bounds", cell, width, height)
		}
		if seen[cell] {
			return fmt.Errorf("cell %v repeats", cell)
		}
		seen[cell] = true
		next := c[(i+1)%len(c)]
		if !adjacent(cell, next) {
			return fmt.Errorf("cells %v and %v are not adjacent", cell, next)
		}
	}
	return nil
}

var (
	// ErrGridTooSmall is returned for grids that cannot hold a loop worth
	// driving: anything below 2x3 or 3x2.
	ErrGridTooSmall = errors.New("grid too small to admit a cycle")
	// ErrWalkExhausted is returned if the random walk hits its step guard
	// without closing a loop. On a valid grid this is astronomically
	// unlikely; the guard exists so no input can hang the generator.
	ErrWalkExhausted = errors.New("random walk exceeded its step bound")
)

// CycleGenerator owns the grid dimensions and the random source for track
// construction. Same pattern as any seeded generator: construct once,
// generate as many cycles as desired from the shared rand stream.
type CycleGenerator struct {
	width, height int
	rng           *rand.Rand
}

// NewCycleGenerator validates the grid dimensions and returns a generator
// drawing from the passed rand. The rand is held by reference, so a caller
// threading one source through several components keeps a single stream.
func NewCycleGenerator(width, height int, rng *rand.Rand) (*CycleGenerator, error) {
	// A 2x2 grid technically holds a 4-loop, but the track tiles assume at
	// least one straight segment; 2x3 is the supported minimum.
	if width < 2 || height < 2 || width*height < 6 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooSmall, width, height)
	}
	return &CycleGenerator{
		width:  width,
		height: height,
		rng:    rng,
	}, nil
}

func (g *CycleGenerator) inBounds(c GridCell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.width && c.Y < g.height
}

// cellIndex flattens a cell to a scanline index, used by the exhaustive
// enumerator for its visited bitmap and root ordering.
func (g *CycleGenerator) cellIndex(c GridCell) int {
	return c.Y*g.width + c.X
}
