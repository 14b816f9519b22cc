// placement scatters point objects onto track cells under a minimum
// pairwise-distance constraint, by bounded rejection sampling: draw a
// candidate position, keep it only if it clears every accepted position,
// give up on an object after a fixed number of tries. A shorter-than-asked
// result is expected behavior (the track may simply not have room), never
// an error; callers needing an exact count check the returned length.
package placement

import (
	"math/rand"

	"trackgen/track_gen"
)

// MaxAttempts is the per-object rejection-sampling bound.
const MaxAttempts = 50

// Point is a continuous position in world units.
type Point struct {
	X, Y float64
}

// Place samples up to n positions on the eligible cells, each at least
// minDist (in world units) from every other. Each candidate is a uniform
// cell pick plus a uniform offset within the cell's footprint, so objects
// land anywhere on the track surface rather than on cell centers. Distances
// are compared squared; no roots taken.
//
// The rand is the caller's: the same source threaded through track
// generation keeps the whole map reproducible from one seed.
func Place(rng *rand.Rand, n int, minDist float64, cells []track_gen.GridCell, tileSize float64) []Point {
	accepted := make([]Point, 0, n)
	minDistSq := minDist * minDist

	for i := 0; i < n; i++ {
		for try := 0; try < MaxAttempts; try++ {
			xoff := rng.Float64() * tileSize
			yoff := rng.Float64() * tileSize
			cell := cells[rng.Intn(len(cells))]
			p := Point{
				X: float64(cell.X)*tileSize + xoff,
				Y: float64(cell.Y)*tileSize + yoff,
			}
			if clears(p, accepted, minDistSq) {
				accepted = append(accepted, p)
				break
			}
		}
		// All tries failed: this object is dropped, move on to the next.
	}

	return accepted
}

func clears(p Point, accepted []Point, minDistSq float64) bool {
	for _, o := range accepted {
		dx, dy := p.X-o.X, p.Y-o.Y
		if dx*dx+dy*dy <= minDistSq {
			return false
		}
	}
	return true
}
