package track_gen

import "fmt"

// ConnectivityRecord is the four edge-presence flags of one grid cell. For a
// cell on a cycle exactly two flags are set, pointing at its two cyclic
// neighbors; off-cycle cells are all false.
type ConnectivityRecord struct {
	N, E, S, W bool
}

// Degree is the number of set flags.
func (r ConnectivityRecord) Degree() (n int) {
	for _, flag := range [4]bool{r.N, r.E, r.S, r.W} {
		if flag {
			n++
		}
	}
	return
}

func (r ConnectivityRecord) String() string {
	return fmt.Sprintf("{N:%t E:%t S:%t W:%t}", r.N, r.E, r.S, r.W)
}

// MapConnectivity converts an ordered cycle into the full height x width
// connectivity grid, indexed [y][x] to match the serialized tile rows. Each
// cycle cell points at its predecessor and successor (cyclically); every
// other cell stays zero. Pure derivation, no failure modes: the cycle is
// assumed valid (see Cycle.Validate).
func MapConnectivity(width, height int, cycle Cycle) [][]ConnectivityRecord {
	conn := make([][]ConnectivityRecord, height)
	for y := range conn {
		conn[y] = make([]ConnectivityRecord, width)
	}

	n := len(cycle)
	for i, cell := range cycle {
		prev := cycle[(i-1+n)%n]
		next := cycle[(i+1)%n]
		rec := &conn[cell.Y][cell.X]
		for _, neigh := range [2]GridCell{prev, next} {
			switch {
			case neigh.X == cell.X && neigh.Y == cell.Y-1:
				rec.N = true
			case neigh.X == cell.X+1 && neigh.Y == cell.Y:
				rec.E = true
			case neigh.X == cell.X && neigh.Y == cell.Y+1:
				rec.S = true
			case neigh.X == cell.X-1 && neigh.Y == cell.Y:
				rec.W = true
			}
		}
	}

	return conn
}
