// tile_map classifies per-cell connectivity records into named tile assets
// and renders the full tile grid consumed by the simulator map document.
// Classification is a single total lookup table keyed by the four-flag
// record, rather than an ordered pattern chain, so there are no dead or
// order-dependent branches: a record either has an entry or it is reported
// as an unknown pattern.
package tile_map

import (
	"fmt"

	"trackgen/track_gen"
)

const (
	// BackgroundTile fills every cell the track does not pass through.
	BackgroundTile = "grass"
	// InvalidTile marks a cell whose connectivity matched no known asset.
	// Generation continues; the condition is reported alongside the grid.
	InvalidTile = ""
)

// tileTable maps a connectivity record to its tile asset (shape/rotation).
// Orientation names follow the asset convention: a straight/E runs
// east-west, a curve_left/S joins the north and east edges, and so on. The
// three-flag junction entries are carried for richer topologies even though
// a single closed loop never produces them.
//
// Deliberately absent: one-flag records and the all-four record. The
// legacy classifier's 4way branch repeated the 3way_left/E pattern and so
// could never match, and a true four-way record fell through to its
// unknown-tile path; the table reproduces that exactly. Re-enabling 4way
// support would be a behavior change, not a cleanup.
var tileTable = map[track_gen.ConnectivityRecord]string{
	{}: BackgroundTile,

	{E: true, W: true}: "straight/E",
	{N: true, S: true}: "straight/S",

	{N: true, E: true}: "curve_left/S",
	{E: true, S: true}: "curve_left/W",
	{S: true, W: true}: "curve_left/N",
	{N: true, W: true}: "curve_left/E",

	{N: true, E: true, S: true}: "3way_left/S",
	{E: true, S: true, W: true}: "3way_left/W",
	{N: true, S: true, W: true}: "3way_left/N",
	{N: true, E: true, W: true}: "3way_left/E",
}

// Classify looks up the tile asset for one connectivity record. The second
// return is false for records outside the table.
func Classify(rec track_gen.ConnectivityRecord) (string, bool) {
	tile, ok := tileTable[rec]
	return tile, ok
}

// UnknownTilePattern reports one cell whose connectivity matched no tile
// asset. It is a diagnostic, not a fatal error: the cell renders as
// InvalidTile and generation carries on.
type UnknownTilePattern struct {
	X, Y   int
	Record track_gen.ConnectivityRecord
}

func (u UnknownTilePattern) String() string {
	return fmt.Sprintf("unknown tile pattern at (%d,%d): %v", u.X, u.Y, u.Record)
}

// Render converts a full connectivity grid into the tile identifier grid,
// collecting a diagnostic for every cell that classifies to no asset. The
// returned grid always has the input's dimensions; unknown cells hold
// InvalidTile.
func Render(conn [][]track_gen.ConnectivityRecord) (tiles [][]string, unknown []UnknownTilePattern) {
	tiles = make([][]string, len(conn))
	for y, row := range conn {
		tiles[y] = make([]string, len(row))
		for x, rec := range row {
			tile, ok := Classify(rec)
			if !ok {
				tile = InvalidTile
				unknown = append(unknown, UnknownTilePattern{X: x, Y: y, Record: rec})
			}
			tiles[y][x] = tile
		}
	}
	return
}
