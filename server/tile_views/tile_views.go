// tile_views converts generated maps into the view-model rendered by the
// preview page: a flat grid of colored, labeled cells plus marker positions
// for the placed objects. Views expose their changes as ele-update ops
// (element id -> attribute ops), which the server pushes to the browser
// over a websocket; the page applies them by id, so a full re-render never
// happens after the initial page load.
package tile_views

import (
	"fmt"
	"html/template"
	"strings"

	"trackgen/generator"
	"trackgen/tile_map"

	channerics "github.com/niceyeti/channerics/channels"
)

// CellSize is the rendered pixel size of one grid cell.
const CellSize = 96

// EleUpdate is an element identifier and a set of operations to apply to
// its attributes or content.
type EleUpdate struct {
	EleId string
	// Op keys are attribute names, or the reserved 'textContent'.
	Ops []Op
}

// Op is a key and value, e.g. an svg attribute and its new value.
type Op struct {
	Key   string
	Value string
}

// Cell is one tile of the preview grid, with fields directly usable as
// template parameters.
type Cell struct {
	X, Y  int
	Fill  string
	Label string
}

// Marker is one object slot of the preview. The page is laid out with a
// fixed number of slots (the requested object count), and runs where
// placement dropped objects simply hide the excess slots.
type Marker struct {
	Index  int
	Cx, Cy int
	Hidden bool
}

// Frame is the complete view-model of one generated map.
type Frame struct {
	Cells   [][]Cell
	Markers []Marker
}

// Convert builds the view-model for one generation result. Cell pixel
// coordinates come straight from grid indices; object world positions are
// rescaled from world units to pixels via the tile size.
func Convert(res *generator.Result) (frame Frame) {
	tiles := res.Map.Tiles
	frame.Cells = make([][]Cell, len(tiles))
	for y, row := range tiles {
		frame.Cells[y] = make([]Cell, len(row))
		for x, tile := range row {
			frame.Cells[y][x] = Cell{
				X:     x,
				Y:     y,
				Fill:  tileFill(tile),
				Label: tileLabel(tile),
			}
		}
	}

	frame.Markers = make([]Marker, res.Requested)
	for i := range frame.Markers {
		frame.Markers[i] = Marker{Index: i, Hidden: true}
	}
	scale := float64(CellSize) / res.Map.TileSize
	for i, obj := range res.Map.Objects {
		frame.Markers[i] = Marker{
			Index: i,
			Cx:    int(obj.Pos[0] * scale),
			Cy:    int(obj.Pos[1] * scale),
		}
	}
	return
}

func tileFill(tile string) (fill string) {
	switch {
	case tile == tile_map.BackgroundTile:
		fill = "lightgreen"
	case tile == tile_map.InvalidTile:
		fill = "salmon"
	case strings.HasPrefix(tile, "straight"):
		fill = "lightgray"
	case strings.HasPrefix(tile, "curve_left"):
		fill = "silver"
	default:
		// Junction tiles, if a future topology produces them.
		fill = "lightyellow"
	}
	return
}

func tileLabel(tile string) string {
	if tile == tile_map.BackgroundTile || tile == tile_map.InvalidTile {
		return ""
	}
	return tile
}

// TileGrid is the view component for the track grid: one svg, one rect and
// label per cell, one circle per object slot.
type TileGrid struct {
	name    string
	updates <-chan []EleUpdate
}

// NewTileGrid wires a view to a stream of frames; each incoming frame is
// converted to the ops that bring the rendered page up to date.
func NewTileGrid(
	name string,
	done <-chan struct{},
	frames <-chan Frame,
) *TileGrid {
	tg := &TileGrid{name: template.HTMLEscapeString(name)}
	tg.updates = channerics.Convert(done, frames, tg.Update)
	return tg
}

// Updates returns the ele-update channel for this view.
func (tg *TileGrid) Updates() <-chan []EleUpdate {
	return tg.updates
}

// Parse adds this view's template to the passed parent (inheriting its
// func-map) and returns the template name for embedding.
func (tg *TileGrid) Parse(parent *template.Template) (string, error) {
	_, err := parent.Parse(`
	{{ define "` + tg.name + `" }}
	{{ $cell_size := ` + fmt.Sprintf("%d", CellSize) + ` }}
	{{ $x_cells := len (index .Cells 0) }}
	{{ $y_cells := len .Cells }}
	<div id="track_grid">
		<svg id="` + tg.name + `"
			width="{{ add (mult $cell_size $x_cells) 1 }}px"
			height="{{ add (mult $cell_size $y_cells) 1 }}px"
			style="shape-rendering: crispEdges;">
			{{ range $row := .Cells }}
				{{ range $cell := $row }}
				<g>
					<rect id="{{$cell.X}}-{{$cell.Y}}-tile"
						x="{{ mult $cell.X $cell_size }}"
						y="{{ mult $cell.Y $cell_size }}"
						width="{{ $cell_size }}"
						height="{{ $cell_size }}"
						fill="{{ $cell.Fill }}"
						stroke="black"
						stroke-width="1"/>
					<text id="{{$cell.X}}-{{$cell.Y}}-tile-label"
						x="{{ add (mult $cell.X $cell_size) (div $cell_size 2) }}"
						y="{{ add (mult $cell.Y $cell_size) (div $cell_size 2) }}"
						dominant-baseline="central" text-anchor="middle"
						font-size="12"
						>{{ $cell.Label }}</text>
				</g>
				{{ end }}
			{{ end }}
			{{ range $m := .Markers }}
			<circle id="object-{{$m.Index}}"
				cx="{{ $m.Cx }}" cy="{{ $m.Cy }}" r="7"
				fill="gold" stroke="black" stroke-width="1"
				{{ if $m.Hidden }}visibility="hidden"{{ end }}/>
			{{ end }}
		</svg>
	</div>
	{{ end }}`)
	return tg.name, err
}

// Update returns the ops needed for the rendered view to reflect the frame.
func (tg *TileGrid) Update(frame Frame) (ops []EleUpdate) {
	for _, row := range frame.Cells {
		for _, cell := range row {
			ops = append(ops, EleUpdate{
				EleId: fmt.Sprintf("%d-%d-tile", cell.X, cell.Y),
				Ops:   []Op{{Key: "fill", Value: cell.Fill}},
			})
			ops = append(ops, EleUpdate{
				EleId: fmt.Sprintf("%d-%d-tile-label", cell.X, cell.Y),
				Ops:   []Op{{Key: "textContent", Value: cell.Label}},
			})
		}
	}
	for _, m := range frame.Markers {
		visibility := "visible"
		if m.Hidden {
			visibility = "hidden"
		}
		ops = append(ops, EleUpdate{
			EleId: fmt.Sprintf("object-%d", m.Index),
			Ops: []Op{
				{Key: "cx", Value: fmt.Sprintf("%d", m.Cx)},
				{Key: "cy", Value: fmt.Sprintf("%d", m.Cy)},
				{Key: "visibility", Value: visibility},
			},
		})
	}
	return
}
