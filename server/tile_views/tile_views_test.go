package tile_views

import (
	"fmt"
	"html/template"
	"strings"
	"testing"

	"trackgen/generator"

	. "github.com/smartystreets/goconvey/convey"
)

func generateFrame(t *testing.T) (Frame, *generator.Result) {
	cfg := generator.DefaultConfig()
	cfg.Seed = 1
	res, err := generator.Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return Convert(res), res
}

func TestConvert(t *testing.T) {
	Convey("When a generation result converts to a frame", t, func() {
		frame, res := generateFrame(t)

		Convey("The cell grid mirrors the tile grid", func() {
			So(len(frame.Cells), ShouldEqual, len(res.Map.Tiles))
			for y, row := range frame.Cells {
				So(len(row), ShouldEqual, len(res.Map.Tiles[y]))
				for x, cell := range row {
					So(cell.X, ShouldEqual, x)
					So(cell.Y, ShouldEqual, y)
					So(cell.Fill, ShouldNotBeEmpty)
				}
			}
		})

		Convey("Marker slots cover the requested count, extras hidden", func() {
			So(len(frame.Markers), ShouldEqual, res.Requested)
			visible := 0
			for _, m := range frame.Markers {
				if !m.Hidden {
					visible++
				}
			}
			So(visible, ShouldEqual, res.Placed)
		})
	})
}

func TestTileGridTemplateAndUpdates(t *testing.T) {
	Convey("When the tile grid view renders and updates", t, func() {
		frame, _ := generateFrame(t)

		tg := &TileGrid{name: "tile_grid"}
		parent := template.New("index").Funcs(template.FuncMap{
			"add":  func(i, j int) int { return i + j },
			"sub":  func(i, j int) int { return i - j },
			"mult": func(i, j int) int { return i * j },
			"div":  func(i, j int) int { return i / j },
		})

		name, err := tg.Parse(parent)
		So(err, ShouldBeNil)

		var sb strings.Builder
		So(parent.ExecuteTemplate(&sb, name, frame), ShouldBeNil)
		rendered := sb.String()

		Convey("Every update op addresses an element the template emitted", func() {
			for _, update := range tg.Update(frame) {
				So(rendered, ShouldContainSubstring, fmt.Sprintf(`id="%s"`, update.EleId))
			}
		})

		Convey("Updates cover all cells and all marker slots", func() {
			ops := tg.Update(frame)
			cells := len(frame.Cells) * len(frame.Cells[0])
			So(len(ops), ShouldEqual, 2*cells+len(frame.Markers))
		})
	})
}
