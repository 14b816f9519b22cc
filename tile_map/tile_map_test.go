package tile_map

import (
	"math/rand"
	"testing"

	"trackgen/track_gen"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("When connectivity records are classified", t, func() {
		Convey("The background and all six two-flag patterns resolve", func() {
			expected := map[track_gen.ConnectivityRecord]string{
				{}:                 BackgroundTile,
				{E: true, W: true}: "straight/E",
				{N: true, S: true}: "straight/S",
				{N: true, E: true}: "curve_left/S",
				{E: true, S: true}: "curve_left/W",
				{S: true, W: true}: "curve_left/N",
				{N: true, W: true}: "curve_left/E",
			}
			for rec, want := range expected {
				tile, ok := Classify(rec)
				So(ok, ShouldBeTrue)
				So(tile, ShouldEqual, want)
			}
		})

		Convey("Three-flag junction patterns resolve for richer topologies", func() {
			expected := map[track_gen.ConnectivityRecord]string{
				{N: true, E: true, S: true}: "3way_left/S",
				{E: true, S: true, W: true}: "3way_left/W",
				{N: true, S: true, W: true}: "3way_left/N",
				{N: true, E: true, W: true}: "3way_left/E",
			}
			for rec, want := range expected {
				tile, ok := Classify(rec)
				So(ok, ShouldBeTrue)
				So(tile, ShouldEqual, want)
			}
		})

		Convey("One-flag and four-flag records are unknown", func() {
			unknowns := []track_gen.ConnectivityRecord{
				{N: true},
				{E: true},
				{S: true},
				{W: true},
				{N: true, E: true, S: true, W: true},
			}
			for _, rec := range unknowns {
				_, ok := Classify(rec)
				So(ok, ShouldBeFalse)
			}
		})
	})
}

func TestRender(t *testing.T) {
	Convey("When connectivity grids are rendered to tiles", t, func() {
		Convey("Every record a valid cycle produces classifies without diagnostics", func() {
			for seed := int64(1); seed <= 50; seed++ {
				g, err := track_gen.NewCycleGenerator(5, 5, rand.New(rand.NewSource(seed)))
				So(err, ShouldBeNil)
				cycle, err := g.RandomWalkCycle()
				So(err, ShouldBeNil)

				tiles, unknown := Render(track_gen.MapConnectivity(5, 5, cycle))
				So(unknown, ShouldBeEmpty)
				So(len(tiles), ShouldEqual, 5)
				for _, row := range tiles {
					So(len(row), ShouldEqual, 5)
					for _, tile := range row {
						So(tile, ShouldNotEqual, InvalidTile)
					}
				}
			}
		})

		Convey("Unknown records mark the cell invalid and report, without aborting", func() {
			conn := [][]track_gen.ConnectivityRecord{
				{{}, {N: true}},
				{{E: true, W: true}, {}},
			}
			tiles, unknown := Render(conn)

			So(tiles[0][1], ShouldEqual, InvalidTile)
			So(tiles[1][0], ShouldEqual, "straight/E")
			So(len(unknown), ShouldEqual, 1)
			So(unknown[0].X, ShouldEqual, 1)
			So(unknown[0].Y, ShouldEqual, 0)
			So(unknown[0].Record, ShouldResemble, track_gen.ConnectivityRecord{N: true})
		})
	})
}
