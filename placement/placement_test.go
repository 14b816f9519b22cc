package placement

import (
	"math"
	"math/rand"
	"testing"

	"trackgen/track_gen"

	. "github.com/smartystreets/goconvey/convey"
)

// A ring of cells around a 4x4 block, roomy enough for several objects at
// small spacings.
var ringCells = []track_gen.GridCell{
	{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
	{X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3},
	{X: 2, Y: 3}, {X: 1, Y: 3}, {X: 0, Y: 3},
	{X: 0, Y: 2}, {X: 0, Y: 1},
}

const tileSize = 0.585

func pairwiseOk(points []Point, minDist float64) bool {
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			dx := points[i].X - points[j].X
			dy := points[i].Y - points[j].Y
			if math.Sqrt(dx*dx+dy*dy) < minDist {
				return false
			}
		}
	}
	return true
}

func TestPlace(t *testing.T) {
	Convey("When objects are placed by rejection sampling", t, func() {
		Convey("A generous spacing places the full count, all pairs cleared", func() {
			for seed := int64(1); seed <= 50; seed++ {
				points := Place(rand.New(rand.NewSource(seed)), 5, 0.1, ringCells, tileSize)
				So(len(points), ShouldEqual, 5)
				So(pairwiseOk(points, 0.1), ShouldBeTrue)
			}
		})

		Convey("Positions land inside the eligible cells' footprints", func() {
			points := Place(rand.New(rand.NewSource(9)), 5, 0.1, ringCells, tileSize)
			for _, p := range points {
				cell := track_gen.GridCell{
					X: int(p.X / tileSize),
					Y: int(p.Y / tileSize),
				}
				So(ringCells, ShouldContain, cell)
			}
		})

		Convey("An unsatisfiable spacing drops objects, never errors", func() {
			// The whole ring spans under 2.4 world units, so a spacing of 10
			// admits exactly one object; the other four starve quietly.
			points := Place(rand.New(rand.NewSource(2)), 5, 10, ringCells, tileSize)
			So(len(points), ShouldEqual, 1)
		})

		Convey("The accepted set is deterministic for fixed inputs", func() {
			p1 := Place(rand.New(rand.NewSource(31)), 5, 0.2, ringCells, tileSize)
			p2 := Place(rand.New(rand.NewSource(31)), 5, 0.2, ringCells, tileSize)
			So(p1, ShouldResemble, p2)
		})
	})
}
