package map_file

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	. "github.com/smartystreets/goconvey/convey"
)

func testMap() *MapData {
	return Assemble(
		0.585,
		[][]string{
			{"grass", "curve_left/S"},
			{"straight/S", "grass"},
		},
		[]Object{
			{Height: 0.06, Kind: "duckie", Pos: [2]float64{0.3, 0.9}, Rotate: 117, Static: true},
		},
	)
}

func TestMarshal(t *testing.T) {
	Convey("When a map is marshaled", t, func() {
		Convey("The document round-trips and keeps its shape", func() {
			doc, err := testMap().Marshal()
			So(err, ShouldBeNil)

			var back MapData
			So(yaml.Unmarshal(doc, &back), ShouldBeNil)
			So(&back, ShouldResemble, testMap())
		})

		Convey("Identical maps yield identical bytes", func() {
			d1, err1 := testMap().Marshal()
			d2, err2 := testMap().Marshal()
			So(err1, ShouldBeNil)
			So(err2, ShouldBeNil)
			So(string(d1), ShouldEqual, string(d2))
		})
	})
}

func TestSave(t *testing.T) {
	Convey("When a map is saved", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "test.yaml")

		Convey("A fresh path is written", func() {
			So(Save(testMap(), path, false), ShouldBeNil)
			doc, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(len(doc), ShouldBeGreaterThan, 0)
		})

		Convey("An existing map is skipped without force", func() {
			So(os.WriteFile(path, []byte("sentinel"), 0o644), ShouldBeNil)
			So(Save(testMap(), path, false), ShouldBeNil)

			doc, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(doc), ShouldEqual, "sentinel")
		})

		Convey("Force overwrites an existing map", func() {
			So(os.WriteFile(path, []byte("sentinel"), 0o644), ShouldBeNil)
			So(Save(testMap(), path, true), ShouldBeNil)

			doc, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(doc), ShouldNotEqual, "sentinel")
		})

		Convey("A non-yaml path is rejected", func() {
			So(Save(testMap(), filepath.Join(dir, "map.json"), false), ShouldNotBeNil)
		})
	})
}
