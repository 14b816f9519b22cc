package server

import (
	"context"
	"strings"
	"testing"
	"time"

	"trackgen/generator"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderIndex(t *testing.T) {
	Convey("When the preview page renders", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		cfg := generator.DefaultConfig()
		cfg.Seed = 1
		srv, err := NewServer(ctx, ":0", cfg, time.Hour)
		So(err, ShouldBeNil)

		var sb strings.Builder
		So(srv.renderIndex(&sb), ShouldBeNil)
		page := sb.String()

		Convey("The page carries the tile grid and the websocket bootstrap", func() {
			So(page, ShouldContainSubstring, `id="tile_grid"`)
			So(page, ShouldContainSubstring, "new WebSocket")
			// One rect per cell of the 5x5 grid.
			So(strings.Count(page, "<rect"), ShouldEqual, 25)
			// One marker slot per requested object.
			So(strings.Count(page, "<circle"), ShouldEqual, cfg.Objects)
		})
	})

	Convey("When the preview config cannot generate", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		cfg := generator.DefaultConfig()
		cfg.Objects = 0
		_, err := NewServer(ctx, ":0", cfg, time.Hour)
		So(err, ShouldNotBeNil)
	})
}
