/*
Trackgen procedurally generates closed-loop road-track maps for a driving
simulator: a random closed cycle on a rectangular grid, classified into road
tile assets, with static objects scattered along the track under a minimum
spacing constraint. The result is written as a YAML map document the
simulator consumes. With -serve, the generator instead runs a small preview
server that regenerates maps on an interval and pushes them to the browser,
for eyeballing track shapes and object spread while tuning parameters.
*/

package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"trackgen/generator"
	"trackgen/map_file"
	"trackgen/server"
	"trackgen/track_gen"
)

var (
	width      *int
	height     *int
	seed       *int64
	objects    *int
	minDist    *float64
	strategy   *string
	fileName   *string
	force      *bool
	configPath *string
	serve      *bool
	host       *string
	port       *string
	regenEvery *time.Duration
)

func init() {
	width = flag.Int("width", 5, "width of the map to generate")
	height = flag.Int("height", 5, "height of the map to generate")
	seed = flag.Int64("seed", 0, "seed for the random generator; 0 picks a time-based seed")
	objects = flag.Int("objects", generator.DefaultObjectCount, "number of objects to place on the track")
	minDist = flag.Float64("min-dist", generator.DefaultMinDistance, "minimum object spacing in world units")
	strategy = flag.String("strategy", generator.StrategyWalk, "cycle strategy: walk or exhaustive")
	fileName = flag.String("file-name", "generated.yaml", "output map path")
	force = flag.Bool("force", false, "overwrite existing maps")
	configPath = flag.String("config", "", "optional generation profile yaml; flags override its values")
	serve = flag.Bool("serve", false, "run the live preview server instead of writing a map")
	host = flag.String("host", "", "preview host ip")
	port = flag.String("port", "8080", "preview host port")
	regenEvery = flag.Duration("regen", 3*time.Second, "preview regeneration interval")
	flag.Parse()
}

// buildConfig assembles the run config: profile file first if given, then
// any explicitly passed flag on top. Unset flags never clobber file values.
func buildConfig() (cfg generator.GenerationConfig, err error) {
	cfg = generator.DefaultConfig()
	if *configPath != "" {
		var fileCfg *generator.GenerationConfig
		if fileCfg, err = generator.FromYaml(*configPath); err != nil {
			return
		}
		cfg = *fileCfg
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "seed":
			cfg.Seed = *seed
		case "objects":
			cfg.Objects = *objects
		case "min-dist":
			cfg.MinDist = *minDist
		case "strategy":
			cfg.Strategy = *strategy
		}
	})
	return
}

func runApp() (err error) {
	var cfg generator.GenerationConfig
	if cfg, err = buildConfig(); err != nil {
		return
	}

	if *serve {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var srv *server.Server
		addr := *host + ":" + *port
		if srv, err = server.NewServer(ctx, addr, cfg, *regenEvery); err != nil {
			return
		}
		fmt.Printf("previewing %dx%d maps at http://%s\n", cfg.Width, cfg.Height, addr)
		return srv.Serve(ctx)
	}

	var res *generator.Result
	if res, err = generator.Generate(cfg); err != nil {
		return
	}

	fmt.Printf("generated %dx%d track, cycle of %d cells\n", cfg.Width, cfg.Height, len(res.Cycle))
	track_gen.ShowCycle(cfg.Width, cfg.Height, res.Cycle)
	fmt.Printf("placed %d/%d objects\n", res.Placed, res.Requested)
	for _, diag := range res.Unknown {
		fmt.Println(diag)
	}

	return map_file.Save(res.Map, *fileName, *force)
}

func main() {
	if err := runApp(); err != nil {
		fmt.Println(err)
	}
}
