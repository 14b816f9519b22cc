// generator runs the whole map-generation pipeline: build a closed track
// cycle, derive per-cell connectivity, classify tiles, scatter objects, and
// assemble the map document. One seeded rand threads through every
// stochastic step, so a config with a fixed seed regenerates the identical
// map, byte for byte.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"trackgen/map_file"
	"trackgen/placement"
	"trackgen/tile_map"
	"trackgen/track_gen"
)

// Fixed attributes of the placed objects; the simulator treats them as
// static scenery.
const (
	objectKind   = "duckie"
	objectHeight = 0.06
)

// Result is one generation run's output: the assembled map plus the
// diagnostics a caller may care about. Placed may be short of Requested
// when the track couldn't fit all objects at the configured spacing; that
// is expected, not an error.
type Result struct {
	Map   *map_file.MapData
	Cycle track_gen.Cycle
	// Unknown lists cells whose connectivity classified to no tile asset.
	// Empty for every cycle the built-in strategies produce.
	Unknown   []tile_map.UnknownTilePattern
	Requested int
	Placed    int
}

// Generate validates the config and produces one map. A zero cfg.Seed draws
// a time-based seed, making each call unique; any other seed makes the call
// a pure function of the config.
func Generate(cfg GenerationConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return generate(cfg, rand.New(rand.NewSource(seed)))
}

func generate(cfg GenerationConfig, rng *rand.Rand) (*Result, error) {
	cycleGen, err := track_gen.NewCycleGenerator(cfg.Width, cfg.Height, rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	var cycle track_gen.Cycle
	switch cfg.Strategy {
	case StrategyExhaustive:
		cycle, err = cycleGen.ExhaustiveCycle()
	default:
		cycle, err = cycleGen.RandomWalkCycle()
	}
	if err != nil {
		return nil, fmt.Errorf("build cycle: %w", err)
	}

	conn := track_gen.MapConnectivity(cfg.Width, cfg.Height, cycle)
	tiles, unknown := tile_map.Render(conn)

	points := placement.Place(rng, cfg.Objects, cfg.MinDist, cycle, cfg.TileSize)
	objects := make([]map_file.Object, 0, len(points))
	for _, p := range points {
		objects = append(objects, map_file.Object{
			Height:   objectHeight,
			Kind:     objectKind,
			Optional: false,
			Pos:      [2]float64{p.X, p.Y},
			Rotate:   rng.Intn(360),
			Static:   true,
		})
	}

	return &Result{
		Map:       map_file.Assemble(cfg.TileSize, tiles, objects),
		Cycle:     cycle,
		Unknown:   unknown,
		Requested: cfg.Objects,
		Placed:    len(objects),
	}, nil
}
