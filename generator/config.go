package generator

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Track generation defaults, matching the original map generator's
// constants.
const (
	DefaultObjectCount = 5
	DefaultMinDistance = 10.0
	DefaultTileSize    = 0.585

	// StrategyWalk is the constrained random walk, the default.
	StrategyWalk = "walk"
	// StrategyExhaustive enumerates all simple directed cycles and picks
	// one; small grids only.
	StrategyExhaustive = "exhaustive"
)

// ErrConfig wraps every configuration rejection, so callers can distinguish
// bad parameters from generation failures with one errors.Is.
var ErrConfig = errors.New("invalid generation config")

// GenerationConfig carries every knob of one generation run. A zero Seed
// selects a time-based seed at generation time; any other value makes the
// run fully reproducible.
// Field keys are deliberately single lowercase words: the config library
// lowercases keys on read, and the def block re-decodes through yaml, so
// multi-word camelCase keys would silently fail to match.
type GenerationConfig struct {
	Width    int     `mapstructure:"width" yaml:"width"`
	Height   int     `mapstructure:"height" yaml:"height"`
	Seed     int64   `mapstructure:"seed" yaml:"seed"`
	Objects  int     `mapstructure:"objects" yaml:"objects"`
	MinDist  float64 `mapstructure:"mindist" yaml:"mindist"`
	TileSize float64 `mapstructure:"tilesize" yaml:"tilesize"`
	Strategy string  `mapstructure:"strategy" yaml:"strategy"`
}

// DefaultConfig returns the stock 5x5 generation profile.
func DefaultConfig() GenerationConfig {
	return GenerationConfig{
		Width:    5,
		Height:   5,
		Objects:  DefaultObjectCount,
		MinDist:  DefaultMinDistance,
		TileSize: DefaultTileSize,
		Strategy: StrategyWalk,
	}
}

// Validate rejects configurations that cannot generate before any work is
// done. Grid-size limits proper live with the cycle generator; everything
// else is checked here.
func (cfg *GenerationConfig) Validate() error {
	if cfg.Objects <= 0 {
		return fmt.Errorf("%w: object count %d must be positive", ErrConfig, cfg.Objects)
	}
	if cfg.MinDist <= 0 {
		return fmt.Errorf("%w: min distance %v must be positive", ErrConfig, cfg.MinDist)
	}
	if cfg.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %v must be positive", ErrConfig, cfg.TileSize)
	}
	if cfg.Strategy != StrategyWalk && cfg.Strategy != StrategyExhaustive {
		return fmt.Errorf("%w: unknown strategy %q", ErrConfig, cfg.Strategy)
	}
	return nil
}

// outerConfig is the file envelope: a kind selector and the profile
// definition beneath it, so one config format can grow additional kinds
// without breaking existing files.
type outerConfig struct {
	Kind string      `mapstructure:"kind"`
	Def  interface{} `mapstructure:"def"`
}

// FromYaml loads a generation profile from a YAML file of the form
//
//	kind: trackgen/v1
//	def:
//	  width: 5
//	  height: 5
//	  ...
//
// Defaults fill any field the file leaves unset. The def block round-trips
// through yaml to decode into the typed config, which is simpler than
// teaching the config library about nested dynamic payloads.
func FromYaml(path string) (*GenerationConfig, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	outer := &outerConfig{}
	if err := vp.Unmarshal(outer); err != nil {
		return nil, err
	}

	spec, err := yaml.Marshal(outer.Def)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err = yaml.Unmarshal(spec, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
