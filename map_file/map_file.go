// map_file owns the generated map document: the MapData structure handed to
// the simulator, its YAML form, and the guarded file write. MapData is
// assembled once, after generation, and treated as immutable from then on.
package map_file

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Object is one static object record in the map document.
type Object struct {
	Height   float64    `yaml:"height"`
	Kind     string     `yaml:"kind"`
	Optional bool       `yaml:"optional"`
	Pos      [2]float64 `yaml:"pos"`
	Rotate   int        `yaml:"rotate"`
	Static   bool       `yaml:"static"`
}

// MapData is the complete generated environment: world units per tile, the
// row-major tile identifier grid, and the placed objects. Its yaml tags
// define the document shape the simulator consumes.
type MapData struct {
	TileSize float64    `yaml:"tile_size"`
	Tiles    [][]string `yaml:"tiles"`
	Objects  []Object   `yaml:"objects"`
}

// Assemble bundles the generated pieces into one MapData. Pure composition;
// the inputs are trusted to be structurally well-formed (rectangular tile
// grid, objects already constraint-checked).
func Assemble(tileSize float64, tiles [][]string, objects []Object) *MapData {
	return &MapData{
		TileSize: tileSize,
		Tiles:    tiles,
		Objects:  objects,
	}
}

// Marshal renders the document bytes. Determinism note: yaml.v3 marshals
// struct fields in declaration order, so identical MapData yields identical
// bytes, which the regression tests rely on.
func (m *MapData) Marshal() ([]byte, error) {
	return yaml.Marshal(m)
}

// Save writes the map document to path. An existing file is left untouched
// unless force is set; that case warns and returns nil rather than erroring,
// so batch generation over existing map sets skips quietly.
func Save(m *MapData, path string, force bool) error {
	if !strings.HasSuffix(path, ".yaml") {
		return fmt.Errorf("map path %q must end in .yaml", path)
	}
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		log.Printf("map %s already exists", path)
		if !force {
			log.Println("skipping, pass force to overwrite")
			return nil
		}
	}

	doc, err := m.Marshal()
	if err != nil {
		return fmt.Errorf("marshal map: %w", err)
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("write map: %w", err)
	}
	return nil
}
