package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/randytsao24/muniboard/internal/canvas"
)

// LineConfig is the static identity of one MUNI line: what to call it
// on the header and what color its pixels get. Loaded once at startup
// and immutable afterwards.
type LineConfig struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name"`
	Color canvas.RGB `yaml:"color"`
}

// builtinLines is the embedded MUNI Metro catalog, used when no lines
// file is configured or a line is missing from it.
var builtinLines = map[string]LineConfig{
	"J": {ID: "J", Name: "J CHURCH", Color: canvas.RGB{R: 250, G: 170, B: 0}},
	"K": {ID: "K", Name: "K INGLESIDE", Color: canvas.RGB{R: 80, G: 150, B: 170}},
	"L": {ID: "L", Name: "L TARAVAL", Color: canvas.RGB{R: 150, G: 70, B: 150}},
	"M": {ID: "M", Name: "M OCEAN VIEW", Color: canvas.RGB{R: 0, G: 130, B: 70}},
	"N": {ID: "N", Name: "N JUDAH", Color: canvas.RGB{R: 0, G: 90, B: 170}},
	"T": {ID: "T", Name: "T THIRD", Color: canvas.RGB{R: 200, G: 30, B: 50}},
}

// LoadLines returns the line catalog: the built-in MUNI Metro lines,
// with entries from an optional YAML file layered over them.
func LoadLines(path string) (map[string]LineConfig, error) {
	lines := make(map[string]LineConfig, len(builtinLines))
	for id, lc := range builtinLines {
		lines[id] = lc
	}

	if path == "" {
		return lines, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lines file: %w", err)
	}

	var file struct {
		Lines []LineConfig `yaml:"lines"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing lines file: %w", err)
	}

	for _, lc := range file.Lines {
		if lc.ID == "" {
			return nil, fmt.Errorf("lines file entry missing id")
		}
		lines[lc.ID] = lc
	}
	return lines, nil
}

// Line resolves one line from the catalog. Unknown lines get a white
// entry named after their ID so the board still runs.
func Line(lines map[string]LineConfig, id string) LineConfig {
	if lc, ok := lines[id]; ok {
		return lc
	}
	return LineConfig{ID: id, Name: id + " LINE", Color: canvas.White}
}
