package formats

import (
	"fmt"

	"github.com/vovakirdan/gremm-arcade/internal/games/tunnel/core"
	"gopkg.in/yaml.v3"
)

// YAMLLayout represents the YAML structure for a layout file.
type YAMLLayout struct {
	Name  string     `yaml:"name"`
	Rooms []YAMLRoom `yaml:"rooms"`
}

// YAMLRoom represents a single room in YAML format.
type YAMLRoom struct {
	Name  string            `yaml:"name"`
	Map   string            `yaml:"map,omitempty"`
	Grid  string            `yaml:"grid,omitempty"` // inline map text
	Color []int             `yaml:"color"`
	Exits map[string]string `yaml:"exits,omitempty"`
}

// ParseYAML parses a YAML layout file.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	out := Layout{Name: yl.Name}
	for i, yr := range yl.Rooms {
		if yr.Name == "" {
			return Layout{}, fmt.Errorf("room %d: missing name", i)
		}
		if (yr.Map == "") == (yr.Grid == "") {
			return Layout{}, fmt.Errorf("room %q: exactly one of map or grid is required", yr.Name)
		}
		color, err := rgb(yr.Color)
		if err != nil {
			return Layout{}, fmt.Errorf("room %q: %w", yr.Name, err)
		}

		r := Room{
			Name:  yr.Name,
			Map:   yr.Map,
			Grid:  yr.Grid,
			Color: color,
			Exits: make(map[core.Heading]core.Target, len(yr.Exits)),
		}
		for letter, target := range yr.Exits {
			h, t, err := parseExit(letter, target)
			if err != nil {
				return Layout{}, fmt.Errorf("room %q: %w", yr.Name, err)
			}
			r.Exits[h] = t
		}
		out.Rooms = append(out.Rooms, r)
	}

	return out, nil
}
