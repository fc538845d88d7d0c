package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-bomber/internal/bomber"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Player       YAMLPos `yaml:"player"`
	BombCapacity *int    `yaml:"bomb_capacity,omitempty"`
	Tiles        [][]int `yaml:"tiles"`
}

// YAMLPos represents a grid position.
type YAMLPos struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// ParseYAML parses and validates a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:           yl.ID,
		Name:         yl.Name,
		Player:       bomber.P(yl.Player.Row, yl.Player.Col),
		BombCapacity: yl.BombCapacity,
		Tiles:        yl.Tiles,
	}
	if err := level.Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
}

// MarshalYAML encodes a level in the file format read by ParseYAML.
func MarshalYAML(l Level) ([]byte, error) {
	return yaml.Marshal(YAMLLevel{
		ID:           l.ID,
		Name:         l.Name,
		Player:       YAMLPos{Row: l.Player.Row, Col: l.Player.Col},
		BombCapacity: l.BombCapacity,
		Tiles:        l.Tiles,
	})
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
