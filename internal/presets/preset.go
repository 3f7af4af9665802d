package presets

import "github.com/samdwyer/mazegen/internal/config"

// Preset is a named set of layout parameters loaded from YAML.
type Preset struct {
	ID              string `yaml:"id"`   // Unique identifier (e.g., "small")
	Name            string `yaml:"name"` // Display name
	Description     string `yaml:"description"`
	Height          int    `yaml:"height"`
	Width           int    `yaml:"width"`
	Rooms           int    `yaml:"rooms"`
	MinRoomSize     int    `yaml:"minRoomSize"`
	MaxRoomSize     int    `yaml:"maxRoomSize"`
	IncludeHallways bool   `yaml:"includeHallways"`
	Noise           bool   `yaml:"noise"`
	HallwayKind     string `yaml:"hallwayKind"`
	Descent         string `yaml:"descent"`
	MeanderFactor   int    `yaml:"meanderFactor"` // 0 keeps the configured factor
	Weight          int    `yaml:"weight"`        // Relative pick frequency for Random
}

// presetsFile represents the structure of presets.yaml.
type presetsFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.yaml file.
func LoadPresets() ([]Preset, error) {
	file, err := Load[presetsFile]("presets.yaml")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}

// Apply copies the preset's layout parameters onto cfg. Seed, logging,
// telemetry and start/goal settings are left alone.
func (p *Preset) Apply(cfg *config.Config) {
	cfg.Height = p.Height
	cfg.Width = p.Width
	cfg.Rooms = p.Rooms
	cfg.MinRoomSize = p.MinRoomSize
	cfg.MaxRoomSize = p.MaxRoomSize
	cfg.IncludeHallways = p.IncludeHallways
	cfg.Noise = p.Noise
	if p.HallwayKind != "" {
		cfg.HallwayKind = p.HallwayKind
	}
	if p.Descent != "" {
		cfg.Descent = p.Descent
	}
	if p.MeanderFactor > 0 {
		cfg.MeanderFactor = p.MeanderFactor
	}
}
