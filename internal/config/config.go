// Package config resolves layout generation settings from defaults, YAML
// files, .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/mazegen/internal/world"
)

// ErrInvalidConfig is returned by Validate for settings the engine cannot
// honor.
var ErrInvalidConfig = errors.New("invalid config")

// minGridSide is the smallest grid side that leaves an interior wider than
// one cell.
const minGridSide = 5

// Config holds layout generation options.
type Config struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`

	// Seed for random number generation. Used for reproducible layouts.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	Rooms           int  `yaml:"rooms"`
	MinRoomSize     int  `yaml:"min_room_size"`
	MaxRoomSize     int  `yaml:"max_room_size"`
	IncludeHallways bool `yaml:"include_hallways"`

	Noise        bool `yaml:"noise"`
	StartAndGoal bool `yaml:"start_and_goal"`
	// GoalHallway carves a hallway from start to goal once both are placed.
	GoalHallway bool   `yaml:"goal_hallway"`
	HallwayKind string `yaml:"hallway_kind"`

	Descent       string `yaml:"descent"`
	MeanderFactor int    `yaml:"meander_factor"`

	// PlacementAttempts bounds how often a failed room is resampled.
	PlacementAttempts int `yaml:"placement_attempts"`

	LogLevel  string          `yaml:"log_level"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// TelemetryConfig controls trace export.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	// SampleRatio is the fraction of layouts traced; 0 traces all of them.
	SampleRatio float64 `yaml:"sample_ratio"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Height:            32,
		Width:             64,
		Rooms:             8,
		MinRoomSize:       3,
		MaxRoomSize:       12,
		IncludeHallways:   true,
		StartAndGoal:      true,
		GoalHallway:       true,
		HallwayKind:       "direct",
		Descent:           "greedy",
		MeanderFactor:     10,
		PlacementAttempts: 5,
		LogLevel:          "info",
	}
}

// Validate checks the preconditions the engine leaves to its caller.
func (c Config) Validate() error {
	var problems []string

	if c.Height < minGridSide || c.Width < minGridSide {
		problems = append(problems, fmt.Sprintf("grid %dx%d is smaller than %dx%d", c.Height, c.Width, minGridSide, minGridSide))
	}
	if c.Rooms < 0 {
		problems = append(problems, fmt.Sprintf("rooms must not be negative, got %d", c.Rooms))
	}
	if c.Rooms > 0 {
		if c.MinRoomSize < 1 {
			problems = append(problems, fmt.Sprintf("min_room_size must be at least 1, got %d", c.MinRoomSize))
		}
		if c.MaxRoomSize < c.MinRoomSize {
			problems = append(problems, fmt.Sprintf("max_room_size %d is below min_room_size %d", c.MaxRoomSize, c.MinRoomSize))
		}
		// A room of side s needs s+2 cells to clear the perimeter.
		if limit := min(c.Height, c.Width) - 2; c.MinRoomSize > limit {
			problems = append(problems, fmt.Sprintf("min_room_size %d does not fit a %dx%d grid", c.MinRoomSize, c.Height, c.Width))
		}
	}
	if c.PlacementAttempts < 1 {
		problems = append(problems, fmt.Sprintf("placement_attempts must be at least 1, got %d", c.PlacementAttempts))
	}
	if c.MeanderFactor < 0 || c.MeanderFactor > 100 {
		problems = append(problems, fmt.Sprintf("meander_factor must be within [0, 100], got %d", c.MeanderFactor))
	}
	if r := c.Telemetry.SampleRatio; r < 0 || r > 1 {
		problems = append(problems, fmt.Sprintf("telemetry sample_ratio must be within [0, 1], got %v", r))
	}
	if _, err := c.Hallway(); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := c.DescentPolicy(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Hallway returns the configured hallway kind.
func (c Config) Hallway() (world.HallwayKind, error) {
	return world.ParseHallwayKind(c.HallwayKind)
}

// DescentPolicy returns the configured descent policy.
func (c Config) DescentPolicy() (world.DescentPolicy, error) {
	return world.ParseDescentPolicy(c.Descent)
}
