package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// envPrefix prefixes every environment override.
const envPrefix = "MAZEGEN_"

// Load resolves the configuration.
// Search order for the YAML file: customPath -> ~/.mazegen/config.yaml ->
// ./configs/mazegen.yaml -> built-in defaults. A .env file in the working
// directory is loaded next, then MAZEGEN_* variables override file values.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		if err := readFile(customPath, &cfg); err != nil {
			return cfg, err
		}
	} else {
		for _, candidate := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "mazegen.yaml")} {
			if candidate == "" {
				continue
			}
			err := readFile(candidate, &cfg)
			if err == nil {
				break
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return cfg, err
			}
		}
	}

	if err := LoadDotEnv(); err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazegen", filename)
}

// applyEnv overrides cfg with MAZEGEN_* environment variables.
func applyEnv(cfg *Config) error {
	ints := map[string]*int{
		"HEIGHT":             &cfg.Height,
		"WIDTH":              &cfg.Width,
		"ROOMS":              &cfg.Rooms,
		"MIN_ROOM_SIZE":      &cfg.MinRoomSize,
		"MAX_ROOM_SIZE":      &cfg.MaxRoomSize,
		"MEANDER_FACTOR":     &cfg.MeanderFactor,
		"PLACEMENT_ATTEMPTS": &cfg.PlacementAttempts,
	}
	for key, dst := range ints {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, key, err)
			}
			*dst = n
		}
	}

	bools := map[string]*bool{
		"INCLUDE_HALLWAYS":  &cfg.IncludeHallways,
		"NOISE":             &cfg.Noise,
		"START_AND_GOAL":    &cfg.StartAndGoal,
		"GOAL_HALLWAY":      &cfg.GoalHallway,
		"TELEMETRY_ENABLED": &cfg.Telemetry.Enabled,
	}
	for key, dst := range bools {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, key, err)
			}
			*dst = b
		}
	}

	strs := map[string]*string{
		"HALLWAY_KIND":       &cfg.HallwayKind,
		"DESCENT":            &cfg.Descent,
		"LOG_LEVEL":          &cfg.LogLevel,
		"TELEMETRY_ENDPOINT": &cfg.Telemetry.Endpoint,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	if v, ok := lookup("TELEMETRY_SAMPLE_RATIO"); ok {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sTELEMETRY_SAMPLE_RATIO: %w", envPrefix, err)
		}
		cfg.Telemetry.SampleRatio = r
	}

	if v, ok := lookup("SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		cfg.Seed = seed
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}
