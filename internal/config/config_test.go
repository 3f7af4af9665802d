package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/mazegen/internal/world"
)

// isolate points HOME and the working directory at an empty temp dir so no
// real config or .env file leaks into the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"tiny grid", func(c *Config) { c.Height, c.Width = 4, 4 }, false},
		{"negative rooms", func(c *Config) { c.Rooms = -1 }, false},
		{"zero rooms ignores sizes", func(c *Config) { c.Rooms, c.MinRoomSize, c.MaxRoomSize = 0, 0, 0 }, true},
		{"min above max", func(c *Config) { c.MinRoomSize, c.MaxRoomSize = 6, 4 }, false},
		{"room too big for grid", func(c *Config) { c.Height, c.Width, c.MinRoomSize, c.MaxRoomSize = 10, 10, 9, 9 }, false},
		{"room just fits", func(c *Config) { c.Height, c.Width, c.MinRoomSize, c.MaxRoomSize = 10, 10, 8, 8 }, true},
		{"no attempts", func(c *Config) { c.PlacementAttempts = 0 }, false},
		{"meander over 100", func(c *Config) { c.MeanderFactor = 101 }, false},
		{"unknown hallway", func(c *Config) { c.HallwayKind = "spiral" }, false},
		{"unknown descent", func(c *Config) { c.Descent = "teleport" }, false},
		{"sample ratio above one", func(c *Config) { c.Telemetry.SampleRatio = 1.5 }, false},
		{"sample ratio fraction", func(c *Config) { c.Telemetry.SampleRatio = 0.1 }, true},
		{"meandering wandering", func(c *Config) { c.HallwayKind, c.Descent = "meandering", "wandering" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid {
				if err == nil {
					t.Error("expected an error")
				} else if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			}
		})
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("rooms: 3\nhallway_kind: meandering\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Rooms != 3 {
		t.Errorf("Expected 3 rooms, got %d", cfg.Rooms)
	}
	if cfg.Height != Default().Height {
		t.Errorf("Expected default height %d, got %d", Default().Height, cfg.Height)
	}
	kind, err := cfg.Hallway()
	if err != nil || kind != world.HallwayMeandering {
		t.Errorf("Expected meandering hallway, got %v (%v)", kind, err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("height: 20\nwidth: 30\nseed: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Height != 20 || cfg.Width != 30 || cfg.Seed != 42 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	dir := isolate(t)
	if _, err := Load(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := isolate(t)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", "mazegen.yaml"), []byte("rooms: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Rooms != 2 {
		t.Errorf("Expected rooms from ./configs, got %d", cfg.Rooms)
	}

	// The user file wins over the local one.
	if err := os.MkdirAll(filepath.Join(dir, ".mazegen"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".mazegen", "config.yaml"), []byte("rooms: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Rooms != 6 {
		t.Errorf("Expected rooms from ~/.mazegen, got %d", cfg.Rooms)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("MAZEGEN_ROOMS", "11")
	t.Setenv("MAZEGEN_SEED", "-7")
	t.Setenv("MAZEGEN_NOISE", "true")
	t.Setenv("MAZEGEN_DESCENT", "wandering")
	t.Setenv("MAZEGEN_TELEMETRY_SAMPLE_RATIO", "0.5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Rooms != 11 || cfg.Seed != -7 || !cfg.Noise || cfg.Descent != "wandering" {
		t.Errorf("Env overrides not applied: %+v", cfg)
	}
	if cfg.Telemetry.SampleRatio != 0.5 {
		t.Errorf("SampleRatio = %v, want 0.5", cfg.Telemetry.SampleRatio)
	}
}

func TestLoadBadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("MAZEGEN_WIDTH", "wide")

	if _, err := Load(""); err == nil {
		t.Error("expected an error for a non-numeric width")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv("MAZEGEN_HEIGHT", "") // registers cleanup; unset below
	os.Unsetenv("MAZEGEN_HEIGHT")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("MAZEGEN_HEIGHT=18\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Height != 18 {
		t.Errorf("Expected height from .env, got %d", cfg.Height)
	}
}
