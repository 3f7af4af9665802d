// mazegen generates room-and-hallway tile layouts.
//
// Usage:
//
//	mazegen generate          - Print a layout to stdout
//	mazegen view              - Browse layouts interactively
//	mazegen presets           - List the built-in presets
//
// Global flags:
//
//	--config <path>   - YAML config file
//	--preset <id>     - Apply a built-in preset ("random" picks one)
//	--seed <value>    - RNG seed for reproducible layouts
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/samdwyer/mazegen/internal/config"
	"github.com/samdwyer/mazegen/internal/layout"
	"github.com/samdwyer/mazegen/internal/presets"
	"github.com/samdwyer/mazegen/internal/telemetry"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagSeed     int64
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "mazegen",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazegen",
	Short: "Generate room-and-hallway tile layouts",
	Long: `mazegen places rooms on a tile grid where a convolved cost field is
lowest and joins them with hallways carved by greedy cost descent.

Examples:
  mazegen generate --seed 42
  mazegen generate --preset large --color
  mazegen view --preset cavern
  mazegen presets`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Built-in preset ID, or \"random\"")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config or time based)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(presetsCmd)
}

// loadConfig resolves the configuration from file, env, preset and flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagPreset != "" {
		registry, err := presets.LoadRegistry()
		if err != nil {
			return cfg, err
		}
		var preset *presets.Preset
		if flagPreset == "random" {
			preset = registry.Random(rand.New(rand.NewSource(time.Now().UnixNano())))
		} else if preset, err = registry.Get(flagPreset); err != nil {
			return cfg, err
		}
		preset.Apply(&cfg)
		logger.Debug("preset applied", "preset", preset.ID)
	}

	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)
	return cfg, nil
}

// newGenerator loads configuration, installs the tracer provider and builds
// a generator. The returned stop function flushes telemetry.
func newGenerator(ctx context.Context) (*layout.Generator, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	stop := func() {}
	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		Enabled:     cfg.Telemetry.Enabled,
		Endpoint:    cfg.Telemetry.Endpoint,
		SampleRatio: cfg.Telemetry.SampleRatio,
	})
	if err != nil {
		// Continue without telemetry - generation still works
		logger.Warn("telemetry setup failed, running without traces", "error", err)
	} else {
		stop = func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("shutting down telemetry", "error", err)
			}
		}
	}

	gen, err := layout.New(cfg, logger)
	if err != nil {
		stop()
		return nil, nil, err
	}
	return gen, stop, nil
}
