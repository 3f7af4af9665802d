// Package layout runs the generation phases against a fresh grid.
package layout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/mazegen/internal/config"
	"github.com/samdwyer/mazegen/internal/telemetry"
	"github.com/samdwyer/mazegen/internal/world"
)

// Result is a finished layout.
type Result struct {
	ID       uuid.UUID
	Seed     int64
	Grid     *world.Grid
	Summary  Summary
	Duration time.Duration
}

// Generator builds layouts from a validated configuration.
type Generator struct {
	cfg     config.Config
	hallway world.HallwayKind
	descent world.DescentPolicy
	logger  *log.Logger
}

// New validates cfg and returns a generator. A nil logger discards output.
func New(cfg config.Config, logger *log.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	hallway, err := cfg.Hallway()
	if err != nil {
		return nil, err
	}
	descent, err := cfg.DescentPolicy()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{cfg: cfg, hallway: hallway, descent: descent, logger: logger}, nil
}

// Generate builds one layout. Phases run in a fixed order: noise, rooms
// (with hallways), then start and goal (with their hallway).
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	tracer := telemetry.Tracer("layout")
	ctx, span := tracer.Start(ctx, "layout.generate")
	defer span.End()

	startTime := time.Now()
	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	id := uuid.New()
	logger := g.logger.With("layout", id.String())

	grid := world.New(g.cfg.Height, g.cfg.Width,
		world.WithRand(rand.New(rand.NewSource(seed))),
		world.WithDescent(g.descent),
		world.WithMeanderFactor(g.cfg.MeanderFactor),
	)

	if g.cfg.Noise {
		grid.GenerateNoise()
		logger.Debug("noise generated")
	}

	if err := g.placeRooms(ctx, grid, logger); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "room placement failed")
		return nil, err
	}

	if g.cfg.StartAndGoal {
		g.placeEndpoints(ctx, grid, logger)
	}

	result := &Result{
		ID:       id,
		Seed:     seed,
		Grid:     grid,
		Summary:  Summarize(grid),
		Duration: time.Since(startTime),
	}

	span.SetAttributes(
		attribute.String("layout.id", id.String()),
		attribute.Int64("layout.seed", seed),
		attribute.Int("layout.height", g.cfg.Height),
		attribute.Int("layout.width", g.cfg.Width),
		attribute.Int("layout.rooms", result.Summary.Rooms),
		attribute.Int("layout.overlapping_rooms", result.Summary.OverlappingRooms),
		attribute.Int("layout.open_tiles", result.Summary.Open),
		attribute.Bool("layout.rooms_connected", result.Summary.RoomsConnected),
		attribute.Int64("layout.generation_ms", result.Duration.Milliseconds()),
	)
	logger.Info("layout generated",
		"seed", seed,
		"rooms", result.Summary.Rooms,
		"open", result.Summary.Open,
		"connected", result.Summary.RoomsConnected,
		"duration", result.Duration,
	)
	return result, nil
}

// placeRooms places the configured rooms one by one. A room whose sampled
// size does not fit is resampled up to PlacementAttempts times. After that
// a last attempt samples only sizes that fit the interior.
func (g *Generator) placeRooms(ctx context.Context, grid *world.Grid, logger *log.Logger) error {
	if g.cfg.Rooms == 0 {
		return nil
	}

	for i := 0; i < g.cfg.Rooms; i++ {
		attempt := 0
		room, err := backoff.Retry(ctx, func() (world.Room, error) {
			if err := ctx.Err(); err != nil {
				return world.Room{}, backoff.Permanent(err)
			}
			attempt++
			room, err := grid.PlaceRoom(ctx, g.cfg.MinRoomSize, g.cfg.MaxRoomSize)
			if err != nil && !errors.Is(err, world.ErrRoomPlacementFailed) {
				return room, backoff.Permanent(err)
			}
			return room, err
		},
			backoff.WithBackOff(&backoff.ZeroBackOff{}),
			backoff.WithMaxTries(uint(g.cfg.PlacementAttempts)),
			backoff.WithNotify(func(err error, _ time.Duration) {
				logger.Warn("retrying room placement", "room", i, "attempt", attempt, "error", err)
			}),
		)
		if errors.Is(err, world.ErrRoomPlacementFailed) {
			room, err = g.placeClampedRoom(ctx, grid, logger, i)
		}
		if err != nil {
			return fmt.Errorf("room %d after %d attempts: %w", i, attempt, err)
		}
		logger.Debug("room placed",
			"room", i,
			"attempts", attempt,
			"top_left", room.TopLeft.String(),
			"height", room.Height,
			"width", room.Width,
			"center", room.Center.String(),
		)
	}

	if g.cfg.IncludeHallways {
		carved := grid.ConnectRooms(ctx)
		logger.Debug("rooms connected", "hallways", carved)
	}
	return nil
}

// placeClampedRoom caps the sampled size at the interior of the grid.
// Validate guarantees the minimum size fits, so this only fails on errors
// other than a bad sample.
func (g *Generator) placeClampedRoom(ctx context.Context, grid *world.Grid, logger *log.Logger, i int) (world.Room, error) {
	maxSize := max(min(g.cfg.MaxRoomSize, min(g.cfg.Height, g.cfg.Width)-2), g.cfg.MinRoomSize)
	logger.Warn("room placement attempts exhausted, clamping size",
		"room", i, "max_room_size", g.cfg.MaxRoomSize, "clamped", maxSize)
	return grid.PlaceRoom(ctx, g.cfg.MinRoomSize, maxSize)
}

// placeEndpoints places start and goal and optionally joins them.
func (g *Generator) placeEndpoints(ctx context.Context, grid *world.Grid, logger *log.Logger) {
	grid.GenerateStartAndGoal()
	start, _ := grid.Start()
	goal, _ := grid.Goal()
	logger.Debug("start and goal placed", "start", start.String(), "goal", goal.String())

	if !g.cfg.GoalHallway {
		return
	}
	path, err := grid.CarveHallway(ctx, start, goal, g.hallway)
	if err != nil {
		logger.Warn("no hallway between start and goal", "kind", g.hallway.String(), "error", err)
		return
	}
	logger.Debug("goal hallway carved", "kind", g.hallway.String(), "length", len(path))
}
