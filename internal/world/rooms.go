package world

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/mazegen/internal/telemetry"
)

// Room placement padding: one ring of weight one around the footprint so
// rooms avoid touching existing structure.
const (
	roomKernelPad      = 1
	roomKernelPadValue = 1
)

// GenerateRooms places count rooms with sides drawn from [minSize, maxSize]
// and, if includeHallways is set, chains them together with hallways.
// Rooms placed before a failure stay on the grid.
func (g *Grid) GenerateRooms(ctx context.Context, count int, includeHallways bool, minSize, maxSize int) error {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "world.generate_rooms")
	defer span.End()

	startTime := time.Now()
	for i := 0; i < count; i++ {
		if _, err := g.PlaceRoom(ctx, minSize, maxSize); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "room placement failed")
			return fmt.Errorf("room %d: %w", i, err)
		}
	}

	hallways := 0
	if includeHallways {
		hallways = g.ConnectRooms(ctx)
	}

	span.SetAttributes(
		attribute.Int("grid.height", g.height),
		attribute.Int("grid.width", g.width),
		attribute.Int("rooms.requested", count),
		attribute.Int("rooms.total", len(g.rooms)),
		attribute.Int("rooms.hallways", hallways),
		attribute.Int64("rooms.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

// PlaceRoom samples a room size, places the room where the convolved room
// cost is lowest (ties broken uniformly at random) and commits it to the
// grid.
func (g *Grid) PlaceRoom(ctx context.Context, minSize, maxSize int) (Room, error) {
	if minSize < 1 || maxSize < minSize {
		return Room{}, fmt.Errorf("%w: invalid size bounds [%d, %d]", ErrRoomPlacementFailed, minSize, maxSize)
	}

	height := g.randomInt(minSize, maxSize)
	width := g.randomInt(minSize, maxSize)

	costs := g.convolve(g.roomCosts(), onesKernel(height, width), AnchorTopLeft, roomKernelPad, roomKernelPadValue)

	topLeft, ok := g.cheapestTopLeft(costs, height, width)
	if !ok {
		return Room{}, fmt.Errorf("%w: %dx%d room does not fit a %dx%d grid", ErrRoomPlacementFailed, height, width, g.height, g.width)
	}

	room := newRoom(topLeft, height, width, g.height, g.width)
	g.assignArea(room.TopLeft, room.BottomRight, NewTile(Open, TypeRoom))
	// Center goes last so the bulk footprint write cannot mask it.
	g.assignPosition(room.Center, NewTile(Open, TypeRoomCenter))
	g.rooms = append(g.rooms, &room)

	return room, nil
}

// cheapestTopLeft returns a uniformly chosen position among the cheapest top
// left corners whose height × width footprint stays inside the interior.
func (g *Grid) cheapestTopLeft(costs costField, height, width int) (Position, bool) {
	var ties []Position
	best := 0.0
	for x := 1; x < g.height-height; x++ {
		for y := 1; y < g.width-width; y++ {
			c := costs[x][y]
			switch {
			case len(ties) == 0 || c < best:
				best = c
				ties = append(ties[:0], Position{X: x, Y: y})
			case c == best:
				ties = append(ties, Position{X: x, Y: y})
			}
		}
	}
	if len(ties) == 0 {
		return Position{}, false
	}
	return ties[g.rng.Intn(len(ties))], true
}

// ConnectRooms orders rooms by the distance of their centers from the
// origin and carves a direct hallway from each unconnected room to the next
// one in that order. It returns the number of hallways carved.
//
// The chain follows origin distance, not a spanning tree, so two rooms that
// sort next to each other may be far apart.
func (g *Grid) ConnectRooms(ctx context.Context) int {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "world.connect_rooms")
	defer span.End()

	origin := Position{}
	for _, r := range g.rooms {
		r.SortOrder = Distance(r.Center, origin)
	}
	slices.SortStableFunc(g.rooms, func(a, b *Room) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})

	carved, fallbacks := 0, 0
	for i := 1; i < len(g.rooms); i++ {
		from, to := g.rooms[i-1], g.rooms[i]
		if from.Connected {
			continue
		}
		from.Connected = true

		path := g.GenerateHallway(ctx, from.Center, to.Center, HallwayDirect)
		if !endsAt(path, to.Center) {
			path = g.fallbackHallway(from.Center, to.Center)
			fallbacks++
		}
		if endsAt(path, to.Center) {
			carved++
		}
	}

	span.SetAttributes(
		attribute.Int("rooms.total", len(g.rooms)),
		attribute.Int("hallways.carved", carved),
		attribute.Int("hallways.fallbacks", fallbacks),
	)
	return carved
}

func endsAt(path []Position, p Position) bool {
	return len(path) > 0 && path[len(path)-1] == p
}
