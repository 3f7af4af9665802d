package world

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazegen/internal/telemetry"
)

// HallwayKind selects how a hallway is routed.
type HallwayKind int

const (
	// HallwayDirect descends the combined hallway cost field in one run.
	HallwayDirect HallwayKind = iota
	// HallwayMeandering routes through one or two random waypoints.
	HallwayMeandering
)

// String returns the hallway kind name.
func (k HallwayKind) String() string {
	if k == HallwayMeandering {
		return "meandering"
	}
	return "direct"
}

// ParseHallwayKind converts a name such as "direct" into a HallwayKind.
func ParseHallwayKind(s string) (HallwayKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "direct":
		return HallwayDirect, nil
	case "meandering", "meander":
		return HallwayMeandering, nil
	default:
		return HallwayDirect, fmt.Errorf("unknown hallway kind %q", s)
	}
}

// straightChance is the percentage of steps that keep the first cheapest
// neighbor in canonical order instead of a random tied one.
const straightChance = 80

// GenerateHallway carves a hallway from start to stop and returns the walked
// path, endpoints included. Only the cells strictly between the endpoints
// are opened. An empty result means no hallway was carved.
func (g *Grid) GenerateHallway(ctx context.Context, start, stop Position, kind HallwayKind) []Position {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate_hallway")
	defer span.End()

	if !g.inBounds(start) || !g.inBounds(stop) {
		return nil
	}

	var path []Position
	switch kind {
	case HallwayMeandering:
		path = g.meanderingPath(start, stop)
	default:
		path = g.descend(g.directCosts(stop), start)
	}
	g.assignPath(path)

	span.SetAttributes(
		attribute.String("hallway.kind", kind.String()),
		attribute.String("hallway.start", start.String()),
		attribute.String("hallway.stop", stop.String()),
		attribute.Int("hallway.length", len(path)),
	)
	return path
}

// CarveHallway is GenerateHallway for callers that need the endpoints
// joined. When the routed descent stalls it carves a plain rectilinear
// hallway instead, which always reaches stop. Cells carved by the stalled
// attempt stay open.
func (g *Grid) CarveHallway(ctx context.Context, start, stop Position, kind HallwayKind) ([]Position, error) {
	path := g.GenerateHallway(ctx, start, stop, kind)
	if !endsAt(path, stop) {
		path = g.fallbackHallway(start, stop)
	}
	if !endsAt(path, stop) {
		return path, fmt.Errorf("%w: %s to %s", ErrPathUnreachable, start, stop)
	}
	return path, nil
}

// fallbackHallway descends the bare distance field of stop. Every step
// strictly lowers the distance, so it cannot stall.
func (g *Grid) fallbackHallway(start, stop Position) []Position {
	if !g.inBounds(start) || !g.inBounds(stop) {
		return nil
	}
	path := g.findPath(g.distanceCosts(stop, RectilinearDistance), start, true)
	g.assignPath(path)
	return path
}

// directCosts combines smoothed hallway costs with the rectilinear distance
// to stop. The stop cell is forced to zero so descent terminates there.
func (g *Grid) directCosts(stop Position) costField {
	costs := g.convolve(g.hallwayCosts(), hallwayKernel, AnchorCenter, 0, 0)
	costs[stop.X][stop.Y] = 0
	costs.add(g.distanceCosts(stop, RectilinearDistance))
	return costs
}

// descend walks costs from start with the grid's descent policy.
func (g *Grid) descend(costs costField, start Position) []Position {
	if g.descent == DescentWandering {
		return g.findPathWandering(costs, start, g.meanderFactor)
	}
	return g.findPath(costs, start, true)
}

type waypoint struct {
	pos      Position
	distance float64
}

// meanderingPath routes through one or two random interior waypoints,
// visited in order of rectilinear distance from start. Each leg descends the
// Euclidean distance field of its target. Legs are joined into one route so
// the waypoints are carved too and the hallway has no gaps. If a leg fails,
// the route walked so far is returned.
func (g *Grid) meanderingPath(start, stop Position) []Position {
	waypoints := []waypoint{{pos: start}}
	for n := 1 + g.rng.Intn(2); n > 0; n-- {
		p := g.randomInteriorPosition()
		waypoints = append(waypoints, waypoint{pos: p, distance: RectilinearDistance(start, p)})
	}
	waypoints = append(waypoints, waypoint{pos: stop, distance: math.Inf(1)})
	slices.SortStableFunc(waypoints, func(a, b waypoint) int {
		return cmp.Compare(a.distance, b.distance)
	})

	route := []Position{start}
	for i := 1; i < len(waypoints); i++ {
		leg := g.findPath(g.distanceCosts(waypoints[i].pos, Distance), waypoints[i-1].pos, false)
		if len(leg) == 0 {
			return route
		}
		route = append(route, leg[1:]...)
	}
	return route
}

// findPath walks greedily from start to the cheapest unvisited axis neighbor
// until it stands on a zero-cost cell. Ties go to the first neighbor in
// canonical order most of the time when straight is set, and to a uniformly
// random one otherwise. It returns nil if the walk gets boxed in or runs out
// of steps.
func (g *Grid) findPath(costs costField, start Position, straight bool) []Position {
	path := []Position{start}
	visited := mapset.New[Position]()
	visited.Put(start)

	for i := 0; i < g.height*g.width; i++ {
		current := path[len(path)-1]
		if costs.at(current) == 0 {
			return path
		}

		var cheapest []Position
		best := math.Inf(1)
		for _, n := range g.Neighbors(current) {
			if visited.Has(n) {
				continue
			}
			switch c := costs.at(n); {
			case c < best:
				best = c
				cheapest = append(cheapest[:0], n)
			case c == best:
				cheapest = append(cheapest, n)
			}
		}
		if len(cheapest) == 0 {
			return nil
		}

		next := cheapest[0]
		if !straight || g.rng.Intn(100) >= straightChance {
			next = cheapest[g.rng.Intn(len(cheapest))]
		}
		path = append(path, next)
		visited.Put(next)
	}

	if costs.at(path[len(path)-1]) == 0 {
		return path
	}
	return nil
}
