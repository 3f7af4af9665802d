package world

import (
	"math/rand"
	"strings"
	"time"
)

// Grid is a height × width array of tiles together with the rooms placed on
// it. The outermost ring of cells is never written.
type Grid struct {
	height int
	width  int
	tiles  [][]Tile
	rooms  []*Room

	start, goal  Position
	hasEndpoints bool

	rng           *rand.Rand
	descent       DescentPolicy
	meanderFactor int
}

// Option configures a Grid.
type Option func(*Grid)

// WithRand sets the random source used for every random draw the engine
// makes. Two grids built with equally seeded sources generate identical
// layouts.
func WithRand(rng *rand.Rand) Option {
	return func(g *Grid) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithSeed is WithRand with a fresh source seeded by seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithDescent selects the descent policy used for direct hallways.
func WithDescent(policy DescentPolicy) Option {
	return func(g *Grid) {
		g.descent = policy
	}
}

// WithMeanderFactor sets the detour probability, in percent, used by the
// wandering descent policy. Values are clamped to [0, 100].
func WithMeanderFactor(percent int) Option {
	return func(g *Grid) {
		g.meanderFactor = min(max(percent, 0), 100)
	}
}

// New creates a grid with every tile closed.
func New(height, width int, opts ...Option) *Grid {
	height = max(height, 0)
	width = max(width, 0)

	tiles := make([][]Tile, height)
	for x := range tiles {
		tiles[x] = make([]Tile, width)
	}

	g := &Grid{
		height:        height,
		width:         width,
		tiles:         tiles,
		rooms:         make([]*Room, 0),
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		descent:       DescentGreedy,
		meanderFactor: defaultMeanderFactor,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// IsWithinBounds reports whether (x, y) lies in the writable interior,
// excluding the perimeter ring.
func (g *Grid) IsWithinBounds(x, y int) bool {
	return x > 0 && x < g.height-1 && y > 0 && y < g.width-1
}

func (g *Grid) inBounds(p Position) bool {
	return g.IsWithinBounds(p.X, p.Y)
}

// Neighbors returns the in-bounds axis neighbors of p in the fixed order
// +x, -x, +y, -y.
func (g *Grid) Neighbors(p Position) []Position {
	return g.around(p, neighborOffsets)
}

// Diagonals returns the in-bounds diagonal neighbors of p.
func (g *Grid) Diagonals(p Position) []Position {
	return g.around(p, diagonalOffsets)
}

func (g *Grid) around(p Position, offsets [4]Position) []Position {
	out := make([]Position, 0, len(offsets))
	for _, o := range offsets {
		if n := p.Add(o); g.inBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Tile returns the tile at p. Positions outside the grid read as a fresh
// closed tile.
func (g *Grid) Tile(p Position) Tile {
	if p.X < 0 || p.X >= g.height || p.Y < 0 || p.Y >= g.width {
		return Tile{}
	}
	return g.tiles[p.X][p.Y]
}

// Opacity returns the opacity of the tile at p.
func (g *Grid) Opacity(p Position) Opacity {
	return g.Tile(p).Opacity
}

// Type returns the type of the tile at p.
func (g *Grid) Type(p Position) TileType {
	return g.Tile(p).Type
}

// CostAt returns the scratch cost last recorded for p.
func (g *Grid) CostAt(p Position) float64 {
	return g.Tile(p).Cost
}

// IsOpen returns true if the tile at p can be walked on.
func (g *Grid) IsOpen(p Position) bool {
	return g.Tile(p).IsOpen()
}

// Rooms returns a copy of the placed rooms in their current order.
func (g *Grid) Rooms() []Room {
	out := make([]Room, len(g.rooms))
	for i, r := range g.rooms {
		out[i] = *r
	}
	return out
}

// Start returns the start position and whether one has been placed.
func (g *Grid) Start() (Position, bool) {
	return g.start, g.hasEndpoints
}

// Goal returns the goal position and whether one has been placed.
func (g *Grid) Goal() (Position, bool) {
	return g.goal, g.hasEndpoints
}

// assignPosition merges tile into the cell at p. Writes outside the interior
// are ignored.
func (g *Grid) assignPosition(p Position, tile Tile) {
	if !g.inBounds(p) {
		return
	}
	g.tiles[p.X][p.Y] = mergeTile(g.tiles[p.X][p.Y], tile)
}

// assignArea writes tile to every cell of the rectangle spanned by a and b,
// starting at the top left corner and excluding the far edges. A degenerate
// axis still covers one cell.
func (g *Grid) assignArea(a, b Position, tile Tile) {
	top := min(a.X, b.X)
	left := min(a.Y, b.Y)
	rows := max(abs(a.X-b.X), 1)
	cols := max(abs(a.Y-b.Y), 1)
	for x := top; x < top+rows; x++ {
		for y := left; y < left+cols; y++ {
			g.assignPosition(Position{X: x, Y: y}, tile)
		}
	}
}

// assignPath commits the interior of path, excluding both endpoints, as
// open hallway.
func (g *Grid) assignPath(path []Position) {
	if len(path) < 3 {
		return
	}
	first, last := path[0], path[len(path)-1]
	for _, p := range path[1 : len(path)-1] {
		if p == first || p == last {
			continue
		}
		g.assignPosition(p, NewTile(Open, TypeHallway))
	}
}

// randomInt returns a uniform integer in [lo, hi].
func (g *Grid) randomInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// randomInteriorPosition returns a uniform position inside the perimeter.
func (g *Grid) randomInteriorPosition() Position {
	return Position{
		X: g.randomInt(1, g.height-2),
		Y: g.randomInt(1, g.width-2),
	}
}

// GenerateNoise opens roughly half of the interior at random.
func (g *Grid) GenerateNoise() {
	for x := 1; x < g.height-1; x++ {
		for y := 1; y < g.width-1; y++ {
			if g.rng.Float64() > 0.5 {
				g.assignPosition(Position{X: x, Y: y}, NewTile(Open, TypeNone))
			}
		}
	}
}

// GenerateStartAndGoal places a start and a distinct goal tile at random
// interior positions. On a grid whose interior is a single cell the goal
// shares the start's cell and keeps the start type.
func (g *Grid) GenerateStartAndGoal() {
	if g.height < 3 || g.width < 3 {
		return
	}
	g.start = g.randomInteriorPosition()
	g.goal = g.randomInteriorPosition()
	for i := 0; g.goal == g.start && i < g.height*g.width; i++ {
		g.goal = g.randomInteriorPosition()
	}
	g.hasEndpoints = true

	g.assignPosition(g.start, NewTile(Open, TypeStart))
	g.assignPosition(g.goal, NewTile(Open, TypeGoal))
}

// String renders the grid one row per line using Tile.Rune.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (g.width + 1))
	for x := 0; x < g.height; x++ {
		for y := 0; y < g.width; y++ {
			b.WriteRune(g.tiles[x][y].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
