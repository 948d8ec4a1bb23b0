// Package nav is the terrain-aware movement layer agents steer with. A Grid
// marks which cells of a level are open; a GridNavigator plans over it with
// A* and walks the resulting path at constant speed.
//
// Positions are in world units. The resolv space the grid is sampled from is
// in level pixels; scale converts between the two.
package nav

import (
	"math"
	"slices"

	astar "github.com/beefsack/go-astar"
	"github.com/solarlune/resolv"

	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/tags"
)

// Grid represents the walkable areas of the level
type Grid struct {
	Width, Height int
	CellSize      float64 // World units per cell
	Nodes         [][]*Node
}

// Node is a single cell in the grid. Implements astar.Pather.
type Node struct {
	X, Y     int
	Walkable bool
	Grid     *Grid
}

var neighborDirs = []struct{ dx, dy int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1}, // Cardinal
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // Diagonal
}

// PathNeighbors returns adjacent walkable nodes. Diagonal steps are only
// offered when both cardinal cells beside them are open, so paths never
// clip a wall corner.
func (n *Node) PathNeighbors() []astar.Pather {
	neighbors := make([]astar.Pather, 0, len(neighborDirs))
	for _, d := range neighborDirs {
		if !n.Grid.walkable(n.X+d.dx, n.Y+d.dy) {
			continue
		}
		if d.dx != 0 && d.dy != 0 && (!n.Grid.walkable(n.X+d.dx, n.Y) || !n.Grid.walkable(n.X, n.Y+d.dy)) {
			continue
		}
		neighbors = append(neighbors, n.Grid.Nodes[n.Y+d.dy][n.X+d.dx])
	}
	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes
func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	return n.PathEstimatedCost(to)
}

// PathEstimatedCost is the Euclidean distance heuristic
func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	toNode := to.(*Node)
	return math.Hypot(float64(toNode.X-n.X), float64(toNode.Y-n.Y))
}

// NewGrid samples the solid geometry of space into a grid covering
// width x height world units. scale is level pixels per world unit.
func NewGrid(space *resolv.Space, width, height, cellSize, scale float64) *Grid {
	gridW := int(math.Ceil(width / cellSize))
	gridH := int(math.Ceil(height / cellSize))

	grid := &Grid{
		Width:    gridW,
		Height:   gridH,
		CellSize: cellSize,
		Nodes:    make([][]*Node, gridH),
	}

	for y := 0; y < gridH; y++ {
		grid.Nodes[y] = make([]*Node, gridW)
		for x := 0; x < gridW; x++ {
			grid.Nodes[y][x] = &Node{X: x, Y: y, Walkable: true, Grid: grid}
		}
	}
	if space == nil {
		return grid
	}

	cellPx := cellSize * scale
	inset := cellPx / 8
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			px := float64(x)*cellPx + inset
			py := float64(y)*cellPx + inset
			size := cellPx - 2*inset

			probe := resolv.NewObject(px, py, size, size)
			space.Add(probe)

			// The space only answers by cell, so confirm the overlap.
			if check := probe.Check(0, 0, tags.ResolvSolid); check != nil {
				for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
					if gamemath.RectsOverlap(px, py, size, size, o.X, o.Y, o.W, o.H) {
						grid.Nodes[y][x].Walkable = false
						break
					}
				}
			}

			space.Remove(probe)
		}
	}

	return grid
}

// SetBlocked marks a cell open or closed. Out-of-range cells are ignored.
func (g *Grid) SetBlocked(x, y int, blocked bool) {
	if g.inBounds(x, y) {
		g.Nodes[y][x].Walkable = !blocked
	}
}

// Cell returns the cell containing p, clamped to the grid.
func (g *Grid) Cell(p gamemath.Vec2) (int, int) {
	x := clampInt(int(math.Floor(p.X/g.CellSize)), 0, g.Width-1)
	y := clampInt(int(math.Floor(p.Y/g.CellSize)), 0, g.Height-1)
	return x, y
}

// Walkable reports whether p lies inside the grid on an open cell.
func (g *Grid) Walkable(p gamemath.Vec2) bool {
	x := int(math.Floor(p.X / g.CellSize))
	y := int(math.Floor(p.Y / g.CellSize))
	return g.walkable(x, y)
}

// CellCenter converts grid coordinates to the world position of the cell centre
func (g *Grid) CellCenter(x, y int) gamemath.Vec2 {
	return gamemath.V(
		float64(x)*g.CellSize+g.CellSize/2,
		float64(y)*g.CellSize+g.CellSize/2,
	)
}

// FindPath plans from one world position to another. The returned waypoints
// start at the first cell after from and end exactly on to, or on the centre
// of the nearest open cell when to is inside geometry.
func (g *Grid) FindPath(from, to gamemath.Vec2) ([]gamemath.Vec2, bool) {
	if g.Width == 0 || g.Height == 0 {
		return nil, false
	}
	sx, sy := g.Cell(from)
	gx, gy := g.Cell(to)

	start := g.Nodes[sy][sx]
	goal := g.Nodes[gy][gx]
	exactGoal := goal.Walkable && g.contains(to)

	// Handle case where start or goal is in solid geometry
	if !start.Walkable {
		start = g.nearestWalkableNode(sx, sy, nearestSearchCells)
	}
	if !goal.Walkable {
		goal = g.nearestWalkableNode(gx, gy, nearestSearchCells)
	}
	if start == nil || goal == nil {
		return nil, false
	}

	end := g.CellCenter(goal.X, goal.Y)
	if exactGoal {
		end = to
	}
	if start == goal {
		return []gamemath.Vec2{end}, true
	}

	path, _, found := astar.Path(start, goal)
	if !found {
		return nil, false
	}

	// astar hands the path back goal first.
	if path[0] != astar.Pather(start) {
		slices.Reverse(path)
	}
	waypoints := make([]gamemath.Vec2, 0, len(path))
	for _, p := range path[1 : len(path)-1] {
		n := p.(*Node)
		waypoints = append(waypoints, g.CellCenter(n.X, n.Y))
	}
	waypoints = append(waypoints, end)
	return waypoints, true
}

// NearestWalkable returns p itself when it is open, otherwise the closest
// open cell centre no further than radius from p.
func (g *Grid) NearestWalkable(p gamemath.Vec2, radius float64) (gamemath.Vec2, bool) {
	if g.Walkable(p) {
		return p, true
	}

	cx := int(math.Floor(p.X / g.CellSize))
	cy := int(math.Floor(p.Y / g.CellSize))
	reach := int(math.Ceil(radius/g.CellSize)) + 1

	best, bestDist, found := gamemath.Vec2{}, math.Inf(1), false
	for y := cy - reach; y <= cy+reach; y++ {
		for x := cx - reach; x <= cx+reach; x++ {
			if !g.walkable(x, y) {
				continue
			}
			c := g.CellCenter(x, y)
			if d := gamemath.Distance(p, c); d <= radius && d < bestDist {
				best, bestDist, found = c, d, true
			}
		}
	}
	return best, found
}

// nearestSearchCells bounds the ring search used to rescue starts and goals
// that sit inside geometry.
const nearestSearchCells = 10

// nearestWalkableNode finds the nearest walkable node in expanding squares
func (g *Grid) nearestWalkableNode(x, y, maxRadius int) *Node {
	for radius := 1; radius <= maxRadius; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if g.walkable(x+dx, y+dy) {
					return g.Nodes[y+dy][x+dx]
				}
			}
		}
	}
	return nil
}

func (g *Grid) contains(p gamemath.Vec2) bool {
	return p.X >= 0 && p.Y >= 0 &&
		p.X < float64(g.Width)*g.CellSize && p.Y < float64(g.Height)*g.CellSize
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func (g *Grid) walkable(x, y int) bool {
	return g.inBounds(x, y) && g.Nodes[y][x].Walkable
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}
