// Package grid treats a 2D integer grid as a maze and exposes it as a
// search.Problem. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - One start cell and any number of goal cells
//   - ASCII maze drawings via ParseMaze
//
// Cells with value < OpenThreshold are walls; cells with value ≥ OpenThreshold are open.
// Every step costs 1, diagonal or not.
package grid

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// Grid is an immutable rectangular maze.
// Width and Height define dimensions; CellValues[y][x] holds the input value.
type Grid struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	OpenThreshold int
	directions    []Direction
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute step directions based on connectivity
	dirs := []Direction{North, East, South, West}
	if opts.Conn == Conn8 {
		dirs = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
	}

	return &Grid{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		OpenThreshold: opts.OpenThreshold,
		directions:    dirs,
	}, nil
}

// InBounds reports whether c lies within the grid boundaries.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Open reports whether c is inside the grid and passable.
func (g *Grid) Open(c Cell) bool {
	return g.InBounds(c) && g.CellValues[c.Y][c.X] >= g.OpenThreshold
}

// Directions returns the step directions allowed by the grid's connectivity.
func (g *Grid) Directions() []Direction {
	return g.directions
}

// Problem asks for a walk from Start to any goal cell.
type Problem struct {
	search.UnitCost[Cell, Direction]

	grid  *Grid
	start Cell
	goals map[Cell]struct{}
}

var _ search.Problem[Cell, Direction] = (*Problem)(nil)

// NewProblem returns a Problem on g. start and every goal must be open cells.
func NewProblem(g *Grid, start Cell, goals ...Cell) (*Problem, error) {
	if !g.Open(start) {
		return nil, fmt.Errorf("%w: start %s", ErrBlockedCell, start)
	}
	set := make(map[Cell]struct{}, len(goals))
	for _, c := range goals {
		if !g.Open(c) {
			return nil, fmt.Errorf("%w: goal %s", ErrBlockedCell, c)
		}
		set[c] = struct{}{}
	}

	return &Problem{grid: g, start: start, goals: set}, nil
}

// Grid returns the maze the problem is posed on.
func (p *Problem) Grid() *Grid { return p.grid }

// Initial implements search.Problem.
func (p *Problem) Initial() Cell { return p.start }

// GoalTest implements search.Problem.
func (p *Problem) GoalTest(c Cell) bool {
	_, ok := p.goals[c]

	return ok
}

// Actions implements search.Problem: every direction leading to an open cell,
// in clockwise order from north.
func (p *Problem) Actions(c Cell) []Direction {
	actions := make([]Direction, 0, len(p.grid.directions))
	for _, d := range p.grid.directions {
		if p.grid.Open(step(c, d)) {
			actions = append(actions, d)
		}
	}

	return actions
}

// Result implements search.Problem.
func (p *Problem) Result(c Cell, d Direction) Cell {
	return step(c, d)
}

func step(c Cell, d Direction) Cell {
	dx, dy := d.Offset()

	return Cell{X: c.X + dx, Y: c.Y + dy}
}
