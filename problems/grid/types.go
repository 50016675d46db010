// Package grid defines core types, options, and sentinel errors for grid
// maze problems.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBlockedCell indicates a start or goal on a wall or outside the grid.
	ErrBlockedCell = errors.New("grid: cell is blocked or out of bounds")
	// ErrBadMaze indicates a maze drawing without exactly one start or with unknown runes.
	ErrBadMaze = errors.New("grid: bad maze drawing")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a grid coordinate. It is the state type of Problem.
type Cell struct {
	X, Y int
}

// String renders the cell as (x,y).
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a single step on the grid. It is the action type of Problem.
type Direction int

// Directions in clockwise order starting north; y grows southwards.
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var (
	directionNames   = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	directionOffsets = [...][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// String returns the compass abbreviation of d.
func (d Direction) String() string {
	if d < North || d > NorthWest {
		return "?"
	}

	return directionNames[d]
}

// Offset returns the (dx, dy) of one step in direction d.
func (d Direction) Offset() (dx, dy int) {
	o := directionOffsets[d]

	return o[0], o[1]
}

// GridOptions contains tunable parameters for grid problems.
type GridOptions struct {
	// OpenThreshold specifies the minimum cell value considered passable.
	OpenThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// OpenThreshold=1 (values ≥1 are open), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		OpenThreshold: 1,
		Conn:          Conn4,
	}
}
