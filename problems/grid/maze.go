package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Maze runes understood by ParseMaze.
const (
	WallRune  = '#'
	OpenRune  = '.'
	StartRune = 'S'
	GoalRune  = 'G'
)

// ParseMaze reads an ASCII maze: '#' walls, '.' open cells, one 'S' start and
// any number of 'G' goals. Blank lines are skipped. Connectivity comes from conn.
func ParseMaze(r io.Reader, conn Connectivity) (*Problem, error) {
	var (
		values [][]int
		starts []Cell
		goals  []Cell
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		y := len(values)
		row := make([]int, 0, len(line))
		for x, ch := range []rune(line) {
			switch ch {
			case WallRune:
				row = append(row, 0)
				continue
			case OpenRune:
			case StartRune:
				starts = append(starts, Cell{X: x, Y: y})
			case GoalRune:
				goals = append(goals, Cell{X: x, Y: y})
			default:
				return nil, fmt.Errorf("%w: unknown rune %q at (%d,%d)", ErrBadMaze, ch, x, y)
			}
			row = append(row, 1)
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMaze, err)
	}
	if len(starts) != 1 {
		return nil, fmt.Errorf("%w: want exactly one %q, found %d", ErrBadMaze, StartRune, len(starts))
	}

	opts := DefaultGridOptions()
	opts.Conn = conn
	g, err := NewGrid(values, opts)
	if err != nil {
		return nil, err
	}

	return NewProblem(g, starts[0], goals...)
}

// Render draws the maze with the cells of path marked '*' (start and goals
// keep their letters).
func (p *Problem) Render(path []Cell) string {
	onPath := make(map[Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	var b strings.Builder
	for y := 0; y < p.grid.Height; y++ {
		for x := 0; x < p.grid.Width; x++ {
			c := Cell{X: x, Y: y}
			switch {
			case c == p.start:
				b.WriteRune(StartRune)
			case p.GoalTest(c):
				b.WriteRune(GoalRune)
			case !p.grid.Open(c):
				b.WriteRune(WallRune)
			case onPath[c]:
				b.WriteRune('*')
			default:
				b.WriteRune(OpenRune)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
