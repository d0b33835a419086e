package maze

import "fmt"

// Coordinate addresses a cell by row and column.
type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// CellKind is the content of a single grid cell.
type CellKind uint8

const (
	Wall CellKind = iota
	Open
	Start
	Exit
)

// Maze alphabet.
const (
	WallRune  = '#'
	OpenRune  = ' '
	StartRune = '^'
	ExitRune  = 'E'
)

// kindOf maps an alphabet rune to its kind.
func kindOf(r rune) (CellKind, bool) {
	switch r {
	case WallRune:
		return Wall, true
	case OpenRune:
		return Open, true
	case StartRune:
		return Start, true
	case ExitRune:
		return Exit, true
	}
	return Wall, false
}

// Rune returns the alphabet symbol for k.
func (k CellKind) Rune() rune {
	switch k {
	case Open:
		return OpenRune
	case Start:
		return StartRune
	case Exit:
		return ExitRune
	default:
		return WallRune
	}
}

// Walkable reports whether a mover may stand on a cell of kind k.
func (k CellKind) Walkable() bool { return k != Wall }

func (k CellKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Start:
		return "start"
	case Exit:
		return "exit"
	}
	return fmt.Sprintf("CellKind(%d)", uint8(k))
}
