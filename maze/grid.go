package maze

import (
	"strings"

	astar "github.com/pdrpinto/astar-maze"
)

// Grid is a validated, immutable maze. Build one with Parse.
type Grid struct {
	height int
	width  int
	cells  []CellKind
	start  Coordinate
	exit   Coordinate
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Start returns the coordinate of the single start cell.
func (g *Grid) Start() Coordinate { return g.start }

// Exit returns the coordinate of the single exit cell.
func (g *Grid) Exit() Coordinate { return g.exit }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// Kind returns the kind of the cell at c. Out-of-bounds cells read as Wall.
func (g *Grid) Kind(c Coordinate) CellKind {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Row*g.width+c.Col]
}

// directions lists moves in the fixed order up, down, left, right.
var directions = [4]Coordinate{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors implements astar.Graph. Out-of-bounds and wall cells are skipped.
func (g *Grid) Neighbors(c Coordinate) []astar.Neighbor[Coordinate] {
	out := make([]astar.Neighbor[Coordinate], 0, len(directions))
	for _, d := range directions {
		n := Coordinate{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.Kind(n).Walkable() {
			out = append(out, astar.Neighbor[Coordinate]{ID: n, Cost: 1})
		}
	}
	return out
}

// String re-serializes the grid with the maze alphabet, rows joined by "\n".
func (g *Grid) String() string {
	return g.render(nil, 0)
}

// Render draws the grid with every path cell replaced by glyph.
func (g *Grid) Render(path Path, glyph rune) string {
	marked := make(map[Coordinate]bool, len(path))
	for _, c := range path {
		marked[c] = true
	}
	return g.render(marked, glyph)
}

func (g *Grid) render(marked map[Coordinate]bool, glyph rune) string {
	var b strings.Builder
	b.Grow(g.height * (g.width + 1))
	for row := 0; row < g.height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.width; col++ {
			c := Coordinate{Row: row, Col: col}
			if marked[c] {
				b.WriteRune(glyph)
				continue
			}
			b.WriteRune(g.Kind(c).Rune())
		}
	}
	return b.String()
}
