package maze

import (
	"fmt"
	"strings"
)

// Parse validates maze text and builds a Grid.
//
// Lines may end in "\n" or "\r\n". Empty lines before the first and after the
// last maze row are ignored; anything else, including a line of spaces, is maze
// content. Rejections are *FormatError values whose Kind is one of the format
// sentinels, checked in this order: empty input, invalid character, ragged
// rows, degenerate size, open boundary, start count, exit count.
func Parse(text string) (*Grid, error) {
	lines := splitRows(text)
	if len(lines) == 0 {
		return nil, &FormatError{Kind: ErrEmpty, Row: -1, Col: -1, Msg: "no maze rows"}
	}

	g := &Grid{height: len(lines)}
	var starts, exits int

	for row, line := range lines {
		runes := []rune(line)
		if row == 0 {
			g.width = len(runes)
			g.cells = make([]CellKind, 0, g.height*g.width)
		}
		for col, r := range runes {
			kind, ok := kindOf(r)
			if !ok {
				return nil, cellErrorf(ErrInvalidCharacter, row, col, "%q at row %d, column %d", r, row, col)
			}
			switch kind {
			case Start:
				if starts == 0 {
					g.start = Coordinate{Row: row, Col: col}
				}
				starts++
			case Exit:
				if exits == 0 {
					g.exit = Coordinate{Row: row, Col: col}
				}
				exits++
			}
			g.cells = append(g.cells, kind)
		}
		if len(runes) != g.width {
			return nil, rowErrorf(ErrRaggedRows, row, "row %d has %d columns, expected %d", row, len(runes), g.width)
		}
	}

	if g.height < 2 || g.width < 2 {
		return nil, &FormatError{Kind: ErrDegenerate, Row: -1, Col: -1,
			Msg: fmt.Sprintf("maze must be at least 2x2, got %dx%d", g.height, g.width)}
	}

	if c, ok := firstOpenBoundary(g); ok {
		return nil, cellErrorf(ErrOpenBoundary, c.Row, c.Col, "open floor at row %d, column %d", c.Row, c.Col)
	}

	if starts != 1 {
		return nil, countError(ErrStartCount, StartRune, starts)
	}
	if exits != 1 {
		return nil, countError(ErrExitCount, ExitRune, exits)
	}
	return g, nil
}

// splitRows splits text into rows and drops leading and trailing empty lines.
func splitRows(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// firstOpenBoundary walks the outer ring in row-major order.
func firstOpenBoundary(g *Grid) (Coordinate, bool) {
	for row := 0; row < g.height; row++ {
		cols := []int{0, g.width - 1}
		if row == 0 || row == g.height-1 {
			cols = cols[:0]
			for col := 0; col < g.width; col++ {
				cols = append(cols, col)
			}
		}
		for _, col := range cols {
			c := Coordinate{Row: row, Col: col}
			if g.Kind(c) == Open {
				return c, true
			}
		}
	}
	return Coordinate{}, false
}
