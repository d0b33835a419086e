package maze

import (
	"context"
	"errors"
	"fmt"

	astar "github.com/pdrpinto/astar-maze"
)

// Path is an ordered walk from the start cell to the exit cell.
type Path []Coordinate

// Moves returns the number of steps in the path.
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Valid reports whether p runs from g's start to g's exit over walkable,
// 4-adjacent cells.
func (p Path) Valid(g *Grid) bool {
	if len(p) == 0 || p[0] != g.Start() || p[len(p)-1] != g.Exit() {
		return false
	}
	for i, c := range p {
		if !g.Kind(c).Walkable() {
			return false
		}
		if i > 0 && Manhattan(p[i-1], c) != 1 {
			return false
		}
	}
	return true
}

// Manhattan is |dr| + |dc|, admissible and consistent for unit-cost
// 4-directional moves.
func Manhattan(from, to Coordinate) float64 {
	dr := from.Row - to.Row
	if dr < 0 {
		dr = -dr
	}
	dc := from.Col - to.Col
	if dc < 0 {
		dc = -dc
	}
	return float64(dr + dc)
}

// DefaultExpansionCap bounds a search over g. Every cell can be expanded at
// most a few times, so hitting the cap means something is badly wrong.
func DefaultExpansionCap(g *Grid) int {
	return g.Height() * g.Width() * 4
}

// FindPath returns a shortest path from start to exit.
//
// An unreachable exit yields *NoPathError. When no WithMaxExpansions option is
// given, DefaultExpansionCap applies and exceeding it yields
// astar.ErrExpansionLimit.
func FindPath(ctx context.Context, g *Grid, start, exit Coordinate, opts ...astar.Option) (Path, error) {
	for _, c := range [2]Coordinate{start, exit} {
		if !g.InBounds(c) || !g.Kind(c).Walkable() {
			return nil, fmt.Errorf("%w: %s is %s", ErrInvalidEndpoint, c, g.Kind(c))
		}
	}

	options := append([]astar.Option{astar.WithMaxExpansions(DefaultExpansionCap(g))}, opts...)
	result, err := astar.Search[Coordinate](ctx, g, start, exit, Manhattan, options...)
	if errors.Is(err, astar.ErrNoPath) {
		return nil, &NoPathError{Start: start, Exit: exit, Expanded: result.ExpandedNodes}
	}
	if err != nil {
		return nil, fmt.Errorf("find path: %w", err)
	}
	return Path(result.Path), nil
}

// Solve parses text and finds a path between its start and exit.
func Solve(ctx context.Context, text string, opts ...astar.Option) (*Grid, Path, error) {
	g, err := Parse(text)
	if err != nil {
		return nil, nil, err
	}
	path, err := FindPath(ctx, g, g.Start(), g.Exit(), opts...)
	if err != nil {
		return g, nil, err
	}
	return g, path, nil
}
