package astar

import (
	"context"
	"errors"
	"runtime"
)

var (
	// ErrNoPath is returned when the frontier empties before the goal is popped.
	ErrNoPath = errors.New("no path found")
	// ErrExpansionLimit is returned when a search hits the WithMaxExpansions cap.
	ErrExpansionLimit = errors.New("expansion limit reached")
)

// Graph is generic over node type N.
// N must be comparable so it can be used in maps.
// Neighbors must return neighbors in a stable order for a given node.
type Graph[NodeType comparable] interface {
	Neighbors(node NodeType) []Neighbor[NodeType]
}

// Neighbor represents a reachable node with a cost.
type Neighbor[NodeType comparable] struct {
	ID   NodeType
	Cost float64
}

// Heuristic returns the estimated cost from node a to node b
type Heuristic[NodeType comparable] func(from NodeType, to NodeType) float64

// Result contains the outcome of a search
type Result[NodeType comparable] struct {
	Path          []NodeType
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	// MaxExpansions caps node expansions; zero or negative means no cap.
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many worker goroutines should expand neighbors.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxExpansions stops the search with ErrExpansionLimit after n expansions.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

func buildOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return searchOptions
}

// Search executes the concurrent A* search algorithm.
//
// Results are independent of the worker count: proposals are applied in the
// order the graph listed the neighbors, and frontier ties are broken by the
// lower heuristic and then by insertion order.
func Search[NodeType comparable](
	contextObject context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options ...Option,
) (Result[NodeType], error) {
	state := newSearchState(contextObject, graph, startNode, goalNode, heuristic, buildOptions(options))
	defer state.close()

	for {
		outcome, err := state.expandNext()
		if err != nil {
			return Result[NodeType]{ExpandedNodes: state.expandedNodes}, err
		}

		switch outcome.status {
		case statusFound:
			return Result[NodeType]{
				Path:          state.path(),
				TotalCost:     outcome.gScore,
				ExpandedNodes: state.expandedNodes,
				Found:         true,
			}, nil
		case statusExhausted:
			return Result[NodeType]{
				Path:          nil,
				TotalCost:     0,
				ExpandedNodes: state.expandedNodes,
				Found:         false,
			}, ErrNoPath
		}
	}
}
