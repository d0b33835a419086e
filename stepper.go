package astar

import (
	"context"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current   NodeType
	Open      map[NodeType]bool
	Closed    map[NodeType]bool
	CameFrom  map[NodeType]NodeType
	Done      bool
	Found     bool
	Path      []NodeType
	StepIndex int
}

// Stepper provides a step-by-step orchestrator over the concurrent workers
type Stepper[NodeType comparable] struct {
	state *searchState[NodeType]

	current   NodeType
	stepCount int
	done      bool
	found     bool
	path      []NodeType
}

// NewStepper creates a new stepper using the same worker-based expansion logic as Search
func NewStepper[NodeType comparable](
	parent context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options ...Option,
) *Stepper[NodeType] {
	return &Stepper[NodeType]{
		state: newSearchState(parent, graph, startNode, goalNode, heuristic, buildOptions(options)),
	}
}

// Close stops the workers
func (s *Stepper[NodeType]) Close() {
	s.state.close()
}

// Done reports whether the search has finished.
func (s *Stepper[NodeType]) Done() bool { return s.done }

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done every further call returns the final snapshot.
func (s *Stepper[NodeType]) Step() (StepSnapshot[NodeType], error) {
	if s.done {
		return s.snapshot(s.current), nil
	}

	outcome, err := s.state.expandNext()
	if err != nil {
		s.done = true
		return StepSnapshot[NodeType]{Done: true, Found: false, StepIndex: s.stepCount}, err
	}

	switch outcome.status {
	case statusExhausted:
		s.done = true
		var zero NodeType
		s.current = zero
		return s.snapshot(zero), nil
	case statusFound:
		s.stepCount++
		s.done = true
		s.found = true
		s.path = s.state.path()
	default:
		s.stepCount++
	}
	s.current = outcome.current
	return s.snapshot(outcome.current), nil
}

func (s *Stepper[NodeType]) snapshot(current NodeType) StepSnapshot[NodeType] {
	return StepSnapshot[NodeType]{
		Current:   current,
		Open:      s.openSetToBoolMap(),
		Closed:    copyBoolMap(s.state.closedSet),
		CameFrom:  copyCameFrom(s.state.cameFrom),
		Done:      s.done,
		Found:     s.found,
		Path:      append([]NodeType(nil), s.path...),
		StepIndex: s.stepCount,
	}
}

func (s *Stepper[NodeType]) openSetToBoolMap() map[NodeType]bool {
	m := make(map[NodeType]bool, len(s.state.openSetMap))
	for k := range s.state.openSetMap {
		m[k] = true
	}
	return m
}

func copyBoolMap[T comparable](m map[T]bool) map[T]bool {
	if m == nil {
		return nil
	}
	c := make(map[T]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func copyCameFrom[T comparable](m map[T]T) map[T]T {
	if m == nil {
		return nil
	}
	c := make(map[T]T, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
