// Package astar provides a generic and concurrent A* pathfinding implementation.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// The library is generic over node type and uses a worker pool to score
// neighbors while a single orchestrator owns the frontier. The orchestrator
// applies worker proposals in neighbor order and breaks frontier ties by the
// lower heuristic and then insertion order, so a search over the same graph
// always returns the same path regardless of how many workers ran it.
//
// The maze subpackage parses text mazes into a Graph and solves them.
package astar
