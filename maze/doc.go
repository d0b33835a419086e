// Package maze parses text mazes and solves them with the astar engine.
//
// The alphabet is '#' for walls, ' ' for open floor, '^' for the single start
// and 'E' for the single exit. The outer ring may hold walls, the start or the
// exit, never open floor. Movement is 4-directional at unit cost.
//
// Parse and FindPath keep no state between calls, and Grid and Path values are
// never mutated after they are returned.
package maze
