package internal

import "slices"

// ReconstructPath follows cameFrom back from goal and returns the walk in
// start-to-goal order. A goal with no recorded predecessor chain yields a
// single-node path, so callers only pass goals the search actually reached.
// The walk is bounded by len(cameFrom) so a corrupt map cannot loop forever.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	goal NodeType,
	start NodeType,
) []NodeType {
	path := make([]NodeType, 1, len(cameFrom)+1)
	path[0] = goal
	for node := goal; node != start && len(path) <= len(cameFrom); {
		previous, exists := cameFrom[node]
		if !exists {
			break
		}
		path = append(path, previous)
		node = previous
	}
	slices.Reverse(path)
	return path
}
