package astar

import (
	"container/heap"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weightedGraph is an adjacency list keyed by node name.
type weightedGraph map[string][]Neighbor[string]

func (g weightedGraph) Neighbors(node string) []Neighbor[string] { return g[node] }

func zeroHeuristic(string, string) float64 { return 0 }

// diamond has a cheap-looking first hop that leads to the expensive route.
var diamond = weightedGraph{
	"s": {{ID: "a", Cost: 1}, {ID: "b", Cost: 2}},
	"a": {{ID: "g", Cost: 10}},
	"b": {{ID: "c", Cost: 1}},
	"c": {{ID: "g", Cost: 1}},
}

func TestSearch(t *testing.T) {
	t.Run("finds the cheapest route", func(t *testing.T) {
		result, err := Search[string](context.Background(), diamond, "s", "g", zeroHeuristic)
		require.NoError(t, err)

		assert.True(t, result.Found)
		assert.Equal(t, []string{"s", "b", "c", "g"}, result.Path)
		assert.Equal(t, 4.0, result.TotalCost)
		assert.Positive(t, result.ExpandedNodes)
	})

	t.Run("start equals goal", func(t *testing.T) {
		result, err := Search[string](context.Background(), diamond, "s", "s", zeroHeuristic)
		require.NoError(t, err)
		assert.Equal(t, []string{"s"}, result.Path)
		assert.Equal(t, 0.0, result.TotalCost)
	})

	t.Run("unreachable goal", func(t *testing.T) {
		result, err := Search[string](context.Background(), diamond, "s", "z", zeroHeuristic)
		assert.ErrorIs(t, err, ErrNoPath)
		assert.False(t, result.Found)
		assert.Nil(t, result.Path)
		assert.Equal(t, 5, result.ExpandedNodes)
	})

	t.Run("expansion cap", func(t *testing.T) {
		_, err := Search[string](context.Background(), diamond, "s", "g", zeroHeuristic, WithMaxExpansions(2))
		assert.ErrorIs(t, err, ErrExpansionLimit)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Search[string](ctx, diamond, "s", "g", zeroHeuristic)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("worker count does not change the result", func(t *testing.T) {
		base, err := Search[string](context.Background(), diamond, "s", "g", zeroHeuristic, WithWorkers(1))
		require.NoError(t, err)
		for _, workers := range []int{0, 2, 3, 16} {
			result, err := Search[string](context.Background(), diamond, "s", "g", zeroHeuristic, WithWorkers(workers))
			require.NoError(t, err)
			assert.Equal(t, base, result, "workers=%d", workers)
		}
	})
}

func TestSearchReopensOnCheaperRoute(t *testing.T) {
	// An inconsistent heuristic closes "m" through the expensive edge first.
	graph := weightedGraph{
		"s": {{ID: "m", Cost: 5}, {ID: "x", Cost: 1}},
		"x": {{ID: "m", Cost: 1}},
		"m": {{ID: "g", Cost: 10}},
	}
	h := func(from, _ string) float64 {
		if from == "x" {
			return 10
		}
		return 0
	}

	result, err := Search[string](context.Background(), graph, "s", "g", h)
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "x", "m", "g"}, result.Path)
	assert.Equal(t, 12.0, result.TotalCost)
}

func TestPriorityQueueTieBreak(t *testing.T) {
	queue := make(PriorityQueue[string], 0)
	heap.Init(&queue)
	heap.Push(&queue, &PriorityQueueItem[string]{Node: "late-low-h", FCost: 4, HScore: 1, Seq: 3})
	heap.Push(&queue, &PriorityQueueItem[string]{Node: "first", FCost: 4, HScore: 2, Seq: 0})
	heap.Push(&queue, &PriorityQueueItem[string]{Node: "second", FCost: 4, HScore: 2, Seq: 1})
	heap.Push(&queue, &PriorityQueueItem[string]{Node: "cheapest", FCost: 3, HScore: 3, Seq: 2})

	var order []string
	for queue.Len() > 0 {
		order = append(order, heap.Pop(&queue).(*PriorityQueueItem[string]).Node)
	}
	assert.Equal(t, []string{"cheapest", "late-low-h", "first", "second"}, order)
}
