package astar

import (
	"container/heap"
	"context"

	"github.com/pdrpinto/astar-maze/internal"
)

type expandStatus int

const (
	statusExpanded expandStatus = iota
	statusFound
	statusExhausted
)

type expandOutcome[NodeType comparable] struct {
	status  expandStatus
	current NodeType
	gScore  float64
}

// searchState is the orchestrator shared by Search and Stepper. It alone owns
// the frontier and the bookkeeping maps; workers only score neighbors.
type searchState[NodeType comparable] struct {
	ctx       context.Context
	cancel    context.CancelFunc
	graph     Graph[NodeType]
	start     NodeType
	goal      NodeType
	heuristic Heuristic[NodeType]
	options   Options

	openSet    PriorityQueue[NodeType]
	openSetMap map[NodeType]*PriorityQueueItem[NodeType]
	closedSet  map[NodeType]bool
	cameFrom   map[NodeType]NodeType
	gScore     map[NodeType]float64

	expandCh chan ExpandTask[NodeType]
	relaxCh  chan RelaxProposal[NodeType]

	nextSeq       uint64
	expandedNodes int
	goalReached   bool
}

func newSearchState[NodeType comparable](
	parent context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options Options,
) *searchState[NodeType] {
	ctx, cancel := context.WithCancel(parent)
	s := &searchState[NodeType]{
		ctx: ctx, cancel: cancel,
		graph: graph, start: startNode, goal: goalNode, heuristic: heuristic,
		options:    options,
		openSet:    make(PriorityQueue[NodeType], 0),
		openSetMap: make(map[NodeType]*PriorityQueueItem[NodeType]),
		closedSet:  make(map[NodeType]bool),
		cameFrom:   make(map[NodeType]NodeType),
		gScore:     map[NodeType]float64{startNode: 0},
		expandCh:   make(chan ExpandTask[NodeType]),
		relaxCh:    make(chan RelaxProposal[NodeType]),
	}

	heap.Init(&s.openSet)
	h := heuristic(startNode, goalNode)
	s.push(startNode, 0, h, h)

	startWorkers(ctx, options.NumberOfWorkers, s.expandCh, s.relaxCh)
	return s
}

func (s *searchState[NodeType]) close() {
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *searchState[NodeType]) push(node NodeType, g, h, f float64) {
	item := &PriorityQueueItem[NodeType]{Node: node, GScore: g, HScore: h, FCost: f, Seq: s.nextSeq}
	s.nextSeq++
	heap.Push(&s.openSet, item)
	s.openSetMap[node] = item
}

// expandNext pops the best frontier entry and relaxes its neighbors.
func (s *searchState[NodeType]) expandNext() (expandOutcome[NodeType], error) {
	for {
		if err := s.ctx.Err(); err != nil {
			return expandOutcome[NodeType]{}, err
		}
		if s.openSet.Len() == 0 {
			return expandOutcome[NodeType]{status: statusExhausted}, nil
		}

		currentItem := heap.Pop(&s.openSet).(*PriorityQueueItem[NodeType])
		current := currentItem.Node
		delete(s.openSetMap, current)

		// Skip if already closed
		if s.closedSet[current] {
			continue
		}
		if s.options.MaxExpansions > 0 && s.expandedNodes >= s.options.MaxExpansions {
			return expandOutcome[NodeType]{}, ErrExpansionLimit
		}
		s.closedSet[current] = true
		s.expandedNodes++

		// Goal check
		if current == s.goal {
			s.goalReached = true
			return expandOutcome[NodeType]{status: statusFound, current: current, gScore: currentItem.GScore}, nil
		}

		proposals, err := s.score(current, currentItem.GScore)
		if err != nil {
			return expandOutcome[NodeType]{}, err
		}
		for _, proposal := range proposals {
			s.relax(proposal)
		}
		return expandOutcome[NodeType]{status: statusExpanded, current: current, gScore: currentItem.GScore}, nil
	}
}

// score fans the neighbors out to the workers and returns the proposals in
// neighbor order.
func (s *searchState[NodeType]) score(current NodeType, currentG float64) ([]RelaxProposal[NodeType], error) {
	neighbors := s.graph.Neighbors(current)
	if len(neighbors) == 0 {
		return nil, nil
	}

	go func() {
		for i, neighbor := range neighbors {
			task := ExpandTask[NodeType]{
				Index:         i,
				FromNode:      current,
				Neighbor:      neighbor,
				CurrentGScore: currentG,
				GoalNode:      s.goal,
				HeuristicFunc: s.heuristic,
			}
			select {
			case <-s.ctx.Done():
				return
			case s.expandCh <- task:
			}
		}
	}()

	proposals := make([]RelaxProposal[NodeType], len(neighbors))
	for i := 0; i < len(neighbors); i++ {
		select {
		case <-s.ctx.Done():
			return nil, s.ctx.Err()
		case proposal := <-s.relaxCh:
			proposals[proposal.Index] = proposal
		}
	}
	return proposals, nil
}

func (s *searchState[NodeType]) relax(proposal RelaxProposal[NodeType]) {
	currentG, exists := s.gScore[proposal.ToNode]
	if exists && proposal.GScore >= currentG {
		return
	}
	s.gScore[proposal.ToNode] = proposal.GScore
	s.cameFrom[proposal.ToNode] = proposal.FromNode

	if item, inOpen := s.openSetMap[proposal.ToNode]; inOpen {
		item.GScore = proposal.GScore
		item.FCost = proposal.FCost
		heap.Fix(&s.openSet, item.IndexInQueue)
		return
	}
	// A strictly better route re-opens a closed node.
	delete(s.closedSet, proposal.ToNode)
	s.push(proposal.ToNode, proposal.GScore, proposal.HScore, proposal.FCost)
}

func (s *searchState[NodeType]) path() []NodeType {
	if !s.goalReached {
		return nil
	}
	return internal.ReconstructPath(s.cameFrom, s.goal, s.start)
}
