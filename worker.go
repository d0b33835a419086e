package astar

import "context"

// ExpandTask represents a request from the orchestrator to the workers.
// Index is the neighbor's position in the Neighbors slice.
type ExpandTask[NodeType comparable] struct {
	Index         int
	FromNode      NodeType
	Neighbor      Neighbor[NodeType]
	CurrentGScore float64
	GoalNode      NodeType
	HeuristicFunc Heuristic[NodeType]
}

// RelaxProposal is the worker's suggestion for updating a path
type RelaxProposal[NodeType comparable] struct {
	Index    int
	FromNode NodeType
	ToNode   NodeType
	GScore   float64
	HScore   float64
	FCost    float64
}

// startWorkers launches the scoring pool. Workers exit when ctx is done.
func startWorkers[NodeType comparable](
	ctx context.Context,
	numberOfWorkers int,
	tasks <-chan ExpandTask[NodeType],
	proposals chan<- RelaxProposal[NodeType],
) {
	for i := 0; i < numberOfWorkers; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case task := <-tasks:
					tentativeG := task.CurrentGScore + task.Neighbor.Cost
					h := task.HeuristicFunc(task.Neighbor.ID, task.GoalNode)
					proposal := RelaxProposal[NodeType]{
						Index:    task.Index,
						FromNode: task.FromNode,
						ToNode:   task.Neighbor.ID,
						GScore:   tentativeG,
						HScore:   h,
						FCost:    tentativeG + h,
					}
					select {
					case <-ctx.Done():
						return
					case proposals <- proposal:
					}
				}
			}
		}()
	}
}
