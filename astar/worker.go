package astar

import (
	"context"

	"github.com/sw965/omw/parallel"
)

// SearchAll runs one independent Search per start node on a pool of
// goroutines sized by WithWorkers (default runtime.NumCPU()). results[i]
// belongs to startNodes[i]. The graph, goal and heuristic must be safe for
// concurrent use; each search owns its own frontier.
func SearchAll[NodeType comparable, CostType Cost](
	ctx context.Context,
	graph Graph[NodeType, CostType],
	startNodes []NodeType,
	goal Goal[NodeType],
	heuristic Heuristic[NodeType, CostType],
	options ...Option,
) ([]Result[NodeType, CostType], error) {
	n := len(startNodes)
	results := make([]Result[NodeType, CostType], n)
	if n == 0 {
		return results, nil
	}

	workers := newOptions(options).NumberOfWorkers
	if workers <= 0 || workers > n {
		workers = n
	}

	err := parallel.For(n, workers, func(workerId, idx int) error {
		result, err := Search(ctx, graph, startNodes[idx], goal, heuristic, options...)
		if err != nil {
			return err
		}
		results[idx] = result
		return nil
	})
	return results, err
}
