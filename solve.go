package amphipod

import (
	"context"

	"github.com/pdrpinto/amphipod/astar"
)

// Solution is the outcome of one search.
type Solution struct {
	// Cost is the minimum total energy. It is only meaningful when Found.
	Cost  int
	Found bool
	// Path holds every state from the start to the goal, and Costs[i] the
	// energy spent to reach Path[i]. Both are nil when the search ran
	// without path tracking or found nothing.
	Path     []State
	Costs    []int
	Expanded int
}

// Solve returns the minimum energy needed to organise start, and false if no
// sequence of legal moves reaches a goal. A start that is already organised
// costs 0 and reports true.
func Solve(c Config, start State) (int, bool) {
	solution, err := Search(context.Background(), c, start, astar.WithPath(false))
	if err != nil {
		// Only cancellation or an expansion limit can fail, and neither is set.
		panic(err)
	}
	return solution.Cost, solution.Found
}

// Search runs A* over the burrow from start with c's move generator and
// heuristic. Options are passed to astar.Search.
func Search(ctx context.Context, c Config, start State, options ...astar.Option) (Solution, error) {
	result, err := astar.Search[State, int](ctx, c, start, c.IsGoal, c.Heuristic, options...)
	return newSolution(result), err
}

// SolveAll searches from every start concurrently. solutions[i] belongs to
// starts[i].
func SolveAll(ctx context.Context, c Config, starts []State, options ...astar.Option) ([]Solution, error) {
	results, err := astar.SearchAll[State, int](ctx, c, starts, c.IsGoal, c.Heuristic, options...)
	if err != nil {
		return nil, err
	}
	solutions := make([]Solution, len(results))
	for i, result := range results {
		solutions[i] = newSolution(result)
	}
	return solutions, nil
}

func newSolution(result astar.Result[State, int]) Solution {
	return Solution{
		Cost:     result.TotalCost,
		Found:    result.Found,
		Path:     result.Path,
		Costs:    result.PathCosts,
		Expanded: result.ExpandedNodes,
	}
}
