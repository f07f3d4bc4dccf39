package astar

import (
	"context"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable, CostType Cost] struct {
	Current   NodeType
	Cost      CostType
	OpenSize  int
	Closed    int
	Expanded  int
	Done      bool
	Found     bool
	Path      []NodeType
	StepIndex int
}

// Stepper runs the same search as Search, one node per call to Step.
type Stepper[NodeType comparable, CostType Cost] struct {
	ctx    context.Context
	search *search[NodeType, CostType]

	stepCount int
	done      bool
	found     bool
	result    Result[NodeType, CostType]
}

// NewStepper creates a new stepper positioned before the first expansion.
func NewStepper[NodeType comparable, CostType Cost](
	ctx context.Context,
	graph Graph[NodeType, CostType],
	startNode NodeType,
	goal Goal[NodeType],
	heuristic Heuristic[NodeType, CostType],
	options ...Option,
) *Stepper[NodeType, CostType] {
	return &Stepper[NodeType, CostType]{
		ctx:    ctx,
		search: newSearch(graph, startNode, goal, heuristic, newOptions(options)),
	}
}

// Step pops one node and either finishes on it or expands it. Once Done is
// reported, further calls return the final snapshot again.
func (s *Stepper[NodeType, CostType]) Step() (StepSnapshot[NodeType, CostType], error) {
	if s.done {
		return s.snapshot(nil), nil
	}
	if err := s.ctx.Err(); err != nil {
		s.done = true
		return s.snapshot(nil), err
	}
	if s.search.limitReached() {
		s.done = true
		return s.snapshot(nil), ErrExpansionLimit
	}

	s.stepCount++
	item, outcome := s.search.step()
	switch outcome {
	case stepFound:
		s.done = true
		s.found = true
		s.result = s.search.result(item)
	case stepExhausted:
		s.done = true
		s.result = s.search.result(nil)
	}
	return s.snapshot(item), nil
}

// Result returns the search outcome. It is meaningful once Step reported Done.
func (s *Stepper[NodeType, CostType]) Result() Result[NodeType, CostType] {
	return s.result
}

func (s *Stepper[NodeType, CostType]) snapshot(item *PriorityQueueItem[NodeType, CostType]) StepSnapshot[NodeType, CostType] {
	snapshot := StepSnapshot[NodeType, CostType]{
		OpenSize:  s.search.openSet.Len(),
		Closed:    s.search.closedSet.Size(),
		Expanded:  s.search.expandedNodes,
		Done:      s.done,
		Found:     s.found,
		StepIndex: s.stepCount,
	}
	if item != nil {
		snapshot.Current = item.Node
		snapshot.Cost = item.GScore
	}
	if s.found {
		snapshot.Path = s.result.Path
	}
	return snapshot
}
