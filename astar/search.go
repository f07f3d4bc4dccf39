package astar

import (
	"container/heap"
	"context"
	"errors"
	"runtime"

	"github.com/pdrpinto/amphipod/internal"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/constraints"
)

// ErrExpansionLimit is returned when a search hits the limit set by WithMaxExpansions.
var ErrExpansionLimit = errors.New("astar: expansion limit reached")

// Cost is the set of types usable as edge weights.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Graph is generic over node type N and cost type C.
// N must be comparable so it can be used in maps.
type Graph[NodeType comparable, CostType Cost] interface {
	Neighbors(node NodeType) []Neighbor[NodeType, CostType]
}

// GraphFunc adapts a plain successor function to Graph.
type GraphFunc[NodeType comparable, CostType Cost] func(node NodeType) []Neighbor[NodeType, CostType]

func (f GraphFunc[NodeType, CostType]) Neighbors(node NodeType) []Neighbor[NodeType, CostType] {
	return f(node)
}

// Neighbor represents a reachable node with a cost.
type Neighbor[NodeType comparable, CostType Cost] struct {
	ID   NodeType
	Cost CostType
}

// Heuristic returns a lower bound on the remaining cost from node to any goal.
type Heuristic[NodeType comparable, CostType Cost] func(node NodeType) CostType

// Goal reports whether node terminates the search.
type Goal[NodeType comparable] func(node NodeType) bool

// Result contains the outcome of a search
type Result[NodeType comparable, CostType Cost] struct {
	Path []NodeType
	// PathCosts[i] is the accumulated cost of reaching Path[i].
	PathCosts     []CostType
	TotalCost     CostType
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	MaxExpansions   int
	TrackPath       bool
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many goroutines SearchAll runs searches on.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxExpansions stops the search with ErrExpansionLimit after n expansions.
// Zero means unlimited.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

// WithPath toggles path reconstruction. It is on by default; turning it off
// saves the came-from map.
func WithPath(track bool) Option {
	return func(options *Options) { options.TrackPath = track }
}

func newOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
		TrackPath:       true,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

type stepOutcome int

const (
	stepExpanded stepOutcome = iota
	stepFound
	stepExhausted
)

// search owns the frontier of one A* run. It is shared by Search and Stepper.
type search[NodeType comparable, CostType Cost] struct {
	graph     Graph[NodeType, CostType]
	goal      Goal[NodeType]
	heuristic Heuristic[NodeType, CostType]
	options   Options
	startNode NodeType

	openSet           PriorityQueue[NodeType, CostType]
	pathCostFromStart map[NodeType]CostType
	cameFrom          map[NodeType]NodeType
	closedSet         mapset.Set[NodeType]
	expandedNodes     int
}

func newSearch[NodeType comparable, CostType Cost](
	graph Graph[NodeType, CostType],
	startNode NodeType,
	goal Goal[NodeType],
	heuristic Heuristic[NodeType, CostType],
	options Options,
) *search[NodeType, CostType] {
	s := &search[NodeType, CostType]{
		graph:             graph,
		goal:              goal,
		heuristic:         heuristic,
		options:           options,
		startNode:         startNode,
		openSet:           make(PriorityQueue[NodeType, CostType], 0),
		pathCostFromStart: map[NodeType]CostType{startNode: 0},
		closedSet:         mapset.New[NodeType](),
	}
	if options.TrackPath {
		s.cameFrom = make(map[NodeType]NodeType)
	}
	heap.Init(&s.openSet)
	heap.Push(&s.openSet, &PriorityQueueItem[NodeType, CostType]{
		Node:   startNode,
		GScore: 0,
		FCost:  heuristic(startNode),
	})
	return s
}

func (s *search[NodeType, CostType]) limitReached() bool {
	return s.options.MaxExpansions > 0 && s.expandedNodes >= s.options.MaxExpansions
}

// step pops entries until it finds one that is not closed, then either
// reports it as a goal or expands it.
func (s *search[NodeType, CostType]) step() (*PriorityQueueItem[NodeType, CostType], stepOutcome) {
	for s.openSet.Len() > 0 {
		currentItem := heap.Pop(&s.openSet).(*PriorityQueueItem[NodeType, CostType])
		currentNode := currentItem.Node

		// Stale duplicate: a cheaper entry for the same node was pushed later.
		if s.closedSet.Has(currentNode) || currentItem.GScore > s.pathCostFromStart[currentNode] {
			continue
		}
		s.closedSet.Put(currentNode)

		if s.goal(currentNode) {
			return currentItem, stepFound
		}
		s.expand(currentItem)
		return currentItem, stepExpanded
	}
	return nil, stepExhausted
}

func (s *search[NodeType, CostType]) expand(currentItem *PriorityQueueItem[NodeType, CostType]) {
	s.expandedNodes++
	for _, neighbor := range s.graph.Neighbors(currentItem.Node) {
		if s.closedSet.Has(neighbor.ID) {
			continue
		}
		tentativeG := currentItem.GScore + neighbor.Cost
		if currentG, exists := s.pathCostFromStart[neighbor.ID]; exists && tentativeG >= currentG {
			continue
		}
		s.pathCostFromStart[neighbor.ID] = tentativeG
		if s.cameFrom != nil {
			s.cameFrom[neighbor.ID] = currentItem.Node
		}
		heap.Push(&s.openSet, &PriorityQueueItem[NodeType, CostType]{
			Node:   neighbor.ID,
			GScore: tentativeG,
			FCost:  tentativeG + s.heuristic(neighbor.ID),
		})
	}
}

func (s *search[NodeType, CostType]) result(goalItem *PriorityQueueItem[NodeType, CostType]) Result[NodeType, CostType] {
	if goalItem == nil {
		return Result[NodeType, CostType]{ExpandedNodes: s.expandedNodes}
	}
	result := Result[NodeType, CostType]{
		TotalCost:     goalItem.GScore,
		ExpandedNodes: s.expandedNodes,
		Found:         true,
	}
	if s.cameFrom != nil {
		result.Path = internal.ReconstructPath(s.cameFrom, goalItem.Node, s.startNode)
		result.PathCosts = make([]CostType, len(result.Path))
		for i, node := range result.Path {
			result.PathCosts[i] = s.pathCostFromStart[node]
		}
	}
	return result
}

// Search runs A* from startNode until a node satisfying goal is popped.
//
// An exhausted open list is not an error: the returned Result has Found set to
// false. The context is checked between expansions; when it is done the
// partial Result and ctx.Err() are returned.
func Search[NodeType comparable, CostType Cost](
	ctx context.Context,
	graph Graph[NodeType, CostType],
	startNode NodeType,
	goal Goal[NodeType],
	heuristic Heuristic[NodeType, CostType],
	options ...Option,
) (Result[NodeType, CostType], error) {
	s := newSearch(graph, startNode, goal, heuristic, newOptions(options))
	for {
		if err := ctx.Err(); err != nil {
			return s.result(nil), err
		}
		if s.limitReached() {
			return s.result(nil), ErrExpansionLimit
		}
		item, outcome := s.step()
		switch outcome {
		case stepFound:
			return s.result(item), nil
		case stepExhausted:
			return s.result(nil), nil
		}
	}
}
