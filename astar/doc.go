// Package astar provides a generic A* (best-first) search over implicit graphs.
//
// It exposes three entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive progress
//     reporting or debugging tools.
//   - SearchAll: run independent searches from many start nodes on a pool of
//     goroutines.
//
// The library is generic over node type and cost type. A single search is
// single-threaded and owns its frontier. The open list keeps duplicate entries
// for a node instead of supporting decrease-key; entries for nodes that are
// already closed are dropped when popped. The first goal popped is optimal as
// long as the heuristic is consistent.
package astar
