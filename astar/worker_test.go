package astar

import (
	"context"
	"testing"
)

func TestSearchAll(t *testing.T) {
	goal := point{4, 4}
	starts := []point{{0, 0}, {4, 4}, {2, 4}, {4, 0}, {1, 1}}
	want := []int{8, 0, 2, 4, 6}

	results, err := SearchAll[point, int](context.Background(), grid{W: 5, H: 5}, starts, reached(goal), manhattan(goal), WithWorkers(3))
	if err != nil {
		t.Fatalf("SearchAll: %v", err)
	}
	if len(results) != len(starts) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(starts))
	}
	for i, result := range results {
		if !result.Found || result.TotalCost != want[i] {
			t.Errorf("results[%d] = %+v, want cost %d", i, result, want[i])
		}
		if result.Path[0] != starts[i] {
			t.Errorf("results[%d] starts at %v, want %v", i, result.Path[0], starts[i])
		}
	}
}

func TestSearchAllEmpty(t *testing.T) {
	goal := point{0, 0}
	results, err := SearchAll[point, int](context.Background(), grid{W: 1, H: 1}, nil, reached(goal), manhattan(goal))
	if err != nil || len(results) != 0 {
		t.Errorf("SearchAll(nil) = %v, %v; want empty, nil", results, err)
	}
}
