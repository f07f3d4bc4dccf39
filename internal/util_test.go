package internal

import (
	"slices"
	"testing"
)

func TestReconstructPath(t *testing.T) {
	cameFrom := map[string]string{
		"b": "a",
		"c": "b",
		"d": "c",
		"x": "y",
	}

	tests := []struct {
		name    string
		current string
		start   string
		want    []string
	}{
		{"full chain", "d", "a", []string{"a", "b", "c", "d"}},
		{"start only", "a", "a", []string{"a"}},
		{"partial chain", "c", "b", []string{"b", "c"}},
		{"broken chain stops at root", "x", "a", []string{"y", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReconstructPath(cameFrom, tt.current, tt.start)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ReconstructPath(%q, %q) = %v, want %v", tt.current, tt.start, got, tt.want)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	Reverse(s)
	if want := []int{5, 4, 3, 2, 1}; !slices.Equal(s, want) {
		t.Errorf("Reverse = %v, want %v", s, want)
	}
	var empty []int
	Reverse(empty)
}
