package amphipod

import (
	"errors"
	"fmt"
)

// ErrInvalidState is returned by NewState for rows that do not fit the burrow.
var ErrInvalidState = errors.New("invalid burrow state")

// State is one arrangement of the burrow. It is a comparable value: two
// states are equal iff every slot matches, and a State can be used directly
// as a map key. Rooms are indexed from the entrance (0) to the back; slots at
// or beyond the configured depth are always Empty.
type State struct {
	hall  [HallwayLength]Pod
	rooms [NumRooms][MaxDepth]Pod
}

// NewState builds a start state with an empty hallway. rows lists the room
// contents from the entrance row down to the back row, one pod per room.
func NewState(c Config, rows [][NumRooms]Pod) (State, error) {
	var s State
	if len(rows) != c.depth {
		return s, fmt.Errorf("%w: %d rows for depth %d", ErrInvalidState, len(rows), c.depth)
	}
	for d, row := range rows {
		for r, p := range row {
			if p > Desert {
				return s, fmt.Errorf("%w: pod %d in room %d", ErrInvalidState, p, r)
			}
			s.rooms[r][d] = p
		}
	}
	for r := range s.rooms {
		for d := 1; d < c.depth; d++ {
			if s.rooms[r][d] == Empty && s.rooms[r][d-1] != Empty {
				return s, fmt.Errorf("%w: room %d has a gap at depth %d", ErrInvalidState, r, d)
			}
		}
	}
	return s, nil
}

// Hall returns the content of hallway slot pos.
func (s State) Hall(pos int) Pod { return s.hall[pos] }

// Room returns the content of room r at depth d.
func (s State) Room(r, d int) Pod { return s.rooms[r][d] }

// Units counts the units of each type in the state.
func (s State) Units() [NumTypes]int {
	var counts [NumTypes]int
	for _, p := range s.hall {
		if p != Empty {
			counts[p.Type()]++
		}
	}
	for _, room := range s.rooms {
		for _, p := range room {
			if p != Empty {
				counts[p.Type()]++
			}
		}
	}
	return counts
}

// IsGoal reports whether the hallway is empty and every room holds nothing
// but its own type.
func (c Config) IsGoal(s State) bool {
	for _, p := range s.hall {
		if p != Empty {
			return false
		}
	}
	for r := range s.rooms {
		if !c.open(s, r) {
			return false
		}
	}
	return true
}

// open reports whether room r contains only empty slots or its own type.
func (c Config) open(s State, r int) bool {
	want := PodForRoom(r)
	for d := 0; d < c.depth; d++ {
		if p := s.rooms[r][d]; p != Empty && p != want {
			return false
		}
	}
	return true
}

// top returns the depth of the shallowest occupied slot in room r, or -1.
func (c Config) top(s State, r int) int {
	for d := 0; d < c.depth; d++ {
		if s.rooms[r][d] != Empty {
			return d
		}
	}
	return -1
}

// settledFrom returns the shallowest depth from which room r holds only its
// own type down to the back. Units at or below it never move again.
func (c Config) settledFrom(s State, r int) int {
	want := PodForRoom(r)
	d := c.depth
	for d > 0 && s.rooms[r][d-1] == want {
		d--
	}
	return d
}
