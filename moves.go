package amphipod

import "github.com/pdrpinto/amphipod/astar"

// Move is one legal successor of a state and the energy it costs.
type Move = astar.Neighbor[State, int]

// Moves returns every legal successor of s. A unit either leaves a room for a
// hallway slot, or goes from the hallway straight into its own room; no other
// move exists.
func (c Config) Moves(s State) []Move {
	var moves []Move
	for r := 0; r < NumRooms; r++ {
		moves = c.roomToHall(s, r, moves)
	}
	for pos := 0; pos < HallwayLength; pos++ {
		moves = c.hallToRoom(s, pos, moves)
	}
	return moves
}

// Neighbors makes Config an astar.Graph over burrow states.
func (c Config) Neighbors(s State) []Move { return c.Moves(s) }

func (c Config) roomToHall(s State, r int, moves []Move) []Move {
	d := c.top(s, r)
	if d < 0 || c.open(s, r) {
		return moves
	}
	p := s.rooms[r][d]
	entrance := c.entrances[r]
	w := c.Cost(p)

	emit := func(pos int) {
		next := s
		next.rooms[r][d] = Empty
		next.hall[pos] = p
		moves = append(moves, Move{ID: next, Cost: (d + 1 + absDiff(pos, entrance)) * w})
	}
	for pos := entrance - 1; pos >= 0 && s.hall[pos] == Empty; pos-- {
		if !c.blocked[pos] {
			emit(pos)
		}
	}
	for pos := entrance + 1; pos < HallwayLength && s.hall[pos] == Empty; pos++ {
		if !c.blocked[pos] {
			emit(pos)
		}
	}
	return moves
}

func (c Config) hallToRoom(s State, pos int, moves []Move) []Move {
	p := s.hall[pos]
	if p == Empty {
		return moves
	}
	r := p.Type()
	if !c.open(s, r) {
		return moves
	}
	entrance := c.entrances[r]
	lo, hi := min(pos, entrance), max(pos, entrance)
	for x := lo + 1; x < hi; x++ {
		if s.hall[x] != Empty {
			return moves
		}
	}

	// Fill from the back so no gap is left behind a settled unit.
	d := c.depth - 1
	for d >= 0 && s.rooms[r][d] != Empty {
		d--
	}
	if d < 0 {
		return moves
	}

	next := s
	next.hall[pos] = Empty
	next.rooms[r][d] = p
	return append(moves, Move{ID: next, Cost: (hi - lo + d + 1) * c.Cost(p)})
}
