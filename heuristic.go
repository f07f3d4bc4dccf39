package amphipod

// Heuristic returns a lower bound on the energy still needed to reach a goal
// from s. Every unit that is not settled is charged independently, ignoring
// the other units:
//
//   - from the hallway, the walk to its room's entrance;
//   - from a room, the climb out plus the walk to its room's entrance (or the
//     shortest round trip when it has to step out of its own room to let a
//     mismatched unit behind it leave);
//   - per type, the descent into the target room. Rooms fill from the back,
//     so the i-th unit to arrive lands one slot shallower than the previous.
//
// Hallway to room moves lower the bound by exactly their cost, and every room
// unit pays at least its charge in any real solution, so the bound is both
// admissible and consistent.
func (c Config) Heuristic(s State) int {
	var pending [NumTypes]int
	h := 0

	for pos, p := range s.hall {
		if p == Empty {
			continue
		}
		t := p.Type()
		pending[t]++
		h += absDiff(pos, c.entrances[t]) * c.costs[t]
	}

	var settled [NumRooms]int
	for r := 0; r < NumRooms; r++ {
		from := c.settledFrom(s, r)
		settled[r] = c.depth - from
		for d := 0; d < from; d++ {
			p := s.rooms[r][d]
			if p == Empty {
				continue
			}
			t := p.Type()
			pending[t]++
			walk := c.detour[r]
			if t != r {
				walk = absDiff(c.entrances[r], c.entrances[t])
			}
			h += (d + 1 + walk) * c.costs[t]
		}
	}

	for t := 0; t < NumTypes; t++ {
		free := c.depth - settled[t]
		for i := 0; i < pending[t]; i++ {
			// More pending units than free slots cannot be solved at all;
			// keep charging one step so the bound stays positive.
			h += max(free-i, 1) * c.costs[t]
		}
	}
	return h
}
