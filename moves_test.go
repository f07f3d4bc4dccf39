package amphipod

import (
	"testing"
)

// reachable enumerates states breadth-first from start. limit caps the count;
// zero means the whole reachable space.
func reachable(cfg Config, start State, limit int) []State {
	seen := map[State]bool{start: true}
	order := []State{start}
	for i := 0; i < len(order); i++ {
		for _, m := range cfg.Moves(order[i]) {
			if seen[m.ID] {
				continue
			}
			if limit > 0 && len(order) >= limit {
				return order
			}
			seen[m.ID] = true
			order = append(order, m.ID)
		}
	}
	return order
}

func TestMovesFromExampleStart(t *testing.T) {
	cfg := MustConfig(2)
	start := mustState(t, cfg, exampleRows...)
	moves := cfg.Moves(start)

	// Every room releases its top unit to each of the seven hallway stops.
	if len(moves) != 4*7 {
		t.Fatalf("len(Moves) = %d, want 28", len(moves))
	}

	want := start
	want.rooms[2][0] = Empty
	want.hall[3] = b
	found := false
	for _, m := range moves {
		if m.ID == want {
			found = true
			if m.Cost != 40 {
				t.Errorf("cost of moving B from room C to column 3 = %d, want 40", m.Cost)
			}
		}
	}
	if !found {
		t.Errorf("move of B from room C to column 3 not generated")
	}
}

func TestRoomToHallCosts(t *testing.T) {
	cfg := MustConfig(4)
	s := mustState(t, cfg,
		[NumRooms]Pod{e, a, b, c},
		[NumRooms]Pod{e, b, a, c},
		[NumRooms]Pod{d, c, c, d},
		[NumRooms]Pod{a, d, d, b},
	)
	s.hall[5] = d

	costs := map[int]int{}
	for _, m := range cfg.roomToHall(s, 0, nil) {
		for pos := 0; pos < HallwayLength; pos++ {
			if m.ID.hall[pos] != s.hall[pos] {
				costs[pos] = m.Cost
			}
		}
	}
	// The D at depth 2 of room A climbs three slots; column 5 is taken so the
	// run to the right stops at column 3.
	want := map[int]int{0: 5000, 1: 4000, 3: 4000}
	if len(costs) != len(want) {
		t.Fatalf("destinations = %v, want %v", costs, want)
	}
	for pos, cost := range want {
		if costs[pos] != cost {
			t.Errorf("cost to column %d = %d, want %d", pos, costs[pos], cost)
		}
	}
}

func TestSettledRoomNeverReleases(t *testing.T) {
	cfg := MustConfig(2)
	s := mustState(t, cfg,
		[NumRooms]Pod{e, b, b, e},
		[NumRooms]Pod{a, c, c, d},
	)
	s.hall[0] = a
	s.hall[10] = d

	for _, m := range cfg.roomToHall(s, 0, nil) {
		t.Errorf("settled room A released a unit: %v", m)
	}
	for _, m := range cfg.roomToHall(s, 3, nil) {
		t.Errorf("settled room D released a unit: %v", m)
	}
	if moves := cfg.roomToHall(s, 1, nil); len(moves) == 0 {
		t.Errorf("unsettled room B released nothing")
	}
}

func TestHallToRoom(t *testing.T) {
	cfg := MustConfig(4)
	base := mustState(t, cfg,
		[NumRooms]Pod{e, e, e, e},
		[NumRooms]Pod{e, e, c, e},
		[NumRooms]Pod{e, b, c, d},
		[NumRooms]Pod{a, d, c, d},
	)

	t.Run("deepest empty slot", func(t *testing.T) {
		s := base
		s.hall[0] = a
		moves := cfg.hallToRoom(s, 0, nil)
		if len(moves) != 1 {
			t.Fatalf("len(moves) = %d, want 1", len(moves))
		}
		next := moves[0].ID
		if next.rooms[0][2] != a || next.hall[0] != Empty {
			t.Errorf("A not packed at depth 2: room %v", next.rooms[0])
		}
		// two columns, three slots down
		if moves[0].Cost != 5 {
			t.Errorf("cost = %d, want 5", moves[0].Cost)
		}
	})

	t.Run("room holding a stranger", func(t *testing.T) {
		s := base
		s.hall[10] = b
		if moves := cfg.hallToRoom(s, 10, nil); len(moves) != 0 {
			t.Errorf("B entered room B in front of a D: %v", moves)
		}
	})

	t.Run("blocked path", func(t *testing.T) {
		s := base
		s.hall[1] = d
		s.hall[3] = c
		if moves := cfg.hallToRoom(s, 1, nil); len(moves) != 0 {
			t.Errorf("D passed through C at column 3: %v", moves)
		}
		moves := cfg.hallToRoom(s, 3, nil)
		if len(moves) != 1 || moves[0].Cost != (3+1)*100 {
			t.Errorf("C from column 3 = %v, want one move costing 400", moves)
		}
	})

	t.Run("full room", func(t *testing.T) {
		full := mustState(t, MustConfig(1), [NumRooms]Pod{a, b, c, d})
		full.hall[0] = a
		if moves := MustConfig(1).hallToRoom(full, 0, nil); len(moves) != 0 {
			t.Errorf("A entered a full room: %v", moves)
		}
	})
}

func TestMoveInvariants(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		rows  [][NumRooms]Pod
		limit int
	}{
		{"example", 2, exampleRows, 20000},
		{"unfolded example", 4, unfoldedExampleRows, 20000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := MustConfig(tt.depth)
			start := mustState(t, cfg, tt.rows...)
			units := start.Units()
			for _, s := range reachable(cfg, start, tt.limit) {
				for _, m := range cfg.Moves(s) {
					next := m.ID
					if next.Units() != units {
						t.Fatalf("units changed from %v to %v", units, next.Units())
					}
					for pos := 0; pos < HallwayLength; pos++ {
						if cfg.IsEntrance(pos) && next.hall[pos] != Empty {
							t.Fatalf("unit resting on entrance column %d", pos)
						}
					}
					if m.Cost <= 0 {
						t.Fatalf("non-positive move cost %d", m.Cost)
					}

					// Exactly one hallway slot and one room slot change.
					hallChanged, roomChanged := 0, 0
					for pos := range s.hall {
						if s.hall[pos] != next.hall[pos] {
							hallChanged++
						}
					}
					for r := range s.rooms {
						for dd := range s.rooms[r] {
							if s.rooms[r][dd] != next.rooms[r][dd] {
								roomChanged++
							}
						}
					}
					if hallChanged != 1 || roomChanged != 1 {
						t.Fatalf("move changed %d hallway and %d room slots", hallChanged, roomChanged)
					}
				}
			}
		})
	}
}
