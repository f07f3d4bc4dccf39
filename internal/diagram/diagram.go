// Package diagram reads and writes the ASCII picture of a burrow:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
package diagram

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdrpinto/amphipod"
)

// ErrMalformed is wrapped by every Parse and Load error about the input text.
var ErrMalformed = errors.New("malformed burrow diagram")

// roomColumns are the text columns holding room slots.
var roomColumns = [amphipod.NumRooms]int{3, 5, 7, 9}

// foldedRows are inserted after the first room row by Unfold.
var foldedRows = [][amphipod.NumRooms]amphipod.Pod{
	{amphipod.Desert, amphipod.Copper, amphipod.Bronze, amphipod.Amber},
	{amphipod.Desert, amphipod.Bronze, amphipod.Amber, amphipod.Copper},
}

const (
	wall    = "#############"
	floor   = "#########"
	lineLen = amphipod.HallwayLength + 2
)

// Parse reads a diagram with an empty hallway and returns its room rows from
// the entrance row down. Every type must appear once per row.
func Parse(r io.Reader) ([][amphipod.NumRooms]amphipod.Pod, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" && len(lines) == 0 {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(lines) < 2 || lines[0] != wall {
		return nil, fmt.Errorf("%w: missing top wall", ErrMalformed)
	}
	hall := lines[1]
	if len(hall) != lineLen || hall[0] != '#' || hall[lineLen-1] != '#' {
		return nil, fmt.Errorf("%w: line 2: bad hallway %q", ErrMalformed, hall)
	}
	if strings.Trim(hall[1:lineLen-1], ".") != "" {
		return nil, fmt.Errorf("%w: line 2: hallway is not empty", ErrMalformed)
	}

	var rows [][amphipod.NumRooms]amphipod.Pod
	closed := false
	for i, line := range lines[2:] {
		if strings.TrimSpace(line) == floor {
			closed = true
			break
		}
		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, i+3, err)
		}
		rows = append(rows, row)
	}
	if !closed {
		return nil, fmt.Errorf("%w: missing bottom wall", ErrMalformed)
	}
	if len(rows) == 0 || len(rows) > amphipod.MaxDepth {
		return nil, fmt.Errorf("%w: %d room rows", ErrMalformed, len(rows))
	}

	var counts [amphipod.NumTypes]int
	for _, row := range rows {
		for _, p := range row {
			counts[p.Type()]++
		}
	}
	for t, n := range counts {
		if n != len(rows) {
			return nil, fmt.Errorf("%w: %d units of %v, want %d", ErrMalformed, n, amphipod.PodForRoom(t), len(rows))
		}
	}
	return rows, nil
}

func parseRow(line string) ([amphipod.NumRooms]amphipod.Pod, error) {
	var row [amphipod.NumRooms]amphipod.Pod
	if len(line) <= roomColumns[amphipod.NumRooms-1]+1 {
		return row, fmt.Errorf("room row %q too short", line)
	}
	for r, col := range roomColumns {
		if line[col-1] != '#' || line[col+1] != '#' {
			return row, fmt.Errorf("room %d not walled in %q", r, line)
		}
		p, err := amphipod.ParsePod(line[col])
		if err != nil {
			return row, err
		}
		if p == amphipod.Empty {
			return row, fmt.Errorf("empty slot in room %d", r)
		}
		row[r] = p
	}
	return row, nil
}

// Unfold returns rows with the two hidden rows inserted after the first one.
func Unfold(rows [][amphipod.NumRooms]amphipod.Pod) [][amphipod.NumRooms]amphipod.Pod {
	if len(rows) == 0 {
		return nil
	}
	unfolded := make([][amphipod.NumRooms]amphipod.Pod, 0, len(rows)+len(foldedRows))
	unfolded = append(unfolded, rows[0])
	unfolded = append(unfolded, foldedRows...)
	return append(unfolded, rows[1:]...)
}

// Load parses a diagram, optionally unfolds it, and builds the matching
// Config and start State.
func Load(r io.Reader, unfold bool) (amphipod.Config, amphipod.State, error) {
	rows, err := Parse(r)
	if err != nil {
		return amphipod.Config{}, amphipod.State{}, err
	}
	if unfold {
		rows = Unfold(rows)
	}
	cfg, err := amphipod.NewConfig(len(rows))
	if err != nil {
		return amphipod.Config{}, amphipod.State{}, err
	}
	s, err := amphipod.NewState(cfg, rows)
	if err != nil {
		return amphipod.Config{}, amphipod.State{}, err
	}
	return cfg, s, nil
}

// Render draws s in the same layout Parse reads.
func Render(cfg amphipod.Config, s amphipod.State) string {
	var buf strings.Builder
	buf.WriteString(wall)
	buf.WriteString("\n#")
	for pos := 0; pos < amphipod.HallwayLength; pos++ {
		buf.WriteByte(s.Hall(pos).Byte())
	}
	buf.WriteString("#\n")

	for d := 0; d < cfg.Depth(); d++ {
		line := []byte("  #########  ")
		if d == 0 {
			line = []byte(wall)
		}
		for r, col := range roomColumns {
			line[col] = s.Room(r, d).Byte()
		}
		buf.WriteString(strings.TrimRight(string(line), " "))
		buf.WriteByte('\n')
	}
	buf.WriteString("  " + floor + "\n")
	return buf.String()
}
