package amphipod

import "fmt"

// Pod is the content of one slot: Empty or one of the four amphipod types.
type Pod uint8

const (
	Empty Pod = iota
	Amber
	Bronze
	Copper
	Desert
)

const (
	// NumTypes is the number of amphipod types, and therefore of rooms.
	NumTypes = 4
	NumRooms = NumTypes
)

const podRunes = ".ABCD"

// ParsePod reads the diagram symbol for a slot.
func ParsePod(b byte) (Pod, error) {
	switch b {
	case '.':
		return Empty, nil
	case 'A', 'B', 'C', 'D':
		return Pod(b-'A') + Amber, nil
	}
	return Empty, fmt.Errorf("unknown pod symbol %q", b)
}

// Type returns the type index used for costs and target rooms. It must not be
// called on Empty.
func (p Pod) Type() int { return int(p - Amber) }

// Byte returns the diagram symbol of p.
func (p Pod) Byte() byte {
	if int(p) >= len(podRunes) {
		return '?'
	}
	return podRunes[p]
}

func (p Pod) String() string { return string(p.Byte()) }

// PodForRoom returns the type that belongs in room r.
func PodForRoom(r int) Pod { return Amber + Pod(r) }
