// Package amphipod finds the cheapest way to organise an amphipod burrow.
//
// A burrow is an 11-slot hallway above four side rooms of a configurable
// depth. Amber, Bronze, Copper and Desert amphipods spend 1, 10, 100 and 1000
// energy per step and each type belongs in its own room. A unit may leave a
// room for any reachable hallway slot that is not directly in front of a room,
// and may only leave the hallway by walking into its own room once that room
// holds nothing but its own type.
//
// Config carries the fixed parameters and provides the move generator
// (Moves) and the heuristic (Heuristic); State is a comparable value. Solve
// wires both into the generic search in package astar.
package amphipod
