package amphipod

import (
	"errors"
	"fmt"
)

const (
	// HallwayLength is the number of hallway slots.
	HallwayLength = 11
	// MaxDepth bounds the room depth a State can hold.
	MaxDepth = 8
)

// ErrInvalidConfig is returned by NewConfig for parameters no burrow can have.
var ErrInvalidConfig = errors.New("invalid burrow configuration")

var (
	defaultCosts     = [NumTypes]int{1, 10, 100, 1000}
	defaultEntrances = [NumRooms]int{2, 4, 6, 8}
)

// DefaultCosts returns the per-step cost of each type used when WithCosts is
// not given.
func DefaultCosts() [NumTypes]int { return defaultCosts }

// DefaultEntrances returns the entrance columns used when WithEntrances is not
// given.
func DefaultEntrances() [NumRooms]int { return defaultEntrances }

// Config holds the fixed parameters of a burrow. It is an immutable value
// built by NewConfig and shared freely between searches.
type Config struct {
	depth     int
	costs     [NumTypes]int
	entrances [NumRooms]int

	// blocked marks hallway columns that are room entrances.
	blocked [HallwayLength]bool
	// detour is the shortest hallway round trip out of room r and back in.
	detour [NumRooms]int
}

// ConfigOption modifies a Config under construction.
type ConfigOption func(*Config)

// WithCosts overrides the per-step cost of each type.
func WithCosts(costs [NumTypes]int) ConfigOption {
	return func(c *Config) { c.costs = costs }
}

// WithEntrances overrides the hallway column of each room's entrance.
func WithEntrances(entrances [NumRooms]int) ConfigOption {
	return func(c *Config) { c.entrances = entrances }
}

// NewConfig builds the configuration for rooms of the given depth.
func NewConfig(depth int, options ...ConfigOption) (Config, error) {
	c := Config{
		depth:     depth,
		costs:     defaultCosts,
		entrances: defaultEntrances,
	}
	for _, option := range options {
		option(&c)
	}

	if depth < 1 || depth > MaxDepth {
		return Config{}, fmt.Errorf("%w: depth %d outside [1, %d]", ErrInvalidConfig, depth, MaxDepth)
	}
	for t, cost := range c.costs {
		if cost <= 0 {
			return Config{}, fmt.Errorf("%w: cost of %v is %d", ErrInvalidConfig, Amber+Pod(t), cost)
		}
	}
	for r, e := range c.entrances {
		if e < 0 || e >= HallwayLength {
			return Config{}, fmt.Errorf("%w: entrance %d at column %d", ErrInvalidConfig, r, e)
		}
		if r > 0 && e <= c.entrances[r-1] {
			return Config{}, fmt.Errorf("%w: entrances not strictly increasing", ErrInvalidConfig)
		}
		c.blocked[e] = true
	}

	for r, e := range c.entrances {
		best := -1
		for pos := 0; pos < HallwayLength; pos++ {
			if c.blocked[pos] {
				continue
			}
			if d := 2 * absDiff(pos, e); best < 0 || d < best {
				best = d
			}
		}
		if best < 0 {
			return Config{}, fmt.Errorf("%w: no hallway stop for room %d", ErrInvalidConfig, r)
		}
		c.detour[r] = best
	}
	return c, nil
}

// MustConfig is NewConfig that panics on error, for fixed configurations.
func MustConfig(depth int, options ...ConfigOption) Config {
	c, err := NewConfig(depth, options...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Config) Depth() int { return c.depth }

// Cost returns the per-step cost of p.
func (c Config) Cost(p Pod) int { return c.costs[p.Type()] }

// Entrance returns the hallway column in front of room r.
func (c Config) Entrance(r int) int { return c.entrances[r] }

// IsEntrance reports whether pos is a column no unit may stop on.
func (c Config) IsEntrance(pos int) bool { return c.blocked[pos] }

func absDiff(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}
