package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pdrpinto/amphipod"
	"github.com/pdrpinto/amphipod/astar"
	"github.com/pdrpinto/amphipod/internal/diagram"
)

func solveCmd() *commander.Command {
	var (
		input         inputFlags
		showPath      bool
		timeout       time.Duration
		maxExpansions int
	)

	cmd := &commander.Command{
		UsageLine: "solve [options]",
		Short:     "prints the least energy needed to organise a burrow",
		Long: `
solve reads a burrow diagram and prints the least total energy needed to
move every amphipod into its own room.

	$ amphipod solve -f input.txt [-unfold] [-path]

`,
		Flag: *flag.NewFlagSet("solve", flag.ExitOnError),
	}
	input.register(&cmd.Flag)
	cmd.Flag.BoolVar(&showPath, "path", false, "Print every intermediate burrow")
	cmd.Flag.DurationVar(&timeout, "timeout", 0, "Give up after this long; 0 = no limit")
	cmd.Flag.IntVar(&maxExpansions, "max", 0, "Give up after expanding this many states; 0 = no limit")

	cmd.Run = func(cmd *commander.Command, args []string) error {
		cfg, start, err := input.load()
		if err != nil {
			return err
		}

		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		began := time.Now()
		solution, err := amphipod.Search(ctx, cfg, start,
			astar.WithMaxExpansions(maxExpansions),
			astar.WithPath(showPath),
		)
		if err != nil {
			return fmt.Errorf("search stopped after %d expansions: %w", solution.Expanded, err)
		}
		log.Printf("expanded %d states in %s", solution.Expanded, time.Since(began))
		if !solution.Found {
			return errNoSolution
		}

		if showPath {
			for i, s := range solution.Path {
				step := 0
				if i > 0 {
					step = solution.Costs[i] - solution.Costs[i-1]
				}
				fmt.Printf("step %d: +%d (total %d)\n%s\n", i, step, solution.Costs[i], diagram.Render(cfg, s))
			}
		}
		fmt.Println(solution.Cost)
		return nil
	}
	return cmd
}
