package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pdrpinto/amphipod"
	"github.com/pdrpinto/amphipod/astar"
	"github.com/pdrpinto/amphipod/internal/diagram"
)

func traceCmd() *commander.Command {
	var (
		input inputFlags
		every int
	)

	cmd := &commander.Command{
		UsageLine: "trace [options]",
		Short:     "solves a burrow one expansion at a time, logging progress",
		Long: `
trace runs the same search as solve through the step-wise driver and logs
the frontier every n expansions.

	$ amphipod trace -f input.txt -every 10000

`,
		Flag: *flag.NewFlagSet("trace", flag.ExitOnError),
	}
	input.register(&cmd.Flag)
	cmd.Flag.IntVar(&every, "every", 1000, "Log every n steps; 0 = only the result")

	cmd.Run = func(cmd *commander.Command, args []string) error {
		cfg, start, err := input.load()
		if err != nil {
			return err
		}

		stepper := astar.NewStepper[amphipod.State, int](context.Background(), cfg, start, cfg.IsGoal, cfg.Heuristic)
		for {
			snapshot, err := stepper.Step()
			if err != nil {
				return err
			}
			if every > 0 && snapshot.StepIndex%every == 0 {
				log.Printf("step %d: g=%d h=%d open=%d closed=%d",
					snapshot.StepIndex, snapshot.Cost, cfg.Heuristic(snapshot.Current), snapshot.OpenSize, snapshot.Closed)
			}
			if snapshot.Done {
				break
			}
		}

		result := stepper.Result()
		log.Printf("expanded %d states", result.ExpandedNodes)
		if !result.Found {
			return errNoSolution
		}
		fmt.Print(diagram.Render(cfg, result.Path[len(result.Path)-1]))
		fmt.Println(result.TotalCost)
		return nil
	}
	return cmd
}
