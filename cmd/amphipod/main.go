// Command amphipod reads a burrow diagram and prints the least energy needed
// to organise it.
//
//	$ amphipod solve -f input.txt
//	$ amphipod solve -unfold -path < input.txt
//	$ amphipod trace -f input.txt -every 10000
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pdrpinto/amphipod"
	"github.com/pdrpinto/amphipod/internal/diagram"
)

var errNoSolution = errors.New("no solution")

var cmd = &commander.Command{
	UsageLine: "amphipod <command> [options]",
	Short:     "organises amphipod burrows",
	Flag:      *flag.NewFlagSet("amphipod", flag.ExitOnError),
}

func init() {
	cmd.Subcommands = []*commander.Command{
		solveCmd(),
		traceCmd(),
	}
}

func main() {
	log.SetPrefix("amphipod: ")
	log.SetFlags(0)

	if err := cmd.Dispatch(os.Args[1:]); err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}
}

// inputFlags are shared by every subcommand that reads a diagram.
type inputFlags struct {
	file   string
	unfold bool
}

func (f *inputFlags) register(set *flag.FlagSet) {
	set.StringVar(&f.file, "f", "", "Burrow diagram file (default: standard input)")
	set.BoolVar(&f.unfold, "unfold", false, "Insert the two hidden rows before solving")
}

func (f *inputFlags) load() (amphipod.Config, amphipod.State, error) {
	var r io.Reader = os.Stdin
	if f.file != "" {
		file, err := os.Open(f.file)
		if err != nil {
			return amphipod.Config{}, amphipod.State{}, err
		}
		defer file.Close()
		r = file
	}
	cfg, start, err := diagram.Load(r, f.unfold)
	if err != nil {
		return cfg, start, fmt.Errorf("reading %s: %w", f.name(), err)
	}
	log.Printf("read %s: depth %d", f.name(), cfg.Depth())
	return cfg, start, nil
}

func (f *inputFlags) name() string {
	if f.file == "" {
		return "standard input"
	}
	return f.file
}
