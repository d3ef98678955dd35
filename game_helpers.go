package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/patterns"
	"github.com/sheikhrachel/go-gol-torus/runner"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

// initializeSimulation builds the simulation and applies the configured starting pattern
func initializeSimulation(config utils.Config, randomize bool) (*model.Simulation, error) {
	opts := []model.Option{model.WithWorkers(config.Workers)}
	if config.Seed != nil {
		opts = append(opts, model.WithSeed(*config.Seed))
	}

	sim, err := model.NewSimulation(config.Rows, config.Cols, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeSimulation] failed to create simulation")
	}

	if randomize {
		if err = sim.Randomize(config.LiveProbability); err != nil {
			return nil, errors.Wrap(err, "[initializeSimulation] failed to randomize")
		}
	}

	if config.InitialPattern != "" {
		if err = patterns.StampByName(sim, config.InitialPattern); err != nil {
			return nil, errors.Wrap(err, "[initializeSimulation] failed to stamp initial_pattern")
		}
	}

	return sim, nil
}

// displayGameInfo shows the controls and the starting state
func displayGameInfo(out io.Writer, sim *model.Simulation) {
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d\n",
		sim.Cols(), sim.Rows(), sim.Grid().LivingCells())
	fmt.Fprintf(out, "Patterns: %s\n", strings.Join(patterns.Names(), ", "))
	fmt.Fprintln(out, "Controls (type a letter, then Enter): t=start/stop n=step c=clear r=randomize")
	fmt.Fprintln(out, "  g=glider gun u=pulsar d=penta-decathlon q=quit")
}

var commandKeys = map[string]runner.Command{
	"t": {Kind: runner.CmdToggle},
	"":  {Kind: runner.CmdToggle},
	"n": {Kind: runner.CmdStep},
	"c": {Kind: runner.CmdReset},
	"r": {Kind: runner.CmdRandomize},
	"g": runner.Stamp(patterns.GliderGun.Name),
	"u": runner.Stamp(patterns.Pulsar.Name),
	"d": runner.Stamp(patterns.PentaDecathlon.Name),
	"q": {Kind: runner.CmdQuit},
}

// parseCommand maps an input line to a control command
func parseCommand(line string) (runner.Command, bool) {
	line = strings.ToLower(strings.TrimSpace(line))
	if cmd, ok := commandKeys[line]; ok {
		return cmd, true
	}
	if name, ok := strings.CutPrefix(line, "stamp "); ok {
		return runner.Stamp(name), true
	}
	return runner.Command{}, false
}

// scanLines feeds input lines into a channel, closed at EOF or once ctx is done.
// A read already blocked on in only returns when the next line arrives.
func scanLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

// forwardCommands translates input lines into commands until ctx is done or input ends
func forwardCommands(ctx context.Context, lines <-chan string, commands chan<- runner.Command) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			cmd, ok := parseCommand(line)
			if !ok {
				continue
			}
			select {
			case commands <- cmd:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
