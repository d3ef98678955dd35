package runner

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/patterns"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

// Status is what a renderer shows next to the grid
type Status struct {
	Generation int
	Population int
	Running    bool
	Message    string
	Stats      utils.Stats
}

// Renderer draws a generation. It must not keep the grid beyond the call
// unless it only reads it.
type Renderer interface {
	Render(g *model.Grid, status Status) error
}

// CommandKind enumerates the controls a driver can send
type CommandKind int

const (
	CmdToggle CommandKind = iota
	CmdReset
	CmdRandomize
	CmdStamp
	CmdStep
	CmdQuit
)

// Command is a control request. Pattern is only read by CmdStamp.
type Command struct {
	Kind    CommandKind
	Pattern string
}

// Stamp returns a command stamping the named preset
func Stamp(pattern string) Command {
	return Command{Kind: CmdStamp, Pattern: pattern}
}

// Runner drives a simulation on a fixed cadence and applies control commands
// between steps. Only the goroutine calling Run (or Apply and Tick) touches
// the simulation.
type Runner struct {
	sim      *model.Simulation
	renderer Renderer
	config   utils.Config

	running  bool
	steps    int
	stagnant int
	message  string
	history  model.History
	stats    *utils.Stats
	lastStep time.Time
}

// New creates a runner, paused unless config.StartRunning is set
func New(sim *model.Simulation, renderer Renderer, config utils.Config) *Runner {
	return &Runner{
		sim:      sim,
		renderer: renderer,
		config:   config,
		running:  config.StartRunning,
		stats:    utils.NewStats(),
		lastStep: time.Now(),
	}
}

// Running reports whether ticks advance the simulation
func (r *Runner) Running() bool {
	return r.running
}

// Steps returns the total number of generations advanced, across restarts
func (r *Runner) Steps() int {
	return r.steps
}

// Message returns the last notice shown to the user
func (r *Runner) Message() string {
	return r.message
}

// Status returns the current status line data
func (r *Runner) Status() Status {
	return Status{
		Generation: r.sim.Generation(),
		Population: r.sim.Grid().LivingCells(),
		Running:    r.running,
		Message:    r.message,
		Stats:      *r.stats,
	}
}

// Redraw renders the current generation
func (r *Runner) Redraw() error {
	if r.renderer == nil {
		return nil
	}
	if err := r.renderer.Render(r.sim.Grid(), r.Status()); err != nil {
		return errors.Wrap(err, "[Redraw] failed to render")
	}
	return nil
}

// Apply executes one control command and redraws. quit is true for CmdQuit
// and for a CmdStep that reaches MaxGenerations.
// Failed controls are reported through Message, only rendering errors are returned.
func (r *Runner) Apply(cmd Command) (quit bool, err error) {
	r.message = ""
	switch cmd.Kind {
	case CmdQuit:
		return true, nil
	case CmdToggle:
		r.running = !r.running
	case CmdReset:
		r.sim.Reset()
		r.history.Clear()
		r.stagnant = 0
	case CmdRandomize:
		r.reseed()
	case CmdStamp:
		if err := patterns.StampByName(r.sim, cmd.Pattern); err != nil {
			r.message = err.Error()
		}
	case CmdStep:
		done, err := r.advance()
		if err != nil {
			return false, err
		}
		if done {
			return true, r.Redraw()
		}
	default:
		r.message = "unknown command"
	}
	return false, r.Redraw()
}

// Tick is one beat of the timer: when running it advances a generation and
// redraws. done is true once MaxGenerations is reached.
func (r *Runner) Tick() (done bool, err error) {
	if !r.running {
		return false, nil
	}
	r.message = ""
	if done, err = r.advance(); err != nil {
		return false, err
	}
	return done, r.Redraw()
}

// Run ticks every config.StepPeriod and applies commands as they arrive,
// until ctx is cancelled, CmdQuit is received or MaxGenerations is reached.
func (r *Runner) Run(ctx context.Context, commands <-chan Command) error {
	ticker := time.NewTicker(r.config.Period())
	defer ticker.Stop()

	if err := r.Redraw(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			quit, err := r.Apply(cmd)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case <-ticker.C:
			done, err := r.Tick()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// advance steps the simulation once and handles stagnation and restarts
func (r *Runner) advance() (done bool, err error) {
	if err = r.sim.Step(); err != nil {
		return false, errors.Wrap(err, "[advance] step failed")
	}
	r.steps++

	grid := r.sim.Grid()
	population := grid.LivingCells()
	r.stats.Update(r.steps, population, time.Since(r.lastStep))
	r.lastStep = time.Now()

	r.history.Observe(grid)
	if r.history.IsStagnant() {
		r.stagnant++
	} else {
		r.stagnant = 0
	}

	if r.config.AutoRestart {
		if reason := r.restartReason(population); reason != "" {
			r.reseed()
			r.message = "restarted: " + reason
		}
	}

	return r.config.MaxGenerations > 0 && r.steps >= r.config.MaxGenerations, nil
}

// restartReason determines if the board should be reseeded
func (r *Runner) restartReason(population int) string {
	if population == 0 {
		return "extinction"
	}
	if r.stagnant >= r.config.StagnationThreshold {
		return "stagnation detected"
	}
	return ""
}

func (r *Runner) reseed() {
	r.history.Clear()
	r.stagnant = 0
	if err := r.sim.Randomize(r.config.LiveProbability); err != nil {
		r.message = err.Error()
	}
}
