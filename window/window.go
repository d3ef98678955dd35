//go:build ebiten

package window

import (
	"context"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/patterns"
	"github.com/sheikhrachel/go-gol-torus/runner"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

var (
	aliveColor = color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
	deadColor  = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
)

// game adapts a runner to the ebiten.Game interface. Update polls input every
// frame and ticks the runner whenever the clock says a step period has passed.
type game struct {
	ctx      context.Context
	runner   *runner.Runner
	clock    *runner.Clock
	cellSize int
	cols     int
	rows     int

	grid   *model.Grid
	status runner.Status
}

// Render implements runner.Renderer by keeping the latest frame for Draw
func (g *game) Render(grid *model.Grid, status runner.Status) error {
	g.grid = grid
	g.status = status
	return nil
}

var keyCommands = []struct {
	key ebiten.Key
	cmd runner.Command
}{
	{ebiten.KeySpace, runner.Command{Kind: runner.CmdToggle}},
	{ebiten.KeyC, runner.Command{Kind: runner.CmdReset}},
	{ebiten.KeyR, runner.Command{Kind: runner.CmdRandomize}},
	{ebiten.KeyN, runner.Command{Kind: runner.CmdStep}},
	{ebiten.KeyG, runner.Stamp(patterns.GliderGun.Name)},
	{ebiten.KeyP, runner.Stamp(patterns.Pulsar.Name)},
	{ebiten.KeyD, runner.Stamp(patterns.PentaDecathlon.Name)},
	{ebiten.KeyQ, runner.Command{Kind: runner.CmdQuit}},
	{ebiten.KeyEscape, runner.Command{Kind: runner.CmdQuit}},
}

// Update handles input and advances the simulation
func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	for _, kc := range keyCommands {
		if !inpututil.IsKeyJustPressed(kc.key) {
			continue
		}
		quit, err := g.runner.Apply(kc.cmd)
		if err != nil {
			return err
		}
		if quit {
			return ebiten.Termination
		}
	}

	if !g.clock.Due(time.Now()) {
		return nil
	}
	done, err := g.runner.Tick()
	if err != nil {
		return err
	}
	if done {
		return ebiten.Termination
	}
	return nil
}

// Draw paints every living cell as a square of cellSize
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(deadColor)
	if g.grid == nil {
		return
	}
	size := float32(g.cellSize)
	for _, p := range g.grid.LivePoints() {
		vector.DrawFilledRect(screen, float32(p.X)*size, float32(p.Y)*size, size-1, size-1, aliveColor, false)
	}
	if g.status.Message != "" {
		ebitenutil.DebugPrint(screen, g.status.Message)
	}
}

// Layout returns the logical screen size
func (g *game) Layout(_, _ int) (int, int) {
	return g.cols * g.cellSize, g.rows * g.cellSize
}

// Run opens a window sized cols*cellSize by rows*cellSize and drives sim
// until the window closes, a quit key is pressed or ctx is cancelled.
func Run(ctx context.Context, sim *model.Simulation, config utils.Config) error {
	g := &game{
		ctx:      ctx,
		clock:    runner.NewClock(config.Period()),
		cellSize: config.CellSize,
		cols:     sim.Cols(),
		rows:     sim.Rows(),
	}
	g.runner = runner.New(sim, g, config)
	if err := g.runner.Redraw(); err != nil {
		return err
	}

	ebiten.SetWindowTitle("go-gol-torus")
	ebiten.SetWindowSize(g.cols*g.cellSize, g.rows*g.cellSize)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[Run] window closed with error")
	}
	return nil
}
