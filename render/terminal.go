package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/runner"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearHome = "\033[H\033[2J"
)

// TerminalRenderer draws each generation as text, one character pair per cell
type TerminalRenderer struct {
	out        io.Writer
	clearFirst bool
}

// NewTerminalRenderer writes frames to out, clearing the screen before each one when clear is set
func NewTerminalRenderer(out io.Writer, clear bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, clearFirst: clear}
}

// Render implements runner.Renderer
func (r *TerminalRenderer) Render(g *model.Grid, status runner.Status) error {
	w := bufio.NewWriter(r.out)
	if r.clearFirst {
		w.WriteString(ansiClearHome)
	}

	state := "Paused"
	if status.Running {
		state = "Running"
	}
	density := float64(status.Population) / float64(g.Rows()*g.Cols()) * 100
	fmt.Fprintf(w, "Gen: %d | Living: %d | Density: %.1f%% | %s | %.1f gen/sec\n",
		status.Generation, status.Population, density, state, status.Stats.GenerationsPerSecond)
	if status.Message != "" {
		fmt.Fprintln(w, status.Message)
	}

	for y := range g.Rows() {
		for x := range g.Cols() {
			if g.Alive(x, y) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[Render] failed to write frame")
	}
	return nil
}
