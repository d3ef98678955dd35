package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/runner"
)

func TestTerminalRendererFrame(t *testing.T) {
	sim, err := model.NewSimulation(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err = sim.StampPattern([]model.Point{{X: 0, Y: 0}, {X: 2, Y: 1}}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, false)
	err = r.Render(sim.Grid(), runner.Status{Generation: 4, Population: 2, Message: "hello"})
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(buf.String(), "\n")
	if !strings.HasPrefix(lines[0], "Gen: 4 | Living: 2 | Density: 33.3% | Paused") {
		t.Fatalf("unexpected status line %q", lines[0])
	}
	if lines[1] != "hello" {
		t.Fatalf("unexpected message line %q", lines[1])
	}
	if lines[2] != "██    " || lines[3] != "    ██" {
		t.Fatalf("unexpected grid rows %q, %q", lines[2], lines[3])
	}
}

func TestTerminalRendererClears(t *testing.T) {
	sim, err := model.NewSimulation(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = NewTerminalRenderer(&buf, true).Render(sim.Grid(), runner.Status{Running: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), ansiClearHome) || !strings.Contains(buf.String(), "Running") {
		t.Fatalf("unexpected frame %q", buf.String())
	}
}
