package patterns

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/model"
)

// ErrUnknownPattern is returned by Lookup for names that match no preset
var ErrUnknownPattern = errors.New("unknown pattern")

// Preset is a named list of cells stamped relative to the grid origin
type Preset struct {
	Name  string
	Cells []model.Point
}

// Bounds returns the smallest cols x rows a grid needs to hold the preset
func (p Preset) Bounds() (cols, rows int) {
	for _, c := range p.Cells {
		cols = max(cols, c.X+1)
		rows = max(rows, c.Y+1)
	}
	return cols, rows
}

// Stamp adds the preset's cells to the simulation's grid
func (p Preset) Stamp(sim *model.Simulation) error {
	if err := sim.StampPattern(p.Cells); err != nil {
		return errors.Wrapf(err, "[Stamp] %s", p.Name)
	}
	return nil
}

var (
	// GliderGun is the Gosper glider gun
	GliderGun = Preset{
		Name: "Glider Gun",
		Cells: points(
			26, 1, 24, 2, 26, 2, 14, 3, 15, 3, 22, 3, 23, 3, 36, 3, 37, 3,
			13, 4, 17, 4, 22, 4, 23, 4, 36, 4, 37, 4, 2, 5, 3, 5, 12, 5,
			18, 5, 22, 5, 23, 5, 2, 6, 3, 6, 12, 6, 16, 6, 18, 6, 19, 6,
			24, 6, 26, 6, 12, 7, 18, 7, 26, 7, 13, 8, 17, 8, 14, 9, 15, 9,
		),
	}

	// Pulsar is the pulsar preset
	Pulsar = Preset{
		Name: "Pulsar",
		Cells: points(
			4, 2, 5, 2, 6, 2, 10, 2, 11, 2, 12, 2,
			2, 4, 7, 4, 9, 4, 14, 4,
			2, 5, 7, 5, 9, 5, 14, 5,
			2, 6, 7, 6, 9, 6, 14, 6,
			4, 8, 5, 8, 6, 8, 10, 8, 11, 8, 12, 8,
		),
	}

	// PentaDecathlon is the penta-decathlon preset
	PentaDecathlon = Preset{
		Name: "Penta-Decathlon",
		Cells: points(
			6, 3, 7, 3, 5, 4, 8, 4, 5, 5, 8, 5,
			5, 6, 8, 6, 5, 7, 8, 7, 6, 8, 7, 8,
		),
	}

	presets = []Preset{GliderGun, Pulsar, PentaDecathlon}
)

// All returns the built-in presets in display order
func All() []Preset {
	return append([]Preset(nil), presets...)
}

// Names returns the names of the built-in presets
func Names() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// Lookup finds a preset by name, ignoring case, spaces, dashes and underscores
func Lookup(name string) (Preset, error) {
	key := normalize(name)
	for _, p := range presets {
		if normalize(p.Name) == key {
			return p, nil
		}
	}
	return Preset{}, errors.Wrapf(ErrUnknownPattern, "[Lookup] %q", name)
}

// StampByName looks up a preset and stamps it onto sim
func StampByName(sim *model.Simulation, name string) error {
	preset, err := Lookup(name)
	if err != nil {
		return errors.Wrap(err, "[StampByName] failed to find preset")
	}
	return preset.Stamp(sim)
}

func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// points turns a flat x, y, x, y, ... list into cells
func points(xy ...int) []model.Point {
	cells := make([]model.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		cells = append(cells, model.Point{X: xy[i], Y: xy[i+1]})
	}
	return cells
}
