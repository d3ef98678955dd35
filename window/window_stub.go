//go:build !ebiten

package window

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

// Run reports that this binary was built without the window driver.
func Run(_ context.Context, _ *model.Simulation, _ utils.Config) error {
	return errors.Wrap(ErrUnavailable, "[Run] rebuild with -tags ebiten")
}
