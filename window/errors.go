package window

import "github.com/pkg/errors"

// ErrUnavailable is returned by Run when the binary lacks the ebiten build tag
var ErrUnavailable = errors.New("window driver not compiled in")
