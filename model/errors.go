package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a simulation is built with non-positive rows or cols
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrIndexOutOfRange is returned when a coordinate falls outside the grid
	ErrIndexOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidProbability is returned when a live probability is outside [0, 1]
	ErrInvalidProbability = errors.New("live probability must be within [0, 1]")
)
