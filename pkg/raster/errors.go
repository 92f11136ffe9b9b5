package raster

import "errors"

var (
	// ErrNoActiveRegion is returned when sync and blank leave no room for the active region.
	ErrNoActiveRegion = errors.New("raster: samples per line must exceed sync + blank length")
	ErrInvalidLength  = errors.New("raster: invalid segment length")
	// ErrInvalidSampleRate is returned for a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("raster: sample rate must be positive")
	ErrInvalidGamma      = errors.New("raster: gradient exponent must be a non-negative number")
)
