package imageproc

import "errors"

var (
	// ErrInvalidPixel is returned when a channel lies outside [0, max] or
	// the max value itself is negative.
	ErrInvalidPixel = errors.New("imageproc: invalid pixel")

	// ErrInvalidImage is returned for empty or ragged pixel grids and for
	// grids whose pixels disagree on the max value.
	ErrInvalidImage = errors.New("imageproc: invalid image")

	// ErrUnknownChannel is returned when a channel selector is not one of
	// the defined projections, or is not accepted by the operation.
	ErrUnknownChannel = errors.New("imageproc: unknown channel")

	// ErrInvalidArgument is returned for numeric parameters outside the
	// range an operation accepts.
	ErrInvalidArgument = errors.New("imageproc: invalid argument")
)
