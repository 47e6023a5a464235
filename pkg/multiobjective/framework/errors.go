package framework

import "errors"

// Error kinds shared by every multiobjective package. Callers match them with
// errors.Is; context is added by wrapping, never by creating new sentinels.
var (
	// ErrInvalidArgument reports an argument outside the accepted domain, e.g.
	// fewer than two uniform weight vectors or a zero-width normalization range.
	ErrInvalidArgument = errors.New("multiobjective: invalid argument")

	// ErrDimensionMismatch reports operands with different numbers of objectives.
	ErrDimensionMismatch = errors.New("multiobjective: dimension mismatch")

	// ErrEmptyInput reports a front or weight set without any entries where at
	// least one is required.
	ErrEmptyInput = errors.New("multiobjective: empty input")

	// ErrMalformedInput reports a text source that does not follow the
	// whitespace separated numeric row format.
	ErrMalformedInput = errors.New("multiobjective: malformed input")

	// ErrNotFound reports a missing input file.
	ErrNotFound = errors.New("multiobjective: not found")

	// ErrIOFailure reports any other failure while reading or writing a source.
	ErrIOFailure = errors.New("multiobjective: i/o failure")

	// ErrIndexOutOfRange reports an accessor index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("multiobjective: index out of range")
)
