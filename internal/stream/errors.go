package stream

import "errors"

// Domain errors for resolved streams.
var (
	ErrEmptyEndpoint  = errors.New("stream endpoint cannot be empty")
	ErrEmptyLabel     = errors.New("stream label cannot be empty")
	ErrInvalidQuality = errors.New("invalid stream quality")
)
