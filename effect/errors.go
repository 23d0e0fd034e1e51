package effect

import "errors"

// Sentinel errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidColor    = errors.New("invalid color")
)
