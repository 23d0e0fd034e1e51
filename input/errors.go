package input

import "errors"

// Sentinel errors
var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("invalid key")
)
