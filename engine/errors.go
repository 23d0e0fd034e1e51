package engine

import "errors"

// Sentinel errors
var (
	ErrLoopRunning = errors.New("event loop already running")
)
