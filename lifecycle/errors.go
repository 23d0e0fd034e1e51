package lifecycle

import "errors"

// ErrSurfaceUnavailable is returned by Track when nothing can be rendered
var ErrSurfaceUnavailable = errors.New("rendering surface unavailable")
