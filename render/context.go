package render

import (
	"time"

	"github.com/lixenwraith/celebrate/effect"
)

// Context is the frame state handed to layers, passed by value
type Context struct {
	Now time.Time

	Width  int
	Height int

	Theme Theme

	// Elements is ordered by instance ID, oldest first
	Elements []*effect.Instance

	Label   string
	Busy    bool
	Message string
	// Counter is shown when CounterOn is set
	Counter   int
	CounterOn bool

	Strip Strip
}
