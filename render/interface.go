package render

import "github.com/gdamore/tcell/v2"

// Layer draws one part of the stage; layers run in order, later ones on top
type Layer interface {
	Render(ctx Context, scr tcell.Screen)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// Strip is the gallery view the stage draws along the bottom
type Strip interface {
	Titles() []string
	Highlighted() (int, bool)
	// Active reports a highlight sweep still in progress
	Active() bool
}
