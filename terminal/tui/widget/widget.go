package widget

import (
	"github.com/lixenwraith/cellui/terminal/tui"
)

// Widget is the capability pair every element of a layout provides
type Widget interface {
	// SpaceDemand reports the space the widget wants, pure and callable any number of times
	SpaceDemand() Demand2D

	// Draw renders into r, writing nothing outside of it
	Draw(r tui.Region, hints RenderingHints)
}

// RenderingHints carries per-draw information from parent to child
type RenderingHints struct {
	// Active marks the focused widget, used for style selection
	Active bool
}

// Child pairs a widget with the hints it is drawn with
type Child struct {
	Widget Widget
	Hints  RenderingHints
}

// Children pairs every widget with the same hints
func Children(hints RenderingHints, ws ...Widget) []Child {
	out := make([]Child, len(ws))
	for i, w := range ws {
		out[i] = Child{Widget: w, Hints: hints}
	}
	return out
}
