package widget

import (
	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/terminal/tui"
)

// Fill covers its region with a single grapheme
type Fill struct {
	demand   Demand2D
	grapheme terminal.Grapheme
}

// NewFill creates a fill widget with a fixed demand
func NewFill(demand Demand2D, g terminal.Grapheme) *Fill {
	return &Fill{demand: demand, grapheme: g}
}

func (f *Fill) SpaceDemand() Demand2D {
	return f.demand
}

func (f *Fill) Draw(r tui.Region, _ RenderingHints) {
	r.Fill(f.grapheme)
}
