package widget

import (
	"github.com/lixenwraith/cellui/terminal/tui"
)

// Frame draws a box border around a single child
type Frame struct {
	Line  tui.LineType
	Child Widget

	// Inactive is applied to the border when the frame is drawn without focus
	Inactive tui.StyleModifier
}

// NewFrame wraps child in a single-line border
func NewFrame(child Widget) *Frame {
	return &Frame{Line: tui.LineSingle, Child: child}
}

// SpaceDemand is the child demand plus two cells per axis for the border
func (f *Frame) SpaceDemand() Demand2D {
	d := f.Child.SpaceDemand()
	return Demand2D{
		Width:  d.Width.Add(Cols.Exact(2)),
		Height: d.Height.Add(Rows.Exact(2)),
	}
}

func (f *Frame) Draw(r tui.Region, hints RenderingHints) {
	if !hints.Active && !f.Inactive.IsZero() {
		r.ModifyDefaultStyle(f.Inactive)
	}
	r.Box(f.Line)
	inner := r.Inset(1)
	inner.Clear()
	f.Child.Draw(inner, hints)
}
