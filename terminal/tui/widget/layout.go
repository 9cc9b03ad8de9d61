package widget

import (
	"github.com/lixenwraith/cellui/terminal/tui"
)

// HorizontalLayout arranges children left to right
type HorizontalLayout struct {
	separating SeparatingStyle
}

// NewHorizontalLayout creates a row layout
func NewHorizontalLayout(separating SeparatingStyle) HorizontalLayout {
	return HorizontalLayout{separating: separating}
}

// SeparatingStyle returns the style between children
func (l HorizontalLayout) SeparatingStyle() SeparatingStyle {
	return l.separating
}

// SpaceDemand sums widths, takes the widest height, and adds drawn separators
func (l HorizontalLayout) SpaceDemand(widgets []Widget) Demand2D {
	total := Demand2D{Width: Cols.Exact(0), Height: Rows.Exact(0)}
	for _, w := range widgets {
		d := w.SpaceDemand()
		total.Width = total.Width.Add(d.Width)
		total.Height = total.Height.Join(d.Height)
	}
	if l.separating.kind == SeparatorDraw && len(widgets) > 1 {
		total.Width = total.Width.Add(Cols.Exact(l.separating.Width() * (len(widgets) - 1)))
	}
	return total
}

// Draw distributes the width of r among children
func (l HorizontalLayout) Draw(r tui.Region, children []Child) {
	drawLinearly(r, children, l.separating, horizontal)
}

// VerticalLayout arranges children top to bottom
type VerticalLayout struct {
	separating SeparatingStyle
}

// NewVerticalLayout creates a column layout
func NewVerticalLayout(separating SeparatingStyle) VerticalLayout {
	return VerticalLayout{separating: separating}
}

// SeparatingStyle returns the style between children
func (l VerticalLayout) SeparatingStyle() SeparatingStyle {
	return l.separating
}

// SpaceDemand sums heights, takes the widest width, and adds drawn separators
func (l VerticalLayout) SpaceDemand(widgets []Widget) Demand2D {
	total := Demand2D{Width: Cols.Exact(0), Height: Rows.Exact(0)}
	for _, w := range widgets {
		d := w.SpaceDemand()
		total.Width = total.Width.Join(d.Width)
		total.Height = total.Height.Add(d.Height)
	}
	if l.separating.kind == SeparatorDraw && len(widgets) > 1 {
		total.Height = total.Height.Add(Rows.Exact(l.separating.Height() * (len(widgets) - 1)))
	}
	return total
}

// Draw distributes the height of r among children
func (l VerticalLayout) Draw(r tui.Region, children []Child) {
	drawLinearly(r, children, l.separating, vertical)
}
