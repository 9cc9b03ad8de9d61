package widget

import (
	"github.com/lixenwraith/cellui/terminal/tui"
)

// HBox is a widget holding a horizontal layout of children, so layouts nest
type HBox struct {
	Layout   HorizontalLayout
	Children []Child
}

// NewHBox creates a row of children drawn with active hints
func NewHBox(separating SeparatingStyle, ws ...Widget) *HBox {
	return &HBox{
		Layout:   NewHorizontalLayout(separating),
		Children: Children(RenderingHints{Active: true}, ws...),
	}
}

func (b *HBox) SpaceDemand() Demand2D {
	return b.Layout.SpaceDemand(childWidgets(b.Children))
}

func (b *HBox) Draw(r tui.Region, hints RenderingHints) {
	b.Layout.Draw(r, inherit(b.Children, hints))
}

// VBox is a widget holding a vertical layout of children
type VBox struct {
	Layout   VerticalLayout
	Children []Child
}

// NewVBox creates a column of children drawn with active hints
func NewVBox(separating SeparatingStyle, ws ...Widget) *VBox {
	return &VBox{
		Layout:   NewVerticalLayout(separating),
		Children: Children(RenderingHints{Active: true}, ws...),
	}
}

func (b *VBox) SpaceDemand() Demand2D {
	return b.Layout.SpaceDemand(childWidgets(b.Children))
}

func (b *VBox) Draw(r tui.Region, hints RenderingHints) {
	b.Layout.Draw(r, inherit(b.Children, hints))
}

func childWidgets(children []Child) []Widget {
	ws := make([]Widget, len(children))
	for i, c := range children {
		ws[i] = c.Widget
	}
	return ws
}

// inherit narrows child hints by the parent's: inactive parents have no active children
func inherit(children []Child, parent RenderingHints) []Child {
	if parent.Active {
		return children
	}
	out := make([]Child, len(children))
	for i, c := range children {
		c.Hints.Active = false
		out[i] = c
	}
	return out
}
