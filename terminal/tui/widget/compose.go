package widget

import (
	"fmt"

	"github.com/lixenwraith/cellui/terminal/tui"
)

// axis bundles the axis-specific operations the composer is parameterized with
type axis[A Axis] struct {
	split   func(r tui.Region, at int) (head, rest tui.Region, err error)
	length  func(r tui.Region) int
	sepLen  func(s SeparatingStyle) int
	project func(d Demand2D) Demand[A]
}

var horizontal = axis[Horizontal]{
	split:   tui.Region.SplitH,
	length:  tui.Region.Width,
	sepLen:  SeparatingStyle.Width,
	project: func(d Demand2D) WidthDemand { return d.Width },
}

var vertical = axis[Vertical]{
	split:   tui.Region.SplitV,
	length:  tui.Region.Height,
	sepLen:  SeparatingStyle.Height,
	project: func(d Demand2D) HeightDemand { return d.Height },
}

// mustSplit panics on a split the allocator should never have produced
func (ax axis[A]) mustSplit(r tui.Region, at int) (tui.Region, tui.Region) {
	head, rest, err := ax.split(r, at)
	if err != nil {
		panic(fmt.Errorf("layout: %w", err))
	}
	return head, rest
}

// drawLinearly allocates r along the axis and draws each child into its share
func drawLinearly[A Axis](r tui.Region, children []Child, style SeparatingStyle, ax axis[A]) {
	sepLen := ax.sepLen(style)
	demands := make([]Demand[A], len(children))
	for i, c := range children {
		demands[i] = ax.project(c.Widget.SpaceDemand())
	}
	sizes := Linearly(ax.length(r), sepLen, demands)

	// Separators only go between children that received space
	last := len(sizes) - 1
	for last > 0 && sizes[last] == 0 {
		last--
	}

	rest := r
	for i, c := range children {
		var head tui.Region
		head, rest = ax.mustSplit(rest, sizes[i])

		if style.kind == SeparatorAlternating && i%2 == 1 {
			head.ModifyDefaultStyle(style.modifier)
		}
		// Background in the child's own style, no stale cells from the last frame
		head.Clear()
		c.Widget.Draw(head, c.Hints)

		if style.kind != SeparatorDraw || i >= last {
			continue
		}
		if remaining := ax.length(rest); remaining > 0 && remaining >= sepLen {
			var sep tui.Region
			sep, rest = ax.mustSplit(rest, sepLen)
			sep.Fill(style.cell)
		}
	}
}
