package widget

import (
	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/terminal/tui"
)

// SeparatorKind selects the SeparatingStyle variant
type SeparatorKind uint8

const (
	SeparatorNone        SeparatorKind = iota // no visual or spatial effect
	SeparatorAlternating                      // odd children get a style modifier, no space
	SeparatorDraw                             // one cell of main-axis extent between children
)

// SeparatingStyle decides what goes between consecutive children of a layout
type SeparatingStyle struct {
	kind     SeparatorKind
	modifier tui.StyleModifier
	cell     terminal.Grapheme
}

// NoSeparator places children back to back
func NoSeparator() SeparatingStyle {
	return SeparatingStyle{kind: SeparatorNone}
}

// AlternatingStyle applies m to every other child, starting at the second
func AlternatingStyle(m tui.StyleModifier) SeparatingStyle {
	return SeparatingStyle{kind: SeparatorAlternating, modifier: m}
}

// DrawSeparator fills the gap between children with cell
func DrawSeparator(cell terminal.Grapheme) SeparatingStyle {
	return SeparatingStyle{kind: SeparatorDraw, cell: cell}
}

// Kind returns the variant
func (s SeparatingStyle) Kind() SeparatorKind {
	return s.kind
}

// Modifier returns the alternating modifier, zero for other variants
func (s SeparatingStyle) Modifier() tui.StyleModifier {
	return s.modifier
}

// Cell returns the drawn grapheme, zero for other variants
func (s SeparatingStyle) Cell() terminal.Grapheme {
	return s.cell
}

// Width is the separator extent in a horizontal layout
func (s SeparatingStyle) Width() int {
	if s.kind != SeparatorDraw {
		return 0
	}
	return max(s.cell.Width(), 1)
}

// Height is the separator extent in a vertical layout
func (s SeparatingStyle) Height() int {
	if s.kind != SeparatorDraw {
		return 0
	}
	return 1
}
