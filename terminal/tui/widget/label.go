package widget

import (
	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/terminal/tui"
)

// LineLabel shows one line of text at its natural width
type LineLabel struct {
	text  string
	width int
}

// NewLineLabel creates a label
func NewLineLabel(text string) *LineLabel {
	l := &LineLabel{}
	l.Set(text)
	return l
}

// Set replaces the text
func (l *LineLabel) Set(text string) {
	l.text = text
	l.width = terminal.StringWidth(text)
}

// Text returns the current text
func (l *LineLabel) Text() string {
	return l.text
}

func (l *LineLabel) SpaceDemand() Demand2D {
	return Demand2D{Width: Cols.Exact(l.width), Height: Rows.Exact(1)}
}

func (l *LineLabel) Draw(r tui.Region, _ RenderingHints) {
	r.Text(0, 0, l.text)
}
