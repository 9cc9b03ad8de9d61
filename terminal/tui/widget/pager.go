package widget

import (
	"errors"

	"github.com/lixenwraith/cellui/terminal/tui"
)

// ErrScrollBounds is returned when scrolling past the first or last element
var ErrScrollBounds = errors.New("scrolled to boundary")

// Scrollable is implemented by widgets that move through content one step at a time
type Scrollable interface {
	ScrollForwards() error
	ScrollBackwards() error
}

// Pager shows the lines of a LineStorage starting at a top line
type Pager struct {
	storage LineStorage
	top     int
}

// NewPager creates a pager positioned at the first line
func NewPager(storage LineStorage) *Pager {
	return &Pager{storage: storage}
}

// Top returns the index of the first visible line
func (p *Pager) Top() int {
	return p.top
}

// ScrollForwards moves down one line while another line follows
func (p *Pager) ScrollForwards() error {
	if _, err := p.storage.Line(p.top + 1); err != nil {
		return ErrScrollBounds
	}
	p.top++
	return nil
}

// ScrollBackwards moves up one line
func (p *Pager) ScrollBackwards() error {
	if p.top == 0 {
		return ErrScrollBounds
	}
	p.top--
	return nil
}

// SpaceDemand takes whatever it is given, the content scrolls
func (p *Pager) SpaceDemand() Demand2D {
	return Demand2D{Width: Cols.AtLeast(1), Height: Rows.AtLeast(1)}
}

func (p *Pager) Draw(r tui.Region, _ RenderingHints) {
	for i, line := range Lines(p.storage, p.top, p.top+r.Height()) {
		r.Text(0, i-p.top, line)
	}
}
