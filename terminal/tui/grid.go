package tui

import (
	"strings"

	"github.com/lixenwraith/cellui/terminal"
)

// Grid owns the cell buffer all regions of a frame draw into
type Grid struct {
	cells []terminal.Cell
	w, h  int
	base  Style

	// gen invalidates every region handed out before the latest Root call
	gen uint64
}

// NewGrid allocates a w×h grid cleared with base style
func NewGrid(w, h int, base Style) *Grid {
	g := &Grid{base: base}
	g.Resize(w, h)
	return g
}

// Resize reallocates the buffer and invalidates all live regions
func (g *Grid) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	size := w * h
	if cap(g.cells) < size {
		g.cells = make([]terminal.Cell, size)
	} else {
		g.cells = g.cells[:size]
	}
	g.w, g.h = w, h
	blank := terminal.Cell{Grapheme: terminal.Space, Fg: g.base.Fg, Bg: g.base.Bg, Attrs: g.base.Attr}
	for i := range g.cells {
		g.cells[i] = blank
	}
	g.gen++
}

// Root returns the region covering the whole grid
// Regions obtained from earlier Root calls become invalid
func (g *Grid) Root() Region {
	g.gen++
	return Region{
		lease: &lease{grid: g, gen: g.gen},
		w:     g.w,
		h:     g.h,
		style: g.base,
	}
}

// Width returns grid width
func (g *Grid) Width() int {
	return g.w
}

// Height returns grid height
func (g *Grid) Height() int {
	return g.h
}

// Cells returns the row-major backing buffer for flushing
func (g *Grid) Cells() []terminal.Cell {
	return g.cells
}

// At returns the cell at absolute position, zero Cell when out of bounds
func (g *Grid) At(x, y int) terminal.Cell {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return terminal.Cell{}
	}
	return g.cells[y*g.w+x]
}

// Row returns the text of row y, continuation cells contribute nothing
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.h {
		return ""
	}
	var sb strings.Builder
	for _, c := range g.cells[y*g.w : (y+1)*g.w] {
		sb.WriteString(c.Grapheme.String())
	}
	return sb.String()
}

// Rows returns the text of every row
func (g *Grid) Rows() []string {
	rows := make([]string, g.h)
	for y := range rows {
		rows[y] = g.Row(y)
	}
	return rows
}
