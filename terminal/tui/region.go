package tui

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/cellui/terminal"
)

var (
	// ErrSplitOutOfBounds is returned when a split offset exceeds the region extent
	ErrSplitOutOfBounds = errors.New("split offset out of region bounds")

	// ErrRegionConsumed is the panic value for using a region after it was split
	// or after its grid handed out a new root
	ErrRegionConsumed = errors.New("region used after being consumed")
)

// lease is the exclusive access token shared by all copies of one region handle
type lease struct {
	grid  *Grid
	gen   uint64
	spent bool
}

// Region represents an exclusively owned rectangle of a Grid
// All coordinates are relative to the region's origin
// Splitting consumes the region, the returned halves are disjoint
type Region struct {
	lease *lease
	x, y  int // Absolute position in grid
	w, h  int
	style Style
}

// Valid reports whether the region may still be drawn into
func (r Region) Valid() bool {
	return r.lease != nil && !r.lease.spent && r.lease.gen == r.lease.grid.gen
}

func (r Region) mustOwn() {
	if !r.Valid() {
		panic(ErrRegionConsumed)
	}
}

// Width returns region width
func (r Region) Width() int {
	return r.w
}

// Height returns region height
func (r Region) Height() int {
	return r.h
}

// Bounds returns absolute position and dimensions
func (r Region) Bounds() (x, y, w, h int) {
	return r.x, r.y, r.w, r.h
}

// SplitH splits at column offset into left [0,at) and right [at,w)
func (r Region) SplitH(at int) (left, right Region, err error) {
	r.mustOwn()
	if at < 0 || at > r.w {
		return Region{}, Region{}, fmt.Errorf("split at column %d of width %d: %w", at, r.w, ErrSplitOutOfBounds)
	}
	r.lease.spent = true
	left = r.derive(r.x, r.y, at, r.h)
	right = r.derive(r.x+at, r.y, r.w-at, r.h)
	return left, right, nil
}

// SplitV splits at row offset into top [0,at) and bottom [at,h)
func (r Region) SplitV(at int) (top, bottom Region, err error) {
	r.mustOwn()
	if at < 0 || at > r.h {
		return Region{}, Region{}, fmt.Errorf("split at row %d of height %d: %w", at, r.h, ErrSplitOutOfBounds)
	}
	r.lease.spent = true
	top = r.derive(r.x, r.y, r.w, at)
	bottom = r.derive(r.x, r.y+at, r.w, r.h-at)
	return top, bottom, nil
}

func (r Region) derive(x, y, w, h int) Region {
	return Region{
		lease: &lease{grid: r.lease.grid, gen: r.lease.gen},
		x:     x,
		y:     y,
		w:     w,
		h:     h,
		style: r.style,
	}
}

// DefaultStyle returns the style used by Clear, Fill and Text
func (r Region) DefaultStyle() Style {
	return r.style
}

// SetDefaultStyle replaces the default style
func (r *Region) SetDefaultStyle(s Style) {
	r.style = s
}

// ModifyDefaultStyle applies m to the default style
func (r *Region) ModifyDefaultStyle(m StyleModifier) {
	r.style = m.Apply(r.style)
}

// SetCell writes grapheme g at (x, y), clipped to the region
// A wide grapheme that does not fit before the right edge is replaced by a space
func (r Region) SetCell(x, y int, g terminal.Grapheme, s Style) {
	r.mustOwn()
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		return
	}
	width := max(g.Width(), 1)
	if x+width > r.w {
		g, width = terminal.Space, 1
	}

	grid := r.lease.grid
	row := (r.y + y) * grid.w
	absX := r.x + x

	// Break up wide clusters partially overwritten by this write
	if grid.cells[row+absX].Grapheme.IsZero() && x > 0 {
		r.blankCluster(row, absX-1, x-1)
	}
	for i := 0; i < width; i++ {
		if tail := absX + i + 1; tail < r.x+r.w && grid.cells[row+tail].Grapheme.IsZero() {
			grid.cells[row+tail] = cell(terminal.Space, s)
		}
	}

	grid.cells[row+absX] = cell(g, s)
	for i := 1; i < width; i++ {
		grid.cells[row+absX+i] = cell(terminal.Grapheme{}, s)
	}
}

// blankCluster replaces the cluster covering absX, scanning left no further than column rel 0
func (r Region) blankCluster(row, absX, relX int) {
	grid := r.lease.grid
	for ; relX >= 0; absX, relX = absX-1, relX-1 {
		c := grid.cells[row+absX]
		grid.cells[row+absX] = terminal.Cell{Grapheme: terminal.Space, Fg: c.Fg, Bg: c.Bg, Attrs: c.Attrs}
		if !c.Grapheme.IsZero() {
			return
		}
	}
}

func cell(g terminal.Grapheme, s Style) terminal.Cell {
	return terminal.Cell{Grapheme: g, Fg: s.Fg, Bg: s.Bg, Attrs: s.Attr}
}

// Fill repeats g over the whole region using the default style
// Columns too narrow for a final wide grapheme are padded with spaces
func (r Region) Fill(g terminal.Grapheme) {
	r.mustOwn()
	width := max(g.Width(), 1)
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x += width {
			r.SetCell(x, y, g, r.style)
		}
	}
}

// Clear fills region with spaces in the default style
func (r Region) Clear() {
	r.Fill(terminal.Space)
}

// Text renders s at position using the default style, truncates at region edge
// Returns the number of columns advanced
func (r Region) Text(x, y int, s string) int {
	return r.TextStyled(x, y, s, r.style)
}

// TextStyled renders text using an explicit style
func (r Region) TextStyled(x, y int, s string, style Style) int {
	r.mustOwn()
	if y < 0 || y >= r.h {
		return 0
	}
	col := x
	for _, g := range terminal.Graphemes(s) {
		if col >= r.w {
			break
		}
		if col >= 0 {
			r.SetCell(col, y, g, style)
		}
		col += max(g.Width(), 1)
	}
	return col - x
}
