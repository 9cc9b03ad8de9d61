package tui

import (
	"github.com/lixenwraith/cellui/terminal"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = iota
	boxH
	boxTR
	boxV
	boxBL
	boxBR
)

func (l LineType) part(i int) terminal.Grapheme {
	if l >= LineType(len(boxChars)) {
		l = LineSingle
	}
	return terminal.GraphemeFromRune(boxChars[l][i])
}

// Box draws a border along the region edge in the default style
// Regions smaller than 2x2 are left untouched
func (r Region) Box(line LineType) {
	r.mustOwn()
	if r.w < 2 || r.h < 2 {
		return
	}
	s := r.style

	r.SetCell(0, 0, line.part(boxTL), s)
	r.SetCell(r.w-1, 0, line.part(boxTR), s)
	r.SetCell(0, r.h-1, line.part(boxBL), s)
	r.SetCell(r.w-1, r.h-1, line.part(boxBR), s)

	h, v := line.part(boxH), line.part(boxV)
	for x := 1; x < r.w-1; x++ {
		r.SetCell(x, 0, h, s)
		r.SetCell(x, r.h-1, h, s)
	}
	for y := 1; y < r.h-1; y++ {
		r.SetCell(0, y, v, s)
		r.SetCell(r.w-1, y, v, s)
	}
}

// Inset consumes the region and returns its interior shrunk by n on every side
// The interior collapses to zero size when n exceeds half an extent
func (r Region) Inset(n int) Region {
	r.mustOwn()
	n = max(n, 0)
	x, y := r.x+min(n, r.w), r.y+min(n, r.h)
	w, h := max(r.w-2*n, 0), max(r.h-2*n, 0)
	r.lease.spent = true
	return r.derive(x, y, w, h)
}
