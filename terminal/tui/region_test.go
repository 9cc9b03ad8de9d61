package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cellui/terminal"
)

func TestSplitHDisjoint(t *testing.T) {
	g := NewGrid(4, 2, Style{})
	left, right, err := g.Root().SplitH(1)
	require.NoError(t, err)

	left.Fill(terminal.GraphemeFromRune('L'))
	right.Fill(terminal.GraphemeFromRune('R'))

	assert.Equal(t, []string{"LRRR", "LRRR"}, g.Rows())
	_, _, w, h := right.Bounds()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
}

func TestSplitVDisjoint(t *testing.T) {
	g := NewGrid(2, 3, Style{})
	top, bottom, err := g.Root().SplitV(2)
	require.NoError(t, err)

	top.Fill(terminal.GraphemeFromRune('T'))
	bottom.Fill(terminal.GraphemeFromRune('B'))

	assert.Equal(t, []string{"TT", "TT", "BB"}, g.Rows())
}

func TestSplitAtEdges(t *testing.T) {
	g := NewGrid(3, 1, Style{})
	empty, all, err := g.Root().SplitH(0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Width())
	assert.Equal(t, 3, all.Width())

	all, empty, err = all.SplitH(3)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Width())
	assert.Equal(t, 0, empty.Width())
}

func TestSplitOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3, Style{})
	root := g.Root()

	_, _, err := root.SplitH(4)
	assert.ErrorIs(t, err, ErrSplitOutOfBounds)
	_, _, err = root.SplitV(-1)
	assert.ErrorIs(t, err, ErrSplitOutOfBounds)

	// Failed splits do not consume the region
	assert.True(t, root.Valid())
}

func TestSplitConsumesParent(t *testing.T) {
	g := NewGrid(2, 1, Style{})
	root := g.Root()
	alias := root

	_, _, err := root.SplitH(1)
	require.NoError(t, err)

	assert.False(t, root.Valid())
	assert.PanicsWithValue(t, ErrRegionConsumed, func() { alias.Clear() })
	assert.PanicsWithValue(t, ErrRegionConsumed, func() { _, _, _ = root.SplitV(0) })
}

func TestNewRootInvalidatesOldRegions(t *testing.T) {
	g := NewGrid(2, 1, Style{})
	left, _, err := g.Root().SplitH(1)
	require.NoError(t, err)

	_ = g.Root()
	assert.False(t, left.Valid())
	assert.Panics(t, func() { left.Fill(terminal.Space) })
}

func TestFillWideGrapheme(t *testing.T) {
	g := NewGrid(5, 1, Style{})
	g.Root().Fill(terminal.MustGrapheme("日"))

	// Two clusters fit, the odd column is padded
	assert.Equal(t, []string{"日日 "}, g.Rows())
	assert.True(t, g.At(1, 0).Grapheme.IsZero())
	assert.Equal(t, " ", g.At(4, 0).Grapheme.String())
}

func TestSetCellBreaksWideCluster(t *testing.T) {
	g := NewGrid(3, 1, Style{})
	root := g.Root()
	root.SetCell(0, 0, terminal.MustGrapheme("日"), Style{})

	root.SetCell(1, 0, terminal.GraphemeFromRune('x'), Style{})
	assert.Equal(t, []string{" x "}, g.Rows())

	root.SetCell(0, 0, terminal.MustGrapheme("日"), Style{})
	root.SetCell(0, 0, terminal.GraphemeFromRune('y'), Style{})
	assert.Equal(t, []string{"y  "}, g.Rows())
}

func TestTextTruncates(t *testing.T) {
	g := NewGrid(4, 1, Style{})
	n := g.Root().Text(1, 0, "hello")
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{" hel"}, g.Rows())
}

func TestSetDefaultStyle(t *testing.T) {
	g := NewGrid(3, 1, Style{})
	root := g.Root()
	want := Style{Fg: terminal.RGB{R: 1}, Bg: terminal.RGB{B: 2}, Attr: terminal.AttrItalic}
	root.SetDefaultStyle(want)
	assert.Equal(t, want, root.DefaultStyle())

	root.Text(0, 0, "ab")
	assert.Equal(t, terminal.Cell{Grapheme: terminal.GraphemeFromRune('b'), Fg: want.Fg, Bg: want.Bg, Attrs: want.Attr}, g.At(1, 0))
	// Untouched cells keep the grid base style
	assert.Equal(t, terminal.AttrNone, g.At(2, 0).Attrs)
}

func TestModifyDefaultStyle(t *testing.T) {
	bg := terminal.RGB{R: 10, G: 20, B: 30}
	g := NewGrid(2, 1, Style{})
	root := g.Root()
	root.ModifyDefaultStyle(NewStyleModifier().Bg(bg).Set(terminal.AttrBold))
	root.Clear()

	c := g.At(1, 0)
	assert.Equal(t, bg, c.Bg)
	assert.Equal(t, terminal.AttrBold, c.Attrs)

	// Children inherit the parent's default style
	_, right, err := root.SplitH(1)
	require.NoError(t, err)
	assert.Equal(t, bg, right.DefaultStyle().Bg)
}

func TestStyleModifierApply(t *testing.T) {
	base := Style{Attr: terminal.AttrUnderline}

	s := NewStyleModifier().Toggle(terminal.AttrReverse | terminal.AttrUnderline).Apply(base)
	assert.Equal(t, terminal.AttrReverse, s.Attr)

	s = NewStyleModifier().Set(terminal.AttrBold).Unset(terminal.AttrUnderline).Apply(base)
	assert.Equal(t, terminal.AttrBold, s.Attr)

	// Later calls win for the same bits
	s = NewStyleModifier().Unset(terminal.AttrBold).Set(terminal.AttrBold).Apply(Style{})
	assert.Equal(t, terminal.AttrBold, s.Attr)

	assert.True(t, NewStyleModifier().IsZero())
	assert.Equal(t, base, NewStyleModifier().Apply(base))
}

func TestStyleModifierTint(t *testing.T) {
	white := terminal.RGB{R: 255, G: 255, B: 255}
	s := NewStyleModifier().Bg(terminal.RGBBlack).Tint(white, 0.25).Apply(Style{Bg: white})
	assert.NotEqual(t, terminal.RGBBlack, s.Bg)
	assert.Less(t, s.Bg.R, uint8(128))
}

func TestBoxAndInset(t *testing.T) {
	g := NewGrid(4, 3, Style{})
	root := g.Root()
	root.Box(LineRounded)
	inner := root.Inset(1)

	assert.False(t, root.Valid())
	x, y, w, h := inner.Bounds()
	assert.Equal(t, [4]int{1, 1, 2, 1}, [4]int{x, y, w, h})

	inner.Fill(terminal.GraphemeFromRune('x'))
	assert.Equal(t, []string{"╭──╮", "│xx│", "╰──╯"}, g.Rows())
}

func TestInsetCollapses(t *testing.T) {
	g := NewGrid(3, 1, Style{})
	inner := g.Root().Inset(1)
	assert.Equal(t, 1, inner.Width())
	assert.Equal(t, 0, inner.Height())

	// Too small for a border
	small := NewGrid(1, 1, Style{})
	small.Root().Box(LineDouble)
	assert.Equal(t, []string{" "}, small.Rows())
}

func TestFillWithFlagStaysInside(t *testing.T) {
	g := NewGrid(7, 1, Style{})
	root := g.Root()
	left, right, err := root.SplitH(5)
	require.NoError(t, err)
	right.Fill(terminal.GraphemeFromRune('x'))
	left.Fill(terminal.MustGrapheme("🇩🇪"))

	assert.Equal(t, []string{"🇩🇪🇩🇪 xx"}, g.Rows())
	assert.True(t, g.At(1, 0).Grapheme.IsZero())
	assert.Equal(t, "x", g.At(5, 0).Grapheme.String())
}
