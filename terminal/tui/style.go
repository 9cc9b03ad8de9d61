package tui

import (
	"github.com/lixenwraith/cellui/terminal"
)

// Style bundles foreground, background, and attributes for text rendering
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// StyleModifier describes a relative change to a Style
// The zero value leaves a style untouched
type StyleModifier struct {
	fg, bg       terminal.RGB
	setFg, setBg bool

	on, off, toggle terminal.Attr

	tint       terminal.RGB
	tintAmount float64
}

// NewStyleModifier returns an empty modifier
func NewStyleModifier() StyleModifier {
	return StyleModifier{}
}

// Fg replaces the foreground color
func (m StyleModifier) Fg(c terminal.RGB) StyleModifier {
	m.fg, m.setFg = c, true
	return m
}

// Bg replaces the background color
func (m StyleModifier) Bg(c terminal.RGB) StyleModifier {
	m.bg, m.setBg = c, true
	return m
}

// Set turns attributes on
func (m StyleModifier) Set(a terminal.Attr) StyleModifier {
	m.on |= a
	m.off &^= a
	m.toggle &^= a
	return m
}

// Unset turns attributes off
func (m StyleModifier) Unset(a terminal.Attr) StyleModifier {
	m.off |= a
	m.on &^= a
	m.toggle &^= a
	return m
}

// Toggle flips attributes
func (m StyleModifier) Toggle(a terminal.Attr) StyleModifier {
	m.toggle |= a
	m.on &^= a
	m.off &^= a
	return m
}

// Tint blends the background towards c by amount (0.0-1.0) after Bg is applied
func (m StyleModifier) Tint(c terminal.RGB, amount float64) StyleModifier {
	m.tint, m.tintAmount = c, amount
	return m
}

// IsZero reports a modifier without effect
func (m StyleModifier) IsZero() bool {
	return m == StyleModifier{}
}

// Apply returns s with the modifier applied
func (m StyleModifier) Apply(s Style) Style {
	if m.setFg {
		s.Fg = m.fg
	}
	if m.setBg {
		s.Bg = m.bg
	}
	if m.tintAmount > 0 {
		s.Bg = s.Bg.Blend(m.tint, m.tintAmount)
	}
	s.Attr = ((s.Attr | m.on) &^ m.off) ^ m.toggle
	return s
}
