package widget

import (
	"errors"
	"slices"
	"strings"

	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/terminal/tui"
)

var (
	// ErrCursorBounds is returned by LineEdit operations that would leave the text
	ErrCursorBounds = errors.New("cursor at text boundary")

	// ErrEmptyText is returned when clearing an editor that holds no text
	ErrEmptyText = errors.New("text already empty")
)

// LineEdit is a single-line text editor
// The cursor is a grapheme index in [0, len(graphemes)]
type LineEdit struct {
	graphemes []terminal.Grapheme
	cursor    int

	cursorActive   tui.StyleModifier
	cursorInactive tui.StyleModifier
}

// NewLineEdit creates an editor with a reversed cursor when active, underlined otherwise
func NewLineEdit() *LineEdit {
	return NewLineEditWithCursorStyles(
		tui.NewStyleModifier().Toggle(terminal.AttrReverse),
		tui.NewStyleModifier().Set(terminal.AttrUnderline),
	)
}

// NewLineEditWithCursorStyles creates an editor with custom cursor modifiers
func NewLineEditWithCursorStyles(active, inactive tui.StyleModifier) *LineEdit {
	return &LineEdit{cursorActive: active, cursorInactive: inactive}
}

// Get returns the text
func (e *LineEdit) Get() string {
	var sb strings.Builder
	for _, g := range e.graphemes {
		sb.WriteString(g.String())
	}
	return sb.String()
}

// Set replaces the text and moves the cursor to the end
func (e *LineEdit) Set(text string) {
	e.graphemes = terminal.Graphemes(text)
	e.cursor = len(e.graphemes)
}

// Clear removes all text
func (e *LineEdit) Clear() error {
	if len(e.graphemes) == 0 {
		return ErrEmptyText
	}
	e.graphemes = e.graphemes[:0]
	e.cursor = 0
	return nil
}

// Cursor returns the grapheme index of the cursor
func (e *LineEdit) Cursor() int {
	return e.cursor
}

// MoveCursorToEndOfLine places the cursor after the last grapheme
func (e *LineEdit) MoveCursorToEndOfLine() {
	e.cursor = len(e.graphemes)
}

// MoveCursorToBeginningOfLine places the cursor before the first grapheme
func (e *LineEdit) MoveCursorToBeginningOfLine() {
	e.cursor = 0
}

// MoveCursorRight advances the cursor by one grapheme
func (e *LineEdit) MoveCursorRight() error {
	if e.cursor >= len(e.graphemes) {
		return ErrCursorBounds
	}
	e.cursor++
	return nil
}

// MoveCursorLeft moves the cursor back by one grapheme
func (e *LineEdit) MoveCursorLeft() error {
	if e.cursor == 0 {
		return ErrCursorBounds
	}
	e.cursor--
	return nil
}

// Insert adds text at the cursor and moves the cursor behind it
func (e *LineEdit) Insert(text string) {
	ins := terminal.Graphemes(text)
	e.graphemes = slices.Insert(e.graphemes, e.cursor, ins...)
	e.cursor += len(ins)
}

// Backspace removes the grapheme before the cursor
func (e *LineEdit) Backspace() error {
	if e.cursor == 0 {
		return ErrCursorBounds
	}
	e.cursor--
	e.graphemes = slices.Delete(e.graphemes, e.cursor, e.cursor+1)
	return nil
}

// Delete removes the grapheme under the cursor
func (e *LineEdit) Delete() error {
	if e.cursor >= len(e.graphemes) {
		return ErrCursorBounds
	}
	e.graphemes = slices.Delete(e.graphemes, e.cursor, e.cursor+1)
	return nil
}

// SpaceDemand asks for the text plus one cell for a trailing cursor, and any surplus
func (e *LineEdit) SpaceDemand() Demand2D {
	width := 1
	for _, g := range e.graphemes {
		width += max(g.Width(), 1)
	}
	return Demand2D{Width: Cols.AtLeast(width), Height: Rows.Exact(1)}
}

func (e *LineEdit) Draw(r tui.Region, hints RenderingHints) {
	modifier := e.cursorInactive
	if hints.Active {
		modifier = e.cursorActive
	}

	// Scroll so the cursor cell is always visible
	cursorCol := 0
	for _, g := range e.graphemes[:e.cursor] {
		cursorCol += max(g.Width(), 1)
	}
	offset := max(cursorCol-r.Width()+1, 0)

	base := r.DefaultStyle()
	col := -offset
	for i, g := range e.graphemes {
		style := base
		if i == e.cursor {
			style = modifier.Apply(base)
		}
		if col >= 0 {
			r.SetCell(col, 0, g, style)
		}
		col += max(g.Width(), 1)
	}
	if e.cursor == len(e.graphemes) {
		r.SetCell(cursorCol-offset, 0, terminal.Space, modifier.Apply(base))
	}
}
