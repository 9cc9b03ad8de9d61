package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// AttrStyle masks all style bits
const AttrStyle Attr = AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse

// Cell represents a single terminal cell
type Cell struct {
	Grapheme Grapheme
	Fg       RGB
	Bg       RGB
	Attrs    Attr
}

// Terminal provides screen access for a cell buffer renderer
type Terminal interface {
	// Init enters the alternate screen and hides the cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush writes cell buffer to terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// PollEvent blocks until next input event
	PollEvent() Event
}

// termImpl implements Terminal on top of a tcell screen
type termImpl struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New opens the controlling terminal
func New() (Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an existing tcell screen, e.g. a simulation screen
func NewWithScreen(s tcell.Screen) Terminal {
	return &termImpl{screen: s}
}

func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.HideCursor()
	t.initialized = true
	return nil
}

func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true
	t.screen.Fini()
}

func (t *termImpl) Size() (int, int) {
	return t.screen.Size()
}

func (t *termImpl) Flush(cells []Cell, width, height int) {
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			idx := row + x
			if idx >= len(cells) {
				break
			}
			c := cells[idx]
			if c.Grapheme.IsZero() {
				// Covered by the wide cluster to the left
				continue
			}
			mainc, combc := c.Grapheme.Runes()
			t.screen.SetContent(x, y, mainc, combc, cellStyle(c))
		}
	}
	t.screen.Show()
}

func (t *termImpl) PollEvent() Event {
	return convertEvent(t.screen.PollEvent())
}

// cellStyle maps cell colors and attributes onto a tcell style
func cellStyle(c Cell) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcellColor(c.Fg)).
		Background(tcellColor(c.Bg))
	if c.Attrs&AttrStyle == AttrNone {
		return st
	}
	return st.
		Bold(c.Attrs&AttrBold != 0).
		Dim(c.Attrs&AttrDim != 0).
		Italic(c.Attrs&AttrItalic != 0).
		Underline(c.Attrs&AttrUnderline != 0).
		Blink(c.Attrs&AttrBlink != 0).
		Reverse(c.Attrs&AttrReverse != 0)
}

func tcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
