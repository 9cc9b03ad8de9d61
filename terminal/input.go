package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// EventType identifies the kind of input event
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventClosed
	EventError
)

// Key identifies special keys, KeyRune carries a printable rune
type Key uint16

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyCtrlC
)

// Event represents a terminal input event
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int   // For EventResize
	Height int   // For EventResize
	Err    error // For EventError
}

var keyMap = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyCtrlC:      KeyCtrlC,
}

// convertEvent reduces a tcell event to the subset the toolkit routes
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case nil:
		// PollEvent returns nil once the screen is finalized
		return Event{Type: EventClosed}
	case *tcell.EventKey:
		if e.Key() == tcell.KeyRune {
			return Event{Type: EventKey, Key: KeyRune, Rune: e.Rune()}
		}
		if k, ok := keyMap[e.Key()]; ok {
			return Event{Type: EventKey, Key: k}
		}
		return Event{Type: EventNone}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventError:
		return Event{Type: EventError, Err: e}
	default:
		return Event{Type: EventNone}
	}
}
