package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lixenwraith/cellui/config"
	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/terminal/tui"
	"github.com/lixenwraith/cellui/terminal/tui/widget"
)

// Colors
var baseStyle = tui.Style{
	Fg: terminal.RGB{R: 200, G: 200, B: 200},
	Bg: terminal.RGB{R: 20, G: 20, B: 30},
}

func main() {
	configPath := flag.String("config", "", "layout file (TOML), embedded demo layout when empty")
	logPath := flag.String("log", "", "log file, overrides [log] path")
	logLevel := flag.String("level", "", "log level (debug, info, warn, error), overrides [log] level")
	flag.Parse()

	if err := run(*configPath, *logPath, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "layout-demo:", err)
		os.Exit(1)
	}
}

func run(configPath, logPath, logLevel string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if logPath != "" {
		cfg.Log.Path = logPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, closer, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	tree, err := cfg.Layout.Build()
	if err != nil {
		return fmt.Errorf("build layout: %w", err)
	}
	defer tree.Close()
	logger.Info("layout built", "config", configPath, "demand", tree.Root.SpaceDemand().String())

	term, err := terminal.New()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	// Dedicated input goroutine
	eventCh := make(chan terminal.Event, 16)
	go func() {
		for {
			ev := term.PollEvent()
			eventCh <- ev
			if ev.Type == terminal.EventClosed || ev.Type == terminal.EventError {
				return
			}
		}
	}()

	d := newDemo(term, tree.Root, logger)
	d.render()

	for ev := range eventCh {
		switch ev.Type {
		case terminal.EventClosed:
			return nil
		case terminal.EventError:
			return fmt.Errorf("terminal: %w", ev.Err)
		case terminal.EventResize:
			logger.Debug("resize", "width", ev.Width, "height", ev.Height)
		case terminal.EventKey:
			if d.handleKey(ev) {
				return nil
			}
		}
		d.render()
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}
	// Real logger depends on the loaded [log] section
	return config.Load(path, slog.New(slog.DiscardHandler))
}

type demo struct {
	term   terminal.Terminal
	root   widget.Widget
	edit   *widget.LineEdit
	scroll widget.Scrollable
	viewer *widget.JSONViewer
	grid   *tui.Grid
	active bool
	logger *slog.Logger
}

func newDemo(term terminal.Terminal, root widget.Widget, logger *slog.Logger) *demo {
	d := &demo{
		term:   term,
		root:   root,
		grid:   tui.NewGrid(0, 0, baseStyle),
		active: true,
		logger: logger,
	}
	d.edit, _ = find[*widget.LineEdit](root)
	d.scroll, _ = find[widget.Scrollable](root)
	d.viewer, _ = find[*widget.JSONViewer](root)
	return d
}

// handleKey applies a key press, returns true to quit
func (d *demo) handleKey(ev terminal.Event) bool {
	switch ev.Key {
	case terminal.KeyCtrlC, terminal.KeyEscape:
		return true
	case terminal.KeyTab, terminal.KeyBacktab:
		d.active = !d.active
		return false
	case terminal.KeyUp, terminal.KeyDown, terminal.KeyEnter:
		d.navigate(ev.Key)
		return false
	}

	if d.edit == nil || !d.active {
		return ev.Key == terminal.KeyRune && ev.Rune == 'q'
	}

	var err error
	switch ev.Key {
	case terminal.KeyRune:
		d.edit.Insert(string(ev.Rune))
	case terminal.KeyBackspace:
		err = d.edit.Backspace()
	case terminal.KeyDelete:
		err = d.edit.Delete()
	case terminal.KeyLeft:
		err = d.edit.MoveCursorLeft()
	case terminal.KeyRight:
		err = d.edit.MoveCursorRight()
	case terminal.KeyHome:
		d.edit.MoveCursorToBeginningOfLine()
	case terminal.KeyEnd:
		d.edit.MoveCursorToEndOfLine()
	}
	if err != nil {
		d.logger.Debug("edit rejected", "key", ev.Key, "error", err)
	}
	return false
}

// navigate scrolls the first scrollable widget and folds the json selection
func (d *demo) navigate(key terminal.Key) {
	var err error
	switch {
	case key == terminal.KeyUp && d.scroll != nil:
		err = d.scroll.ScrollBackwards()
	case key == terminal.KeyDown && d.scroll != nil:
		err = d.scroll.ScrollForwards()
	case key == terminal.KeyEnter && d.viewer != nil:
		err = d.viewer.ToggleActive()
	}
	if err != nil {
		d.logger.Debug("navigation rejected", "key", key, "error", err)
	}
}

func (d *demo) render() {
	w, h := d.term.Size()
	if w != d.grid.Width() || h != d.grid.Height() {
		d.grid.Resize(w, h)
	}
	d.root.Draw(d.grid.Root(), widget.RenderingHints{Active: d.active})
	d.term.Flush(d.grid.Cells(), w, h)
}

// find returns the first widget of type T in depth-first order
func find[T any](w widget.Widget) (T, bool) {
	if v, ok := w.(T); ok {
		return v, true
	}
	var children []widget.Child
	switch v := w.(type) {
	case *widget.HBox:
		children = v.Children
	case *widget.VBox:
		children = v.Children
	case *widget.Frame:
		return find[T](v.Child)
	}
	for _, c := range children {
		if v, ok := find[T](c.Widget); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
