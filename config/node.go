package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/terminal/tui"
	"github.com/lixenwraith/cellui/terminal/tui/widget"
)

var (
	ErrUnknownKind      = errors.New("unknown widget kind")
	ErrInvalidDemand    = errors.New("invalid demand")
	ErrInvalidSeparator = errors.New("invalid separator")
	ErrInvalidColor     = errors.New("invalid color")
	ErrInvalidFrame     = errors.New("invalid frame")
	ErrInvalidSource    = errors.New("invalid content source")
)

// Widget kinds
const (
	KindHBox  = "hbox"
	KindVBox  = "vbox"
	KindLabel = "label"
	KindFill  = "fill"
	KindEdit  = "edit"
	KindFrame = "frame"
	KindPager = "pager"
	KindJSON  = "json"
)

var lineTypes = map[string]tui.LineType{
	"":        tui.LineSingle,
	"single":  tui.LineSingle,
	"double":  tui.LineDouble,
	"rounded": tui.LineRounded,
	"heavy":   tui.LineHeavy,
	"none":    tui.LineNone,
}

// Separator names
const (
	SeparatorNone      = "none"
	SeparatorAlternate = "alternate"
	SeparatorDraw      = "draw"
)

// Node describes one widget of a declarative tree
type Node struct {
	Kind string `toml:"kind"`

	// Containers
	Separator     string `toml:"separator"`
	SeparatorCell string `toml:"separator_cell"`
	AlternateBg   string `toml:"alternate_bg"`
	Children      []Node `toml:"children"`

	// Frames wrap exactly one child
	Line string `toml:"line"`

	// Leaves, pager and json read File when set, Text otherwise
	Text   string  `toml:"text"`
	File   string  `toml:"file"`
	Fill   string  `toml:"fill"`
	Width  *Extent `toml:"width"`
	Height *Extent `toml:"height"`

	// Active defaults to true, false draws the subtree with inactive hints
	Active *bool `toml:"active"`
}

// Extent is a demand along one axis, an absent max means unbounded
type Extent struct {
	Min int  `toml:"min"`
	Max *int `toml:"max"`
}

// Tree is a built widget tree together with the files its widgets read from
type Tree struct {
	Root    widget.Widget
	closers []io.Closer
}

// Close releases files opened for the tree
func (t *Tree) Close() error {
	var errs []error
	for _, c := range t.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Build constructs the widget tree, errors name the offending node path
func (n Node) Build() (*Tree, error) {
	t := &Tree{}
	root, err := t.build(n, "layout")
	if err != nil {
		t.Close()
		return nil, err
	}
	t.Root = root
	return t, nil
}

func (t *Tree) build(n Node, path string) (widget.Widget, error) {
	switch n.Kind {
	case KindHBox, KindVBox:
		style, err := n.separatingStyle()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		children := make([]widget.Child, len(n.Children))
		for i, c := range n.Children {
			w, err := t.build(c, fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				return nil, err
			}
			children[i] = widget.Child{Widget: w, Hints: widget.RenderingHints{Active: c.active()}}
		}
		if n.Kind == KindHBox {
			return &widget.HBox{Layout: widget.NewHorizontalLayout(style), Children: children}, nil
		}
		return &widget.VBox{Layout: widget.NewVerticalLayout(style), Children: children}, nil

	case KindFrame:
		line, ok := lineTypes[n.Line]
		if !ok {
			return nil, fmt.Errorf("%s: %w: line %q", path, ErrInvalidFrame, n.Line)
		}
		if len(n.Children) != 1 {
			return nil, fmt.Errorf("%s: %w: %d children", path, ErrInvalidFrame, len(n.Children))
		}
		child, err := t.build(n.Children[0], path+".children[0]")
		if err != nil {
			return nil, err
		}
		f := widget.NewFrame(child)
		f.Line = line
		f.Inactive = tui.NewStyleModifier().Set(terminal.AttrDim)
		return f, nil

	case KindLabel:
		return widget.NewLineLabel(n.Text), nil

	case KindFill:
		f, err := n.fill()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return f, nil

	case KindEdit:
		e := widget.NewLineEdit()
		e.Set(n.Text)
		return e, nil

	case KindPager:
		if n.File == "" {
			s := widget.NewMemoryLineStorage()
			s.WriteString(n.Text)
			return widget.NewPager(s), nil
		}
		if n.Text != "" {
			return nil, fmt.Errorf("%s: %w: both text and file", path, ErrInvalidSource)
		}
		s, err := widget.OpenFileLineStorage(n.File)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		t.closers = append(t.closers, s)
		return widget.NewPager(s), nil

	case KindJSON:
		data, err := n.content()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		v, err := widget.NewJSONViewer(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return v, nil

	default:
		return nil, fmt.Errorf("%s: %w: %q", path, ErrUnknownKind, n.Kind)
	}
}

// content returns the inline text or the contents of File
func (n Node) content() ([]byte, error) {
	if n.File == "" {
		return []byte(n.Text), nil
	}
	if n.Text != "" {
		return nil, fmt.Errorf("%w: both text and file", ErrInvalidSource)
	}
	data, err := os.ReadFile(n.File)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", n.File, err)
	}
	return data, nil
}

func (n Node) fill() (*widget.Fill, error) {
	g := terminal.Space
	if n.Fill != "" {
		var err error
		if g, err = terminal.NewGrapheme(n.Fill); err != nil {
			return nil, err
		}
	}
	width, err := widthDemand(n.Width)
	if err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	height, err := heightDemand(n.Height)
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	return widget.NewFill(widget.Demand2D{Width: width, Height: height}, g), nil
}

func (n Node) active() bool {
	return n.Active == nil || *n.Active
}

func (n Node) separatingStyle() (widget.SeparatingStyle, error) {
	switch n.Separator {
	case "", SeparatorNone:
		return widget.NoSeparator(), nil
	case SeparatorAlternate:
		c, err := colorful.Hex(n.AlternateBg)
		if err != nil {
			return widget.SeparatingStyle{}, fmt.Errorf("%w: alternate_bg %q", ErrInvalidColor, n.AlternateBg)
		}
		r, g, b := c.RGB255()
		return widget.AlternatingStyle(tui.NewStyleModifier().Bg(terminal.RGB{R: r, G: g, B: b})), nil
	case SeparatorDraw:
		cell := n.SeparatorCell
		if cell == "" {
			cell = " "
		}
		g, err := terminal.NewGrapheme(cell)
		if err != nil {
			return widget.SeparatingStyle{}, fmt.Errorf("%w: separator_cell: %w", ErrInvalidSeparator, err)
		}
		return widget.DrawSeparator(g), nil
	default:
		return widget.SeparatingStyle{}, fmt.Errorf("%w: %q", ErrInvalidSeparator, n.Separator)
	}
}

// validate defaults an absent extent to at least one cell
func (e *Extent) validate() (lo, hi int, bounded bool, err error) {
	if e == nil {
		return 1, 0, false, nil
	}
	if e.Min < 0 {
		return 0, 0, false, fmt.Errorf("%w: min %d", ErrInvalidDemand, e.Min)
	}
	if e.Max == nil {
		return e.Min, 0, false, nil
	}
	if *e.Max < e.Min {
		return 0, 0, false, fmt.Errorf("%w: max %d below min %d", ErrInvalidDemand, *e.Max, e.Min)
	}
	return e.Min, *e.Max, true, nil
}

func widthDemand(e *Extent) (widget.WidthDemand, error) {
	lo, hi, bounded, err := e.validate()
	if err != nil {
		return widget.WidthDemand{}, err
	}
	if !bounded {
		return widget.Cols.AtLeast(lo), nil
	}
	return widget.Cols.FromTo(lo, hi), nil
}

func heightDemand(e *Extent) (widget.HeightDemand, error) {
	lo, hi, bounded, err := e.validate()
	if err != nil {
		return widget.HeightDemand{}, err
	}
	if !bounded {
		return widget.Rows.AtLeast(lo), nil
	}
	return widget.Rows.FromTo(lo, hi), nil
}
