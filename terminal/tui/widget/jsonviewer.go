package widget

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/terminal/tui"
)

var (
	// ErrNotCollapsible is returned when toggling a scalar or an empty container
	ErrNotCollapsible = errors.New("element cannot be collapsed")

	// ErrTrailingJSON is returned when data continues after the first document
	ErrTrailingJSON = errors.New("trailing data after json document")
)

type jsonKind uint8

const (
	jsonScalar jsonKind = iota
	jsonObject
	jsonArray
)

// jsonNode is one value of the document, members of objects carry their key
type jsonNode struct {
	kind      jsonKind
	key       string
	hasKey    bool
	scalar    string
	children  []*jsonNode
	collapsed bool
}

// jsonRow is one rendered line, node is nil for closing brackets
type jsonRow struct {
	node   *jsonNode
	indent int
	text   string
}

// JSONViewer shows a JSON document with collapsible objects and arrays
// One element is selected at a time, scrolling moves the selection
type JSONViewer struct {
	root   *jsonNode
	active *jsonNode

	Indentation int

	ActiveFocused   tui.StyleModifier
	InactiveFocused tui.StyleModifier
}

// NewJSONViewer parses data and selects the document root
func NewJSONViewer(data []byte) (*JSONViewer, error) {
	v := &JSONViewer{
		Indentation:     2,
		ActiveFocused:   tui.NewStyleModifier().Toggle(terminal.AttrReverse).Set(terminal.AttrBold),
		InactiveFocused: tui.NewStyleModifier().Set(terminal.AttrBold),
	}
	if err := v.Set(data); err != nil {
		return nil, err
	}
	return v, nil
}

// Set replaces the document, the selection moves back to the root
func (v *JSONViewer) Set(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	root, err := decodeJSON(dec)
	if err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingJSON
	}
	v.root, v.active = root, root
	return nil
}

func decodeJSON(dec *json.Decoder) (*jsonNode, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		n := &jsonNode{kind: jsonArray}
		if t == '{' {
			n.kind = jsonObject
		}
		for dec.More() {
			var key string
			if n.kind == jsonObject {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ = kt.(string)
			}
			child, err := decodeJSON(dec)
			if err != nil {
				return nil, err
			}
			child.key, child.hasKey = key, n.kind == jsonObject
			n.children = append(n.children, child)
		}
		// Closing delimiter
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return n, nil
	case string:
		return &jsonNode{scalar: strconv.Quote(t)}, nil
	case json.Number:
		return &jsonNode{scalar: t.String()}, nil
	case bool:
		return &jsonNode{scalar: strconv.FormatBool(t)}, nil
	case nil:
		return &jsonNode{scalar: "null"}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// rows flattens the visible part of the document
func (v *JSONViewer) rows() []jsonRow {
	var out []jsonRow
	var walk func(n *jsonNode, depth int, last bool)
	walk = func(n *jsonNode, depth int, last bool) {
		indent := depth * max(v.Indentation, 0)
		comma := ","
		if last {
			comma = ""
		}
		prefix := ""
		if n.hasKey {
			prefix = strconv.Quote(n.key) + ": "
		}

		open, closing := "[", "]"
		if n.kind == jsonObject {
			open, closing = "{", "}"
		}
		switch {
		case n.kind == jsonScalar:
			out = append(out, jsonRow{node: n, indent: indent, text: prefix + n.scalar + comma})
		case len(n.children) == 0:
			out = append(out, jsonRow{node: n, indent: indent, text: prefix + open + closing + comma})
		case n.collapsed:
			out = append(out, jsonRow{node: n, indent: indent, text: prefix + open + "…" + closing + comma})
		default:
			out = append(out, jsonRow{node: n, indent: indent, text: prefix + open})
			for i, c := range n.children {
				walk(c, depth+1, i == len(n.children)-1)
			}
			out = append(out, jsonRow{indent: indent, text: closing + comma})
		}
	}
	walk(v.root, 0, true)
	return out
}

func (v *JSONViewer) activeRow(rows []jsonRow) int {
	for i, row := range rows {
		if row.node != nil && row.node == v.active {
			return i
		}
	}
	return -1
}

// SelectNext moves the selection to the next visible element
func (v *JSONViewer) SelectNext() error {
	rows := v.rows()
	for i := v.activeRow(rows) + 1; i < len(rows); i++ {
		if rows[i].node != nil {
			v.active = rows[i].node
			return nil
		}
	}
	return ErrScrollBounds
}

// SelectPrevious moves the selection to the previous visible element
func (v *JSONViewer) SelectPrevious() error {
	rows := v.rows()
	for i := v.activeRow(rows) - 1; i >= 0; i-- {
		if rows[i].node != nil {
			v.active = rows[i].node
			return nil
		}
	}
	return ErrScrollBounds
}

// ToggleActive collapses or expands the selected object or array
func (v *JSONViewer) ToggleActive() error {
	if v.active.kind == jsonScalar || len(v.active.children) == 0 {
		return ErrNotCollapsible
	}
	v.active.collapsed = !v.active.collapsed
	return nil
}

func (v *JSONViewer) ScrollForwards() error {
	return v.SelectNext()
}

func (v *JSONViewer) ScrollBackwards() error {
	return v.SelectPrevious()
}

// SpaceDemand is as wide as the longest line and exactly as tall as the visible document
func (v *JSONViewer) SpaceDemand() Demand2D {
	rows := v.rows()
	width := 0
	for _, row := range rows {
		width = max(width, row.indent+terminal.StringWidth(row.text))
	}
	return Demand2D{Width: Cols.AtLeast(width), Height: Rows.Exact(len(rows))}
}

func (v *JSONViewer) Draw(r tui.Region, hints RenderingHints) {
	focused := v.InactiveFocused
	if hints.Active {
		focused = v.ActiveFocused
	}
	rows := v.rows()
	// Scroll so the selected row is always visible
	offset := max(v.activeRow(rows)-r.Height()+1, 0)

	base := r.DefaultStyle()
	for y := 0; y < r.Height() && offset+y < len(rows); y++ {
		row := rows[offset+y]
		style := base
		if row.node == v.active {
			style = focused.Apply(base)
		}
		r.TextStyled(row.indent, y, row.text, style)
	}
}

// String renders the visible document as plain text
func (v *JSONViewer) String() string {
	var sb strings.Builder
	for _, row := range v.rows() {
		sb.WriteString(strings.Repeat(" ", row.indent))
		sb.WriteString(row.text)
		sb.WriteByte('\n')
	}
	return sb.String()
}
