package terminal

import (
	"errors"
	"fmt"

	"github.com/rivo/uniseg"
)

// ErrNotSingleGrapheme is returned when a string is empty or holds more than one cluster
var ErrNotSingleGrapheme = errors.New("not a single grapheme cluster")

// Grapheme is one user-perceived character together with its display width
// The zero Grapheme marks a continuation cell of a wide cluster
type Grapheme struct {
	text  string
	width int
}

// Space is the blank one-column grapheme used for clearing
var Space = Grapheme{text: " ", width: 1}

// NewGrapheme validates that s is exactly one grapheme cluster
func NewGrapheme(s string) (Grapheme, error) {
	cluster, rest, boundaries, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	if cluster == "" || rest != "" {
		return Grapheme{}, fmt.Errorf("%q: %w", s, ErrNotSingleGrapheme)
	}
	return Grapheme{text: cluster, width: boundaries >> uniseg.ShiftWidth}, nil
}

// MustGrapheme is NewGrapheme for literals, panics on invalid input
func MustGrapheme(s string) Grapheme {
	g, err := NewGrapheme(s)
	if err != nil {
		panic(err)
	}
	return g
}

// GraphemeFromRune wraps a single rune
func GraphemeFromRune(r rune) Grapheme {
	text := string(r)
	return Grapheme{text: text, width: uniseg.StringWidth(text)}
}

// Graphemes splits s into its clusters
func Graphemes(s string) []Grapheme {
	out := make([]Grapheme, 0, len(s))
	state := -1
	for len(s) > 0 {
		var (
			cluster    string
			boundaries int
		)
		cluster, s, boundaries, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, Grapheme{text: cluster, width: boundaries >> uniseg.ShiftWidth})
	}
	return out
}

// StringWidth returns the display width of s in cells
func StringWidth(s string) int {
	width := 0
	for _, g := range Graphemes(s) {
		width += g.width
	}
	return width
}

// String returns the cluster text
func (g Grapheme) String() string {
	return g.text
}

// Width returns the number of columns the cluster occupies
func (g Grapheme) Width() int {
	return g.width
}

// IsZero reports a continuation cell
func (g Grapheme) IsZero() bool {
	return g.text == ""
}

// Runes returns the primary rune and any combining runes, the shape tcell expects
func (g Grapheme) Runes() (rune, []rune) {
	rs := []rune(g.text)
	if len(rs) == 0 {
		return ' ', nil
	}
	if len(rs) == 1 {
		return rs[0], nil
	}
	return rs[0], rs[1:]
}
