package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/terminal/tui"
	"github.com/lixenwraith/cellui/terminal/tui/widget"
)

func TestDefaultBuilds(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, KindVBox, cfg.Layout.Kind)
	require.Len(t, cfg.Layout.Children, 3)

	tree, err := cfg.Layout.Build()
	require.NoError(t, err)
	t.Cleanup(func() { tree.Close() })
	root := tree.Root

	col, ok := root.(*widget.VBox)
	require.True(t, ok)
	sep := col.Layout.SeparatingStyle()
	assert.Equal(t, widget.SeparatorDraw, sep.Kind())
	assert.Equal(t, "─", sep.Cell().String())

	// Must render at any size without panicking
	for _, size := range [][2]int{{80, 24}, {20, 5}, {1, 1}, {0, 0}} {
		g := tui.NewGrid(size[0], size[1], tui.Style{})
		assert.NotPanics(t, func() { root.Draw(g.Root(), widget.RenderingHints{Active: true}) }, "size %v", size)
	}
}

func TestParseTree(t *testing.T) {
	cfg, err := Parse([]byte(`
[layout]
kind = "hbox"
separator = "draw"
separator_cell = "|"

  [[layout.children]]
  kind = "label"
  text = "ab"

  [[layout.children]]
  kind = "fill"
  fill = "."
  width = { min = 1, max = 2 }
  height = { min = 1, max = 1 }
  active = false
`))
	require.NoError(t, err)

	tree, err := cfg.Layout.Build()
	require.NoError(t, err)
	root := tree.Root
	assert.Equal(t, widget.Demand2D{Width: widget.Cols.FromTo(4, 5), Height: widget.Rows.FromTo(1, 1)}, root.SpaceDemand())

	box, ok := root.(*widget.HBox)
	require.True(t, ok)
	assert.Equal(t, "|", box.Layout.SeparatingStyle().Cell().String())
	assert.True(t, box.Children[0].Hints.Active)
	assert.False(t, box.Children[1].Hints.Active)

	g := tui.NewGrid(6, 1, tui.Style{})
	root.Draw(g.Root(), widget.RenderingHints{Active: true})
	assert.Equal(t, []string{"ab|.. "}, g.Rows())
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("[layout]\nkind = \"label\"\ncolour = \"red\"\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("[layout\n"))
	assert.Error(t, err)
}

func TestBuildErrors(t *testing.T) {
	neg := -1
	tests := []struct {
		name string
		node Node
		want error
		path string
	}{
		{"unknown kind", Node{Kind: "grid"}, ErrUnknownKind, "layout:"},
		{"bad separator", Node{Kind: KindHBox, Separator: "dots"}, ErrInvalidSeparator, "layout:"},
		{"multi grapheme separator", Node{Kind: KindVBox, Separator: SeparatorDraw, SeparatorCell: "ab"}, terminal.ErrNotSingleGrapheme, "layout:"},
		{"bad color", Node{Kind: KindHBox, Separator: SeparatorAlternate, AlternateBg: "blue"}, ErrInvalidColor, "layout:"},
		{"bad fill", Node{Kind: KindFill, Fill: "xy"}, terminal.ErrNotSingleGrapheme, "layout:"},
		{"empty frame", Node{Kind: KindFrame}, ErrInvalidFrame, "layout:"},
		{"pager text and file", Node{Kind: KindPager, Text: "a", File: "b"}, ErrInvalidSource, "layout:"},
		{"json text and file", Node{Kind: KindJSON, Text: "{}", File: "b"}, ErrInvalidSource, "layout:"},
		{"missing pager file", Node{Kind: KindPager, File: "/nonexistent/pager.txt"}, os.ErrNotExist, "layout:"},
		{"bad frame line", Node{Kind: KindFrame, Line: "dotted", Children: []Node{{Kind: KindLabel}}}, ErrInvalidFrame, "layout:"},
		{
			"max below min",
			Node{Kind: KindVBox, Children: []Node{{Kind: KindLabel}, {Kind: KindFill, Width: &Extent{Min: 3, Max: &neg}}}},
			ErrInvalidDemand,
			"layout.children[1]: width:",
		},
		{
			"negative min",
			Node{Kind: KindHBox, Children: []Node{{Kind: KindHBox, Children: []Node{{Kind: KindFill, Height: &Extent{Min: -2}}}}}},
			ErrInvalidDemand,
			"layout.children[0].children[0]: height:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.node.Build()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestFrameFromConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
[layout]
kind = "frame"
line = "double"

  [[layout.children]]
  kind = "label"
  text = "ok"
`))
	require.NoError(t, err)

	tree, err := cfg.Layout.Build()
	require.NoError(t, err)
	root := tree.Root
	assert.Equal(t, widget.Demand2D{Width: widget.Cols.Exact(4), Height: widget.Rows.Exact(3)}, root.SpaceDemand())

	g := tui.NewGrid(4, 3, tui.Style{})
	root.Draw(g.Root(), widget.RenderingHints{Active: true})
	assert.Equal(t, []string{"╔══╗", "║ok║", "╚══╝"}, g.Rows())
}

func TestPagerFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("from\nfile\n"), 0o644))

	node := Node{
		Kind:      KindVBox,
		Separator: SeparatorDraw,
		Children: []Node{
			{Kind: KindPager, Text: "inline\ntext"},
			{Kind: KindPager, File: path},
		},
	}
	tree, err := node.Build()
	require.NoError(t, err)

	col, ok := tree.Root.(*widget.VBox)
	require.True(t, ok)
	assert.Equal(t, 1, col.Layout.SeparatingStyle().Height())

	g := tui.NewGrid(6, 5, tui.Style{})
	tree.Root.Draw(g.Root(), widget.RenderingHints{Active: true})
	assert.Equal(t, []string{"inline", "text  ", "      ", "from  ", "file  "}, g.Rows())

	require.NoError(t, tree.Close())
}

func TestJSONFromConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
[layout]
kind = "json"
text = '{"k": [1]}'
`))
	require.NoError(t, err)

	tree, err := cfg.Layout.Build()
	require.NoError(t, err)
	v, ok := tree.Root.(*widget.JSONViewer)
	require.True(t, ok)
	assert.Equal(t, "{\n  \"k\": [\n    1\n  ]\n}\n", v.String())

	_, err = Node{Kind: KindVBox, Children: []Node{{Kind: KindJSON, Text: "{"}}}.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.children[0]: parse json")
}

func TestAlternatingFromConfig(t *testing.T) {
	node := Node{
		Kind:        KindHBox,
		Separator:   SeparatorAlternate,
		AlternateBg: "#0a141e",
		Children:    []Node{{Kind: KindLabel, Text: "a"}, {Kind: KindLabel, Text: "b"}},
	}
	tree, err := node.Build()
	require.NoError(t, err)
	root := tree.Root

	box, ok := root.(*widget.HBox)
	require.True(t, ok)
	sep := box.Layout.SeparatingStyle()
	assert.Equal(t, widget.SeparatorAlternating, sep.Kind())
	assert.Equal(t, terminal.RGB{R: 10, G: 20, B: 30}, sep.Modifier().Apply(tui.Style{}).Bg)

	g := tui.NewGrid(2, 1, tui.Style{})
	root.Draw(g.Root(), widget.RenderingHints{})
	assert.Equal(t, terminal.RGB{R: 10, G: 20, B: 30}, g.At(1, 0).Bg)
	assert.Equal(t, terminal.RGBBlack, g.At(0, 0).Bg)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n[layout]\nkind = \"edit\"\ntext = \"hi\"\n"), 0o644))

	cfg, err := Load(path, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"), slog.New(slog.DiscardHandler))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogConfig(t *testing.T) {
	lvl, err := LogConfig{}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	lvl, err = LogConfig{Level: "warn"}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = LogConfig{Level: "loud"}.SlogLevel()
	assert.ErrorIs(t, err, ErrInvalidLevel)

	path := filepath.Join(t.TempDir(), "demo.log")
	logger, closer, err := LogConfig{Path: path, Level: "debug"}.NewLogger()
	require.NoError(t, err)
	logger.Debug("hello", "k", 1)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
}
