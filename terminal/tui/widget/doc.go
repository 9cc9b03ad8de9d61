// Package widget negotiates screen space between composable widgets.
//
// Every widget reports a Demand2D: per axis a minimum extent and an optional
// maximum. Layouts aggregate the demands of their children bottom-up, then
// distribute a concrete region top-down: Linearly computes fair per-child
// extents along the main axis and the composer splits the region into disjoint
// sub-regions, one per child, optionally separated by a drawn cell.
//
// Usage pattern:
//
//	row := widget.NewHBox(widget.DrawSeparator(terminal.MustGrapheme("│")),
//	    widget.NewLineLabel("name"),
//	    widget.NewFill(widget.Demand2D{Width: widget.Cols.AtLeast(1), Height: widget.Rows.Exact(1)}, fill),
//	)
//	grid := tui.NewGrid(w, h, tui.Style{})
//	row.Draw(grid.Root(), widget.RenderingHints{Active: true})
//	term.Flush(grid.Cells(), w, h)
package widget
