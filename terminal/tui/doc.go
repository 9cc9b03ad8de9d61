// Package tui provides the drawing surface for the terminal package.
//
// A Grid owns the cell buffer of one frame. Grid.Root hands out a single Region
// covering it; regions are exclusively owned rectangles with automatic clipping
// and a default Style.
//
// Design principles:
//   - Exclusive ownership: splitting consumes the parent, halves never overlap
//   - Stale handles panic: a new Root invalidates every region of the previous frame
//   - Immediate mode: no retained state in the surface, the app owns the render loop
//
// Usage pattern:
//
//	grid := tui.NewGrid(w, h, tui.Style{Fg: fg, Bg: bg})
//	root := grid.Root()
//	left, right, _ := root.SplitH(w / 2)
//	left.Box(tui.LineRounded)
//	right.Text(0, 0, "Hello")
//
//	term.Flush(grid.Cells(), w, h)
package tui
