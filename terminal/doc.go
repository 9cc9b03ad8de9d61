// Package terminal provides the cell-level primitives shared by the tui packages.
//
// Features:
//   - Cell buffer model: grapheme cluster, 24-bit fg/bg colors, attribute bitmask
//   - Grapheme segmentation and display width for multi-column clusters
//   - Terminal presentation backed by tcell, with a simulation screen for tests
//
// Cells are row-major: cells[y*width + x]. A wide grapheme occupies its own cell
// followed by continuation cells holding the zero Grapheme.
package terminal
