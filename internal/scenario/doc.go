// Package scenario loads boards for gridpath from files.
//
// Two formats are understood. Files ending in ".hcl" are HCL documents:
//
//	name          = "corridor"
//	algorithm     = algorithms.astar
//	step_delay_ms = 10
//
//	layout = [
//	  "S...#....",
//	  "....#....",
//	  "........E",
//	]
//
//	wall {
//	  row    = 0
//	  col    = 6
//	  to_row = 1
//	}
//
// A layout uses the grid package's symbols. Without a layout, rows and cols
// (default defaults.rows x defaults.cols) size an open board and start/end
// blocks place the markers. Wall blocks paint single cells or, with to_row
// and to_col, filled rectangles. Expressions can reference defaults.rows,
// defaults.cols and algorithms.<name>, and call concat, format, min and max.
//
// Any other file is read as a plain text layout, one row per line. Blank
// lines and lines starting with "//" are ignored.
package scenario
