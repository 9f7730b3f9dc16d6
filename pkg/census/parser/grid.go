package parser

import "regexp"

// GridBounds returns the row count and the widest row length of a grid.
func GridBounds(grid [][]string) (rows, cols int) {
	rows = len(grid)
	for _, row := range grid {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return rows, cols
}

// Cell returns the text at (row, col), or "" when the cell is outside the grid.
func Cell(grid [][]string, row, col int) string {
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		return ""
	}
	return grid[row][col]
}

// FindRow scans column col top to bottom and returns the index of the
// first row whose text matches re, or -1 if none does.
func FindRow(grid [][]string, col int, re *regexp.Regexp) int {
	for rowIdx := range grid {
		text := Cell(grid, rowIdx, col)
		if text == "" {
			continue
		}
		if re.MatchString(text) {
			return rowIdx
		}
	}
	return -1
}

// LabelPattern builds a case-insensitive substring matcher that accepts
// any of the given labels literally.
func LabelPattern(labels []string) (*regexp.Regexp, error) {
	expr := "(?i)"
	for i, label := range labels {
		if i > 0 {
			expr += "|"
		}
		expr += regexp.QuoteMeta(label)
	}
	return regexp.Compile(expr)
}
