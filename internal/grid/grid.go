// Package grid indexes a rectangular block of letters along rows, columns and
// both diagonal families so every directional word search becomes a 1-D
// substring search followed by a coordinate back-transform.
package grid

import (
	"fmt"
	"strings"
)

// MalformedGridError reports a grid that is empty or not rectangular
type MalformedGridError struct {
	Row  int // offending row, -1 when there are no rows at all
	Want int // expected row length in cells
	Got  int // actual row length in cells
}

func (e *MalformedGridError) Error() string {
	switch {
	case e.Row < 0:
		return "malformed grid: no rows"
	case e.Got == 0:
		return fmt.Sprintf("malformed grid: row %d is empty", e.Row)
	default:
		return fmt.Sprintf("malformed grid: row %d has %d cells, want %d", e.Row, e.Got, e.Want)
	}
}

// Location is a 0-indexed (row, column) pair
type Location struct {
	Row    int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d, %d", l.Row, l.Column)
}

// family identifies one of the four derived view collections
type family int

const (
	rowFamily family = iota
	columnFamily
	upRightFamily
	downRightFamily
)

// scanOrder is the priority in which families are searched
var scanOrder = [...]family{rowFamily, columnFamily, upRightFamily, downRightFamily}

// Grid is an immutable letter grid with its precomputed views
type Grid struct {
	cells [][]rune
	rows  int
	cols  int

	rowViews      []string
	colViews      []string
	diagUpRight   []string
	diagDownRight []string
}

// New builds a Grid from equal-length rows
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, &MalformedGridError{Row: -1}
	}

	cells := make([][]rune, len(rows))
	for r, line := range rows {
		cells[r] = []rune(line)
	}

	width := len(cells[0])
	for r, row := range cells {
		if len(row) == 0 || len(row) != width {
			return nil, &MalformedGridError{Row: r, Want: width, Got: len(row)}
		}
	}

	g := &Grid{
		cells: cells,
		rows:  len(cells),
		cols:  width,
	}
	g.buildViews()
	return g, nil
}

// buildViews derives every view family in a single pass over the cells
func (g *Grid) buildViews() {
	numDiags := g.rows + g.cols - 1
	cols := make([][]rune, g.cols)
	upRight := make([][]rune, numDiags)
	downRight := make([][]rune, numDiags)

	g.rowViews = make([]string, g.rows)
	for row, line := range g.cells {
		g.rowViews[row] = string(line)
		for col, letter := range line {
			cols[col] = append(cols[col], letter)
			upRight[row+col] = append(upRight[row+col], letter)
			downRight[col-row+g.rows-1] = append(downRight[col-row+g.rows-1], letter)
		}
	}

	g.colViews = joinAll(cols, false)
	// Appended top to bottom; reading up-right starts from the bottom cell.
	g.diagUpRight = joinAll(upRight, true)
	g.diagDownRight = joinAll(downRight, false)
}

func joinAll(lines [][]rune, reverse bool) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if reverse {
			line = reversed(line)
		}
		out[i] = string(line)
	}
	return out
}

func reversed(line []rune) []rune {
	out := make([]rune, len(line))
	for i, r := range line {
		out[len(line)-1-i] = r
	}
	return out
}

// Rows returns the number of rows
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns
func (g *Grid) Cols() int { return g.cols }

// At returns the letter at (row, col)
func (g *Grid) At(row, col int) rune {
	return g.cells[row][col]
}

// Contains reports whether loc lies inside the grid
func (g *Grid) Contains(loc Location) bool {
	return loc.Row >= 0 && loc.Row < g.rows && loc.Column >= 0 && loc.Column < g.cols
}

// RowViews returns each row read left-to-right
func (g *Grid) RowViews() []string { return clone(g.rowViews) }

// ColumnViews returns each column read top-to-bottom
func (g *Grid) ColumnViews() []string { return clone(g.colViews) }

// UpRightViews returns each anti-diagonal (row+col = d) read up and to the right
func (g *Grid) UpRightViews() []string { return clone(g.diagUpRight) }

// DownRightViews returns each diagonal (col-row = d-(rows-1)) read down and to the right
func (g *Grid) DownRightViews() []string { return clone(g.diagDownRight) }

func clone(s []string) []string {
	return append([]string(nil), s...)
}

func (g *Grid) views(f family) []string {
	switch f {
	case rowFamily:
		return g.rowViews
	case columnFamily:
		return g.colViews
	case upRightFamily:
		return g.diagUpRight
	default:
		return g.diagDownRight
	}
}

// locate maps offset i of line d in family f back to grid coordinates.
// A result outside the grid means the views and the transform disagree, which
// is a bug rather than a recoverable condition.
func (g *Grid) locate(f family, d, i int) Location {
	var loc Location
	switch f {
	case rowFamily:
		loc = Location{Row: d, Column: i}
	case columnFamily:
		loc = Location{Row: i, Column: d}
	case upRightFamily:
		if d < g.rows {
			loc = Location{Row: d - i, Column: i}
		} else {
			loc = Location{Row: g.rows - i - 1, Column: (d - g.rows) + i + 1}
		}
	case downRightFamily:
		if d < g.rows {
			loc = Location{Row: g.rows - d + i - 1, Column: i}
		} else {
			loc = Location{Row: i, Column: d - g.rows + i + 1}
		}
	}
	if !g.Contains(loc) {
		panic(fmt.Sprintf("grid: family %d line %d offset %d maps outside %dx%d grid to (%s)",
			f, d, i, g.rows, g.cols, loc))
	}
	return loc
}

// String renders the grid with cells separated by spaces and rows by newlines
func (g *Grid) String() string {
	var b strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, letter := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(letter)
		}
	}
	return b.String()
}
