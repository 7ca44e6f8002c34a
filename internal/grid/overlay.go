package grid

import (
	"fmt"
	"strings"
	"sync"
)

// Painter decorates cell text. A lipgloss.Style satisfies it; the overlay
// attaches no meaning to it beyond calling Render.
type Painter interface {
	Render(strs ...string) string
}

// Overlay is the per-cell rendering state used to mark found words
type Overlay struct {
	grid *Grid

	mu     sync.Mutex
	cells  [][]string
	marked [][]bool
}

// NewOverlay returns an overlay showing the grid's original characters
func NewOverlay(g *Grid) *Overlay {
	cells := make([][]string, g.rows)
	marked := make([][]bool, g.rows)
	for r, row := range g.cells {
		cells[r] = make([]string, g.cols)
		marked[r] = make([]bool, g.cols)
		for c, letter := range row {
			cells[r][c] = string(letter)
		}
	}
	return &Overlay{grid: g, cells: cells, marked: marked}
}

// Apply marks every cell of m, rendering each through p. Later calls win on
// overlapping cells.
func (o *Overlay) Apply(m Match, p Painter) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, loc := range m.Cells() {
		if !o.grid.Contains(loc) {
			panic(fmt.Sprintf("grid: match %q at (%s) going %s leaves the grid at (%s)",
				m.Word, m.Start, m.Direction, loc))
		}
		letter := string(o.grid.At(loc.Row, loc.Column))
		o.cells[loc.Row][loc.Column] = p.Render(letter)
		o.marked[loc.Row][loc.Column] = true
	}
}

// Marked reports whether the cell at (row, col) belongs to a found word
func (o *Overlay) Marked(row, col int) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.marked[row][col]
}

// MarkedCount returns how many cells have been highlighted
func (o *Overlay) MarkedCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, row := range o.marked {
		for _, m := range row {
			if m {
				n++
			}
		}
	}
	return n
}

// String renders the grid like Grid.String with decorated cells substituted
func (o *Overlay) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	lines := make([]string, len(o.cells))
	for r, row := range o.cells {
		lines[r] = strings.Join(row, " ")
	}
	return strings.Join(lines, "\n")
}
