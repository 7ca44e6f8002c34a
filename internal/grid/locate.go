package grid

import (
	"strings"
	"unicode/utf8"
)

// Direction is the way a word reads from its first letter
type Direction int

const (
	Right     Direction = iota // left to right
	Left                       // right to left
	Down                       // top to bottom
	Up                         // bottom to top
	UpRight                    // up and to the right
	DownLeft                   // down and to the left
	DownRight                  // down and to the right
	UpLeft                     // up and to the left
)

var directionNames = [...]string{
	Right:     "right",
	Left:      "left",
	Down:      "down",
	Up:        "up",
	UpRight:   "up-right",
	DownLeft:  "down-left",
	DownRight: "down-right",
	UpLeft:    "up-left",
}

var directionLabels = [...]string{
	Right:     "LEFT to RIGHT",
	Left:      "RIGHT to LEFT",
	Down:      "DOWN",
	Up:        "UP",
	UpRight:   "UP to the RIGHT",
	DownLeft:  "DOWN to the LEFT",
	DownRight: "DOWN to the RIGHT",
	UpLeft:    "UP to the LEFT",
}

var directionSteps = [...][2]int{
	Right:     {0, 1},
	Left:      {0, -1},
	Down:      {1, 0},
	Up:        {-1, 0},
	UpRight:   {-1, 1},
	DownLeft:  {1, -1},
	DownRight: {1, 1},
	UpLeft:    {-1, -1},
}

// String returns the short name of the direction
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// Label returns the descriptive form used in reports
func (d Direction) Label() string {
	if d < 0 || int(d) >= len(directionLabels) {
		return "unknown"
	}
	return directionLabels[d]
}

// Step returns the per-letter (row, column) offset
func (d Direction) Step() (rowStep, colStep int) {
	s := directionSteps[d]
	return s[0], s[1]
}

// forward and backward directions per family, indexed by family
var (
	forwardDirection  = [...]Direction{rowFamily: Right, columnFamily: Down, upRightFamily: UpRight, downRightFamily: DownRight}
	backwardDirection = [...]Direction{rowFamily: Left, columnFamily: Up, upRightFamily: DownLeft, downRightFamily: UpLeft}
)

// Match is where a word starts and which way it reads
type Match struct {
	Word      string
	Start     Location
	Direction Direction
}

// Len returns the number of cells the match covers
func (m Match) Len() int {
	return utf8.RuneCountInString(m.Word)
}

// Cells returns the locations covered by the match, first letter first
func (m Match) Cells() []Location {
	dr, dc := m.Direction.Step()
	n := m.Len()
	cells := make([]Location, n)
	for i := 0; i < n; i++ {
		cells[i] = Location{Row: m.Start.Row + i*dr, Column: m.Start.Column + i*dc}
	}
	return cells
}

// FindWord returns the first match of word in scan order: rows, columns,
// up-right diagonals, down-right diagonals, each line forward before backward.
// Matching is case-sensitive. An empty word, or one that is not valid UTF-8,
// is never found.
func (g *Grid) FindWord(word string) (Match, bool) {
	if word == "" || !utf8.ValidString(word) {
		return Match{}, false
	}
	for _, f := range scanOrder {
		for d, line := range g.views(f) {
			offset, forward, ok := findInLine(word, line)
			if !ok {
				continue
			}
			dir := forwardDirection[f]
			if !forward {
				dir = backwardDirection[f]
			}
			return Match{Word: word, Start: g.locate(f, d, offset), Direction: dir}, true
		}
	}
	return Match{}, false
}

// findInLine looks for word in line, then in the reversed line. The offset is
// the rune index of the word's first letter in the un-reversed line.
func findInLine(word, line string) (offset int, forward bool, ok bool) {
	if pos := strings.Index(line, word); pos >= 0 {
		return utf8.RuneCountInString(line[:pos]), true, true
	}
	rev := string(reversed([]rune(line)))
	if pos := strings.Index(rev, word); pos >= 0 {
		k := utf8.RuneCountInString(rev[:pos])
		return utf8.RuneCountInString(line) - 1 - k, false, true
	}
	return 0, false, false
}
