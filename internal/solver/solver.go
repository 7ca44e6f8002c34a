package solver

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/wordsearch/internal/config"
	"github.com/gubarz/wordsearch/internal/grid"
)

// ============================================================================
// Collaborators
// ============================================================================

// StyleSource hands out one highlight style per found word
type StyleSource interface {
	Next() lipgloss.Style
}

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard implements Clipboard with the platform clipboard
type systemClipboard struct{}

// Copy copies text to the system clipboard
func (systemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// ============================================================================
// Solver
// ============================================================================

// Result is the outcome of looking up one word
type Result struct {
	Word  string
	Match grid.Match
	Found bool
	Style lipgloss.Style // zero style when not found
}

// Solver looks up words in a grid and records highlights in an overlay
type Solver struct {
	grid      *grid.Grid
	overlay   *grid.Overlay
	styles    StyleSource
	clipboard Clipboard
	logger    *slog.Logger
}

// New creates a solver over g. A nil logger falls back to slog.Default.
func New(g *grid.Grid, styles StyleSource, logger *slog.Logger) *Solver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Solver{
		grid:      g,
		overlay:   grid.NewOverlay(g),
		styles:    styles,
		clipboard: systemClipboard{},
		logger:    logger,
	}
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (s *Solver) WithClipboard(c Clipboard) *Solver {
	s.clipboard = c
	return s
}

// Grid returns the grid being searched
func (s *Solver) Grid() *grid.Grid {
	return s.grid
}

// Overlay returns the highlight overlay
func (s *Solver) Overlay() *grid.Overlay {
	return s.overlay
}

// Find looks up a single word and highlights it when found
func (s *Solver) Find(word string) Result {
	m, ok := s.grid.FindWord(word)
	if !ok {
		s.logger.Debug("word not found", "word", word)
		return Result{Word: word}
	}

	style := s.styles.Next()
	s.overlay.Apply(m, style)
	s.logger.Debug("word found",
		"word", word,
		"row", m.Start.Row,
		"col", m.Start.Column,
		"direction", m.Direction.String())
	return Result{Word: word, Match: m, Found: true, Style: style}
}

// Solve looks up every word in order
func (s *Solver) Solve(words []string) []Result {
	results := make([]Result, 0, len(words))
	for _, w := range words {
		results = append(results, s.Find(w))
	}

	found := 0
	for _, r := range results {
		if r.Found {
			found++
		}
	}
	s.logger.Info("solve finished", "words", len(words), "found", found)
	return results
}

// ============================================================================
// Reporting
// ============================================================================

// FormatResult renders one report line. Found words are drawn in their
// highlight color.
func FormatResult(r Result) string {
	if !r.Found {
		return fmt.Sprintf("Did not find %s", r.Word)
	}
	return fmt.Sprintf("Found %s at %s going %s", r.Style.Render(r.Word), r.Match.Start, r.Match.Direction.Label())
}

// Report renders every result on its own line
func Report(results []Result) string {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = FormatResult(r)
	}
	return strings.Join(lines, "\n")
}

// plainReport renders results and the solved grid without any color
func (s *Solver) plainReport(results []Result) string {
	var b strings.Builder
	for _, r := range results {
		if r.Found {
			fmt.Fprintf(&b, "Found %s at %s going %s\n", r.Word, r.Match.Start, r.Match.Direction.Label())
		} else {
			fmt.Fprintf(&b, "Did not find %s\n", r.Word)
		}
	}
	b.WriteByte('\n')
	b.WriteString(s.plainSolution())
	return b.String()
}

// plainSolution renders the grid showing only the letters of found words
func (s *Solver) plainSolution() string {
	rows := make([]string, s.grid.Rows())
	cells := make([]string, s.grid.Cols())
	for r := range rows {
		for c := range cells {
			if s.overlay.Marked(r, c) {
				cells[c] = string(s.grid.At(r, c))
			} else {
				cells[c] = "."
			}
		}
		rows[r] = strings.Join(cells, " ")
	}
	return strings.Join(rows, "\n")
}

// ============================================================================
// Output Handling
// ============================================================================

// Output writes the report and highlighted grid to w, and copies an
// uncolored version to the clipboard when the configured mode is copy
func (s *Solver) Output(w io.Writer, results []Result) error {
	return s.OutputWithMode(w, results, config.GetOutput())
}

// OutputWithMode is Output with an explicit mode
func (s *Solver) OutputWithMode(w io.Writer, results []Result, mode string) error {
	if len(results) > 0 {
		if _, err := fmt.Fprintln(w, Report(results)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, s.overlay.String()); err != nil {
		return err
	}

	if mode == config.OutputCopy {
		if err := s.clipboard.Copy(s.plainReport(results)); err != nil {
			return fmt.Errorf("copying solution: %w", err)
		}
		s.logger.Info("solution copied to clipboard")
	}
	return nil
}
