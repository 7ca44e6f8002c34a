package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/wordsearch/internal/parser"
	"github.com/gubarz/wordsearch/internal/solver"
)

// ============================================================================
// Key Bindings
// ============================================================================

type keyMap struct {
	Reveal key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Reveal: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "reveal solution"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ============================================================================
// Main Model
// ============================================================================

// uiPhase represents which phase the TUI is in
type uiPhase int

const (
	phaseHidden   uiPhase = iota // Grid shown, solution hidden
	phaseRevealed                // Report and highlighted grid shown
)

// mainModel is the Bubble Tea model for the reveal flow
type mainModel struct {
	width    int
	height   int
	quitting bool

	phase   uiPhase
	keys    keyMap
	help    help.Model
	puzzle  *parser.Puzzle
	solver  *solver.Solver
	results []solver.Result
}

// newMainModel creates a model with the solution hidden
func newMainModel(pz *parser.Puzzle, s *solver.Solver) mainModel {
	return mainModel{
		phase:  phaseHidden,
		keys:   defaultKeyMap(),
		help:   help.New(),
		puzzle: pz,
		solver: s,
	}
}

// Init implements tea.Model
func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reveal):
			if m.phase == phaseRevealed {
				return m, tea.Quit
			}
			m.results = m.solver.Solve(m.puzzle.Words)
			m.phase = phaseRevealed
			m.keys.Reveal.SetHelp("enter", "done")
		}
	}
	return m, nil
}

// View implements tea.Model
func (m mainModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.puzzle.Title != "" {
		b.WriteString(styles.Title.Render(m.puzzle.Title))
		b.WriteString("\n\n")
	}

	switch m.phase {
	case phaseRevealed:
		b.WriteString(styles.Border.Render(m.solver.Overlay().String()))
		b.WriteString("\n")
		b.WriteString(solver.Report(m.results))
	default:
		b.WriteString(styles.Border.Render(m.solver.Grid().String()))
		b.WriteString("\n")
		b.WriteString(styles.Dim.Render(fmt.Sprintf("%d words hidden", len(m.puzzle.Words))))
	}

	b.WriteString("\n")
	b.WriteString(styles.Divider.Render(strings.Repeat("─", max(m.width, 20))))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// ============================================================================
// Run TUI
// ============================================================================

// getTTY returns file handles for TUI input/output
// Uses /dev/tty when stdout is redirected so the solution can still be piped
func getTTY() (in *os.File, out *os.File, cleanup func()) {
	if isTerminal(os.Stdout) {
		return os.Stdin, os.Stdout, func() {}
	}

	out, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return os.Stdin, os.Stderr, func() {}
	}

	// Tell lipgloss to use the TTY for color detection
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(out))
	return os.Stdin, out, func() { out.Close() }
}

// RunTUI launches the Bubble Tea interface and prints the solution to
// stdout once the user has revealed it
func RunTUI(pz *parser.Puzzle, s *solver.Solver) error {
	ttyIn, ttyOut, cleanup := getTTY()
	RefreshStyles() // Refresh after getTTY sets up the renderer

	p := tea.NewProgram(newMainModel(pz, s), tea.WithAltScreen(), tea.WithOutput(ttyOut), tea.WithInput(ttyIn))
	finalModel, err := p.Run()
	cleanup()
	if err != nil {
		return err
	}

	result := finalModel.(mainModel)
	if result.phase != phaseRevealed {
		return nil
	}
	// The alt screen is gone; leave the solution in the scrollback
	return s.Output(os.Stdout, result.results)
}
