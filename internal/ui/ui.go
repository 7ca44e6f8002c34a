package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/gubarz/wordsearch/internal/config"
	"github.com/gubarz/wordsearch/internal/parser"
	"github.com/gubarz/wordsearch/internal/solver"
)

// Run shows the puzzle and reveals the solution using the given mode
// (config.RevealPrompt, config.RevealTUI or config.RevealImmediate).
// in should be the same reader given to PromptForPath.
func Run(in io.Reader, pz *parser.Puzzle, s *solver.Solver, mode string) error {
	RefreshStyles()
	if mode == config.RevealTUI {
		if isTerminal(os.Stdin) {
			return RunTUI(pz, s)
		}
		// bubbletea needs a keyboard; piped input gets the line prompt
		mode = config.RevealPrompt
	}
	return RunPrompt(in, os.Stdout, pz, s, mode != config.RevealImmediate)
}

// RunPrompt prints the grid, optionally waits for ENTER, then prints the
// report and the highlighted grid
func RunPrompt(in io.Reader, out io.Writer, pz *parser.Puzzle, s *solver.Solver, wait bool) error {
	if pz.Title != "" {
		fmt.Fprintln(out, styles.Title.Render(pz.Title))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, styles.Grid.Render(s.Grid().String()))
	fmt.Fprintln(out)

	if wait {
		fmt.Fprint(out, styles.Prompt.Render("Press 'ENTER' to reveal solution"))
		if _, err := readLine(in); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	results := s.Solve(pz.Words)
	return s.Output(out, results)
}

// PromptForPath asks for a puzzle file on in, the way the tool behaves when
// started without arguments
func PromptForPath(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter the input file: ")
	line, err := readLine(in)
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", errors.New("no puzzle file given")
	}
	return path, nil
}

// NewLineReader wraps in for line reads. A *bufio.Reader is returned as is,
// so successive prompts never lose input buffered by an earlier one.
func NewLineReader(in io.Reader) *bufio.Reader {
	if br, ok := in.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(in)
}

// readLine reads up to and including the next newline. EOF after partial
// input still counts as a line.
func readLine(in io.Reader) (string, error) {
	line, err := NewLineReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
