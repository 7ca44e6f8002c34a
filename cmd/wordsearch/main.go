package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gubarz/wordsearch/internal/config"
	"github.com/gubarz/wordsearch/internal/grid"
	"github.com/gubarz/wordsearch/internal/palette"
	"github.com/gubarz/wordsearch/internal/parser"
	"github.com/gubarz/wordsearch/internal/solver"
	"github.com/gubarz/wordsearch/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var gridCmd = &cobra.Command{
	Use:   "grid [puzzle-file]",
	Short: "Print a puzzle's grid and its row, column and diagonal views",
	Long: `Prints the grid followed by every line the search runs over:
rows, columns, up-right diagonals and down-right diagonals.

Useful for checking how a puzzle file was read.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGrid,
}

var rootCmd = &cobra.Command{
	Use:   "wordsearch [puzzle-file]",
	Short: "Solve word search puzzles",
	Long: `Finds every listed word in a grid of letters, reading across,
down and along both diagonals in either direction, and shows the
grid with each found word highlighted in its own color.

A puzzle file holds the grid, a blank line, then the words.
Files ending in .hcl or .json use the structured format:

  grid  = ["XSEAT", "RBATH"]
  words = ["SEAT", "BATH"]`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(gridCmd)

	rootCmd.PersistentFlags().StringP("reveal", "r", "", "Reveal mode: prompt, tui, immediate")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output mode: print, copy")
	rootCmd.PersistentFlags().Bool("copy", false, "Also copy the solution to the clipboard (shorthand for -o copy)")
	rootCmd.PersistentFlags().StringSlice("colors", nil, "ANSI color codes used for highlighting")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for color selection (0 = random)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	viper.BindPFlag("colors", rootCmd.PersistentFlags().Lookup("colors"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

// newLogger builds the stderr logger for the given level name
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// loggerFromFlags resolves the log level from the flag or config
func loggerFromFlags(cmd *cobra.Command) (*slog.Logger, error) {
	level := config.GetLogLevel()
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		level = l
	}
	return newLogger(os.Stderr, level)
}

// puzzlePath picks the puzzle file from args, config, or an interactive prompt
func puzzlePath(args []string, in *bufio.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if p := config.GetPath(); p != "" {
		return p, nil
	}
	return ui.PromptForPath(in, os.Stdout)
}

// loadPuzzle parses the puzzle file and builds its grid index
func loadPuzzle(path string, logger *slog.Logger) (*parser.Puzzle, *grid.Grid, error) {
	pz, err := parser.ParseFile(path)
	if errors.Is(err, parser.ErrNoWords) {
		logger.Warn("puzzle lists no words", "file", path)
	} else if err != nil {
		return nil, nil, fmt.Errorf("parse error: %w", err)
	}

	g, err := grid.New(pz.Rows)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid grid in %s: %w", path, err)
	}
	logger.Debug("puzzle loaded", "file", path, "rows", g.Rows(), "cols", g.Cols(), "words", len(pz.Words))
	return pz, g, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	if c, _ := cmd.Flags().GetBool("copy"); c {
		config.SetOutput(config.OutputCopy)
	} else if o, _ := cmd.Flags().GetString("output"); o != "" {
		config.SetOutput(o)
	}
	if r, _ := cmd.Flags().GetString("reveal"); r != "" {
		config.SetReveal(r)
	}

	switch mode := config.GetReveal(); mode {
	case config.RevealPrompt, config.RevealTUI, config.RevealImmediate:
	default:
		return fmt.Errorf("unsupported reveal mode: %s (supported: prompt, tui, immediate)", mode)
	}
	switch mode := config.GetOutput(); mode {
	case config.OutputPrint, config.OutputCopy:
	default:
		return fmt.Errorf("unsupported output mode: %s (supported: print, copy)", mode)
	}

	logger, err := loggerFromFlags(cmd)
	if err != nil {
		return err
	}

	stdin := ui.NewLineReader(os.Stdin)
	path, err := puzzlePath(args, stdin)
	if err != nil {
		return err
	}

	pz, g, err := loadPuzzle(path, logger)
	if err != nil {
		return err
	}

	colors, err := palette.FromConfig()
	if err != nil {
		return err
	}

	s := solver.New(g, colors, logger)
	return ui.Run(stdin, pz, s, config.GetReveal())
}

func runGrid(cmd *cobra.Command, args []string) error {
	logger, err := loggerFromFlags(cmd)
	if err != nil {
		return err
	}

	path, err := puzzlePath(args, ui.NewLineReader(os.Stdin))
	if err != nil {
		return err
	}

	_, g, err := loadPuzzle(path, logger)
	if err != nil {
		return err
	}

	return writeViews(cmd.OutOrStdout(), g)
}

// writeViews prints the grid and each view family with line indices
func writeViews(w io.Writer, g *grid.Grid) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d grid\n%s\n", g.Rows(), g.Cols(), g.String())

	families := []struct {
		name  string
		lines []string
	}{
		{"rows", g.RowViews()},
		{"columns", g.ColumnViews()},
		{"up-right diagonals", g.UpRightViews()},
		{"down-right diagonals", g.DownRightViews()},
	}
	for _, f := range families {
		fmt.Fprintf(&b, "\n%s:\n", f.name)
		for i, line := range f.lines {
			fmt.Fprintf(&b, "%3d  %s\n", i, line)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
