package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// ErrNoWords is returned alongside a usable puzzle whose word list is empty
var ErrNoWords = errors.New("puzzle has no words to find")

// Puzzle is a parsed grid of letters and the words to look for in it
type Puzzle struct {
	File  string   // Source file path, empty when parsed from a reader
	Title string   // Optional title (HCL puzzles only)
	Rows  []string // Grid rows with inter-letter spaces removed
	Words []string // Words in file order, case preserved
}

// hclPuzzle is the schema of a .hcl puzzle file
type hclPuzzle struct {
	Title string   `hcl:"title,optional"`
	Grid  []string `hcl:"grid"`
	Words []string `hcl:"words,optional"`
}

// ParseFile reads a puzzle from disk. Files ending in .hcl (or .json, the
// same schema in HCL's JSON syntax) are decoded as structured documents;
// anything else is the plain text layout.
func ParseFile(path string) (*Puzzle, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl", ".json":
		return parseHCLFile(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	p, err := Parse(file)
	if p != nil {
		p.File = path
	}
	if err != nil && !errors.Is(err, ErrNoWords) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, err
}

// Parse reads the plain text layout: grid rows, at least one blank line,
// then the words separated by any whitespace. Leading blank lines are
// skipped and CRLF line endings are accepted.
func Parse(r io.Reader) (*Puzzle, error) {
	scanner := bufio.NewScanner(r)
	var rows []string
	var words strings.Builder
	inWords := false

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if inWords {
			words.WriteString(line)
			words.WriteByte('\n')
			continue
		}

		row := stripSpaces(line)
		if row == "" {
			// Blank lines before the grid are noise; after it they end it
			if len(rows) > 0 {
				inWords = true
			}
			continue
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading puzzle: %w", err)
	}

	p := &Puzzle{Rows: rows, Words: ParseWords(words.String())}
	if len(p.Words) == 0 {
		return p, ErrNoWords
	}
	return p, nil
}

func parseHCLFile(path string) (*Puzzle, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := ParseHCL(path, src)
	if p != nil {
		p.File = path
	}
	return p, err
}

// ParseHCL decodes a structured puzzle. filename is used in diagnostics and
// its extension (.hcl or .json) selects the syntax.
func ParseHCL(filename string, src []byte) (*Puzzle, error) {
	var doc hclPuzzle
	if err := hclsimple.Decode(filename, src, nil, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filename, err)
	}

	rows := make([]string, 0, len(doc.Grid))
	for _, line := range doc.Grid {
		rows = append(rows, stripSpaces(line))
	}

	var words []string
	for _, w := range doc.Words {
		words = append(words, ParseWords(w)...)
	}

	p := &Puzzle{Title: doc.Title, Rows: rows, Words: words}
	if len(words) == 0 {
		return p, ErrNoWords
	}
	return p, nil
}

// ParseWords splits text on runs of whitespace, keeping order and case
func ParseWords(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	return words
}

// stripSpaces removes the spaces and tabs some puzzles put between letters
func stripSpaces(line string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, line)
}
