package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "docstring example", text: "\n BATHROOM \n  FLUSH      WIPE  ", want: []string{"BATHROOM", "FLUSH", "WIPE"}},
		{name: "tabs and CRLF", text: "SEAT\t\tSOAP\r\nTUB", want: []string{"SEAT", "SOAP", "TUB"}},
		{name: "case preserved", text: "Towel towel", want: []string{"Towel", "towel"}},
		{name: "only whitespace", text: " \n\t ", want: nil},
		{name: "empty", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseWords(tt.text)); diff != "" {
				t.Errorf("ParseWords mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		rows    []string
		words   []string
		wantErr error
	}{
		{
			name:  "spaced letters",
			input: "A B C\nD E F\n\nABC  FED\nBEH\n",
			rows:  []string{"ABC", "DEF"},
			words: []string{"ABC", "FED", "BEH"},
		},
		{
			name:  "CRLF and several blank lines",
			input: "ABC\r\nDEF\r\n\r\n\r\n\r\nABC\r\nDEF\r\n",
			rows:  []string{"ABC", "DEF"},
			words: []string{"ABC", "DEF"},
		},
		{
			name:  "leading blank lines",
			input: "\n\nXY\nZW\n\nXY",
			rows:  []string{"XY", "ZW"},
			words: []string{"XY"},
		},
		{
			name:  "blank line with spaces separates sections",
			input: "AB\nCD\n   \nAC",
			rows:  []string{"AB", "CD"},
			words: []string{"AC"},
		},
		{
			name:    "no word list",
			input:   "AB\nCD\n",
			rows:    []string{"AB", "CD"},
			wantErr: ErrNoWords,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrNoWords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NotNil(t, p)
			assert.Equal(t, tt.rows, p.Rows)
			assert.Equal(t, tt.words, p.Words)
		})
	}
}

func TestParseRaggedRowsArePassedThrough(t *testing.T) {
	// Shape validation belongs to the grid index, not the parser
	p, err := Parse(strings.NewReader("ABC\nDE\n\nAB"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC", "DE"}, p.Rows)
}

func TestParseHCL(t *testing.T) {
	src := `
title = "Bathroom"
grid = [
  "X S E A T",
  "R B A T H",
]
words = ["SEAT", "BATH RB"]
`
	p, err := ParseHCL("bathroom.hcl", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, "Bathroom", p.Title)
	assert.Equal(t, []string{"XSEAT", "RBATH"}, p.Rows)
	assert.Equal(t, []string{"SEAT", "BATH", "RB"}, p.Words)
}

func TestParseHCLErrors(t *testing.T) {
	t.Run("missing grid", func(t *testing.T) {
		_, err := ParseHCL("bad.hcl", []byte(`words = ["A"]`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad.hcl")
	})

	t.Run("no words", func(t *testing.T) {
		p, err := ParseHCL("empty.hcl", []byte(`grid = ["AB", "CD"]`))
		require.ErrorIs(t, err, ErrNoWords)
		assert.Equal(t, []string{"AB", "CD"}, p.Rows)
	})
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "puzzle.txt")
	require.NoError(t, os.WriteFile(txt, []byte("ABC\nDEF\nGHI\n\nAEI CEG\n"), 0o644))
	p, err := ParseFile(txt)
	require.NoError(t, err)
	assert.Equal(t, txt, p.File)
	assert.Equal(t, []string{"AEI", "CEG"}, p.Words)

	hclPath := filepath.Join(dir, "puzzle.hcl")
	require.NoError(t, os.WriteFile(hclPath, []byte(`grid = ["ABC", "DEF"]
words = ["AD"]
`), 0o644))
	p, err = ParseFile(hclPath)
	require.NoError(t, err)
	assert.Equal(t, hclPath, p.File)
	assert.Equal(t, []string{"ABC", "DEF"}, p.Rows)

	jsonPath := filepath.Join(dir, "puzzle.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"grid": ["AB", "CD"], "words": ["AC", "DB"]}`), 0o644))
	p, err = ParseFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"AB", "CD"}, p.Rows)
	assert.Equal(t, []string{"AC", "DB"}, p.Words)

	_, err = ParseFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
