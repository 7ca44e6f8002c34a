package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gubarz/wordsearch/internal/grid"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level   string
		debug   bool
		wantErr bool
	}{
		{level: "debug", debug: true},
		{level: "info"},
		{level: "WARN"},
		{level: "error"},
		{level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := newLogger(&buf, tt.level)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			logger.Debug("probe")
			assert.Equal(t, tt.debug, buf.Len() > 0)
		})
	}
}

func TestLoadPuzzle(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("A B C\nD E F\n\nABC\n"), 0o644))
	pz, g, err := loadPuzzle(good, logger)
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC"}, pz.Words)
	assert.Equal(t, 2, g.Rows())

	noWords := filepath.Join(dir, "nowords.txt")
	require.NoError(t, os.WriteFile(noWords, []byte("AB\nCD\n"), 0o644))
	pz, _, err = loadPuzzle(noWords, logger)
	require.NoError(t, err)
	assert.Empty(t, pz.Words)

	ragged := filepath.Join(dir, "ragged.txt")
	require.NoError(t, os.WriteFile(ragged, []byte("ABC\nDE\n\nAB\n"), 0o644))
	_, _, err = loadPuzzle(ragged, logger)
	var mge *grid.MalformedGridError
	require.ErrorAs(t, err, &mge)
	assert.Equal(t, 1, mge.Row)

	_, _, err = loadPuzzle(filepath.Join(dir, "missing.txt"), logger)
	require.Error(t, err)
}

func TestWriteViews(t *testing.T) {
	g, err := grid.New([]string{"ABC", "DEF", "GHI"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeViews(&buf, g))

	out := buf.String()
	assert.Contains(t, out, "3x3 grid\nA B C\nD E F\nG H I\n")
	assert.Contains(t, out, "columns:\n  0  ADG\n  1  BEH\n  2  CFI\n")
	assert.Contains(t, out, "up-right diagonals:\n  0  A\n  1  DB\n  2  GEC\n")
	assert.Contains(t, out, "down-right diagonals:\n  0  G\n  1  DH\n  2  AEI\n")
}
