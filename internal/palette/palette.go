// Package palette turns ANSI color codes into lipgloss styles and hands one
// out per found word.
package palette

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/gubarz/wordsearch/internal/config"
)

// ErrNoColors is returned when a palette is built from an empty color list
var ErrNoColors = errors.New("palette: no colors configured")

// Palette picks a random highlight style for each word
type Palette struct {
	styles []lipgloss.Style
	rng    *rand.Rand
}

// New builds a palette from ANSI codes ("31", "92") or any value lipgloss
// accepts as a color ("212", "#ff8800"). A zero seed is replaced with a
// time-based one.
func New(codes []string, seed uint64) (*Palette, error) {
	if len(codes) == 0 {
		return nil, ErrNoColors
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	styles := make([]lipgloss.Style, len(codes))
	for i, code := range codes {
		styles[i] = lipgloss.NewStyle().Foreground(ParseANSIColor(code))
	}

	return &Palette{
		styles: styles,
		rng:    rand.New(rand.NewPCG(seed, seed>>1|1)),
	}, nil
}

// FromConfig builds a palette from the configured colors and seed
func FromConfig() (*Palette, error) {
	if config.GetNoColor() {
		DisableColor()
	}
	return New(config.GetColors(), config.GetSeed())
}

// Next returns the style for the next word
func (p *Palette) Next() lipgloss.Style {
	return p.styles[p.rng.IntN(len(p.styles))]
}

// Len returns the number of distinct styles
func (p *Palette) Len() int {
	return len(p.styles)
}

// DisableColor makes every lipgloss style render as plain text
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ParseANSIColor converts ANSI color codes to lipgloss colors
func ParseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}
