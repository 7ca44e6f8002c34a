package palette

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseANSIColor(t *testing.T) {
	tests := []struct {
		code string
		want lipgloss.Color
	}{
		{"31", "1"},
		{"36", "6"},
		{"91", "9"},
		{"96", "14"},
		{"212", "212"},
		{"#ff8800", "#ff8800"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseANSIColor(tt.code))
		})
	}
}

func TestNewRequiresColors(t *testing.T) {
	p, err := New(nil, 1)
	require.ErrorIs(t, err, ErrNoColors)
	assert.Nil(t, p)
}

func TestNextIsDeterministicForSeed(t *testing.T) {
	codes := []string{"31", "32", "33", "35", "36"}
	a, err := New(codes, 42)
	require.NoError(t, err)
	b, err := New(codes, 42)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Next().GetForeground(), b.Next().GetForeground())
	}
}

func TestNextStaysInPalette(t *testing.T) {
	codes := []string{"31", "92"}
	p, err := New(codes, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())

	allowed := map[lipgloss.TerminalColor]bool{
		lipgloss.Color("1"):  true,
		lipgloss.Color("10"): true,
	}
	for i := 0; i < 50; i++ {
		assert.True(t, allowed[p.Next().GetForeground()])
	}
}

func TestSingleColorPalette(t *testing.T) {
	p, err := New([]string{"35"}, 0)
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("5"), p.Next().GetForeground())
}
