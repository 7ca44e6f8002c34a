package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadFromConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("color_prompt", "31")
	viper.Set("color_dim", "245")
	viper.Set("color_border", "#ff8800")

	s := DefaultStyles()
	s.LoadFromConfig()

	assert.Equal(t, lipgloss.Color("1"), s.Prompt.GetForeground())
	assert.Equal(t, lipgloss.Color("245"), s.Dim.GetForeground())
	assert.Equal(t, lipgloss.Color("#ff8800"), s.Divider.GetForeground())
	assert.Equal(t, lipgloss.Color("#ff8800"), s.Border.GetBorderTopForeground())
	assert.True(t, s.Title.GetBold())
	assert.Equal(t, lipgloss.NoColor{}, s.Title.GetForeground())

	viper.Set("color_title", "95")
	s.LoadFromConfig()
	assert.Equal(t, lipgloss.Color("13"), s.Title.GetForeground())
}
