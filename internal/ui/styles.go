package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/wordsearch/internal/config"
	"github.com/gubarz/wordsearch/internal/palette"
)

// StyleManager encapsulates the styles used around the grid
type StyleManager struct {
	Title   lipgloss.Style
	Grid    lipgloss.Style
	Prompt  lipgloss.Style
	Dim     lipgloss.Style
	Divider lipgloss.Style
	Border  lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Title:   lipgloss.NewStyle().Bold(true),
		Grid:    lipgloss.NewStyle(),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Border:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	}
}

// LoadFromConfig updates styles based on configuration. Colors may be ANSI
// codes ("31") or anything lipgloss.Color accepts.
func (s *StyleManager) LoadFromConfig() {
	promptColor := palette.ParseANSIColor(config.GetColorPrompt())
	dimColor := palette.ParseANSIColor(config.GetColorDim())
	borderColor := palette.ParseANSIColor(config.GetColorBorder())

	s.Title = lipgloss.NewStyle().Bold(true)
	if c := config.GetColorTitle(); c != "" {
		s.Title = s.Title.Foreground(palette.ParseANSIColor(c))
	}
	s.Grid = lipgloss.NewStyle()
	s.Prompt = lipgloss.NewStyle().Foreground(promptColor)
	s.Dim = lipgloss.NewStyle().Foreground(dimColor)

	// Chrome styles
	s.Divider = lipgloss.NewStyle().Foreground(borderColor)
	s.Border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(0, 1)
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config, picking up a changed
// renderer or color profile
func RefreshStyles() {
	styles.LoadFromConfig()
}
