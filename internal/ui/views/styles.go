package views

import (
	"github.com/charmbracelet/lipgloss"

	"chanpick/internal/config"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title      lipgloss.Style
	Prompt     lipgloss.Style
	Team       lipgloss.Style
	Channel    lipgloss.Style
	Match      lipgloss.Style
	CursorRow  lipgloss.Style
	CursorMark lipgloss.Style
	Selected   lipgloss.Style
	Dim        lipgloss.Style
	Error      lipgloss.Style
	NoResults  lipgloss.Style
	Help       lipgloss.Style
	List       lipgloss.Style

	border lipgloss.Border
	hasBorder bool
}

// NewStyles builds the style set from the configured hooks. Hooks are
// visual only; nothing here affects behavior.
func NewStyles(hooks config.StyleHooks) *Styles {
	s := &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(hooks.TeamColor)),
		Prompt:     lipgloss.NewStyle().Bold(true),
		Team:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hooks.TeamColor)),
		Channel:    lipgloss.NewStyle().Foreground(lipgloss.Color(hooks.ChannelColor)),
		Match:      lipgloss.NewStyle().Foreground(lipgloss.Color(hooks.MatchColor)).Bold(true),
		CursorRow:  lipgloss.NewStyle().Background(lipgloss.Color(hooks.HighlightColor)),
		CursorMark: lipgloss.NewStyle().Foreground(lipgloss.Color(hooks.CursorColor)).Bold(true),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color(hooks.CursorColor)),
		Dim:        lipgloss.NewStyle().Faint(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		NoResults:  lipgloss.NewStyle().Faint(true).Italic(true),
		Help:       lipgloss.NewStyle().Faint(true),
	}

	switch hooks.Border {
	case "none":
		s.List = lipgloss.NewStyle()
	case "normal":
		s.border = lipgloss.NormalBorder()
		s.hasBorder = true
	default:
		s.border = lipgloss.RoundedBorder()
		s.hasBorder = true
	}
	if s.hasBorder {
		s.List = lipgloss.NewStyle().
			Border(s.border).
			BorderForeground(lipgloss.Color(hooks.BorderColor))
	}
	return s
}

// HasBorder reports whether the dropdown list draws a border
func (s *Styles) HasBorder() bool {
	return s.hasBorder
}
