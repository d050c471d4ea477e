package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"chanpick/internal/domain"
)

// teamsLoadedMsg carries the result of a roster load. An unauthenticated
// load reports authed=false with no teams and no error.
type teamsLoadedMsg struct {
	teams  []domain.Team
	authed bool
	err    error
}

// rosterChangedMsg signals that the roster source changed on disk
type rosterChangedMsg struct{}

// RosterChangedMsg builds the message hosts send when the roster source
// changes outside the program.
func RosterChangedMsg() tea.Msg {
	return rosterChangedMsg{}
}

// SelectByIDMsg builds the message hosts send to commit a channel
// programmatically.
func SelectByIDMsg(ids []string) tea.Msg {
	return selectByIDMsg{ids: ids}
}

// debounceMsg fires when the search quiescence window elapses. Only the
// message matching the current version is acted on; stale ones are
// superseded keystrokes.
type debounceMsg struct {
	version int
}

// selectByIDMsg asks the model to commit a channel programmatically
type selectByIDMsg struct {
	ids []string
}
