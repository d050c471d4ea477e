package state

import (
	"chanpick/internal/domain"
)

// AppState contains all the picker state. Everything the view draws is
// derived from here; nothing is ever read back out of rendered output.
type AppState struct {
	// Roster data, replaced wholesale on every load
	Teams []domain.Team

	// Manual expansion flags for browse mode (empty query). Filtered mode
	// derives expansion from matches instead, so clearing the query
	// restores exactly this map.
	ManualExpanded map[string]bool

	// Search state
	Query     string
	NoResults bool

	// Committed selection
	Selection domain.Selection

	// Focus/visibility state
	Focused      bool
	Hovered      bool
	DropdownOpen bool

	// Load state
	Loading bool
	Loaded  bool
	LoadErr error

	// UI state
	ViewportHeight int
	StatusMessage  string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ManualExpanded: make(map[string]bool),
		ViewportHeight: 10,
	}
}

// SetTeams replaces the roster wholesale. Expansion flags for teams that
// survived the reload are kept; flags for vanished teams are dropped.
func (s *AppState) SetTeams(teams []domain.Team) {
	s.Teams = teams
	s.Loading = false
	s.Loaded = true
	s.LoadErr = nil

	alive := make(map[string]bool, len(teams))
	for _, t := range teams {
		alive[t.ID] = true
	}
	for id := range s.ManualExpanded {
		if !alive[id] {
			delete(s.ManualExpanded, id)
		}
	}
}

// ToggleTeam flips a team's manual expansion flag
func (s *AppState) ToggleTeam(id string) {
	s.ManualExpanded[id] = !s.ManualExpanded[id]
}

// Commit sets the selection and resets the search state. The channel must
// belong to the team; committing an unrelated pair is refused.
func (s *AppState) Commit(team domain.Team, channel domain.Channel) bool {
	if _, ok := team.ChannelByID(channel.ID); !ok {
		return false
	}
	s.Selection = domain.Selection{Team: team, Channel: channel}
	s.Query = ""
	s.NoResults = false
	s.DropdownOpen = false
	return true
}

// ClearSelection empties the selection and the query
func (s *AppState) ClearSelection() {
	s.Selection = domain.Selection{}
	s.Query = ""
	s.NoResults = false
}

// TeamByID returns the loaded team with the given id
func (s *AppState) TeamByID(id string) (domain.Team, bool) {
	for _, t := range s.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Team{}, false
}

// FindChannel scans the roster for a channel id and returns its pair
func (s *AppState) FindChannel(channelID string) (domain.Team, domain.Channel, bool) {
	for _, t := range s.Teams {
		if ch, ok := t.ChannelByID(channelID); ok {
			return t, ch, true
		}
	}
	return domain.Team{}, domain.Channel{}, false
}
