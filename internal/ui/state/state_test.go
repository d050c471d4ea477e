package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chanpick/internal/domain"
)

func sampleTeams() []domain.Team {
	return []domain.Team{
		{
			ID:   "T1",
			Name: "Sales",
			Channels: []domain.Channel{
				{ID: "C1", Name: "General"},
				{ID: "C2", Name: "Leads"},
			},
		},
		{
			ID:   "T2",
			Name: "Engineering",
			Channels: []domain.Channel{
				{ID: "C3", Name: "general"},
			},
		},
	}
}

func TestCommitSetsSelectionAndResets(t *testing.T) {
	s := NewAppState()
	s.SetTeams(sampleTeams())
	s.Query = "lead"
	s.DropdownOpen = true

	team, _ := s.TeamByID("T1")
	channel, _ := team.ChannelByID("C2")
	require.True(t, s.Commit(team, channel))

	require.Equal(t, "T1", s.Selection.Team.ID)
	require.Equal(t, "C2", s.Selection.Channel.ID)
	require.Empty(t, s.Query, "commit clears the query")
	require.False(t, s.DropdownOpen, "commit closes the dropdown")

	// Referential consistency: the committed channel belongs to the team
	_, ok := s.Selection.Team.ChannelByID(s.Selection.Channel.ID)
	require.True(t, ok)
}

func TestCommitRefusesForeignChannel(t *testing.T) {
	s := NewAppState()
	s.SetTeams(sampleTeams())

	team, _ := s.TeamByID("T1")
	require.False(t, s.Commit(team, domain.Channel{ID: "C3", Name: "general"}))
	require.True(t, s.Selection.IsEmpty())
}

func TestClearSelection(t *testing.T) {
	s := NewAppState()
	s.SetTeams(sampleTeams())
	team, _ := s.TeamByID("T1")
	channel, _ := team.ChannelByID("C1")
	require.True(t, s.Commit(team, channel))

	s.Query = "gen"
	s.ClearSelection()
	require.True(t, s.Selection.IsEmpty())
	require.Empty(t, s.Query)
}

func TestSetTeamsReplacesWholesaleAndPrunesExpansion(t *testing.T) {
	s := NewAppState()
	s.SetTeams(sampleTeams())
	s.ToggleTeam("T1")
	s.ToggleTeam("T2")
	require.True(t, s.ManualExpanded["T1"])

	s.SetTeams([]domain.Team{{ID: "T2", Name: "Engineering"}})
	require.Len(t, s.Teams, 1)
	require.True(t, s.ManualExpanded["T2"], "surviving team keeps its flag")
	_, stale := s.ManualExpanded["T1"]
	require.False(t, stale, "vanished team's flag is dropped")
}

func TestToggleTeamFlipsEveryTime(t *testing.T) {
	s := NewAppState()
	s.SetTeams(sampleTeams())

	for i := 0; i < 5; i++ {
		s.ToggleTeam("T1")
		require.Equal(t, i%2 == 0, s.ManualExpanded["T1"])
	}
}

func TestFindChannel(t *testing.T) {
	s := NewAppState()
	s.SetTeams(sampleTeams())

	team, channel, ok := s.FindChannel("C3")
	require.True(t, ok)
	require.Equal(t, "T2", team.ID)
	require.Equal(t, "general", channel.Name)

	_, _, ok = s.FindChannel("nope")
	require.False(t, ok)
}
