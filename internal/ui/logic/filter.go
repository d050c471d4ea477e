package logic

import "chanpick/internal/domain"

// ChannelResult carries one channel's visibility under the current query
type ChannelResult struct {
	Visible bool
	Matched bool
	Span    MatchSpan
}

// TeamResult carries one team's visibility under the current query
type TeamResult struct {
	Visible  bool
	Expanded bool
	Channels []ChannelResult
}

// FilterResult is the Filter Engine output for one (teams, query) pair.
// Results are positional: Teams[i] describes teams[i].
type FilterResult struct {
	Query     string
	Filtered  bool
	Teams     []TeamResult
	NoResults bool
}

// ApplyFilter computes which teams and channels are visible for the query.
// It is a pure function of its inputs: applying it twice yields the same
// result.
//
// With an empty query no filtering applies (browse mode): every team is
// visible, expansion is governed by the caller's manual flags, and all
// match decorations are cleared. With a non-empty query a team is expanded
// iff at least one of its channels matches; teams with no matching channel
// are hidden entirely.
func ApplyFilter(teams []domain.Team, query string) FilterResult {
	result := FilterResult{
		Query:    query,
		Filtered: query != "",
		Teams:    make([]TeamResult, len(teams)),
	}

	if !result.Filtered {
		for i, team := range teams {
			tr := TeamResult{
				Visible:  true,
				Channels: make([]ChannelResult, len(team.Channels)),
			}
			for j := range team.Channels {
				tr.Channels[j] = ChannelResult{Visible: true}
			}
			result.Teams[i] = tr
		}
		return result
	}

	anyMatch := false
	for i, team := range teams {
		tr := TeamResult{
			Channels: make([]ChannelResult, len(team.Channels)),
		}
		for j, ch := range team.Channels {
			matched, span := Match(query, ch.Name)
			if matched {
				tr.Channels[j] = ChannelResult{Visible: true, Matched: true, Span: span}
				tr.Visible = true
				tr.Expanded = true
				anyMatch = true
			}
		}
		result.Teams[i] = tr
	}
	result.NoResults = !anyMatch
	return result
}
