package logic

import "chanpick/internal/domain"

// EntryKind discriminates the two row shapes in the flattened list
type EntryKind int

const (
	EntryTeamHeader EntryKind = iota
	EntryChannelRow
)

// Entry is one row of the flattened visible list: either a team header or
// a channel row belonging to the most recent header.
type Entry struct {
	Kind     EntryKind
	Team     domain.Team
	Channel  domain.Channel
	Expanded bool // headers only: whether channel rows follow
	Matched  bool
	Span     MatchSpan
}

// Flatten derives the visible list from the roster, the manual expansion
// flags, and the filter result. Channel rows always follow their team's
// header; a channel appears only if its team is expanded (manually in
// browse mode, by match in filtered mode) and the channel itself is
// visible under the filter.
func Flatten(teams []domain.Team, manualExpanded map[string]bool, fr FilterResult) []Entry {
	var entries []Entry
	for i, team := range teams {
		if i >= len(fr.Teams) {
			break
		}
		tr := fr.Teams[i]
		if !tr.Visible {
			continue
		}
		expanded := tr.Expanded
		if !fr.Filtered {
			expanded = manualExpanded[team.ID]
		}
		entries = append(entries, Entry{Kind: EntryTeamHeader, Team: team, Expanded: expanded})
		if !expanded {
			continue
		}
		for j, ch := range team.Channels {
			if j >= len(tr.Channels) || !tr.Channels[j].Visible {
				continue
			}
			entries = append(entries, Entry{
				Kind:    EntryChannelRow,
				Team:    team,
				Channel: ch,
				Matched: tr.Channels[j].Matched,
				Span:    tr.Channels[j].Span,
			})
		}
	}
	return entries
}

// ChannelRowCount reports how many channel rows the list contains
func ChannelRowCount(entries []Entry) int {
	count := 0
	for _, e := range entries {
		if e.Kind == EntryChannelRow {
			count++
		}
	}
	return count
}
