package domain

// Channel represents a conversation topic belonging to exactly one team
type Channel struct {
	ID   string
	Name string
}

// Team represents a named group owning an ordered list of channels
type Team struct {
	ID       string
	Name     string
	Channels []Channel
}

// ChannelByID returns the channel with the given id, if the team owns one
func (t Team) ChannelByID(id string) (Channel, bool) {
	for _, ch := range t.Channels {
		if ch.ID == id {
			return ch, true
		}
	}
	return Channel{}, false
}

// Selection is the committed (team, channel) pair. Both fields are set
// together or cleared together, never partially.
type Selection struct {
	Team    Team
	Channel Channel
}

// IsEmpty reports whether nothing is committed
func (s Selection) IsEmpty() bool {
	return s.Team.ID == "" && s.Channel.ID == ""
}
