package logic

// NoCursor is the cursor value for "nothing highlighted"
const NoCursor = -1

// Navigator tracks a linear cursor over the flattened visible list and a
// viewport window onto it. The cursor is always NoCursor or a valid index
// after every operation.
type Navigator struct {
	cursor         int
	viewportOffset int

	// identity of the entry under the cursor, so the cursor survives a
	// reshuffle of the list and resets when its entry disappears
	teamID    string
	channelID string
}

// NewNavigator creates a navigator with no entry highlighted
func NewNavigator() *Navigator {
	return &Navigator{cursor: NoCursor}
}

// Cursor returns the current cursor index, or NoCursor
func (n *Navigator) Cursor() int {
	return n.cursor
}

// ViewportOffset returns the first visible row of the viewport
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// Current returns the entry under the cursor
func (n *Navigator) Current(entries []Entry) (Entry, bool) {
	if n.cursor < 0 || n.cursor >= len(entries) {
		return Entry{}, false
	}
	return entries[n.cursor], true
}

// Next advances the cursor to the following entry. Past the last entry it
// wraps to no highlight, so repeated presses cycle through the whole list
// and back to the unhighlighted state.
func (n *Navigator) Next(entries []Entry) {
	if len(entries) == 0 {
		n.reset()
		return
	}
	if n.cursor >= len(entries)-1 {
		n.reset()
		return
	}
	n.setCursor(n.cursor+1, entries)
}

// Prev retreats the cursor to the preceding entry. Retreating from the
// first entry returns to no highlight; from no highlight it stays there
// rather than wrapping under to the end.
func (n *Navigator) Prev(entries []Entry) {
	if len(entries) == 0 {
		n.reset()
		return
	}
	if n.cursor <= 0 {
		n.reset()
		return
	}
	n.setCursor(n.cursor-1, entries)
}

// Sync revalidates the cursor against a reshaped list. If the highlighted
// entry still exists its index is updated; if it vanished the cursor
// resets to no highlight.
func (n *Navigator) Sync(entries []Entry) {
	if n.cursor == NoCursor {
		return
	}
	for i, e := range entries {
		if e.Team.ID != n.teamID {
			continue
		}
		if n.channelID == "" && e.Kind == EntryTeamHeader {
			n.cursor = i
			return
		}
		if n.channelID != "" && e.Kind == EntryChannelRow && e.Channel.ID == n.channelID {
			n.cursor = i
			return
		}
	}
	n.reset()
}

// Reset clears the cursor back to no highlight
func (n *Navigator) Reset() {
	n.reset()
}

// EnsureVisible clamps the viewport so the cursor row stays on screen
func (n *Navigator) EnsureVisible(total, maxVisible int) {
	if total == 0 || maxVisible <= 0 {
		n.viewportOffset = 0
		return
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
	if n.cursor == NoCursor {
		return
	}
	if n.cursor < n.viewportOffset {
		n.viewportOffset = n.cursor
	}
	if n.cursor >= n.viewportOffset+maxVisible {
		n.viewportOffset = n.cursor - maxVisible + 1
	}
}

// Scroll moves the viewport by delta rows without moving the cursor
func (n *Navigator) Scroll(delta, total, maxVisible int) {
	n.viewportOffset += delta
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}

// SetCursor places the cursor on an explicit index, ignoring out-of-range
// values other than NoCursor.
func (n *Navigator) SetCursor(index int, entries []Entry) {
	if index == NoCursor {
		n.reset()
		return
	}
	if index < 0 || index >= len(entries) {
		return
	}
	n.setCursor(index, entries)
}

func (n *Navigator) setCursor(index int, entries []Entry) {
	n.cursor = index
	e := entries[index]
	n.teamID = e.Team.ID
	if e.Kind == EntryChannelRow {
		n.channelID = e.Channel.ID
	} else {
		n.channelID = ""
	}
}

func (n *Navigator) reset() {
	n.cursor = NoCursor
	n.teamID = ""
	n.channelID = ""
}
