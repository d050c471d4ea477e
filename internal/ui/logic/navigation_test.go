package logic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func expandedEntries(t *testing.T) []Entry {
	t.Helper()
	teams := multiTeams()
	return Flatten(teams, map[string]bool{"T1": true, "T2": true}, ApplyFilter(teams, ""))
}

func TestNavigatorNextWrapsToNoCursor(t *testing.T) {
	entries := expandedEntries(t)
	n := NewNavigator()

	for i := 0; i < len(entries); i++ {
		n.Next(entries)
		require.Equal(t, i, n.Cursor())
	}
	n.Next(entries)
	require.Equal(t, NoCursor, n.Cursor(), "advancing past the last entry wraps to no highlight")
	n.Next(entries)
	require.Equal(t, 0, n.Cursor(), "and the next press starts over")
}

func TestNavigatorPrevPinsAtNoCursor(t *testing.T) {
	entries := expandedEntries(t)
	n := NewNavigator()

	n.Prev(entries)
	require.Equal(t, NoCursor, n.Cursor(), "no wrap-under from no highlight")

	n.Next(entries)
	n.Next(entries)
	require.Equal(t, 1, n.Cursor())
	n.Prev(entries)
	require.Equal(t, 0, n.Cursor())
	n.Prev(entries)
	require.Equal(t, NoCursor, n.Cursor())
}

func TestNavigatorSymmetry(t *testing.T) {
	entries := expandedEntries(t)

	// N nexts followed by N prevs returns to no highlight, including the
	// wraparound step.
	for n := 1; n <= len(entries)+1; n++ {
		nav := NewNavigator()
		for i := 0; i < n; i++ {
			nav.Next(entries)
		}
		for i := 0; i < n; i++ {
			nav.Prev(entries)
		}
		require.Equal(t, NoCursor, nav.Cursor(), "N=%d", n)
	}
}

func TestNavigatorEmptyList(t *testing.T) {
	n := NewNavigator()
	n.Next(nil)
	require.Equal(t, NoCursor, n.Cursor())
	n.Prev(nil)
	require.Equal(t, NoCursor, n.Cursor())
}

func TestNavigatorSyncKeepsEntryAcrossReshape(t *testing.T) {
	teams := multiTeams()
	all := Flatten(teams, map[string]bool{"T1": true, "T2": true}, ApplyFilter(teams, ""))

	n := NewNavigator()
	// Land on Engineering's "incidents" row
	for i := 0; i <= 5; i++ {
		n.Next(all)
	}
	entry, ok := n.Current(all)
	require.True(t, ok)
	require.Equal(t, "C4", entry.Channel.ID)

	// Filtering to "inc" reshapes the list; the cursor follows its entry
	filtered := Flatten(teams, nil, ApplyFilter(teams, "inc"))
	n.Sync(filtered)
	entry, ok = n.Current(filtered)
	require.True(t, ok)
	require.Equal(t, "C4", entry.Channel.ID)
}

func TestNavigatorSyncResetsWhenEntryVanishes(t *testing.T) {
	teams := multiTeams()
	all := Flatten(teams, map[string]bool{"T1": true, "T2": true}, ApplyFilter(teams, ""))

	n := NewNavigator()
	n.Next(all)
	n.Next(all) // General (T1/C1)

	filtered := Flatten(teams, nil, ApplyFilter(teams, "lead"))
	n.Sync(filtered)
	require.Equal(t, NoCursor, n.Cursor(), "a filtered-out entry resets the cursor")
}

func TestNavigatorAutoExpandedTeamIsNavigable(t *testing.T) {
	teams := salesTeams()
	// Filter expands T1 even though it was never toggled manually
	entries := Flatten(teams, map[string]bool{}, ApplyFilter(teams, "lead"))

	n := NewNavigator()
	n.Next(entries)
	entry, ok := n.Current(entries)
	require.True(t, ok)
	require.Equal(t, EntryTeamHeader, entry.Kind)

	n.Next(entries)
	entry, ok = n.Current(entries)
	require.True(t, ok)
	require.Equal(t, EntryChannelRow, entry.Kind)
	require.Equal(t, "C2", entry.Channel.ID)
}

func TestNavigatorEnsureVisible(t *testing.T) {
	entries := expandedEntries(t)
	n := NewNavigator()

	for i := 0; i < len(entries); i++ {
		n.Next(entries)
		n.EnsureVisible(len(entries), 3)
		require.LessOrEqual(t, n.ViewportOffset(), n.Cursor())
		require.Less(t, n.Cursor(), n.ViewportOffset()+3)
	}
}

func TestNavigatorScrollClamps(t *testing.T) {
	entries := expandedEntries(t)
	n := NewNavigator()

	n.Scroll(100, len(entries), 3)
	require.Equal(t, len(entries)-3, n.ViewportOffset())
	n.Scroll(-100, len(entries), 3)
	require.Equal(t, 0, n.ViewportOffset())
}
