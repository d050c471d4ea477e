package logic

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		target    string
		wantMatch bool
		wantStart int
		wantLen   int
	}{
		{"exact", "general", "General", true, 0, 7},
		{"mixed case query", "LEAD", "Leads", true, 0, 4},
		{"mid string", "ad", "Leads", true, 2, 2},
		{"no match", "zzz", "General", false, 0, 0},
		{"empty query matches at start", "", "General", true, 0, 0},
		{"query longer than name", "generally", "General", false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, span := Match(tt.query, tt.target)
			require.Equal(t, tt.wantMatch, matched)
			if tt.wantMatch {
				require.Equal(t, tt.wantStart, span.Start)
				require.Equal(t, tt.wantLen, span.Length)
			}
		})
	}
}

func TestMatchSpanOnCaseFoldedName(t *testing.T) {
	// U+0130 folds to a shorter encoding, so lowered offsets and original
	// offsets diverge. The span must still slice the original cleanly.
	tests := []struct {
		name   string
		query  string
		target string
		want   string
	}{
		{"fold shrinks prefix", "gel", "İGEL", "GEL"},
		{"fold inside match", "iste", "LİSTE", "İSTE"},
		{"multibyte untouched suffix", "kanal", "Genel Kanalı", "Kanal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, span := Match(tt.query, tt.target)
			require.True(t, matched)
			got := tt.target[span.Start:span.End()]
			require.True(t, utf8.ValidString(got))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMatchSpanSplitsName(t *testing.T) {
	matched, span := Match("ad", "Leads")
	require.True(t, matched)

	name := "Leads"
	require.Equal(t, "Le", name[:span.Start])
	require.Equal(t, "ad", name[span.Start:span.End()])
	require.Equal(t, "s", name[span.End():])
}
