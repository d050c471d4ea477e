package logic

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchSpan locates a matched substring inside a channel name so the view
// can split it into prefix, match, and suffix. Offsets are byte offsets
// into the original name, on rune boundaries.
type MatchSpan struct {
	Start  int
	Length int
}

// End returns the byte offset just past the matched span
func (s MatchSpan) End() int {
	return s.Start + s.Length
}

// Match reports whether name contains query case-insensitively. When it
// does, the returned span covers the first occurrence in the original name.
func Match(query, name string) (bool, MatchSpan) {
	lowerQuery := strings.ToLower(query)
	lowerName := strings.ToLower(name)
	idx := strings.Index(lowerName, lowerQuery)
	if idx < 0 {
		return false, MatchSpan{}
	}
	start, end := spanInOriginal(name, idx, idx+len(lowerQuery))
	return true, MatchSpan{Start: start, Length: end - start}
}

// spanInOriginal maps byte offsets in the case-folded name back to byte
// offsets in the original. Folding can change a rune's encoded length
// (U+0130 folds from two bytes to one), so the offsets are translated by
// walking both strings rune by rune in lockstep.
func spanInOriginal(name string, lowerStart, lowerEnd int) (int, int) {
	start, end := len(name), len(name)
	li := 0
	for oi, r := range name {
		if li >= lowerEnd {
			end = oi
			break
		}
		if li >= lowerStart && start == len(name) {
			start = oi
		}
		li += utf8.RuneLen(unicode.ToLower(r))
	}
	if start > end {
		start = end
	}
	return start, end
}
