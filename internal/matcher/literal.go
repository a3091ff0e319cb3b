package matcher

import "bytes"

// LiteralMatcher does literal substring matching on single lines.
// The pattern is not a regex: matching is plain containment, optionally
// over a lowercase-folded view of both line and pattern.
type LiteralMatcher struct {
	pattern    []byte
	patternLow []byte // lowercased pattern for case-insensitive
	ignoreCase bool
}

// NewLiteralMatcher creates a LiteralMatcher for a single fixed pattern.
func NewLiteralMatcher(pattern string, ignoreCase bool) *LiteralMatcher {
	p := []byte(pattern)
	var pLow []byte
	if ignoreCase {
		pLow = bytes.ToLower(p)
	}
	return &LiteralMatcher{
		pattern:    p,
		patternLow: pLow,
		ignoreCase: ignoreCase,
	}
}

// MatchLine reports whether line contains the pattern.
// An empty pattern is contained by every line.
func (m *LiteralMatcher) MatchLine(line []byte) bool {
	if m.ignoreCase {
		return bytes.Contains(bytes.ToLower(line), m.patternLow)
	}
	return bytes.Contains(line, m.pattern)
}

// Spans returns the ordered, non-overlapping occurrences of the pattern
// within line as half-open [start, end) byte ranges. Scanning resumes at
// the end of each found occurrence, so overlapping candidates are not
// counted twice. An empty pattern yields no spans.
func (m *LiteralMatcher) Spans(line []byte) [][2]int {
	pattern := m.pattern
	searchLine := line
	if m.ignoreCase {
		pattern = m.patternLow
		searchLine = bytes.ToLower(line)
	}
	if len(pattern) == 0 {
		return nil
	}

	var spans [][2]int
	start := 0
	for start <= len(searchLine)-len(pattern) {
		idx := bytes.Index(searchLine[start:], pattern)
		if idx < 0 {
			break
		}
		pos := start + idx
		spans = append(spans, [2]int{pos, pos + len(pattern)})
		start = pos + len(pattern)
	}
	return spans
}

// ShouldEmit decides whether a line is printed given its match outcome
// and the invert flag: matches normally, non-matches when inverted.
func ShouldEmit(isMatch, invert bool) bool {
	return isMatch != invert
}
