package matcher

import (
	"testing"
)

func TestLiteralMatcher_MatchLine(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		line       string
		want       bool
	}{
		{
			name:    "simple match",
			pattern: "hello",
			line:    "hello world",
			want:    true,
		},
		{
			name:    "no match",
			pattern: "xyz",
			line:    "hello world",
			want:    false,
		},
		{
			name:    "case sensitive by default",
			pattern: "quick",
			line:    "The Quick fox",
			want:    false,
		},
		{
			name:       "case insensitive",
			pattern:    "quick",
			ignoreCase: true,
			line:       "The Quick fox",
			want:       true,
		},
		{
			name:       "case insensitive pattern uppercased",
			pattern:    "QUICK",
			ignoreCase: true,
			line:       "the quick fox",
			want:       true,
		},
		{
			name:    "empty pattern matches everything",
			pattern: "",
			line:    "anything",
			want:    true,
		},
		{
			name:    "empty pattern matches empty line",
			pattern: "",
			line:    "",
			want:    true,
		},
		{
			name:       "empty pattern case insensitive",
			pattern:    "",
			ignoreCase: true,
			line:       "anything",
			want:       true,
		},
		{
			name:    "pattern longer than line",
			pattern: "hello world and more",
			line:    "hello",
			want:    false,
		},
		{
			name:    "pattern at end of line",
			pattern: "end",
			line:    "the end",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewLiteralMatcher(tt.pattern, tt.ignoreCase)
			if got := m.MatchLine([]byte(tt.line)); got != tt.want {
				t.Errorf("MatchLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		isMatch bool
		invert  bool
		want    bool
	}{
		{isMatch: false, invert: false, want: false},
		{isMatch: true, invert: false, want: true},
		{isMatch: false, invert: true, want: true},
		{isMatch: true, invert: true, want: false},
	}

	for _, tt := range tests {
		if got := ShouldEmit(tt.isMatch, tt.invert); got != tt.want {
			t.Errorf("ShouldEmit(%v, %v) = %v, want %v", tt.isMatch, tt.invert, got, tt.want)
		}
	}
}

func TestLiteralMatcher_Spans(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		line       string
		want       [][2]int
	}{
		{
			name:    "single occurrence",
			pattern: "quick",
			line:    "the quick fox",
			want:    [][2]int{{4, 9}},
		},
		{
			name:    "two occurrences",
			pattern: "ab",
			line:    "xabcabd",
			want:    [][2]int{{1, 3}, {4, 6}},
		},
		{
			name:    "overlapping candidates not double counted",
			pattern: "aa",
			line:    "aaaa",
			want:    [][2]int{{0, 2}, {2, 4}},
		},
		{
			name:    "no occurrence",
			pattern: "xyz",
			line:    "hello",
			want:    nil,
		},
		{
			name:    "empty pattern yields no spans",
			pattern: "",
			line:    "hello",
			want:    nil,
		},
		{
			name:       "case insensitive span on original offsets",
			pattern:    "quick",
			ignoreCase: true,
			line:       "The Quick fox",
			want:       [][2]int{{4, 9}},
		},
		{
			name:    "occurrence at line end",
			pattern: "fox",
			line:    "the fox",
			want:    [][2]int{{4, 7}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewLiteralMatcher(tt.pattern, tt.ignoreCase)
			got := m.Spans([]byte(tt.line))
			if len(got) != len(tt.want) {
				t.Fatalf("Spans(%q) = %v, want %v", tt.line, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("span[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLiteralMatcher_SpansInvariants(t *testing.T) {
	lines := []string{
		"",
		"aaaa",
		"abc abc abc",
		"no occurrences here",
		"abcabcabc",
		"ABC mixed aBc case abc",
	}

	for _, line := range lines {
		m := NewLiteralMatcher("abc", true)
		spans := m.Spans([]byte(line))

		prev := 0
		for i, span := range spans {
			if span[0] < prev {
				t.Errorf("line %q: span[%d] %v overlaps previous end %d", line, i, span, prev)
			}
			if span[1] <= span[0] {
				t.Errorf("line %q: span[%d] %v is not half-open increasing", line, i, span)
			}
			if span[1] > len(line) {
				t.Errorf("line %q: span[%d] %v exceeds line length %d", line, i, span, len(line))
			}
			prev = span[1]
		}

		// Concatenating segments outside and inside spans reconstructs the line.
		var rebuilt []byte
		cursor := 0
		for _, span := range spans {
			rebuilt = append(rebuilt, line[cursor:span[0]]...)
			rebuilt = append(rebuilt, line[span[0]:span[1]]...)
			cursor = span[1]
		}
		rebuilt = append(rebuilt, line[cursor:]...)
		if string(rebuilt) != line {
			t.Errorf("segments do not reconstruct line: got %q, want %q", rebuilt, line)
		}
	}
}
