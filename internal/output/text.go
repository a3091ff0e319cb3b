package output

import (
	"strconv"
	"strings"
)

// TextFormatter renders emitted lines with optional filename and
// line-number prefixes and optional highlighting of matched spans.
// It is stateless across calls: formatting the same line twice with the
// same inputs produces identical output.
type TextFormatter struct {
	styles      Styles
	fileNames   bool
	lineNumbers bool
	highlight   bool
}

// NewTextFormatter creates a TextFormatter.
func NewTextFormatter(styles Styles, fileNames, lineNumbers, highlight bool) *TextFormatter {
	return &TextFormatter{
		styles:      styles,
		fileNames:   fileNames,
		lineNumbers: lineNumbers,
		highlight:   highlight,
	}
}

// FormatLine appends the rendered form of one emitted line to buf and
// returns the extended buffer, terminated by '\n'.
//
// lineIdx is the 0-based position of the line within its file; it is
// displayed 1-based. spans are the matched ranges to emphasize; callers
// pass nil for lines that should render verbatim (highlighting off,
// inverted output, or no match to mark).
//
// Prefix precedence, both flags independent:
//
//	path: N: line
//	path: line
//	N: line
//	line
func (f *TextFormatter) FormatLine(buf []byte, path string, lineIdx int, line []byte, spans [][2]int) []byte {
	if f.fileNames {
		buf = append(buf, f.styles.Filename.Render(displayPath(path))...)
		buf = append(buf, ": "...)
	}
	if f.lineNumbers {
		buf = append(buf, f.styles.LineNum.Render(strconv.Itoa(lineIdx+1))...)
		buf = append(buf, ": "...)
	}

	if f.highlight && len(spans) > 0 {
		buf = f.highlightSpans(buf, line, spans)
	} else {
		buf = append(buf, line...)
	}

	buf = append(buf, '\n')
	return buf
}

// highlightSpans copies line into buf, wrapping each span with the match
// style. Text outside spans is copied verbatim, so stripping the style's
// escape sequences reconstructs the original line.
func (f *TextFormatter) highlightSpans(buf []byte, line []byte, spans [][2]int) []byte {
	prev := 0
	for _, span := range spans {
		start, end := span[0], span[1]
		if start > len(line) {
			break
		}
		if end > len(line) {
			end = len(line)
		}
		if start > prev {
			buf = append(buf, line[prev:start]...)
		}
		buf = append(buf, f.styles.Match.Render(string(line[start:end]))...)
		prev = end
	}
	if prev < len(line) {
		buf = append(buf, line[prev:]...)
	}
	return buf
}

// displayPath normalizes a path for display: forward slashes on every
// platform.
func displayPath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
