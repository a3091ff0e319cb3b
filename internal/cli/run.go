package cli

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/dl/litgrep/internal/input"
	"github.com/dl/litgrep/internal/matcher"
	"github.com/dl/litgrep/internal/output"
	"github.com/dl/litgrep/internal/walker"
)

// Run executes the search with the given config.
// Returns exit code: 0 = completed, 1 = I/O error.
//
// Files are processed strictly one after another, and lines within a
// file strictly in file order, so output is deterministic. The first
// open or read error aborts the whole run; traversal errors during
// directory descent are tolerated and only surfaced at debug level.
func Run(cfg Config) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})

	m := matcher.NewLiteralMatcher(cfg.Pattern, cfg.IgnoreCase)

	// -c requests highlighting; it degrades to plain text when stdout
	// is not a terminal unless forced for piping.
	highlight := cfg.Color && !cfg.Invert
	styles := output.NoStyles()
	if highlight && (output.StdoutIsTerminal() || os.Getenv("LITGREP_FORCE_COLOR") == "1") {
		styles = output.NewStyles()
	}
	formatter := output.NewTextFormatter(styles, cfg.FileNames, cfg.LineNumbers, highlight)

	files, walkErrs := walker.Collect(cfg.Paths, walker.Options{
		Recursive:      cfg.Recursive,
		RespectIgnores: cfg.RespectIgnores,
	})
	for _, werr := range walkErrs {
		logger.Debug("walk error", "err", werr)
	}

	reader := input.NewFileReader()
	w := output.NewWriter()

	buf := make([]byte, 0, 64*1024)
	for _, path := range files {
		var err error
		buf, err = searchFile(reader, path, m, formatter, cfg.Invert, highlight, buf[:0])
		if err != nil {
			logger.Error("read failed", "path", path, "err", err)
			return 1
		}
		if err := w.Write(buf); err != nil {
			logger.Error("write failed", "err", err)
			return 1
		}
	}

	return 0
}

// searchFile scans one file line by line, appending the rendered form of
// every emitted line to buf. Spans are computed only for matching lines
// that will actually be highlighted; inverted output never carries spans
// since there is no matched text to mark.
func searchFile(r input.Reader, path string, m *matcher.LiteralMatcher, f *output.TextFormatter, invert, highlight bool, buf []byte) ([]byte, error) {
	rc, err := r.Open(path)
	if err != nil {
		return buf, err
	}

	err = input.ScanLines(rc, func(idx int, line []byte) error {
		isMatch := m.MatchLine(line)
		if !matcher.ShouldEmit(isMatch, invert) {
			return nil
		}
		var spans [][2]int
		if highlight && isMatch {
			spans = m.Spans(line)
		}
		buf = f.FormatLine(buf, path, idx, line, spans)
		return nil
	})
	return buf, err
}
