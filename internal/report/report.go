// Package report renders analysis statistics to output sinks.
//
// The console and file sinks produce byte-identical text. Floating
// point values use the shortest representation that round-trips
// (strconv 'g' with precision -1), so 4/3 renders as
// 1.3333333333333333 and a whole-number average renders without a
// decimal point.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"textpipe/internal/analyzer"
)

// Banner is the header line of every report.
const Banner = "=== 🔎 Analysis Report 🔍 ==="

// Reporter writes formatted reports to a console writer and to files.
type Reporter struct {
	console io.Writer
	log     zerolog.Logger
}

// New creates a Reporter that prints to console and logs write
// failures to log.
func New(console io.Writer, log zerolog.Logger) *Reporter {
	return &Reporter{console: console, log: log}
}

// PrintToConsole writes the report to the console writer. Console
// writes are best-effort; there is no error path to surface.
func (r *Reporter) PrintToConsole(stats analyzer.Stats) {
	_ = render(r.console, stats)
}

// SaveToFile writes the report to path, replacing any existing file.
// Write failures are logged and absorbed; a partially written file is
// left in place.
func (r *Reporter) SaveToFile(stats analyzer.Stats, path string) {
	f, err := os.Create(path)
	if err != nil {
		r.log.Error().Str("path", path).Err(err).Msg("creating report file failed")
		return
	}

	if err := render(f, stats); err != nil {
		r.log.Error().Str("path", path).Err(err).Msg("writing report file failed")
		f.Close()
		return
	}
	if err := f.Close(); err != nil {
		r.log.Error().Str("path", path).Err(err).Msg("closing report file failed")
	}
}

// render writes the banner and the key: value lines in their fixed
// order.
func render(w io.Writer, stats analyzer.Stats) error {
	lines := []string{
		Banner,
		fmt.Sprintf("total_lines: %d", stats.TotalLines),
		fmt.Sprintf("avg_length: %s", strconv.FormatFloat(stats.AvgLength, 'g', -1, 64)),
		fmt.Sprintf("unique_words: %d", stats.UniqueWords),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
