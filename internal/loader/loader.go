// Package loader reads a text file into an ordered sequence of lines.
//
// It is the only pipeline stage that performs I/O. Read failures never
// propagate: the loader logs a diagnostic and substitutes an empty
// sequence so the rest of the pipeline runs against "no data".
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
)

// Loader loads input files for the pipeline.
type Loader struct {
	log zerolog.Logger
}

// New creates a Loader that writes diagnostics to the given logger.
func New(log zerolog.Logger) *Loader {
	return &Loader{log: log}
}

// Name implements pipeline.Step.
func (l *Loader) Name() string { return "load" }

// Process implements pipeline.Step. The input must be a file path; the
// output is the file's lines in original order. Any read failure is
// logged and absorbed into an empty sequence.
func (l *Loader) Process(input any) (any, error) {
	path, ok := input.(string)
	if !ok {
		return nil, fmt.Errorf("expected file path string, got %T", input)
	}

	lines, err := l.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.log.Warn().Str("path", path).Msg("input file not found")
		} else {
			l.log.Warn().Str("path", path).Err(err).Msg("reading input file failed")
		}
		return []string{}, nil
	}
	return lines, nil
}

// Load reads the file at path and returns its lines with trailing line
// terminators stripped. Order and count are preserved, blank lines
// included. Unlike Process, Load reports failures to the caller.
func (l *Loader) Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readLines(f)
}

// readLines splits the reader's content into lines. Both LF and CRLF
// terminators are accepted; a final line without a terminator still
// counts.
func readLines(r io.Reader) ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	const maxLineSize = 1024 * 1024 // 1MB
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
