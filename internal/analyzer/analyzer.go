// Package analyzer reduces a sequence of cleaned text lines to
// aggregate statistics.
package analyzer

import (
	"fmt"
	"strings"
)

// Stats holds the aggregate statistics for a line sequence.
type Stats struct {
	// TotalLines is the number of lines analyzed, blank lines included.
	TotalLines int

	// AvgLength is the mean number of words per line. Zero when no
	// lines were analyzed.
	AvgLength float64

	// UniqueWords is the number of distinct word tokens across the
	// whole input, compared by exact string equality.
	UniqueWords int
}

// Analyzer computes Stats from a line sequence. It is stateless and
// safe for concurrent use.
type Analyzer struct{}

// New creates an Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Name implements pipeline.Step.
func (a *Analyzer) Name() string { return "analyze" }

// Process implements pipeline.Step over a []string input.
func (a *Analyzer) Process(input any) (any, error) {
	lines, ok := input.([]string)
	if !ok {
		return nil, fmt.Errorf("expected line sequence, got %T", input)
	}
	return a.Analyze(lines), nil
}

// Analyze computes the statistics for the given lines. An empty
// sequence yields the zero-valued record rather than dividing by zero.
func (a *Analyzer) Analyze(lines []string) Stats {
	if len(lines) == 0 {
		return Stats{}
	}

	unique := make(map[string]struct{})
	totalWords := 0
	for _, line := range lines {
		words := strings.Fields(line)
		totalWords += len(words)
		for _, w := range words {
			unique[w] = struct{}{}
		}
	}

	return Stats{
		TotalLines:  len(lines),
		AvgLength:   float64(totalWords) / float64(len(lines)),
		UniqueWords: len(unique),
	}
}
