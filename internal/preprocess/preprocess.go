// Package preprocess normalizes raw text lines before analysis.
//
// Each line is case-folded, stripped of punctuation, and collapsed to
// single-space word separation. The transformation is pure, preserves
// line order and count, and is idempotent.
package preprocess

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// DefaultPunctuationPattern matches any character that is neither a
// word character nor whitespace. RE2's \w is ASCII-only, so the Unicode
// word-character classes are spelled out.
const DefaultPunctuationPattern = `[^\p{L}\p{N}_\s]`

var defaultPunctuation = regexp.MustCompile(DefaultPunctuationPattern)

// Preprocessor cleans a sequence of text lines.
type Preprocessor struct {
	punctuation *regexp.Regexp
}

// Option configures a Preprocessor.
type Option func(*Preprocessor)

// WithPunctuationPattern overrides the pattern of characters deleted
// from each line.
func WithPunctuationPattern(re *regexp.Regexp) Option {
	return func(p *Preprocessor) {
		if re != nil {
			p.punctuation = re
		}
	}
}

// New creates a Preprocessor with the specified options.
func New(opts ...Option) *Preprocessor {
	p := &Preprocessor{punctuation: defaultPunctuation}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements pipeline.Step.
func (p *Preprocessor) Name() string { return "preprocess" }

// Process implements pipeline.Step over a []string input. The output
// has the same length and order as the input.
func (p *Preprocessor) Process(input any) (any, error) {
	lines, ok := input.([]string)
	if !ok {
		return nil, fmt.Errorf("expected line sequence, got %T", input)
	}

	cleaned := make([]string, len(lines))
	for i, line := range lines {
		cleaned[i] = p.Clean(line)
	}
	return cleaned, nil
}

// Clean normalizes a single line: Unicode case fold, delete characters
// matching the punctuation pattern, collapse whitespace runs to single
// spaces and trim the ends.
func (p *Preprocessor) Clean(line string) string {
	// cases.Caser carries state, so each call gets its own.
	line = cases.Fold().String(line)
	line = p.punctuation.ReplaceAllString(line, "")
	return strings.Join(strings.Fields(line), " ")
}
