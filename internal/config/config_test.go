package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.InputPath != DefaultInputPath {
		t.Errorf("InputPath = %q, want %q", c.InputPath, DefaultInputPath)
	}
	if c.OutputPath != DefaultOutputPath {
		t.Errorf("OutputPath = %q, want %q", c.OutputPath, DefaultOutputPath)
	}
	if c.Verbose {
		t.Error("Verbose = true, want false by default")
	}
}

func TestLoadFromViper(t *testing.T) {
	viper.Reset()
	viper.Set("input_path", "in.txt")
	viper.Set("output_path", "out.txt")
	viper.Set("punctuation_pattern", `[!?]`)
	viper.Set("verbose", true)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.InputPath != "in.txt" || c.OutputPath != "out.txt" {
		t.Errorf("paths = %q/%q, want in.txt/out.txt", c.InputPath, c.OutputPath)
	}
	if c.PunctuationPattern != `[!?]` {
		t.Errorf("PunctuationPattern = %q, want %q", c.PunctuationPattern, `[!?]`)
	}
	if !c.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestCompilePunctuation(t *testing.T) {
	t.Run("default pattern strips punctuation only", func(t *testing.T) {
		re, err := Config{}.CompilePunctuation()
		if err != nil {
			t.Fatalf("CompilePunctuation() error = %v", err)
		}
		if got := re.ReplaceAllString("a-b c!", ""); got != "ab c" {
			t.Errorf("default pattern produced %q, want %q", got, "ab c")
		}
	})

	t.Run("custom pattern", func(t *testing.T) {
		re, err := Config{PunctuationPattern: `[0-9]`}.CompilePunctuation()
		if err != nil {
			t.Fatalf("CompilePunctuation() error = %v", err)
		}
		if got := re.ReplaceAllString("a1b2", ""); got != "ab" {
			t.Errorf("custom pattern produced %q, want %q", got, "ab")
		}
	})

	t.Run("invalid pattern", func(t *testing.T) {
		if _, err := (Config{PunctuationPattern: `[`}).CompilePunctuation(); err == nil {
			t.Error("CompilePunctuation() error = nil, want compile error")
		}
	})
}
