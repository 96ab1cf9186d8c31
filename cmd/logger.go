package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// newLogger builds the diagnostic logger. Diagnostics go to stderr so
// they never mix with report output on stdout.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
