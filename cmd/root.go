package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"textpipe/internal/config"
	"textpipe/internal/preprocess"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "textpipe",
	Short: "A small text analysis pipeline",
	Long: `Textpipe reads a text file, normalizes its lines, and reports
aggregate statistics: line count, average words per line, and the
number of unique words.

The report goes to the console and, unless disabled, to a report file.

Examples:
  textpipe run
  textpipe run --output stats.txt notes.txt
  textpipe watch notes.txt`,
}

// Execute is called by main.main(). It runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.textpipe.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".textpipe")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("TEXTPIPE")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("verbose", false)
	viper.SetDefault("input_path", config.DefaultInputPath)
	viper.SetDefault("output_path", config.DefaultOutputPath)
	viper.SetDefault("punctuation_pattern", preprocess.DefaultPunctuationPattern)

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}
