package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"textpipe/internal/analyzer"
	"textpipe/internal/config"
	"textpipe/internal/loader"
	"textpipe/internal/pipeline"
	"textpipe/internal/preprocess"
	"textpipe/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [file]",
	Short: "Run the analysis pipeline once",
	Long: `Read the input file, normalize its lines, compute statistics, and
print the report. Unless --no-save is given the same report is also
written to the report file.

The input file defaults to the configured input_path; a positional
argument overrides it. A missing or unreadable input file is not an
error: the pipeline reports zero statistics and a diagnostic goes to
stderr.

Examples:
  textpipe run
  textpipe run notes.txt
  textpipe run --output stats.txt notes.txt
  textpipe run --no-save notes.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringP("output", "o", "", "report file path (default is the configured output_path)")
	runCmd.Flags().Bool("no-save", false, "print the report without writing the report file")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.InputPath = args[0]
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputPath = out
	}
	noSave, _ := cmd.Flags().GetBool("no-save")

	pattern, err := cfg.CompilePunctuation()
	if err != nil {
		return err
	}

	log := newLogger()
	pipe := pipeline.New(
		loader.New(log),
		preprocess.New(preprocess.WithPunctuationPattern(pattern)),
		analyzer.New(),
	)

	out, err := pipe.Run(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("running pipeline: %w", err)
	}
	stats, ok := out.(analyzer.Stats)
	if !ok {
		return fmt.Errorf("pipeline produced %T, want analyzer.Stats", out)
	}

	rep := report.New(cmd.OutOrStdout(), log)
	rep.PrintToConsole(stats)
	if !noSave {
		rep.SaveToFile(stats, cfg.OutputPath)
	}

	return nil
}
