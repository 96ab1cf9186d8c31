package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"textpipe/internal/analyzer"
	"textpipe/internal/config"
	"textpipe/internal/loader"
	"textpipe/internal/pipeline"
	"textpipe/internal/preprocess"
	"textpipe/internal/report"
	"textpipe/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] [file]",
	Short: "Re-run the pipeline whenever the input file changes",
	Long: `Watch the input file and re-run the full analysis pipeline each time
it changes, printing a fresh report. Runs until interrupted.

When stdout is a terminal the screen is cleared between reports.

Examples:
  textpipe watch
  textpipe watch notes.txt
  textpipe watch --no-save --debounce 1s notes.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringP("output", "o", "", "report file path (default is the configured output_path)")
	watchCmd.Flags().Bool("no-save", false, "print reports without writing the report file")
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "quiet period before re-running after a change")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
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
	debounce, _ := cmd.Flags().GetDuration("debounce")

	// Unlike run, watching a file that does not exist yet is almost
	// always a typo.
	if _, err := os.Stat(cfg.InputPath); err != nil {
		return fmt.Errorf("file does not exist: %s", cfg.InputPath)
	}

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
	rep := report.New(cmd.OutOrStdout(), log)

	clearScreen := term.IsTerminal(int(os.Stdout.Fd()))

	onChange := func() error {
		if clearScreen {
			fmt.Fprint(cmd.OutOrStdout(), "\033[2J\033[H")
		}

		out, err := pipe.Run(cfg.InputPath)
		if err != nil {
			return fmt.Errorf("running pipeline: %w", err)
		}
		stats, ok := out.(analyzer.Stats)
		if !ok {
			return fmt.Errorf("pipeline produced %T, want analyzer.Stats", out)
		}

		rep.PrintToConsole(stats)
		if !noSave {
			rep.SaveToFile(stats, cfg.OutputPath)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := watch.New(watch.Options{
		Path:     cfg.InputPath,
		Debounce: debounce,
		OnChange: onChange,
	}, log)

	return w.Run(ctx)
}
