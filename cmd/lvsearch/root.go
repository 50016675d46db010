package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/internal/report"
)

// settings collects the persistent flags shared by all commands.
type settings struct {
	format  string
	verbose bool

	logger *slog.Logger
	out    report.Format
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	s := &settings{}
	root := &cobra.Command{
		Use:   "lvsearch",
		Short: "lvsearch solves state-space problems with graph search",
		Long: `lvsearch runs depth-first and breadth-first graph search over a problem
(the wolf-goat-cabbage puzzle, a route graph read from YAML or an ASCII
maze) and prints
the sequence of actions leading to the goal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(s.format)
			if err != nil {
				return err
			}
			s.out = f

			level := slog.LevelInfo
			if s.verbose {
				level = slog.LevelDebug
			}
			s.logger = logging.NewWithWriter(stderr, level)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&s.format, "format", "o", string(report.Text), "Output format: text, json or yaml")
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "Log every expansion to stderr")

	root.AddCommand(newSolveCmd(s), newVersionCmd())

	return root
}

// Execute runs the root command; Ctrl-C cancels a running search.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
