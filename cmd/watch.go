package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/axiom/check"
	"github.com/gnoswap-labs/axiom/formatter"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-verify proof documents whenever they are written",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"."}
		}

		engine, err := newEngine(mode)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		w := check.NewWatcher(engine, logger, printWatchReport)
		if err := w.Start(args...); err != nil {
			return err
		}
		logger.Info("watching for changes", zap.Strings("dirs", args))

		<-ctx.Done()
		return w.Stop()
	},
}

func init() {
	watchCmd.Flags().StringVar(&mode, "mode", "", "Verification mode: fail-fast or batch (overrides the configuration)")
}

func printWatchReport(path string, issues []check.Issue, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return
	}
	colored := !color.NoColor
	fmt.Print(formatter.FormatIssues(issues, colored))
	fmt.Print(formatter.FormatSummary(1, len(issues), colored))
}
