package cmd

import (
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/axiom/check"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile string
	timeout time.Duration
	verbose bool
	noColor bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:              "axiom [paths...]",
	Short:            "axiom - checks proofs written against axiom systems",
	TraverseChildren: true, // Prioritize subcommands
	SilenceUsage:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return err
		}
		logger = l
		if noColor {
			color.NoColor = true
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'axiom' is entered
			_ = cmd.Help()
			return
		}
		// Format: axiom [path1 path2 ...] => behaves like the verify subcommand
		verifyCmd.Run(verifyCmd, args)
	},
}

func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file (default "+check.DefaultConfigFile+" when present)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Timeout for a verification run")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every verification step")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(theoriesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(watchCmd)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableStacktrace = true
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return config.Build()
}

// configPath returns the configuration file to use: the --config flag, or
// the default file when it exists in the working directory.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if _, err := os.Stat(check.DefaultConfigFile); err == nil {
		return check.DefaultConfigFile
	}
	return ""
}
