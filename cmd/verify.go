package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/axiom/check"
	"github.com/gnoswap-labs/axiom/formatter"
)

var (
	ignorePaths      string
	verifyJsonOutput bool
	outPath          string
	mode             string
)

var verifyCmd = &cobra.Command{
	Use:   "verify [paths...]",
	Short: "Verify every proof in the given documents or directories",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := newEngine(mode)
		if err != nil {
			logger.Fatal("Failed to initialize verification engine", zap.Error(err))
		}

		if ignorePaths != "" {
			for _, path := range strings.Split(ignorePaths, ",") {
				engine.IgnorePath(strings.TrimSpace(path))
			}
		}

		n, err := runVerifyProcess(ctx, logger, engine, args, os.Stdout, verifyJsonOutput, outPath)
		if err != nil || n > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	verifyCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
	verifyCmd.Flags().BoolVar(&verifyJsonOutput, "json", false, "Output issues in JSON format")
	verifyCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	verifyCmd.Flags().StringVar(&mode, "mode", "", "Verification mode: fail-fast or batch (overrides the configuration)")
}

// newEngine builds an engine from the configuration file, with mode taking
// precedence over the configured mode when set.
func newEngine(mode string) (*check.Engine, error) {
	config, err := check.LoadConfig(configPath())
	if err != nil {
		return nil, err
	}
	if mode != "" {
		config.Mode = mode
	}
	return check.NewEngine(config, logger)
}

// runVerifyProcess verifies paths and prints the issues found. It returns
// the number of issues; the error reports documents that could not be read
// or parsed.
func runVerifyProcess(ctx context.Context, logger *zap.Logger, checker check.Checker, paths []string, w io.Writer, isJson bool, jsonOutput string) (int, error) {
	issues, err := check.ProcessFiles(ctx, logger, checker, paths, check.ProcessFile)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
	}

	if perr := printIssues(w, issues, isJson, jsonOutput); perr != nil {
		logger.Error("Error printing issues", zap.Error(perr))
		if err == nil {
			err = perr
		}
	}
	return len(issues), err
}

func printIssues(w io.Writer, issues []check.Issue, isJson bool, jsonOutput string) error {
	issuesByFile := make(map[string][]check.Issue)
	for _, issue := range issues {
		issuesByFile[issue.File] = append(issuesByFile[issue.File], issue)
	}

	sortedFiles := make([]string, 0, len(issuesByFile))
	for filename := range issuesByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	if isJson {
		d, err := json.Marshal(issuesByFile)
		if err != nil {
			return fmt.Errorf("error marshalling issues to JSON: %w", err)
		}
		if jsonOutput == "" {
			_, err = fmt.Fprintln(w, string(d))
			return err
		}
		return os.WriteFile(jsonOutput, d, 0o644)
	}

	colored := !color.NoColor
	for _, filename := range sortedFiles {
		fmt.Fprint(w, formatter.FormatIssues(issuesByFile[filename], colored))
	}
	fmt.Fprint(w, formatter.FormatSummary(len(sortedFiles), len(issues), colored))
	return nil
}
