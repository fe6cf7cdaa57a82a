package check

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	checker Checker,
	sources [][]byte,
	processor func(Checker, []byte) ([]Issue, error),
) ([]Issue, error) {
	var allIssues []Issue
	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return allIssues, err
		}
		issues, err := processor(checker, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}

	return allIssues, nil
}

func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	checker Checker,
	paths []string,
	processor func(Checker, string) ([]Issue, error),
) ([]Issue, error) {
	var allIssues []Issue
	var errs []error
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, checker, path, processor)
		allIssues = append(allIssues, issues...)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			if ctx.Err() != nil {
				return allIssues, err
			}
			errs = append(errs, err)
		}
	}

	return allIssues, errors.Join(errs...)
}

// ProcessPath runs processor on path, or on every proof document below path
// when it is a directory. Documents are processed concurrently, at most one
// per CPU. A failing document does not stop the others; its error is
// returned together with the issues of the rest.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	checker Checker,
	path string,
	processor func(Checker, string) ([]Issue, error),
) ([]Issue, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !hasDesiredExtension(path) {
			return nil, nil
		}
		return processor(checker, path)
	}

	files, err := collectFiles(path)
	if err != nil {
		return nil, err
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		issues = make([]Issue, 0)
		errs   []error
	)

	// limit the number of workers
	sem := make(chan struct{}, runtime.NumCPU())

	cancelled := false
	for _, filePath := range files {
		if ctx.Err() != nil {
			cancelled = true
			break
		}
		select {
		case <-ctx.Done():
			cancelled = true
		case sem <- struct{}{}:
		}
		if cancelled {
			break
		}

		wg.Add(1)
		go func(fp string) {
			defer wg.Done()
			defer func() { <-sem }()

			fileIssues, err := processor(checker, fp)

			mu.Lock()
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				errs = append(errs, err)
			} else {
				issues = append(issues, fileIssues...)
			}
			bar.Describe(filepath.Base(fp))
			_ = bar.Add(1)
			mu.Unlock()
		}(filePath)
	}

	wg.Wait()
	_ = bar.Finish()

	if cancelled {
		return issues, ctx.Err()
	}
	return issues, errors.Join(errs...)
}

func collectFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasDesiredExtension(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", root, err)
	}
	return files, nil
}

func ProcessFile(checker Checker, filePath string) ([]Issue, error) {
	return checker.Run(filePath)
}

func ProcessSource(checker Checker, source []byte) ([]Issue, error) {
	return checker.RunSource(source)
}

var desiredExtensions = []string{".proof.yaml", ".proof.yml"}

func hasDesiredExtension(path string) bool {
	for _, ext := range desiredExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
