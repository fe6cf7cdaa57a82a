package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ReportFunc receives the issues found after a document changed.
type ReportFunc func(path string, issues []Issue, err error)

var ErrAlreadyWatching = errors.New("already watching")

// Watcher re-verifies proof documents when they are written.
type Watcher struct {
	checker Checker
	logger  *zap.Logger
	report  ReportFunc
	delay   time.Duration

	mu       sync.Mutex
	fs       *fsnotify.Watcher
	watching bool
	done     chan struct{}
}

func NewWatcher(checker Checker, logger *zap.Logger, report ReportFunc) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		checker: checker,
		logger:  logger,
		report:  report,
		delay:   100 * time.Millisecond,
	}
}

// Start watches dirs and every directory below them. It returns once the
// directories are registered; events are handled in the background until
// Stop is called.
func (w *Watcher) Start(dirs ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watching {
		return ErrAlreadyWatching
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return fw.Add(path)
			}
			return nil
		})
		if err != nil {
			fw.Close()
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	w.fs = fw
	w.watching = true
	w.done = make(chan struct{})
	go w.watchLoop(fw, w.done)
	return nil
}

// Stop ends watching and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.watching {
		w.mu.Unlock()
		return nil
	}
	w.watching = false
	fw, done := w.fs, w.done
	w.mu.Unlock()

	err := fw.Close()
	<-done
	return err
}

func (w *Watcher) watchLoop(fw *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			w.handleFileEvent(fw, event)
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleFileEvent(fw *fsnotify.Watcher, event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if isDir(event.Name) {
			if err := fw.Add(event.Name); err != nil {
				w.logger.Warn("failed to watch directory", zap.String("dir", event.Name), zap.Error(err))
			}
			return
		}
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if !hasDesiredExtension(event.Name) {
		return
	}

	// wait for a while after file change to consider multiple changes as one
	time.Sleep(w.delay)

	issues, err := w.checker.Run(event.Name)
	if err != nil {
		w.logger.Error("error verifying document", zap.String("file", event.Name), zap.Error(err))
	} else {
		w.logger.Info("verified document", zap.String("file", event.Name), zap.Int("issues", len(issues)))
	}
	if w.report != nil {
		w.report(event.Name, issues, err)
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
