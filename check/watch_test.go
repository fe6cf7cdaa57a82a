package check

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReverifiesWrittenDocuments(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	engine, err := NewEngine(Config{Mode: "batch"}, nil)
	require.NoError(t, err)

	type result struct {
		path   string
		issues []Issue
	}
	results := make(chan result, 16)
	w := NewWatcher(engine, nil, func(path string, issues []Issue, err error) {
		if err != nil {
			return
		}
		select {
		case results <- result{path, issues}:
		default:
		}
	})
	w.delay = 10 * time.Millisecond

	require.NoError(t, w.Start(dir))
	defer w.Stop()
	assert.ErrorIs(t, w.Start(dir), ErrAlreadyWatching)

	path := filepath.Join(dir, "broken.proof.yaml")
	require.NoError(t, os.WriteFile(path, []byte(brokenDocument), 0o644))

	select {
	case r := <-results:
		assert.Equal(t, path, r.path)
		assert.Len(t, r.issues, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("no report after writing a proof document")
	}
}

func TestWatcherStop(t *testing.T) {
	t.Parallel()
	w := NewWatcher(new(mockChecker), nil, nil)
	assert.NoError(t, w.Stop())

	require.NoError(t, w.Start(t.TempDir()))
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())

	assert.Error(t, w.Start(filepath.Join(t.TempDir(), "missing")))
}
