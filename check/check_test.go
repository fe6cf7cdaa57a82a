package check

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/axiom/internal/verify"
)

const validDocument = `
system:
  name: Toy
  axioms:
    - name: A1
      statement: {implies: [{var: P}, {var: Q}]}
proofs:
  - name: q-from-p
    goal: {var: Q}
    premises: [{var: P}]
    steps:
      - premise: {var: P}
      - axiom: A1
      - infer: {rule: modus-ponens, from: [1, 2]}
        statement: {var: Q}
`

// the first proof claims R from modus ponens, the second cites an axiom
// the system does not have
const brokenDocument = `
system:
  name: Toy
  axioms:
    - name: A1
      statement: {implies: [{var: P}, {var: Q}]}
proofs:
  - name: wrong-conclusion
    goal: {var: R}
    premises: [{var: P}]
    steps:
      - premise: {var: P}
      - axiom: A1
      - infer: {rule: modus-ponens, from: [1, 2]}
        statement: {var: R}
      - previous: {from: [3]}
        statement: {var: R}
  - name: missing-axiom
    goal: {var: Q}
    steps:
      - axiom: A7
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEngineRun(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	engine, err := NewEngine(Config{Mode: "batch"}, nil)
	require.NoError(t, err)
	assert.Equal(t, verify.Batch, engine.Mode())

	t.Run("valid", func(t *testing.T) {
		path := writeFile(t, dir, "valid.proof.yaml", validDocument)
		issues, err := engine.Run(path)
		require.NoError(t, err)
		assert.Empty(t, issues)
	})

	t.Run("broken", func(t *testing.T) {
		path := writeFile(t, dir, "broken.proof.yaml", brokenDocument)
		issues, err := engine.Run(path)
		require.NoError(t, err)
		require.Len(t, issues, 2)

		assert.Equal(t, Issue{
			File:    path,
			Proof:   "wrong-conclusion",
			Step:    3,
			Reason:  verify.ReasonConclusionMismatch.String(),
			Message: issues[0].Message,
		}, issues[0])
		assert.NotEmpty(t, issues[0].Message)

		assert.Equal(t, "missing-axiom", issues[1].Proof)
		assert.Equal(t, ReasonBuild, issues[1].Reason)
		assert.Equal(t, 1, issues[1].Step)
	})

	t.Run("malformed", func(t *testing.T) {
		path := writeFile(t, dir, "malformed.proof.yaml", "proofs: [{name: x, goal: {nope: 1}, steps: []}]\n")
		_, err := engine.Run(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := engine.Run(filepath.Join(dir, "absent.proof.yaml"))
		assert.Error(t, err)
	})
}

func TestEngineRunSource(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(DefaultConfig(), nil)
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte(validDocument))
	require.NoError(t, err)
	assert.Empty(t, issues)

	issues, err = engine.RunSource([]byte(brokenDocument))
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Empty(t, issues[0].File)
}

func TestEngineIgnorePath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	broken := writeFile(t, dir, "drafts/wip.proof.yaml", brokenDocument)
	other := writeFile(t, dir, "scratch.proof.yaml", brokenDocument)
	kept := writeFile(t, dir, "kept.proof.yaml", brokenDocument)

	engine, err := NewEngine(Config{Ignore: []string{filepath.Join(dir, "drafts")}}, nil)
	require.NoError(t, err)
	engine.IgnorePath("scratch.*")
	engine.IgnorePath("  ")

	for _, path := range []string{broken, other} {
		issues, err := engine.Run(path)
		require.NoError(t, err)
		assert.Empty(t, issues, path)
	}
	issues, err := engine.Run(kept)
	require.NoError(t, err)
	assert.NotEmpty(t, issues)
}

func TestEngineUsesCache(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	path := writeFile(t, dir, "broken.proof.yaml", brokenDocument)

	engine, err := NewEngine(Config{CacheDir: cacheDir}, nil)
	require.NoError(t, err)

	first, err := engine.Run(path)
	require.NoError(t, err)
	assert.Equal(t, 1, engine.cache.Len())

	second, err := engine.Run(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// a second engine reads the persisted cache
	reloaded, err := NewCache(cacheDir)
	require.NoError(t, err)
	cached, ok := reloaded.Get(path, verify.FailFast.String())
	require.True(t, ok)
	assert.Equal(t, first, cached)

	_, ok = reloaded.Get(path, verify.Batch.String())
	assert.False(t, ok)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)

	path := writeFile(t, dir, DefaultConfigFile, "name: mine\nmode: batch\nignore: [drafts]\n")
	config, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Name: "mine", Mode: "batch", Ignore: []string{"drafts"}}, config)

	bad := writeFile(t, dir, "bad.yaml", "rules: {}\n")
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = NewEngine(Config{Mode: "eventually"}, nil)
	assert.Error(t, err)
}

func TestIssueString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		issue Issue
		want  string
	}{
		{Issue{File: "a.proof.yaml", Proof: "p", Step: 2, Reason: "r", Message: "m"}, "a.proof.yaml: p: step 2: r: m"},
		{Issue{Proof: "p", Reason: "r", Message: "m"}, "p: r: m"},
		{Issue{Reason: "r", Message: "m"}, "r: m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.issue.String())
	}
}

func TestCache(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cache, err := NewCache(filepath.Join(dir, "cache"))
	require.NoError(t, err)

	issues := []Issue{{File: "x", Proof: "p", Step: 1, Reason: "r", Message: "m"}}

	t.Run("NotFound", func(t *testing.T) {
		_, found := cache.Get(filepath.Join(dir, "nonexistent.proof.yaml"), "batch")
		assert.False(t, found)
	})

	t.Run("FileModified", func(t *testing.T) {
		path := writeFile(t, dir, "modified.proof.yaml", validDocument)
		require.NoError(t, cache.Set(path, "batch", issues))

		got, found := cache.Get(path, "batch")
		require.True(t, found)
		assert.Equal(t, issues, got)

		require.NoError(t, os.WriteFile(path, []byte(brokenDocument), 0o644))
		_, found = cache.Get(path, "batch")
		assert.False(t, found)
	})

	t.Run("Expired", func(t *testing.T) {
		path := writeFile(t, dir, "expired.proof.yaml", validDocument)
		require.NoError(t, cache.Set(path, "batch", issues))
		cache.SetMaxAge(-time.Second)
		defer cache.SetMaxAge(DefaultCacheMaxAge)

		_, found := cache.Get(path, "batch")
		assert.False(t, found)
	})

	t.Run("InvalidateAll", func(t *testing.T) {
		path := writeFile(t, dir, "all.proof.yaml", validDocument)
		require.NoError(t, cache.Set(path, "batch", issues))
		cache.InvalidateAll()
		assert.Zero(t, cache.Len())
	})
}
