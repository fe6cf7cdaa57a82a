package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/axiom/check"
	"github.com/gnoswap-labs/axiom/internal/document"
	"github.com/gnoswap-labs/axiom/internal/verify"
)

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
`

func TestRunVerifyProcess(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.proof.yaml")
	require.NoError(t, os.WriteFile(path, []byte(brokenDocument), 0o644))

	engine, err := check.NewEngine(check.DefaultConfig(), nil)
	require.NoError(t, err)

	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		n, err := runVerifyProcess(context.Background(), zap.NewNop(), engine, []string{dir}, &out, false, "")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Contains(t, out.String(), verify.ReasonConclusionMismatch.String())
		assert.Contains(t, out.String(), path+":wrong-conclusion:step 3")
		assert.Contains(t, out.String(), "in 1 file")
	})

	t.Run("json", func(t *testing.T) {
		jsonPath := filepath.Join(dir, "issues.json")
		n, err := runVerifyProcess(context.Background(), zap.NewNop(), engine, []string{path}, &bytes.Buffer{}, true, jsonPath)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		data, err := os.ReadFile(jsonPath)
		require.NoError(t, err)
		var byFile map[string][]check.Issue
		require.NoError(t, json.Unmarshal(data, &byFile))
		require.Len(t, byFile[path], 1)
		assert.Equal(t, 3, byFile[path][0].Step)
	})

	t.Run("missing path", func(t *testing.T) {
		n, err := runVerifyProcess(context.Background(), zap.NewNop(), engine, []string{filepath.Join(dir, "nope")}, &bytes.Buffer{}, false, "")
		assert.Error(t, err)
		assert.Zero(t, n)
	})
}

func TestInitConfigurationFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), check.DefaultConfigFile)
	require.NoError(t, initConfigurationFile(path))

	config, err := check.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "axiom", config.Name)
	assert.Equal(t, verify.FailFast.String(), config.Mode)
	assert.Equal(t, ".axiom-cache", config.CacheDir)
}

func TestTheories(t *testing.T) {
	t.Parallel()
	var list bytes.Buffer
	listTheories(&list)
	assert.Contains(t, list.String(), "boolean")
	assert.Contains(t, list.String(), "peano")

	for _, name := range []string{"boolean", "peano"} {
		var out bytes.Buffer
		ok, err := showTheory(&out, name, true)
		require.NoError(t, err)
		assert.True(t, ok, out.String())
		assert.NotContains(t, out.String(), "invalid")
		assert.Contains(t, out.String(), "∎")
	}

	_, err := showTheory(&bytes.Buffer{}, "zfc", false)
	assert.Error(t, err)
}

func TestExportTheory(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"boolean", "peano"} {
		var buf bytes.Buffer
		require.NoError(t, exportTheory(&buf, name, false))

		doc, err := document.Decode(&buf)
		require.NoError(t, err)
		require.NotNil(t, doc.System)
		assert.NotEmpty(t, doc.Proofs)

		engine, err := check.NewEngine(check.Config{Mode: "batch"}, nil)
		require.NoError(t, err)
		var again bytes.Buffer
		require.NoError(t, exportTheory(&again, name, false))
		issues, err := engine.RunSource(again.Bytes())
		require.NoError(t, err)
		assert.Empty(t, issues)
	}

	var sys bytes.Buffer
	require.NoError(t, exportTheory(&sys, "peano", true))
	assert.False(t, strings.Contains(sys.String(), "proofs:"))

	assert.Error(t, exportTheory(&bytes.Buffer{}, "zfc", false))
}
