package check

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockChecker struct {
	mock.Mock
}

func (m *mockChecker) Run(path string) ([]Issue, error) {
	args := m.Called(path)
	return args.Get(0).([]Issue), args.Error(1)
}

func (m *mockChecker) RunSource(source []byte) ([]Issue, error) {
	args := m.Called(source)
	return args.Get(0).([]Issue), args.Error(1)
}

func (m *mockChecker) IgnorePath(path string) {
	m.Called(path)
}

func createTempFiles(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = writeFile(t, dir, name, validDocument)
	}
	return paths
}

func TestProcessFile(t *testing.T) {
	t.Parallel()
	expected := []Issue{{File: "a.proof.yaml", Proof: "p", Step: 1, Reason: "r", Message: "m"}}
	checker := new(mockChecker)
	checker.On("Run", "a.proof.yaml").Return(expected, nil)

	issues, err := ProcessFile(checker, "a.proof.yaml")

	assert.NoError(t, err)
	assert.Equal(t, expected, issues)
	checker.AssertExpectations(t)
}

func TestProcessSources(t *testing.T) {
	t.Parallel()
	expected := []Issue{
		{Proof: "one", Reason: "r1", Message: "m1"},
		{Proof: "two", Reason: "r2", Message: "m2"},
	}
	checker := new(mockChecker)
	checker.On("RunSource", []byte("doc1")).Return([]Issue{expected[0]}, nil)
	checker.On("RunSource", []byte("doc2")).Return([]Issue{expected[1]}, nil)

	issues, err := ProcessSources(context.Background(), zap.NewNop(), checker,
		[][]byte{[]byte("doc1"), []byte("doc2")}, ProcessSource)

	assert.NoError(t, err)
	assert.Equal(t, expected, issues)
	checker.AssertExpectations(t)
}

func TestProcessSourcesStopsOnError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	checker := new(mockChecker)
	checker.On("RunSource", []byte("bad")).Return([]Issue(nil), boom)

	issues, err := ProcessSources(context.Background(), zap.NewNop(), checker,
		[][]byte{[]byte("bad"), []byte("never")}, ProcessSource)

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, issues)
	checker.AssertNotCalled(t, "RunSource", []byte("never"))
}

func TestProcessPath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	paths := createTempFiles(t, dir, "one.proof.yaml", "nested/two.proof.yml")
	writeFile(t, dir, "notes.yaml", "not a proof document")

	expected := []Issue{
		{File: paths[0], Proof: "p1", Step: 1, Reason: "r1", Message: "m1"},
		{File: paths[1], Proof: "p2", Step: 2, Reason: "r2", Message: "m2"},
	}
	checker := new(mockChecker)
	checker.On("Run", paths[0]).Return([]Issue{expected[0]}, nil)
	checker.On("Run", paths[1]).Return([]Issue{expected[1]}, nil)

	issues, err := ProcessPath(context.Background(), zap.NewNop(), checker, dir, ProcessFile)

	assert.NoError(t, err)
	assert.ElementsMatch(t, expected, issues)
	checker.AssertExpectations(t)
	checker.AssertNumberOfCalls(t, "Run", 2)
}

func TestProcessPathSingleFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	paths := createTempFiles(t, dir, "one.proof.yaml")
	other := writeFile(t, dir, "readme.md", "# notes")

	checker := new(mockChecker)
	checker.On("Run", paths[0]).Return([]Issue{}, nil)

	issues, err := ProcessPath(context.Background(), nil, checker, paths[0], ProcessFile)
	assert.NoError(t, err)
	assert.Empty(t, issues)

	issues, err = ProcessPath(context.Background(), nil, checker, other, ProcessFile)
	assert.NoError(t, err)
	assert.Empty(t, issues)
	checker.AssertNumberOfCalls(t, "Run", 1)

	_, err = ProcessPath(context.Background(), nil, checker, filepath.Join(dir, "missing"), ProcessFile)
	assert.Error(t, err)
}

func TestProcessPathKeepsGoingAfterErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	paths := createTempFiles(t, dir, "good.proof.yaml", "bad.proof.yaml")

	boom := errors.New("cannot parse")
	good := Issue{File: paths[0], Reason: "r", Message: "m"}
	checker := new(mockChecker)
	checker.On("Run", paths[0]).Return([]Issue{good}, nil)
	checker.On("Run", paths[1]).Return([]Issue(nil), boom)

	issues, err := ProcessPath(context.Background(), zap.NewNop(), checker, dir, ProcessFile)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []Issue{good}, issues)
}

func TestProcessPathContextCancellation(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for i := 0; i < 10; i++ {
		writeFile(t, dir, fmt.Sprintf("doc%d.proof.yaml", i), validDocument)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := new(mockChecker)
	checker.On("Run", mock.Anything).Return([]Issue{}, nil).Maybe()

	issues, err := ProcessPath(ctx, nil, checker, dir, ProcessFile)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotNil(t, issues)
}

func TestProcessFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	paths := createTempFiles(t, dir, "a.proof.yaml", "b.proof.yaml")

	checker := new(mockChecker)
	checker.On("Run", paths[0]).Return([]Issue{{File: paths[0], Reason: "r"}}, nil)
	checker.On("Run", paths[1]).Return([]Issue{{File: paths[1], Reason: "r"}}, nil)

	issues, err := ProcessFiles(context.Background(), zap.NewNop(), checker,
		append(paths, filepath.Join(dir, "missing.proof.yaml")), ProcessFile)

	assert.Error(t, err)
	assert.Len(t, issues, 2)
	checker.AssertExpectations(t)
}

func TestProcessPathWithEngine(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "valid.proof.yaml", validDocument)
	broken := writeFile(t, dir, "sub/broken.proof.yaml", brokenDocument)

	engine, err := NewEngine(Config{Mode: "batch"}, nil)
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), zap.NewNop(), engine, dir, ProcessFile)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	for _, issue := range issues {
		assert.Equal(t, broken, issue.File)
	}
}

func TestHasDesiredExtension(t *testing.T) {
	t.Parallel()
	assert.True(t, hasDesiredExtension("x.proof.yaml"))
	assert.True(t, hasDesiredExtension(filepath.Join("a", "b.proof.yml")))
	assert.False(t, hasDesiredExtension("x.yaml"))
	assert.False(t, hasDesiredExtension(".axiom.yaml"))
	assert.False(t, hasDesiredExtension(os.DevNull))
}
