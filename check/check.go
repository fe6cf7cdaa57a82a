// Package check loads proof documents from disk and verifies every proof in
// them, reporting each failure as an Issue.
package check

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/axiom/internal/document"
	"github.com/gnoswap-labs/axiom/internal/verify"
)

// ReasonBuild marks an issue raised while building a proof from its
// document, before verification.
const ReasonBuild = "build-error"

// DefaultConfigFile is the configuration file looked up by the CLI.
const DefaultConfigFile = ".axiom.yaml"

// Issue is a problem found in a proof document. Step is 1-based; zero means
// the proof as a whole.
type Issue struct {
	File    string `json:"file"`
	Proof   string `json:"proof,omitempty"`
	Step    int    `json:"step,omitempty"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	var b strings.Builder
	if i.File != "" {
		b.WriteString(i.File)
		b.WriteString(": ")
	}
	if i.Proof != "" {
		fmt.Fprintf(&b, "%s: ", i.Proof)
	}
	if i.Step > 0 {
		fmt.Fprintf(&b, "step %d: ", i.Step)
	}
	fmt.Fprintf(&b, "%s: %s", i.Reason, i.Message)
	return b.String()
}

type Checker interface {
	Run(path string) ([]Issue, error)
	RunSource(source []byte) ([]Issue, error)
	IgnorePath(path string)
}

// Config is the content of .axiom.yaml.
type Config struct {
	Name     string   `yaml:"name"`
	Mode     string   `yaml:"mode"`
	CacheDir string   `yaml:"cache_dir,omitempty"`
	Ignore   []string `yaml:"ignore,omitempty"`
}

func DefaultConfig() Config {
	return Config{Name: "axiom", Mode: verify.FailFast.String()}
}

// LoadConfig reads a configuration file. An empty path yields the default
// configuration.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return config, nil
}

// Engine verifies proof documents.
type Engine struct {
	mode   verify.Mode
	logger *zap.Logger
	cache  *Cache

	mu           sync.RWMutex
	ignoredPaths []string
}

// New creates an engine from the configuration file at configPath.
func New(configPath string, logger *zap.Logger) (*Engine, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return NewEngine(config, logger)
}

// NewEngine creates an engine from config.
func NewEngine(config Config, logger *zap.Logger) (*Engine, error) {
	mode, err := verify.ParseMode(config.Mode)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{mode: mode, logger: logger}
	if config.CacheDir != "" {
		cache, err := NewCache(config.CacheDir)
		if err != nil {
			return nil, err
		}
		e.cache = cache
	}
	for _, p := range config.Ignore {
		e.IgnorePath(p)
	}
	return e, nil
}

// Mode returns the verification mode used for every proof.
func (e *Engine) Mode() verify.Mode { return e.mode }

// Run verifies every proof of the document at path.
func (e *Engine) Run(path string) ([]Issue, error) {
	if e.isIgnored(path) {
		return nil, nil
	}
	if e.cache != nil {
		if issues, ok := e.cache.Get(path, e.mode.String()); ok {
			e.logger.Debug("cache hit", zap.String("file", path))
			return issues, nil
		}
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	issues, err := e.check(path, source)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.Set(path, e.mode.String(), issues); err != nil {
			e.logger.Warn("failed to cache result", zap.String("file", path), zap.Error(err))
		}
	}
	return issues, nil
}

// RunSource verifies every proof of an in-memory document.
func (e *Engine) RunSource(source []byte) ([]Issue, error) {
	return e.check("", source)
}

func (e *Engine) check(path string, source []byte) ([]Issue, error) {
	doc, err := document.Decode(bytes.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", displayName(path), err)
	}
	res, err := document.Build(doc)
	if err != nil {
		return nil, fmt.Errorf("error building %s: %w", displayName(path), err)
	}

	v := verify.New(
		verify.WithLibrary(res.Library),
		verify.WithMode(e.mode),
		verify.WithLogger(e.logger.With(zap.String("file", path))),
	)

	issues := make([]Issue, 0)
	for _, b := range res.Proofs {
		if b.Err != nil {
			issue := Issue{File: path, Proof: b.Name, Reason: ReasonBuild, Message: b.Err.Error()}
			var se *document.StepError
			if errors.As(b.Err, &se) {
				issue.Step = se.Step
				issue.Message = se.Err.Error()
			}
			issues = append(issues, issue)
			continue
		}

		report := v.Verify(b.Proof)
		for _, d := range report.Diagnostics {
			issues = append(issues, Issue{
				File:    path,
				Proof:   b.Name,
				Step:    d.Step,
				Reason:  d.Reason.String(),
				Message: d.Message,
			})
		}
	}
	e.logger.Debug("checked document",
		zap.String("file", path),
		zap.Int("proofs", len(res.Proofs)),
		zap.Int("issues", len(issues)))
	return issues, nil
}

// IgnorePath skips files matching path. A pattern matches the full path,
// its base name, or any directory it lives under.
func (e *Engine) IgnorePath(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ignoredPaths = append(e.ignoredPaths, filepath.Clean(path))
}

func (e *Engine) isIgnored(path string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	clean := filepath.Clean(path)
	for _, pattern := range e.ignoredPaths {
		if ok, _ := filepath.Match(pattern, clean); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(clean)); ok {
			return true
		}
		if strings.HasPrefix(clean, pattern+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func displayName(path string) string {
	if path == "" {
		return "<source>"
	}
	return path
}
