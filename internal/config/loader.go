package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Paths helper for the config and report locations under a base directory.
type Paths struct {
	BaseDir string // e.g. the game checkout root
}

func (p Paths) ConfigPath() string {
	return filepath.Join(p.BaseDir, "data", "sim_config.json")
}
func (p Paths) ReportPath() string {
	return filepath.Join(p.BaseDir, "reports", "balance_report.csv")
}

// LoadError reports a config file that exists but cannot be used. It is
// never replaced by a silent fallback to defaults.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load config %s: %v", e.Path, e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// Loader reads the config file once and caches the resolved settings.
type Loader struct {
	path   string
	logger *log.Logger

	mu     sync.RWMutex
	cached *Settings
}

// NewLoader creates a loader for path. logger receives unknown-key hints and
// may be nil.
func NewLoader(path string, logger *log.Logger) *Loader {
	return &Loader{path: path, logger: logger}
}

func (l *Loader) Path() string { return l.path }

// Load returns the cached settings, reading the file on first use. A
// missing file yields Default(); an unreadable, unparseable or invalid one
// yields a *LoadError. A key repeated in the same mapping counts as
// unparseable, JSON files included: the later value does not win.
func (l *Loader) Load() (Settings, error) {
	l.mu.RLock()
	if l.cached != nil {
		s := *l.cached
		l.mu.RUnlock()
		return cloneSettings(s), nil
	}
	l.mu.RUnlock()

	raw, unknown, found, err := readYAML(l.path)
	if err != nil {
		return Settings{}, &LoadError{Path: l.path, Err: err}
	}
	if !found {
		if l.logger != nil {
			l.logger.Info("no config file, using built-in defaults", "path", l.path)
		}
		s := Default()
		l.store(s)
		return cloneSettings(s), nil
	}
	if l.logger != nil {
		for _, key := range unknown {
			if hint, ok := suggestKey(key); ok {
				l.logger.Warn("unknown config key ignored", "key", key, "did_you_mean", hint)
			} else {
				l.logger.Warn("unknown config key ignored", "key", key)
			}
		}
	}

	s := Resolve(raw)
	s.Source = l.path
	if err := validate(raw, s); err != nil {
		return Settings{}, &LoadError{Path: l.path, Err: err}
	}
	l.store(s)
	return cloneSettings(s), nil
}

// Invalidate clears the cache. Call after the watcher detects a change.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cached = nil
}

func (l *Loader) store(s Settings) {
	l.mu.Lock()
	l.cached = &s
	l.mu.Unlock()
}

func cloneSettings(s Settings) Settings {
	s.Sim = s.Sim.Clone()
	if s.Seed != nil {
		seed := *s.Seed
		s.Seed = &seed
	}
	return s
}

// readYAML loads path into a RawConfig and lists top-level keys it does not
// recognise. A missing file returns found=false and no error; an empty file
// is an empty config.
func readYAML(path string) (cfg RawConfig, unknown []string, found bool, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil, false, nil
		}
		return RawConfig{}, nil, true, err
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return RawConfig{}, nil, true, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return RawConfig{}, nil, true, err
	}
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return RawConfig{}, nil, true, nil // comments only
	}
	if err := doc.Decode(&cfg); err != nil {
		return RawConfig{}, nil, true, err
	}
	return cfg, unknownKeys(&doc), true, nil
}
