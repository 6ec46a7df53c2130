// Package prefs persists searchly display preferences in
// ~/.config/searchly/prefs.toml. Search state is never written here.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/searchly/internal/config"
)

// Prefs holds display preferences.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/searchly/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Store reads and writes one prefs file.
type Store struct {
	path string
}

// Open resolves path (empty means DefaultPath). The file need not exist.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve prefs path: %w", err)
	}
	return &Store{path: resolved}, nil
}

// Path returns the resolved file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored prefs. Any read or parse problem yields defaults.
func (s *Store) Load() Prefs {
	p := Prefs{Theme: defaultTheme}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return p
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{Theme: defaultTheme}
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	return p
}

// Save replaces the file atomically, creating parent directories.
func (s *Store) Save(p Prefs) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

// SetTheme updates only the theme field.
func (s *Store) SetTheme(name string) error {
	p := s.Load()
	p.Theme = name
	return s.Save(p)
}
