package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the startup constants searchly reads from disk.
type Config struct {
	Total    int
	PageSize int
	LogFile  string
	LogLevel string
}

const (
	defaultConfigPath = "~/.config/searchly/config.toml"
	defaultLogFile    = "~/.local/state/searchly/searchly.log"
	defaultTotal      = 150
	defaultPageSize   = 10
	defaultLogLevel   = "info"
)

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the reference configuration with paths expanded.
func Default() Config {
	return Config{
		Total:    defaultTotal,
		PageSize: defaultPageSize,
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: defaultLogLevel,
	}
}

// Load locates and parses the searchly config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Total    int    `toml:"total"`
		PageSize int    `toml:"page_size"`
		LogFile  string `toml:"log_file"`
		LogLevel string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.Total > 0 {
		cfg.Total = raw.Total
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		if !validLevels[level] {
			return Config{}, fmt.Errorf("parse config: unknown log_level %q", raw.LogLevel)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath expands a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
