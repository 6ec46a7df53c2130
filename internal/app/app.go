package app

import (
	"context"
	"fmt"

	"github.com/five82/searchly/internal/catalog"
	"github.com/five82/searchly/internal/config"
	"github.com/five82/searchly/internal/logging"
	"github.com/five82/searchly/internal/prefs"
	"github.com/five82/searchly/internal/ui"
)

// Options configure the searchly application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/searchly/prefs.toml
	Total      int    // zero uses the config value
	PageSize   int    // zero uses the config value
}

// Run boots the searchly TUI until the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = applyOverrides(cfg, opts)

	if err := logging.Init(cfg.LogFile, cfg.LogLevel); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.Close()

	store, err := prefs.Open(opts.PrefsPath)
	if err != nil {
		return err
	}
	userPrefs := store.Load()

	settings := catalogSettings(cfg)
	records := catalog.Generate(settings)
	logging.Info("starting",
		"records", len(records),
		"topics", len(settings.Topics),
		"page_size", cfg.PageSize,
		"theme", userPrefs.Theme,
	)

	err = ui.Run(ctx, ui.Options{
		Records:   records,
		PageSize:  cfg.PageSize,
		Prefs:     store,
		ThemeName: userPrefs.Theme,
	})
	if err != nil {
		logging.Error("ui exited", "error", err)
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func applyOverrides(cfg config.Config, opts Options) config.Config {
	if opts.Total > 0 {
		cfg.Total = opts.Total
	}
	if opts.PageSize > 0 {
		cfg.PageSize = opts.PageSize
	}
	return cfg
}

func catalogSettings(cfg config.Config) catalog.Settings {
	s := catalog.DefaultSettings()
	if cfg.Total > 0 {
		s.Total = cfg.Total
	}
	return s
}
