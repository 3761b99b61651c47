package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/folio/internal/config"
	"github.com/five82/folio/internal/logging"
	"github.com/five82/folio/internal/prefs"
	"github.com/five82/folio/internal/state"
	"github.com/five82/folio/internal/ui"
)

// ErrNoLogPath is returned when neither flags nor config name a log file.
var ErrNoLogPath = errors.New("no log file given; pass a path or set log_path in the config")

// Options configure the Folio viewer. Zero values defer to the config file.
type Options struct {
	ConfigPath   string
	PrefsPath    string // empty uses default ~/.config/folio/prefs.toml
	LogPath      string
	PollEvery    time.Duration
	MaxButtons   int
	ItemsPerPage int
	Debug        bool
}

// Resolve loads the config file and applies the option overrides on top.
func Resolve(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.LogPath != "" {
		path, err := config.ExpandPath(opts.LogPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve log path: %w", err)
		}
		cfg.LogPath = path
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = opts.PollEvery
	}
	if opts.MaxButtons > 0 {
		cfg.MaxButtons = opts.MaxButtons
	}
	if opts.ItemsPerPage > 0 {
		cfg.ItemsPerPage = opts.ItemsPerPage
	}
	if cfg.LogPath == "" {
		return config.Config{}, ErrNoLogPath
	}
	return cfg, nil
}

// Run boots the Folio TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := Resolve(opts)
	if err != nil {
		return err
	}

	logs, err := logging.New(logging.Config{
		Level: cfg.Logging.Level,
		File:  cfg.Logging.File,
		Debug: opts.Debug,
	})
	if err != nil {
		// Diagnostics are optional; keep going without them.
		logs = logging.Result{Logger: zerolog.Nop()}
	}
	defer logs.Close()
	logger := logs.Logger

	userPrefs := prefs.Load(opts.PrefsPath)
	perPage := cfg.ItemsPerPage
	if userPrefs.ItemsPerPage > 0 && opts.ItemsPerPage == 0 {
		perPage = userPrefs.ItemsPerPage
	}

	store := state.NewStore(cfg.LogPath)
	load := FileLoader(cfg.LogPath, cfg.TailLines)
	pollLogger := logging.Component(logger, "poller")

	// Populate the store before the first frame.
	_ = refresh(ctx, store, load, pollLogger)
	StartPoller(ctx, store, load, cfg.PollInterval, pollLogger)

	logger.Info().
		Str("log", cfg.LogPath).
		Dur("poll", cfg.PollInterval).
		Int("max_buttons", cfg.MaxButtons).
		Int("per_page", perPage).
		Msg("folio starting")

	return ui.Run(ui.Options{
		Context:      ctx,
		Store:        store,
		Logger:       logging.Component(logger, "ui"),
		PollTick:     cfg.PollInterval,
		ThemeName:    userPrefs.Theme,
		PrefsPath:    opts.PrefsPath,
		Prefs:        userPrefs,
		MaxButtons:   cfg.MaxButtons,
		ItemsPerPage: perPage,
	})
}
