package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/folio/internal/pagination"
)

// Config captures everything Folio reads from its config file.
type Config struct {
	LogPath      string
	PollInterval time.Duration
	TailLines    int // zero reads the whole file
	MaxButtons   int
	ItemsPerPage int
	Logging      Logging
}

// Logging configures Folio's own diagnostic log.
type Logging struct {
	Level string
	File  string // empty disables file logging
}

const (
	defaultConfigPath   = "~/.config/folio/config.toml"
	defaultLogFile      = "~/.local/state/folio/folio.log"
	defaultLogLevel     = "info"
	defaultPollInterval = 2 * time.Second
	defaultTailLines    = 10000
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		PollInterval: defaultPollInterval,
		TailLines:    defaultTailLines,
		MaxButtons:   pagination.DefaultMaxButtons,
		ItemsPerPage: pagination.DefaultItemsPerPage,
		Logging: Logging{
			Level: defaultLogLevel,
			File:  mustExpand(defaultLogFile),
		},
	}
}

// Load locates and parses the config, falling back to defaults when missing.
// Out-of-range values are corrected rather than rejected.
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
		LogPath      string `toml:"log_path"`
		PollSeconds  int    `toml:"poll_seconds"`
		TailLines    *int   `toml:"tail_lines"`
		MaxButtons   int    `toml:"max_buttons"`
		ItemsPerPage int    `toml:"items_per_page"`
		Logging      struct {
			Level string  `toml:"level"`
			File  *string `toml:"file"`
		} `toml:"logging"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if p := strings.TrimSpace(raw.LogPath); p != "" {
		cfg.LogPath = mustExpand(p)
	}
	if raw.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(raw.PollSeconds) * time.Second
	}
	if raw.TailLines != nil && *raw.TailLines >= 0 {
		cfg.TailLines = *raw.TailLines
	}
	if raw.MaxButtons != 0 {
		cfg.MaxButtons = pagination.ClampMaxButtons(raw.MaxButtons)
	}
	if pagination.ValidItemsPerPage(raw.ItemsPerPage) {
		cfg.ItemsPerPage = raw.ItemsPerPage
	}
	if lvl := strings.TrimSpace(raw.Logging.Level); lvl != "" {
		cfg.Logging.Level = strings.ToLower(lvl)
	}
	if raw.Logging.File != nil {
		cfg.Logging.File = strings.TrimSpace(*raw.Logging.File)
		if cfg.Logging.File != "" {
			cfg.Logging.File = mustExpand(cfg.Logging.File)
		}
	}

	return cfg, nil
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
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
