// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Renderer names accepted by MAZE_RENDERER and -renderer
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
	RendererWeb    = "web"
)

// ErrUnknownRenderer is returned for a renderer name that is not supported
var ErrUnknownRenderer = errors.New("unknown renderer")

// Config holds the application's configuration values.
type Config struct {
	Renderer      string        // ebiten, tui or web
	CatalogPath   string        // Maze catalog file; empty uses the bundled one
	Addr          string        // Listen address for the web renderer
	Language      string        // UI language
	LogLevel      string        // logrus level name
	LogFile       string        // Log destination; empty means stderr
	FrameInterval time.Duration // Game loop tick for the tui and web renderers
}

// Defaults returns the configuration used when nothing is set
func Defaults() Config {
	return Config{
		Renderer:      RendererEbiten,
		Addr:          ":8080",
		Language:      "en",
		LogLevel:      "info",
		FrameInterval: 50 * time.Millisecond,
	}
}

// Load reads envFiles (".env" when none are given) into the process
// environment without overriding variables that are already set, then builds
// a Config from MAZE_* variables. Missing env files are not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment. The renderer name
// is not checked here because command line flags may still replace it; call
// Validate once they are applied.
func FromEnv() (Config, error) {
	cfg := Defaults()

	cfg.Renderer = getEnv("MAZE_RENDERER", cfg.Renderer)
	cfg.CatalogPath = getEnv("MAZE_CATALOG", cfg.CatalogPath)
	cfg.Language = getEnv("MAZE_LANG", getEnv("LANG", cfg.Language))
	cfg.LogLevel = getEnv("MAZE_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("MAZE_LOG_FILE", cfg.LogFile)

	cfg.Addr = getEnv("MAZE_ADDR", "")
	if cfg.Addr == "" {
		if port := getEnv("PORT", ""); port != "" {
			cfg.Addr = ":" + port
		} else {
			cfg.Addr = Defaults().Addr
		}
	}

	frameMS, err := getEnvAsInt("MAZE_FRAME_MS", int(cfg.FrameInterval/time.Millisecond))
	if err != nil {
		return Config{}, err
	}
	if frameMS <= 0 {
		return Config{}, fmt.Errorf("MAZE_FRAME_MS must be positive, got %d", frameMS)
	}
	cfg.FrameInterval = time.Duration(frameMS) * time.Millisecond
	return cfg, nil
}

// Validate checks fields that flags may also have changed
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererEbiten, RendererTUI, RendererWeb:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownRenderer, c.Renderer)
}

// getEnv retrieves a trimmed environment variable or the fallback when unset or blank
func getEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

// getEnvAsInt retrieves an environment variable as an integer
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}
