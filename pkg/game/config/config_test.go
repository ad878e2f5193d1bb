package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envKeys = []string{
	"MAZE_RENDERER", "MAZE_CATALOG", "MAZE_ADDR", "PORT", "MAZE_LANG", "LANG",
	"MAZE_LOG_LEVEL", "MAZE_LOG_FILE", "MAZE_FRAME_MS",
}

// clearEnv blanks every variable the package reads for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv(): %v", err)
	}
	if cfg != Defaults() {
		t.Errorf("FromEnv() = %+v, want %+v", cfg, Defaults())
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAZE_RENDERER", "web")
	t.Setenv("MAZE_CATALOG", "/tmp/mazes.txt")
	t.Setenv("MAZE_LANG", "de")
	t.Setenv("MAZE_FRAME_MS", " 20 ")
	t.Setenv("PORT", "9000")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv(): %v", err)
	}
	if cfg.Renderer != RendererWeb || cfg.CatalogPath != "/tmp/mazes.txt" || cfg.Language != "de" {
		t.Errorf("FromEnv() = %+v", cfg)
	}
	if cfg.FrameInterval != 20*time.Millisecond {
		t.Errorf("FrameInterval = %v, want 20ms", cfg.FrameInterval)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want :9000 from PORT", cfg.Addr)
	}

	t.Setenv("MAZE_ADDR", "127.0.0.1:7000")
	cfg, err = FromEnv()
	if err != nil {
		t.Fatalf("FromEnv(): %v", err)
	}
	if cfg.Addr != "127.0.0.1:7000" {
		t.Errorf("Addr = %q, want MAZE_ADDR to win over PORT", cfg.Addr)
	}
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MAZE_FRAME_MS", "fast"},
		{"MAZE_FRAME_MS", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("FromEnv() with %s=%q = nil error", tt.key, tt.value)
			}
		})
	}
}

// A bad MAZE_RENDERER must not stop a -renderer flag from fixing it
func TestLoad_UnknownRendererLeftForFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAZE_RENDERER", "tuii")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("Load() = %v, want the renderer left unchecked", err)
	}
	if cfg.Renderer != "tuii" {
		t.Errorf("Renderer = %q, want tuii", cfg.Renderer)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrUnknownRenderer) {
		t.Errorf("Validate() = %v, want ErrUnknownRenderer", err)
	}

	cfg.Renderer = RendererTUI
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after override = %v, want nil", err)
	}
}

func TestValidate_UnknownRenderer(t *testing.T) {
	cfg := Defaults()
	cfg.Renderer = "sdl"
	if err := cfg.Validate(); !errors.Is(err, ErrUnknownRenderer) {
		t.Errorf("Validate() = %v, want ErrUnknownRenderer", err)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that exist, even blank ones
	for _, k := range []string{"MAZE_RENDERER", "MAZE_LOG_LEVEL"} {
		os.Unsetenv(k)
		key := k
		t.Cleanup(func() { os.Unsetenv(key) })
	}

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("MAZE_RENDERER=tui\nMAZE_LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.Renderer != RendererTUI || cfg.LogLevel != "debug" {
		t.Errorf("Load() = %+v, want tui at debug", cfg)
	}
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("Load(missing) = %v, want nil", err)
	}
}
