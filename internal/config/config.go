package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	DataDir string // bonk directory holding storage, watermark, notes and credentials

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	Editor string // external editor command for `bonk edit`

	PocketURL     string        // Pocket API endpoint (override for tests)
	PocketTimeout time.Duration // HTTP timeout for Pocket fetches
}

func Load() *Config {
	return &Config{
		DataDir: getenv("BONK_DIR", defaultDataDir()),

		LogLevel:  getenv("BONK_LOG_LEVEL", "warn"),
		PrettyLog: mustBool("BONK_PRETTY_LOG", true),

		Editor: editorCommand(),

		PocketURL:     getenv("BONK_POCKET_URL", ""),
		PocketTimeout: mustDuration("BONK_HTTP_TIMEOUT", 30*time.Second),
	}
}

// defaultDataDir is ~/.bonk, falling back to ./.bonk when the home
// directory cannot be resolved.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bonk"
	}
	return filepath.Join(home, ".bonk")
}

// editorCommand resolves BONK_EDITOR, then EDITOR, then vi.
func editorCommand() string {
	if v := os.Getenv("BONK_EDITOR"); v != "" {
		return v
	}
	return getenv("EDITOR", "vi")
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
