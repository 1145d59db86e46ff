// Package app wires configuration, logging and the store into the
// dependency set every command runs against.
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MrSnakeDoc/bonk/internal/config"
	"github.com/MrSnakeDoc/bonk/internal/logger"
	"github.com/MrSnakeDoc/bonk/internal/store/file"
)

// App holds the shared dependencies of all commands. Stdin/Stdout and the
// clock are fields so tests can drive interactive flows deterministically.
type App struct {
	Cfg   *config.Config
	Log   logger.Logger
	Store *file.Store

	Now    func() time.Time
	Stdin  io.Reader
	Stdout io.Writer
}

// New loads configuration and opens the store, initializing the bonk
// directory on first use.
func New() (*App, error) {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.PrettyLog)

	store, err := file.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", cfg.DataDir, err)
	}
	log.Debug("store opened", logger.String("dir", cfg.DataDir))

	return &App{
		Cfg:    cfg,
		Log:    log,
		Store:  store,
		Now:    time.Now,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}, nil
}

// NowUnix is the current instant in the unix seconds the data model uses.
func (a *App) NowUnix() int64 {
	return a.Now().Unix()
}
