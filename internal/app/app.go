package app

import (
	"io"
	"log/slog"
	"time"

	"github.com/vk/tdbload/internal/config"
	"github.com/vk/tdbload/internal/executor"
)

// App encapsulates the controller's dependencies, configuration, and lifecycle.
type App struct {
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	executor executor.Executor
	now      func() time.Time
}

// NewApp is the constructor for the controller. Logs go to logW; the
// executor decides where phase tool output goes.
func NewApp(logW io.Writer, cfg *Config, loader config.Loader, exec executor.Executor) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		logger:   logger,
		config:   cfg,
		loader:   loader,
		executor: exec,
		now:      time.Now,
	}
}
