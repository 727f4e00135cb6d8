// Package tui is the interactive terminal front-end: two create forms and
// the users and tasks tables, driven by a single bubbletea program.
package tui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MissQuinn-dev/todo-frontend/internal/api"
	"github.com/MissQuinn-dev/todo-frontend/internal/config"
	"github.com/MissQuinn-dev/todo-frontend/internal/errors"
	"github.com/MissQuinn-dev/todo-frontend/internal/logging"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/msg"
)

// App wraps the Bubbletea program
type App struct {
	program    *tea.Program
	opts       Options
	svc        api.Service
	logger     *logging.Logger
	configPath string
}

// New creates a new TUI application. configPath is the file to watch for
// theme changes; "" disables watching.
func New(svc api.Service, opts Options, configPath string) *App {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &App{
		opts:       opts,
		svc:        svc,
		logger:     logger.WithComponent("app"),
		configPath: configPath,
	}
}

// Run starts the TUI application and blocks until it exits. Leaving the UI
// cancels ctx for every request still in flight.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.program = tea.NewProgram(
		NewModel(ctx, a.svc, a.opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			a.program.Send(tea.Quit())
		case <-ctx.Done():
		}
	}()

	if stop := a.watchConfig(); stop != nil {
		defer stop()
	}

	a.logger.Info("starting")
	_, err := a.program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	a.logger.Info("stopped", "error", err)
	return err
}

// watchConfig sends a ThemeChangedMsg whenever the config file changes.
// A watcher that cannot start is logged and skipped.
func (a *App) watchConfig() (stop func()) {
	if a.configPath == "" {
		return nil
	}
	if _, err := os.Stat(a.configPath); err != nil {
		a.logger.Debug("not watching config", "path", a.configPath, "error", err)
		return nil
	}

	w, err := config.NewWatcher(a.configPath, func(path string) {
		theme, err := config.ReadTheme(path)
		if err != nil {
			a.logger.Warn("config reload failed", "path", path, "error", err)
			return
		}
		a.program.Send(msg.ThemeChangedMsg{Theme: theme})
	})
	if err != nil {
		a.logger.Warn("config watch failed", "path", a.configPath, "error", err)
		return nil
	}
	w.Start()
	a.logger.Debug("watching config", "path", w.Path())
	return w.Stop
}
