package cmd

import (
	"fmt"

	"github.com/MissQuinn-dev/todo-frontend/internal/api"
	"github.com/MissQuinn-dev/todo-frontend/internal/config"
	"github.com/MissQuinn-dev/todo-frontend/internal/logging"
)

// newService builds the backend client. Tests replace it with a fake.
var newService = func(cfg *config.Config, logger *logging.Logger) (api.Service, error) {
	return api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(logger.WithComponent("api")),
	)
}

// newLogger opens the log file in the state directory. Tests replace it.
var newLogger = func(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(config.StateDir(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
}

// env is what every backend command needs: validated configuration, a
// logger and a client.
type env struct {
	cfg    *config.Config
	logger *logging.Logger
	svc    api.Service
}

func setup(component string) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := newService(cfg, logger)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	return &env{cfg: cfg, logger: logger.WithComponent(component), svc: svc}, nil
}

func (e *env) Close() {
	_ = e.logger.Close()
}
