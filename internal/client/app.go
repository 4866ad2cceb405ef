package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-wine-cellar/internal/logger"
)

// Browser is the interactive front end the client runs.
type Browser interface {
	Run(ctx context.Context) error
}

type App struct {
	browser Browser
	logger  *logger.Logger
}

func NewApp(browser Browser, logger *logger.Logger) *App {
	return &App{browser: browser, logger: logger}
}

// Run blocks until the browser exits or the process receives SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")
	if err := a.browser.Run(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.run").Msg("browser stopped with error")
		return fmt.Errorf("run browser: %w", err)
	}
	a.logger.Info().Msg("client stopped")
	return nil
}
