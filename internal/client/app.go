package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/internal/store"
	"github.com/MKhiriev/go-nutri-track/internal/tui"
)

const loggedOutNotice = "You have been logged out."

var errNilDependency = errors.New("client app: services and ui are required")

type App struct {
	services        *service.ClientServices
	ui              UI
	refreshInterval time.Duration
	logger          *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errNilDependency
	}

	return &App{
		services:        services,
		ui:              ui,
		refreshInterval: cfg.RefreshInterval,
		logger:          logger,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

// run restores the saved session or asks the user to log in, then runs the
// main loop. A logout starts over from the login flow.
func (a *App) run(ctx context.Context) error {
	notice := ""

	for {
		session, err := a.services.AuthService.RestoreSession(ctx)
		if err != nil {
			if !errors.Is(err, store.ErrLocalSessionNotFound) {
				return fmt.Errorf("restore session: %w", err)
			}

			session, err = a.ui.LoginFlow(ctx, notice)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		}

		a.services.RefreshJob.Start(ctx, session, a.refreshInterval)
		logout, err := a.ui.MainLoop(ctx, session)
		a.services.RefreshJob.Stop()
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx, session); err != nil {
			a.logger.Err(err).Str("func", "App.run").Msg("logout left local state behind")
		}
		notice = loggedOutNotice
	}
}
