// Package tui implements the terminal user interface of the nutrition
// tracker client on top of Bubble Tea.
package tui

import (
	"context"

	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:       services,
		buildInfo:      buildInfo,
		logger:         logger,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// LoginFlow shows the welcome, login and register pages until the user is
// authenticated. notice, if not empty, is shown on the welcome page.
func (t *TUI) LoginFlow(ctx context.Context, notice string) (models.Session, error) {
	pages := map[string]tea.Model{
		pageWelcome:  NewWelcomeModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}
	if notice != "" {
		pages[pageWelcome].Update(WelcomeNotice{Text: notice})
	}

	root := NewRootModel(pages, pageWelcome, t.buildInfo)
	finalModel, err := tea.NewProgram(root, t.programOptions...).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.session.IsZero() {
		return models.Session{}, ErrUserQuit
	}

	t.logger.Info().Str("func", "TUI.LoginFlow").Int64("user_id", result.session.UserID).Msg("user logged in")
	return result.session, nil
}

// MainLoop runs the day view for session. It returns logout=true when the
// user logged out or the session expired.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, session)
	finalModel, err := tea.NewProgram(model, t.programOptions...).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
