package client

import (
	"context"
	"errors"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/tui"
)

// App runs the terminal chat client.
type App struct {
	ui     *tui.TUI
	logger *logger.Logger
}

func NewApp(ui *tui.TUI, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("ui is required")
	}

	return &App{ui: ui, logger: log}, nil
}

// Run starts the chat session and blocks until the user quits. A
// deliberate quit is not an error.
func (a *App) Run() error {
	ctx := context.Background()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("user quit the chat")
		return nil
	}

	return err
}
