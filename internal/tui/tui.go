// Package tui implements the terminal chat client over the deployed
// listing API: a single conversation screen with a scrollback viewport,
// an input line, and clipboard copy of the last assistant reply.
package tui

import (
	"context"
	"errors"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/adapter"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit reports that the user left the chat on purpose.
var ErrUserQuit = errors.New("user quit")

// TUI drives the interactive chat session.
type TUI struct {
	server adapter.ServerAdapter
	logger *logger.Logger
}

func New(server adapter.ServerAdapter, log *logger.Logger) (*TUI, error) {
	if server == nil {
		return nil, errors.New("server adapter is required")
	}

	return &TUI{server: server, logger: log}, nil
}

// Run starts the chat loop and blocks until the user quits or the
// program fails.
func (t *TUI) Run(ctx context.Context) error {
	model := newChatModel(ctx, t.server)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(chatModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return result.err
}
