// Package tui implements the terminal assistant widget: a chat panel that can
// be toggled, hidden and shown, sends the typed message and appends the
// assistant's reply.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/internal/service"
	"github.com/MKhiriev/go-mission-hub/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the widget.
type Options struct {
	// ReplyDelay delays canned replies. Replies fetched from the hub server
	// are shown as soon as they arrive.
	ReplyDelay time.Duration
	BuildInfo  models.AppBuildInfo
	// Status is shown in the header, e.g. which server the widget talks to.
	Status string
}

type TUI struct {
	assistant service.AssistantService
	opts      Options
	logger    *logger.Logger
}

func New(assistant service.AssistantService, opts Options, logger *logger.Logger) *TUI {
	return &TUI{assistant: assistant, opts: opts, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAssistantModel(ctx, t.assistant, t.opts)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(assistantModel); ok {
		t.logger.Debug().
			Int("messages", len(result.messages)).
			Msg("assistant closed")
	}
	return nil
}
