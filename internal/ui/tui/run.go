package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kindling-app/kindling/internal/profile/wizard"
	"github.com/kindling-app/kindling/internal/upload"
)

// ErrCanceled is returned when the user quits the wizard before finishing.
var ErrCanceled = errors.New("onboarding canceled")

// Run drives the full-screen onboarding wizard. The completion callback in
// cfg fires exactly once, before Run returns, if the user finishes all steps.
func Run(ctx context.Context, cfg wizard.Config, up upload.Uploader) error {
	m := NewModel(ctx, cfg, up)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Cancelled || !fm.Done {
		return ErrCanceled
	}
	return nil
}
