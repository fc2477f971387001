package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"ringlet/internal/model"
	"ringlet/internal/ring"
)

// Run launches the interactive preview and blocks until it exits. The
// returned error is the feed's read error, if there was one.
func Run(ctx context.Context, opts model.PreviewOptions, c *ring.Composer) error {
	m := NewModel(ctx, opts, c)
	prog := tea.NewProgram(m, tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
