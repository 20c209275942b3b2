package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/muurk/weather/internal/app"
	"github.com/muurk/weather/internal/config"
)

// Run starts the full-screen program and blocks until the user quits.
func Run(ctx context.Context, state *app.State, orch *app.Orchestrator, changes <-chan config.Change) error {
	m := NewModel(ctx, state, orch, changes)

	// Size the first frame before the initial WindowSizeMsg arrives.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.Width, m.Height = w, h
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	defer m.zones.Close()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
