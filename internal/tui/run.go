package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/staykit/stay/internal/loader"
	"github.com/staykit/stay/internal/tui/themes"
)

// Config carries the dashboard dependencies.
type Config struct {
	Cache *loader.Cache
	Theme themes.Theme
}

// Run starts the dashboard and blocks until the user quits or the
// context is cancelled.
func Run(ctx context.Context, cfg Config) error {
	p := tea.NewProgram(newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
