package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/staykit/stay/internal/loader"
)

// loadDataset fetches the dataset through the cache. The cache decides
// whether the sources changed on disk; a forced reload goes through
// Cache.Invalidate first.
func loadDataset(cache *loader.Cache) tea.Cmd {
	return func() tea.Msg {
		ds, err := cache.Get(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return dataLoadedMsg{dataset: ds}
	}
}
