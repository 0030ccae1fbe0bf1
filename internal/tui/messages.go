package tui

import "github.com/staykit/stay/internal/model"

// dataLoadedMsg delivers a (re)loaded dataset to the dashboard.
type dataLoadedMsg struct {
	dataset model.Dataset
}

// loadFailedMsg reports a failed load; the dashboard shows the error
// instead of stale numbers.
type loadFailedMsg struct {
	err error
}
