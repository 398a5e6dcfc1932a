package tui

import (
	"github.com/valmirmacedo/cancella-cli/pkg/api"
	"github.com/valmirmacedo/cancella-cli/pkg/models"
)

// Messages for communication between views

// StatusMsg updates the app status bar.
type StatusMsg string

type recordsLoadedMsg struct {
	entity models.Entity
	result api.ListResult
	err    error
}

type recordSavedMsg struct {
	entity models.Entity
	rowID  string
	err    error
}

type recordDeletedMsg struct {
	entity models.Entity
	rowID  string
	err    error
}

type badgeLoadedMsg struct {
	badge models.PackageBadge
	err   error
}

// searchDebounceMsg fires after the search debounce interval. Only the
// newest sequence number triggers a fetch; stale ticks are dropped.
type searchDebounceMsg struct {
	entity models.Entity
	seq    int
}
