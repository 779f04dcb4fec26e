package ui

import (
	"time"

	"github.com/justinpbarnett/buildwall/internal/build"
	"github.com/justinpbarnett/buildwall/internal/ui/panels"
)

// Type aliases to panels message types: single source of truth.

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg = panels.CloseModalMsg

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg = panels.ClearFlashMsg

// GettingStartedClosedMsg is sent when the getting-started banner is dismissed.
type GettingStartedClosedMsg = panels.GettingStartedClosedMsg

// RefreshMsg carries a freshly fetched batch of builds.
type RefreshMsg struct {
	Records []build.Record
	At      time.Time
}

// FetchErrMsg reports a failed fetch. The board keeps its previous state.
type FetchErrMsg struct {
	Err error
}

// PollMsg triggers the next scheduled fetch. Polls from a superseded
// schedule carry a stale Gen and are dropped.
type PollMsg struct {
	Gen int
}

// RelabelTickMsg recomputes relative start-time labels.
type RelabelTickMsg struct{}

// SpinnerTickMsg advances the status bar spinner while a fetch is in flight.
type SpinnerTickMsg struct{}
