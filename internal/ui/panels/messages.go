package panels

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg struct{}

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg struct{}

// GettingStartedClosedMsg is sent when the getting-started panel is dismissed.
// Never is true when the user asked not to see it again.
type GettingStartedClosedMsg struct {
	Never bool
}
