package selection

// Kind distinguishes the two selection states.
type Kind int

const (
	AllBuilds Kind = iota
	Focused
)

// State is either AllBuilds or Focused on a single build id.
type State struct {
	Kind    Kind
	BuildID string
}

// All is the initial state: every build shown as a small tile.
var All = State{Kind: AllBuilds}

// Focus returns the state focused on id.
func Focus(id string) State {
	return State{Kind: Focused, BuildID: id}
}

// IsFocused reports whether a build is expanded.
func (s State) IsFocused() bool { return s.Kind == Focused }

func (s State) String() string {
	if s.Kind == Focused {
		return "focused(" + s.BuildID + ")"
	}
	return "all"
}

// MembershipFunc reports whether a build id is present in the latest refresh.
type MembershipFunc func(id string) bool

// Controller tracks which build, if any, is expanded. It has no terminal
// state; it lives as long as the board that owns it.
type Controller struct {
	state State
}

// State returns the current selection.
func (c *Controller) State() State { return c.state }

// Reset returns to AllBuilds.
func (c *Controller) Reset() { c.state = All }

// Select focuses id. An empty id, or one that present rejects, is a no-op.
// The returned bool reports whether the state changed.
func (c *Controller) Select(id string, present MembershipFunc) bool {
	if id == "" || (present != nil && !present(id)) {
		return false
	}
	next := Focus(id)
	if c.state == next {
		return false
	}
	c.state = next
	return true
}

// Back returns to AllBuilds. Reports whether the state changed.
func (c *Controller) Back() bool {
	if c.state.Kind == AllBuilds {
		return false
	}
	c.state = All
	return true
}
