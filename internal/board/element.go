package board

import (
	"time"

	"github.com/google/uuid"
	"github.com/justinpbarnett/buildwall/internal/build"
	"github.com/justinpbarnett/buildwall/internal/ui/layout"
	"github.com/justinpbarnett/buildwall/internal/ui/text"
)

// Mode is the density an element is rendered at.
type Mode = layout.Mode

const (
	Tiny   = layout.Tiny
	Normal = layout.Normal
	Big    = layout.Big
)

// Element is the on-screen representation of one build. Elements are owned
// by the Engine; renderers read them and may subscribe to clicks but never
// mutate them.
type Element struct {
	key           string
	seq           int
	record        build.Record
	lastStartTime time.Time
	mode          Mode
	visible       bool
	label         string

	clicked  event[string]
	ownerSub *Subscription
	disposed bool
}

func newElement(r build.Record, seq int, now time.Time) *Element {
	e := &Element{
		key:  uuid.NewString(),
		seq:  seq,
		mode: Normal,
	}
	e.update(r, now)
	return e
}

// newBigElement is the single focus element, rebound on every focus change.
func newBigElement() *Element {
	return &Element{key: uuid.NewString(), mode: Big}
}

// Key is unique per element instance. A renderer can keep per-tile state
// (animations, scroll) under it; a new key means the element was recreated.
func (e *Element) Key() string { return e.key }

func (e *Element) BuildID() string { return e.record.ID }

func (e *Element) Record() build.Record { return e.record }

func (e *Element) Mode() Mode { return e.mode }

func (e *Element) Visible() bool { return e.visible }

// StartTime is the start time cached from the last bound record.
func (e *Element) StartTime() time.Time { return e.lastStartTime }

// Label is the human relative start time, e.g. "3 minutes ago".
func (e *Element) Label() string { return e.label }

func (e *Element) Disposed() bool { return e.disposed }

// OnClick registers fn to run when the element is clicked. Returns nil once
// the element has been disposed.
func (e *Element) OnClick(fn func(buildID string)) *Subscription {
	if e.disposed {
		return nil
	}
	return e.clicked.subscribe(fn)
}

// Click notifies click subscribers. Disposed elements ignore clicks.
func (e *Element) Click() {
	if e.disposed {
		return
	}
	e.clicked.emit(e.record.ID)
}

// update copies a fresh record onto the element without recreating it.
func (e *Element) update(r build.Record, now time.Time) {
	e.record = r
	e.lastStartTime = r.LocalStartTime
	e.relabel(now)
}

func (e *Element) relabel(now time.Time) {
	e.label = text.RelativeTime(e.lastStartTime, now)
}

// dispose drops every click subscription so nothing fires after teardown.
func (e *Element) dispose() {
	if e.disposed {
		return
	}
	e.ownerSub.Dispose()
	e.clicked.clear()
	e.visible = false
	e.disposed = true
}
