package board

import (
	"slices"
	"time"

	"github.com/justinpbarnett/buildwall/internal/build"
	"github.com/justinpbarnett/buildwall/internal/ui/layout"
	"github.com/justinpbarnett/buildwall/internal/ui/selection"
)

// DefaultRelabelInterval is how often hosts should call Relabel.
const DefaultRelabelInterval = 20 * time.Second

const (
	DefaultTileWidth  = 26
	DefaultTileMargin = 1
)

// Options configures an Engine.
type Options struct {
	// TileWidth and TileMargin size a small tile; the margin applies to each side.
	TileWidth  int
	TileMargin int
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
	// Logf receives debug messages. Nil means silent.
	Logf func(format string, args ...any)
}

// Engine reconciles build snapshots into a stable set of elements and
// decides how they are laid out. It is not safe for concurrent use: the host
// must serialize refresh, resize, click and relabel events onto one goroutine.
type Engine struct {
	opts Options

	records []build.Record
	index   map[string]int

	elements []*Element
	big      *Element

	sel     selection.Controller
	changed event[selection.State]

	width    int
	grid     layout.Grid
	seq      int
	dirty    bool
	rebuilds int
}

// New returns an Engine with no builds, showing all builds.
func New(opts Options) *Engine {
	if opts.TileWidth <= 0 {
		opts.TileWidth = DefaultTileWidth
	}
	if opts.TileMargin < 0 {
		opts.TileMargin = 0
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	e := &Engine{
		opts:  opts,
		index: make(map[string]int),
		big:   newBigElement(),
	}
	e.arrange()
	return e
}

// Refresh reconciles a new batch of records. Existing elements are patched
// in place when the batch covers exactly the same builds as the visible
// elements; any change in membership disposes every element and recreates
// one per record. Duplicate ids are dropped, first occurrence wins.
func (e *Engine) Refresh(records []build.Record) {
	batch := build.Dedupe(records)
	if dropped := len(records) - len(batch); dropped > 0 {
		e.logf("refresh: dropped %d records with duplicate ids", dropped)
	}

	e.records = batch
	e.index = make(map[string]int, len(batch))
	for i, r := range batch {
		e.index[r.ID] = i
	}

	now := e.opts.Clock()
	live := e.visibleElements()
	pairs := e.join(live)

	if e.needsRebuild(len(live), len(pairs)) {
		e.rebuild(now)
	} else {
		for _, p := range pairs {
			p.el.update(p.rec, now)
		}
	}

	e.arrange()
}

type pair struct {
	el  *Element
	rec build.Record
}

// join matches visible elements to records in the current batch by id.
func (e *Engine) join(live []*Element) []pair {
	pairs := make([]pair, 0, len(live))
	for _, el := range live {
		if i, ok := e.index[el.BuildID()]; ok {
			pairs = append(pairs, pair{el: el, rec: e.records[i]})
		}
	}
	return pairs
}

// needsRebuild reports whether element identity can no longer be reused.
// With unique ids on both sides, joined == len(records) together with the
// count check means the id sets are exactly equal.
func (e *Engine) needsRebuild(visible, joined int) bool {
	n := len(e.records)
	countChanged := visible != 0 && visible != n
	membershipChanged := joined != n
	return countChanged || membershipChanged
}

func (e *Engine) rebuild(now time.Time) {
	for _, el := range e.elements {
		el.dispose()
	}
	e.elements = nil
	e.rebuilds++

	ordered := slices.Clone(e.records)
	slices.SortStableFunc(ordered, func(a, b build.Record) int {
		return b.LocalStartTime.Compare(a.LocalStartTime)
	})
	for _, r := range ordered {
		e.seq++
		el := newElement(r, e.seq, now)
		el.ownerSub = el.OnClick(func(id string) { e.Select(id) })
		e.elements = append(e.elements, el)
	}
	e.logf("refresh: rebuilt %d elements", len(e.elements))

	st := e.sel.State()
	if !st.IsFocused() {
		return
	}
	if i, ok := e.index[st.BuildID]; ok {
		e.big.update(e.records[i], now)
		return
	}
	e.logf("refresh: focused build %q is gone, showing all builds", st.BuildID)
	e.sel.Back()
	e.arrange()
	e.changed.emit(e.sel.State())
}

// Resize records the container width and recomputes the layout.
func (e *Engine) Resize(width int) {
	if width == e.width {
		return
	}
	e.width = width
	e.arrange()
}

// Select focuses the build with the given id. An empty id means "show all
// builds". Ids missing from the latest refresh are ignored. Reports whether
// the selection changed.
func (e *Engine) Select(id string) bool {
	if id == "" {
		return e.Back()
	}
	if !e.sel.Select(id, e.Has) {
		if !e.Has(id) {
			e.logf("select: ignoring stale build id %q", id)
		}
		return false
	}
	e.big.update(e.records[e.index[id]], e.opts.Clock())
	e.arrange()
	e.changed.emit(e.sel.State())
	return true
}

// Back returns to showing all builds. Reports whether the selection changed.
func (e *Engine) Back() bool {
	prev := e.sel.State()
	if !e.sel.Back() {
		return false
	}
	// the tile was hidden while focused and skipped by patches
	if el := e.element(prev.BuildID); el != nil {
		if i, ok := e.index[prev.BuildID]; ok {
			el.update(e.records[i], e.opts.Clock())
		}
	}
	e.arrange()
	e.changed.emit(e.sel.State())
	return true
}

// Relabel recomputes every element's relative time label. It touches
// nothing else.
func (e *Engine) Relabel() {
	now := e.opts.Clock()
	for _, el := range e.elements {
		el.relabel(now)
	}
	if e.big.record.ID != "" {
		e.big.relabel(now)
	}
	e.dirty = true
}

// OnSelectionChanged registers fn to run after every selection change.
func (e *Engine) OnSelectionChanged(fn func(selection.State)) *Subscription {
	return e.changed.subscribe(fn)
}

// arrange sorts, applies visibility for the current selection and assigns
// display modes. It runs after every state change.
func (e *Engine) arrange() {
	st := e.sel.State()
	focusID := ""
	if st.IsFocused() {
		focusID = st.BuildID
	}

	e.elements = Sort(e.elements, focusID)

	small := 0
	for _, el := range e.elements {
		el.visible = el.BuildID() != focusID
		if el.visible {
			small++
		}
	}

	e.grid = layout.Compute(e.width, e.opts.TileWidth, e.opts.TileMargin, small, focusID != "")
	i := 0
	for _, el := range e.elements {
		if !el.visible {
			el.mode = Tiny
			continue
		}
		el.mode = e.grid.Modes[i]
		i++
	}

	e.big.visible = focusID != ""
	e.dirty = true
}

func (e *Engine) visibleElements() []*Element {
	var live []*Element
	if e.big.visible {
		live = append(live, e.big)
	}
	for _, el := range e.elements {
		if el.visible {
			live = append(live, el)
		}
	}
	return live
}

func (e *Engine) element(id string) *Element {
	for _, el := range e.elements {
		if el.BuildID() == id {
			return el
		}
	}
	return nil
}

// Has reports whether id is in the latest refresh.
func (e *Engine) Has(id string) bool {
	_, ok := e.index[id]
	return ok
}

// Lookup returns the latest record for id.
func (e *Engine) Lookup(id string) (build.Record, bool) {
	i, ok := e.index[id]
	if !ok {
		return build.Record{}, false
	}
	return e.records[i], true
}

// Records returns a copy of the latest deduplicated batch.
func (e *Engine) Records() []build.Record {
	return slices.Clone(e.records)
}

// Elements returns every live small element in sorted order, including the
// hidden tile of the focused build.
func (e *Engine) Elements() []*Element {
	return slices.Clone(e.elements)
}

// Selection returns the current selection state.
func (e *Engine) Selection() selection.State {
	return e.sel.State()
}

// Rebuilds counts how many times the element set has been recreated.
func (e *Engine) Rebuilds() int { return e.rebuilds }

// Dirty reports whether anything changed since the last Plan.
func (e *Engine) Dirty() bool { return e.dirty }

func (e *Engine) logf(format string, args ...any) {
	if e.opts.Logf != nil {
		e.opts.Logf(format, args...)
	}
}
