package board

import "github.com/justinpbarnett/buildwall/internal/ui/selection"

// Plan is everything a renderer needs for one frame.
type Plan struct {
	Selection selection.State
	// Big is the focused build's element, nil when showing all builds.
	Big      *Element
	BigWidth int
	PerRow   int
	// Tiles are the visible small elements, newest first.
	Tiles []*Element

	TileWidth  int
	TileMargin int
	// Width is the container width passed to the last Resize.
	Width int
}

// Plan snapshots the current render plan and clears the dirty flag.
func (e *Engine) Plan() Plan {
	p := Plan{
		Selection:  e.sel.State(),
		BigWidth:   e.grid.BigWidth,
		PerRow:     e.grid.PerRow,
		TileWidth:  e.opts.TileWidth,
		TileMargin: e.opts.TileMargin,
		Width:      e.width,
	}
	if e.big.visible {
		p.Big = e.big
	}
	for _, el := range e.elements {
		if el.visible {
			p.Tiles = append(p.Tiles, el)
		}
	}
	e.dirty = false
	return p
}

// Len is the number of builds on screen, counting the Big element.
func (p Plan) Len() int {
	n := len(p.Tiles)
	if p.Big != nil {
		n++
	}
	return n
}

// BuildIDs lists the on-screen build ids with the Big element first.
func (p Plan) BuildIDs() []string {
	ids := make([]string, 0, p.Len())
	if p.Big != nil {
		ids = append(ids, p.Big.BuildID())
	}
	for _, el := range p.Tiles {
		ids = append(ids, el.BuildID())
	}
	return ids
}
