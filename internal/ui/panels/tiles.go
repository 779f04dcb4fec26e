package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/buildwall/internal/board"
	"github.com/justinpbarnett/buildwall/internal/build"
	"github.com/justinpbarnett/buildwall/internal/ui/border"
	"github.com/justinpbarnett/buildwall/internal/ui/styles"
	"github.com/justinpbarnett/buildwall/internal/ui/text"
)

// Tile heights in rows, borders included.
const (
	TinyHeight   = 3
	NormalHeight = 5
	BigHeight    = 9
)

// Rect is a cell rectangle relative to the top-left of the grid.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Placement is where one element sits on the grid.
type Placement struct {
	Element *board.Element
	Rect    Rect
	Big     bool
}

func tileHeight(m board.Mode) int {
	switch m {
	case board.Big:
		return BigHeight
	case board.Normal:
		return NormalHeight
	default:
		return TinyHeight
	}
}

// Arrange computes the placement of every element in the plan: the Big
// element first, then the small tiles in rows of PerRow. The Big tile is
// narrowed to fit containers with room for a single column.
func Arrange(p board.Plan) []Placement {
	var out []Placement
	y := 0
	if p.Big != nil {
		w := p.BigWidth
		if p.Width > 0 {
			w = min(w, max(p.Width-2*p.TileMargin, 2))
		}
		out = append(out, Placement{
			Element: p.Big,
			Rect:    Rect{X: p.TileMargin, Y: 0, W: w, H: BigHeight},
			Big:     true,
		})
		y = BigHeight + 1
	}

	perRow := max(p.PerRow, 1)
	slot := p.TileWidth + 2*p.TileMargin
	for start := 0; start < len(p.Tiles); start += perRow {
		row := p.Tiles[start:min(start+perRow, len(p.Tiles))]
		rowHeight := 0
		for col, el := range row {
			h := tileHeight(el.Mode())
			rowHeight = max(rowHeight, h)
			out = append(out, Placement{
				Element: el,
				Rect:    Rect{X: col*slot + p.TileMargin, Y: y, W: p.TileWidth, H: h},
			})
		}
		y += rowHeight
	}
	return out
}

// HitTest returns the element under cell (x, y), or nil.
func HitTest(placements []Placement, x, y int) *board.Element {
	for _, pl := range placements {
		if pl.Rect.Contains(x, y) {
			return pl.Element
		}
	}
	return nil
}

// Grid draws placements onto a blank canvas. Rendered tiles are cached by
// element key and reused until anything they show changes.
type Grid struct {
	width int
	// CursorID is the build id of the tile under the keyboard cursor.
	CursorID string

	cache map[string]cachedTile
}

type tileState struct {
	record build.Record
	label  string
	mode   board.Mode
	rect   Rect
	cursor bool
}

type cachedTile struct {
	state tileState
	box   string
}

func NewGrid() Grid { return Grid{cache: make(map[string]cachedTile)} }

func (g *Grid) SetSize(w int) { g.width = w }

// Render draws the plan. Empty plans show a placeholder.
func (g Grid) Render(p board.Plan, placements []Placement) string {
	if len(placements) == 0 {
		clear(g.cache)
		return styles.TextSecondaryStyle.Render(" No builds yet. Waiting for the first refresh...")
	}

	height := 0
	for _, pl := range placements {
		height = max(height, pl.Rect.Y+pl.Rect.H)
	}
	canvas := make([][]string, height)

	seen := make(map[string]bool, len(placements))
	for _, pl := range placements {
		seen[pl.Element.Key()] = true
		for i, line := range strings.Split(g.tile(pl), "\n") {
			row := pl.Rect.Y + i
			if row >= height {
				break
			}
			canvas[row] = place(canvas[row], pl.Rect.X, line)
		}
	}
	// elements from before a rebuild never come back
	for k := range g.cache {
		if !seen[k] {
			delete(g.cache, k)
		}
	}

	lines := make([]string, height)
	for i, cells := range canvas {
		lines[i] = strings.Join(cells, "")
	}
	return strings.Join(lines, "\n")
}

// tile returns the rendered box for pl, from the cache when still current.
func (g Grid) tile(pl Placement) string {
	el := pl.Element
	st := tileState{
		record: el.Record(),
		label:  el.Label(),
		mode:   el.Mode(),
		rect:   pl.Rect,
		cursor: !pl.Big && el.BuildID() == g.CursorID,
	}
	if c, ok := g.cache[el.Key()]; ok && c.state == st {
		return c.box
	}

	var box string
	if pl.Big {
		box = renderBig(el, pl.Rect)
	} else {
		box = renderSmall(el, pl.Rect, st.cursor)
	}
	if g.cache != nil {
		g.cache[el.Key()] = cachedTile{state: st, box: box}
	}
	return box
}

// place appends line to row at column x. Placements within a row are
// visited left to right, so row only ever grows.
func place(row []string, x int, line string) []string {
	used := 0
	for _, s := range row {
		used += lipgloss.Width(s)
	}
	if x > used {
		row = append(row, strings.Repeat(" ", x-used))
	}
	return append(row, line)
}

func renderSmall(el *board.Element, r Rect, cursor bool) string {
	rec := el.Record()
	color := styles.BuildStatusColor(rec.Status)
	f := border.Frame{
		Title:      rec.DisplayName(),
		TitleStyle: styles.TitleStyle,
		Footer:     el.Label(),
		Color:      color,
	}
	if cursor {
		f.Color = styles.CursorBorder
	}

	inner := max(r.W-2, 0)
	status := styles.StatusStyle(color).Render(styles.BuildStatusIcon(rec.Status) + " " + string(rec.Status))
	lines := []string{status}
	if el.Mode() == board.Normal {
		lines = append(lines,
			styles.TextSecondaryStyle.Render(text.Fit(detailLine(rec), inner)),
			styles.TextDimStyle.Render(text.Fit(rec.Comment, inner)),
		)
	}
	return f.Render(strings.Join(lines, "\n"), r.W, r.H)
}

func detailLine(rec build.Record) string {
	switch {
	case rec.RequestedBy != "" && rec.Duration != "":
		return rec.RequestedBy + " · " + rec.Duration
	case rec.RequestedBy != "":
		return rec.RequestedBy
	default:
		return rec.Duration
	}
}

func renderBig(el *board.Element, r Rect) string {
	rec := el.Record()
	color := styles.BuildStatusColor(rec.Status)
	f := border.Frame{
		Title:      rec.DisplayName(),
		TitleStyle: styles.TitleStyle,
		Keybinds:   []border.Keybind{{Key: "esc", Label: " back"}, {Key: "y", Label: " copy url"}},
		Color:      color,
	}
	inner := max(r.W-2, 0)
	field := func(name, value string) string {
		if value == "" {
			value = "-"
		}
		return styles.TextSecondaryStyle.Render(fmt.Sprintf(" %-10s", name)) +
			styles.TextPrimaryStyle.Render(value)
	}

	started := "-"
	if !rec.LocalStartTime.IsZero() {
		started = rec.LocalStartTime.Format("Mon Jan 2 15:04:05")
		if el.Label() != "" {
			started += " (" + el.Label() + ")"
		}
	}
	lines := []string{
		styles.StatusStyle(color).Bold(true).Render(" " + styles.BuildStatusIcon(rec.Status) + " " + strings.ToUpper(string(rec.Status))),
		field("Started", started),
		field("Duration", rec.Duration),
		field("By", rec.RequestedBy),
		field("URL", rec.URL),
	}
	for _, l := range text.Wrap(rec.Comment, inner-1, BigHeight-2-len(lines)) {
		lines = append(lines, " "+styles.TextDimStyle.Render(l))
	}
	return f.Render(strings.Join(lines, "\n"), r.W, r.H)
}
