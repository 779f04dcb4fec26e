package layout

// Mode is the density a tile is rendered at.
type Mode int

const (
	Tiny Mode = iota
	Normal
	Big
)

func (m Mode) String() string {
	switch m {
	case Tiny:
		return "tiny"
	case Normal:
		return "normal"
	case Big:
		return "big"
	default:
		return "unknown"
	}
}

// normalRows is how many leading rows of small tiles get Normal density.
const normalRows = 2

// Grid is the result of fitting tiles into a container.
type Grid struct {
	PerRow   int
	BigWidth int
	// Modes holds one entry per small tile, in sorted order.
	Modes []Mode
}

// Compute fits smallCount tiles of tileWidth (plus margin on each side) into
// containerWidth. When focused every small tile is Tiny because the Big tile
// takes the space; otherwise the first two rows are Normal and the rest Tiny.
func Compute(containerWidth, tileWidth, margin, smallCount int, focused bool) Grid {
	perRow := PerRow(containerWidth, tileWidth, margin)
	g := Grid{
		PerRow:   perRow,
		BigWidth: BigWidth(perRow, tileWidth, margin),
	}
	if smallCount > 0 {
		g.Modes = make([]Mode, smallCount)
		for i := range g.Modes {
			g.Modes[i] = ModeAt(i, perRow, focused)
		}
	}
	return g
}

// PerRow returns how many tiles fit side by side, never less than 1.
func PerRow(containerWidth, tileWidth, margin int) int {
	slot := tileWidth + 2*margin
	if slot <= 0 || containerWidth <= 0 {
		return 1
	}
	return max(containerWidth/slot, 1)
}

// BigWidth spans at least two tile columns so the Big tile is never narrower
// than two small tiles side by side.
func BigWidth(perRow, tileWidth, margin int) int {
	cols := max(perRow, 2)
	return cols*tileWidth + (cols-1)*2*margin
}

// ModeAt returns the density for the small tile at index i.
func ModeAt(i, perRow int, focused bool) Mode {
	if focused {
		return Tiny
	}
	if i < normalRows*perRow {
		return Normal
	}
	return Tiny
}
