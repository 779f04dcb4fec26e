package layout

// Layout holds the computed cell dimensions for the screen regions.
type Layout struct {
	TermWidth  int
	TermHeight int
	TooSmall   bool

	// Breadcrumb row plus the optional getting-started banner
	HeaderHeight int

	// Tile grid
	BodyWidth  int
	BodyHeight int

	// Status bar
	StatusBarWidth int
}

const (
	MinWidth  = 40
	MinHeight = 10

	breadcrumbHeight = 1
	statusBarHeight  = 1
)

// Calculate splits the terminal into header, body and status bar.
// bannerHeight is the height of the getting-started banner, 0 when hidden.
// Returns Layout with TooSmall=true if under minimum.
func Calculate(termWidth, termHeight, bannerHeight int) Layout {
	l := Layout{
		TermWidth:  termWidth,
		TermHeight: termHeight,
	}

	if termWidth < MinWidth || termHeight < MinHeight {
		l.TooSmall = true
		return l
	}

	if bannerHeight < 0 {
		bannerHeight = 0
	}
	// the banner gives way before the grid does
	if maxBanner := termHeight - breadcrumbHeight - statusBarHeight - 3; bannerHeight > maxBanner {
		bannerHeight = max(maxBanner, 0)
	}

	l.HeaderHeight = breadcrumbHeight + bannerHeight
	l.BodyWidth = termWidth
	l.BodyHeight = termHeight - l.HeaderHeight - statusBarHeight
	l.StatusBarWidth = termWidth

	return l
}
