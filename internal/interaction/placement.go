package interaction

// Rect is an on-screen box in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Size is a measured width and height.
type Size struct {
	Width, Height int
}

// Point is a top-left corner.
type Point struct {
	X, Y int
}

// Placement positions a preview relative to its anchor. Gap is the space
// between anchor and preview; Margin is the minimum distance kept from the
// left and right viewport edges.
type Placement struct {
	Gap    int
	Margin int
}

// TerminalPlacement suits a character grid: one row of gap, two columns
// of margin.
var TerminalPlacement = Placement{Gap: 1, Margin: 2}

// Place puts content below anchor, or above it when below would run past
// the bottom of viewport. Horizontally the preview is centered on the
// anchor and clamped inside the margins, left edge winning on a viewport
// too narrow for both.
func (p Placement) Place(anchor Rect, content Size, viewport Size) Point {
	x := anchor.X + anchor.Width/2 - content.Width/2
	y := anchor.Y + anchor.Height + p.Gap

	if y+content.Height > viewport.Height {
		y = anchor.Y - p.Gap - content.Height
	}
	if y < 0 {
		y = 0
	}

	if x+content.Width > viewport.Width-p.Margin {
		x = viewport.Width - p.Margin - content.Width
	}
	if x < p.Margin {
		x = p.Margin
	}

	return Point{X: x, Y: y}
}

// PlacePreview places content with TerminalPlacement.
func PlacePreview(anchor Rect, content Size, viewport Size) Point {
	return TerminalPlacement.Place(anchor, content, viewport)
}
