package core

// Surface is the drawing boundary between game objects and a display.
// Cell coordinates are grid cells; size is the edge length in the
// surface's own units (terminal columns, pixels).
type Surface interface {
	// FillCell paints the cell with a solid color.
	FillCell(c Cell, size int, color RGB)

	// ClearCell paints the cell with the background color.
	ClearCell(c Cell, size int, background RGB)
}

// Drawable is implemented by everything that can render itself onto a Surface.
type Drawable interface {
	Draw(dst Surface)
}
