package render

// Camera translates between world coordinates and screen coordinates. Every
// tile is one terminal column wide.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Resize changes the viewport size, keeping the current offset.
func (c *Camera) Resize(viewW, viewH int) {
	c.ViewWidth, c.ViewHeight = viewW, viewH
}

// Center repositions the camera so that world position (cx, cy) is in the
// middle.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - c.ViewWidth/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Fit centers on (cx, cy) unless the whole mapW x mapH map fits in the
// viewport, in which case the map is pinned to the top-left corner.
func (c *Camera) Fit(cx, cy, mapW, mapH int) {
	c.Center(cx, cy)
	if mapW <= c.ViewWidth {
		c.OffsetX = 0
	}
	if mapH <= c.ViewHeight {
		c.OffsetY = 0
	}
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx + c.OffsetX, sy + c.OffsetY
}
