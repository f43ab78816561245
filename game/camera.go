package game

import "math"

const (
	// zoomStep is the zoom factor per wheel notch
	zoomStep = 1.1

	minZoom = 0.01
	maxZoom = 100.0
)

// Camera maps world coordinates onto the screen.
// Position is the world point drawn at the top-left corner.
type Camera struct {
	Position Vec2
	Zoom     float64
}

// NewCamera creates a camera at the origin with no zoom
func NewCamera() Camera {
	return Camera{Zoom: 1}
}

// Follow centres the camera on target for a screen of the given size
func (c *Camera) Follow(target Vec2, screenWidth, screenHeight float64) {
	c.Position = target.Sub(Vec2{screenWidth / 2, screenHeight / 2}.Mul(1 / c.Zoom))
}

// ZoomBy scales the zoom by one step per wheel notch
func (c *Camera) ZoomBy(wheel float64) {
	c.Zoom *= math.Pow(zoomStep, wheel)
	c.Zoom = min(max(c.Zoom, minZoom), maxZoom)
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	return p.Sub(c.Position).Mul(c.Zoom)
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(p Vec2) Vec2 {
	return p.Mul(1 / c.Zoom).Add(c.Position)
}
