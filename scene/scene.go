// Package scene converts world state into screen-space strokes.
// It has no graphics dependency; the client draws the strokes with ebiten.
package scene

import (
	"image/color"
	"math"

	"voidsweep/game"
)

const (
	// GridSize is the world spacing of background grid lines
	GridSize = 100.0

	// maxGridHalfCount stops the grid from being drawn when zoomed far out
	maxGridHalfCount = 192

	// aimProjectileSpeed approximates projectile speed when bending aim lines
	// toward where shots will actually travel
	aimProjectileSpeed = 500.0
)

var (
	Background    = game.ColorDarkPurple
	WinBackground = game.ColorPurple
	GridColor  = game.ColorWhite
	TextColor  = game.ColorLime
)

// StrokeKind selects the primitive a Stroke describes
type StrokeKind int

const (
	StrokeSegment StrokeKind = iota
	StrokeCircle
)

// Stroke is one outlined primitive in screen coordinates.
// Segments run From To; circles are centred on From.
type Stroke struct {
	Kind   StrokeKind
	From   game.Vec2
	To     game.Vec2
	Radius float64
	Width  float64
	Color  color.RGBA
}

// Frame is everything drawn for one frame, in painter's order
type Frame struct {
	Width, Height float64
	Background    color.RGBA

	Grid    []Stroke
	Strokes []Stroke
	Radar   Radar
}

// Build lays out the world as seen through its camera on a width by height screen.
// The camera should already follow the player.
func Build(w *game.World, width, height float64) Frame {
	f := Frame{Width: width, Height: height, Background: Background}
	if w.Won() {
		f.Background = WinBackground
	}
	cam := w.Camera

	f.Grid = gridLines(cam, w.Player.Position, width, height)

	for i := range w.Enemies {
		f.addBody(cam, &w.Enemies[i].Body)
	}
	for i := range w.Projectiles {
		f.addBody(cam, &w.Projectiles[i].Body)
	}
	f.addBody(cam, &w.HomeBase)
	for i := range w.Collectors {
		f.addBody(cam, &w.Collectors[i].Body)
	}
	f.addBody(cam, &w.Player.Body)

	f.Radar = BuildRadar(w, game.V(width-RadarRadius-radarScreenMargin, height-RadarRadius-radarScreenMargin))
	return f
}

// gridLines returns the vertical then horizontal lines around the grid point nearest center
func gridLines(cam game.Camera, center game.Vec2, width, height float64) []Stroke {
	halfCount := int(math.Ceil(math.Max(width, height) / GridSize / 2 / cam.Zoom))
	if halfCount >= maxGridHalfCount {
		return nil
	}

	midX := math.Round(center.X()/GridSize) * GridSize
	midY := math.Round(center.Y()/GridSize) * GridSize
	thickness := math.Max(cam.Zoom, 0.25)

	lines := make([]Stroke, 0, 2*(2*halfCount+1))
	for i := -halfCount; i <= halfCount; i++ {
		x := (midX + float64(i)*GridSize - cam.Position.X()) * cam.Zoom
		lines = append(lines, Stroke{
			Kind:  StrokeSegment,
			From:  game.V(x, 0),
			To:    game.V(x, height),
			Width: thickness,
			Color: GridColor,
		})
	}
	for i := -halfCount; i <= halfCount; i++ {
		y := (midY + float64(i)*GridSize - cam.Position.Y()) * cam.Zoom
		lines = append(lines, Stroke{
			Kind:  StrokeSegment,
			From:  game.V(0, y),
			To:    game.V(width, y),
			Width: thickness,
			Color: GridColor,
		})
	}
	return lines
}

// extent is how far any of the body's shapes reach from its centre in world units
func extent(b *game.Body) float64 {
	e := b.Radius
	for _, s := range b.Shapes {
		switch s.Kind {
		case game.ShapeLine:
			e = math.Max(e, b.Radius+s.RadiusScale)
		default:
			e = math.Max(e, b.Radius*s.RadiusScale)
		}
	}
	return e
}

func (f *Frame) visible(p game.Vec2, reach float64) bool {
	return p.X() >= -reach && p.X() <= f.Width+reach &&
		p.Y() >= -reach && p.Y() <= f.Height+reach
}

func (f *Frame) addBody(cam game.Camera, b *game.Body) {
	center := cam.WorldToScreen(b.Position)
	if !f.visible(center, extent(b)*cam.Zoom) {
		return
	}

	for _, s := range b.Shapes {
		width := math.Max(1, s.Thickness*cam.Zoom)
		switch s.Kind {
		case game.ShapeCircle:
			f.Strokes = append(f.Strokes, Stroke{
				Kind:   StrokeCircle,
				From:   center,
				Radius: b.Radius * s.RadiusScale * cam.Zoom,
				Width:  width,
				Color:  s.Color,
			})
		case game.ShapePolygon:
			f.Strokes = append(f.Strokes, polygon(center, s.Sides, b.Radius*s.RadiusScale*cam.Zoom, b.Direction.Radians(), width, s.Color)...)
		case game.ShapeLine:
			f.Strokes = append(f.Strokes, aimLine(center, b, s, cam.Zoom, width))
		}
	}
}

// polygon returns the edges of a regular polygon with its first vertex at angle
func polygon(center game.Vec2, sides int, radius, angle, width float64, c color.RGBA) []Stroke {
	if sides < 3 {
		return nil
	}
	vertex := func(i int) game.Vec2 {
		a := angle + float64(i)*2*math.Pi/float64(sides)
		return center.Add(game.V(math.Cos(a), math.Sin(a)).Mul(radius))
	}

	edges := make([]Stroke, 0, sides)
	prev := vertex(0)
	for i := 1; i <= sides; i++ {
		next := vertex(i % sides)
		edges = append(edges, Stroke{Kind: StrokeSegment, From: prev, To: next, Width: width, Color: c})
		prev = next
	}
	return edges
}

// aimLine starts at the body's edge along its heading and bends toward the
// direction a projectile would travel once it inherits the body's velocity
func aimLine(center game.Vec2, b *game.Body, s game.Shape, zoom, width float64) Stroke {
	heading := b.Heading()
	travel := game.Normalize(heading.Mul(aimProjectileSpeed).Add(b.Velocity))
	start := center.Add(heading.Mul(b.Radius * zoom))
	return Stroke{
		Kind:  StrokeSegment,
		From:  start,
		To:    start.Add(travel.Mul(s.RadiusScale * zoom)),
		Width: width,
		Color: s.Color,
	}
}
