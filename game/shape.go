package game

import "image/color"

// ShapeKind selects how a body is drawn
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapePolygon
	ShapeLine
)

// Shape describes one layer of a body's appearance
type Shape struct {
	Kind  ShapeKind
	Color color.RGBA

	// Sides is the polygon vertex count
	Sides int

	// RadiusScale multiplies the body radius for circles and polygons
	// and is the length of lines
	RadiusScale float64

	// Thickness is the stroke width at zoom 1
	Thickness float64
}

// Default outline widths in world units
const (
	outlineThickness = 3.0
	lineThickness    = 1.5
)

// Circle returns a circle outline of the body radius
func Circle(c color.RGBA) Shape {
	return Shape{Kind: ShapeCircle, Color: c, RadiusScale: 1, Thickness: outlineThickness}
}

// Polygon returns a regular polygon outline rotated with the heading
func Polygon(sides int, c color.RGBA) Shape {
	return Shape{Kind: ShapePolygon, Sides: sides, Color: c, RadiusScale: 1, Thickness: outlineThickness}
}

// Line returns an aim line radiusScale units long starting at the body's edge
func Line(radiusScale float64, c color.RGBA) Shape {
	return Shape{Kind: ShapeLine, RadiusScale: radiusScale, Color: c, Thickness: lineThickness}
}

// Palette
var (
	ColorWhite      = color.RGBA{255, 255, 255, 255}
	ColorBlack      = color.RGBA{0, 0, 0, 255}
	ColorRed        = color.RGBA{230, 41, 55, 255}
	ColorBlue       = color.RGBA{0, 121, 241, 255}
	ColorDarkBlue   = color.RGBA{0, 82, 172, 255}
	ColorSkyBlue    = color.RGBA{102, 191, 255, 255}
	ColorBeige      = color.RGBA{211, 176, 131, 255}
	ColorGreen      = color.RGBA{0, 228, 48, 255}
	ColorDarkGreen  = color.RGBA{0, 117, 44, 255}
	ColorLime       = color.RGBA{0, 158, 47, 255}
	ColorBrown      = color.RGBA{127, 106, 79, 255}
	ColorDarkBrown  = color.RGBA{76, 63, 47, 255}
	ColorGold       = color.RGBA{255, 203, 0, 255}
	ColorOrange     = color.RGBA{255, 161, 0, 255}
	ColorMaroon     = color.RGBA{190, 33, 55, 255}
	ColorPurple     = color.RGBA{200, 122, 255, 255}
	ColorDarkPurple = color.RGBA{112, 31, 126, 255}
)
