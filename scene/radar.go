package scene

import (
	"fmt"
	"image/color"
	"math"

	"voidsweep/game"
)

const (
	RadarRadius = 90.0
	RadarRange  = 6000.0

	radarScreenMargin  = 20.0
	radarEdgeMargin    = 4.0
	radarOffRadarInset = 5.0
	radarLabelOffset   = 6.0

	// RadarBlipSize is the drawn blip radius in pixels
	RadarBlipSize = 3.0

	// Coasting prediction for the player's trail
	predictionSteps = 60
	predictionStep  = 0.1
)

var (
	RadarBackdrop = color.NRGBA{0, 0, 0, 120}
	RadarRing     = color.NRGBA{255, 255, 255, 160}
	RadarTrail    = color.NRGBA(game.TeamPlayer.Color())
)

// Blip is one marker on the radar, in screen coordinates
type Blip struct {
	Pos      game.Vec2
	Color    color.RGBA
	Label    string
	LabelPos game.Vec2

	// OffRadar marks targets beyond range pinned to the rim
	OffRadar bool
}

// Radar is a north-up minimap centred on the player
type Radar struct {
	Center game.Vec2
	Radius float64
	Scale  float64

	Blips []Blip

	// Trail is where the player drifts if it stops thrusting, fading with age
	Trail []Stroke
}

// BuildRadar places the home base and every uncollected base around the player
func BuildRadar(w *game.World, center game.Vec2) Radar {
	r := Radar{
		Center: center,
		Radius: RadarRadius,
		Scale:  RadarRadius / RadarRange,
	}
	player := w.Player.Position

	r.Blips = append(r.Blips, r.blip(player, w.HomeBase.Position, game.ColorBlue))
	for i := range w.Collectors {
		c := &w.Collectors[i]
		if c.Collected {
			continue
		}
		clr := game.ColorWhite
		if len(c.Shapes) > 0 {
			clr = c.Shapes[0].Color
		}
		r.Blips = append(r.Blips, r.blip(player, c.Position, clr))
	}

	r.Trail = r.trail(player, PredictPath(w.Player.Body, predictionSteps, predictionStep))
	return r
}

// clamp pins a radar offset inside the rim
func (r *Radar) clamp(offset game.Vec2) game.Vec2 {
	limit := r.Radius - radarEdgeMargin
	if d := offset.Len(); d > limit {
		return offset.Mul(limit / d)
	}
	return offset
}

func (r *Radar) blip(player, target game.Vec2, clr color.RGBA) Blip {
	delta := target.Sub(player)
	dist := delta.Len()
	b := Blip{Color: clr, Label: fmt.Sprintf("%.0f", dist)}

	if dist > RadarRange {
		dir := game.Normalize(delta)
		b.OffRadar = true
		b.Pos = r.Center.Add(dir.Mul(r.Radius - radarOffRadarInset))
		b.LabelPos = b.Pos.Add(dir.Mul(radarLabelOffset))
		return b
	}

	b.Pos = r.Center.Add(r.clamp(delta.Mul(r.Scale)))
	b.LabelPos = b.Pos.Add(game.V(radarLabelOffset, -radarLabelOffset))
	return b
}

func (r *Radar) trail(player game.Vec2, path []game.Vec2) []Stroke {
	if len(path) <= 1 {
		return nil
	}
	strokes := make([]Stroke, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		a := r.Center.Add(r.clamp(path[i].Sub(player).Mul(r.Scale)))
		b := r.Center.Add(r.clamp(path[i+1].Sub(player).Mul(r.Scale)))

		// Fade from full to a fifth of the trail colour
		progress := float64(i) / math.Max(1, float64(len(path)-2))
		alpha := uint8(math.Round(float64(RadarTrail.A) * (1 - progress*0.8)))
		strokes = append(strokes, Stroke{
			Kind:  StrokeSegment,
			From:  a,
			To:    b,
			Width: 1,
			Color: premultiply(RadarTrail, alpha),
		})
	}
	return strokes
}

// PredictPath integrates a copy of b for steps of dt seconds and returns
// every position starting with the current one
func PredictPath(b game.Body, steps int, dt float64) []game.Vec2 {
	path := make([]game.Vec2, 0, steps+1)
	path = append(path, b.Position)
	for i := 0; i < steps; i++ {
		b.Integrate(dt)
		path = append(path, b.Position)
	}
	return path
}

// premultiply converts a straight-alpha colour to the premultiplied RGBA ebiten expects
func premultiply(c color.NRGBA, alpha uint8) color.RGBA {
	a := uint32(alpha)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: alpha,
	}
}
