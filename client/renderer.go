package client

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"voidsweep/game"
	"voidsweep/scene"
)

const (
	hudScale      = 3.0
	hudLineHeight = 16 * hudScale
)

// Renderer draws scene frames and the HUD
type Renderer struct {
	face text.Face
}

// NewRenderer creates a renderer with the built-in bitmap font
func NewRenderer() *Renderer {
	return &Renderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Render draws a frame
func (r *Renderer) Render(screen *ebiten.Image, f scene.Frame) {
	screen.Fill(f.Background)
	for _, s := range f.Grid {
		r.stroke(screen, s)
	}
	for _, s := range f.Strokes {
		r.stroke(screen, s)
	}
	r.renderRadar(screen, f.Radar)
}

func (r *Renderer) renderRadar(screen *ebiten.Image, radar scene.Radar) {
	cx, cy := float32(radar.Center.X()), float32(radar.Center.Y())
	vector.DrawFilledCircle(screen, cx, cy, float32(radar.Radius), scene.RadarBackdrop, true)
	vector.StrokeCircle(screen, cx, cy, float32(radar.Radius), 1, scene.RadarRing, true)

	for _, s := range radar.Trail {
		r.stroke(screen, s)
	}
	for _, b := range radar.Blips {
		vector.DrawFilledCircle(screen, float32(b.Pos.X()), float32(b.Pos.Y()), scene.RadarBlipSize, b.Color, true)
		ebitenutil.DebugPrintAt(screen, b.Label, int(b.LabelPos.X()), int(b.LabelPos.Y()))
	}
}

func (r *Renderer) stroke(screen *ebiten.Image, s scene.Stroke) {
	switch s.Kind {
	case scene.StrokeCircle:
		vector.StrokeCircle(screen, float32(s.From.X()), float32(s.From.Y()), float32(s.Radius), float32(s.Width), s.Color, true)
	case scene.StrokeSegment:
		vector.StrokeLine(screen, float32(s.From.X()), float32(s.From.Y()), float32(s.To.X()), float32(s.To.Y()), float32(s.Width), s.Color, true)
	}
}

// RenderHUD draws one status line per row from the top-left corner
func (r *Renderer) RenderHUD(screen *ebiten.Image, lines []string) {
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Scale(hudScale, hudScale)
		op.GeoM.Translate(0, float64(i)*hudLineHeight)
		op.ColorScale.ScaleWithColor(scene.TextColor)
		text.Draw(screen, line, r.face, op)
	}
}

// RenderDebug prints frame timings and entity counts in the top-right corner
func (r *Renderer) RenderDebug(screen *ebiten.Image, w *game.World, report game.TickReport, paused bool) {
	bounds := screen.Bounds()
	x, y := ebiten.CursorPosition()
	cursor := CursorWorld(w.Camera, x, y)

	info := fmt.Sprintf("FPS: %.0f  TPS: %.0f\nEnemies: %d / %d (active %d)\nProjectiles: %d\nZoom: %.2f\nCursor: %.0f, %.0f",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		w.RemainingEnemies(), w.TotalEnemyCount, report.Active,
		len(w.Projectiles),
		w.Camera.Zoom,
		cursor.X(), cursor.Y(),
	)
	if paused {
		info += "\nPAUSED"
	}
	ebitenutil.DebugPrintAt(screen, info, bounds.Dx()-220, 10)
}
