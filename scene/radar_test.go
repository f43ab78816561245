package scene

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voidsweep/game"
)

func testRadar() *Radar {
	return &Radar{Center: game.V(500, 500), Radius: RadarRadius, Scale: RadarRadius / RadarRange}
}

func TestRadar_BlipInRange(t *testing.T) {
	r := testRadar()
	b := r.blip(game.V(0, 0), game.V(3000, 0), game.ColorRed)

	assert.False(t, b.OffRadar)
	assertVec(t, game.V(545, 500), b.Pos)
	assert.Equal(t, "3000", b.Label)
	assert.Equal(t, game.ColorRed, b.Color)
}

func TestRadar_BlipClampedToRim(t *testing.T) {
	r := testRadar()
	b := r.blip(game.V(10, 10), game.V(6000, 10), game.ColorRed)

	assert.False(t, b.OffRadar)
	assertVec(t, game.V(500+RadarRadius-radarEdgeMargin, 500), b.Pos)
}

func TestRadar_BlipOffRadar(t *testing.T) {
	r := testRadar()
	b := r.blip(game.V(0, 0), game.V(0, -7000), game.ColorRed)

	assert.True(t, b.OffRadar)
	assertVec(t, game.V(500, 500-RadarRadius+radarOffRadarInset), b.Pos)
	assertVec(t, b.Pos.Add(game.V(0, -radarLabelOffset)), b.LabelPos)
	assert.Equal(t, "7000", b.Label)
}

func TestBuildRadar_SkipsCollectedBases(t *testing.T) {
	level := &game.Level{
		Name: "two",
		Collectors: []game.CollectorSpec{
			{Position: game.V(1000, 0), Population: map[game.Archetype]int{}, OptimalDistance: 50, MaxDistance: 500},
			{Position: game.V(-1000, 0), Population: map[game.Archetype]int{}, OptimalDistance: 50, MaxDistance: 500},
		},
	}
	w, err := game.NewWorld(level, 0)
	require.NoError(t, err)

	r := BuildRadar(w, game.V(100, 100))
	require.Len(t, r.Blips, 3)
	assert.Equal(t, game.ColorBlue, r.Blips[0].Color)
	assertVec(t, game.V(100, 100), r.Blips[0].Pos)

	w.Collectors[1].Collected = true
	r = BuildRadar(w, game.V(100, 100))
	require.Len(t, r.Blips, 2)
	assertVec(t, game.V(115, 100), r.Blips[1].Pos)
}

func TestPredictPath(t *testing.T) {
	b := game.Body{Velocity: game.V(100, 0), FrictionMultiplier: 1}

	path := PredictPath(b, 10, 0.1)
	require.Len(t, path, 11)
	assertVec(t, game.V(0, 0), path[0])
	assertVec(t, game.V(100, 0), path[10])

	// the caller's body is untouched
	assertVec(t, game.V(0, 0), b.Position)
}

func TestPredictPath_StopsUnderDrag(t *testing.T) {
	b := game.Body{Velocity: game.V(10, 0), FrictionMultiplier: 1, FrictionConstant: 100}

	path := PredictPath(b, 5, 0.1)
	assert.Equal(t, path[1], path[4])
}

func TestRadar_TrailFades(t *testing.T) {
	r := testRadar()
	path := make([]game.Vec2, 61)

	strokes := r.trail(game.V(0, 0), path)
	require.Len(t, strokes, 60)
	assert.Equal(t, uint8(255), strokes[0].Color.A)
	assert.Equal(t, uint8(51), strokes[59].Color.A)
	assertVec(t, r.Center, strokes[30].From)

	assert.Nil(t, r.trail(game.V(0, 0), path[:1]))
}

func TestPremultiply(t *testing.T) {
	assert.Equal(t, color.RGBA{102, 191, 255, 255}, premultiply(RadarTrail, 255))
	assert.Equal(t, game.TeamPlayer.Color(), premultiply(RadarTrail, 255))
	assert.Equal(t, color.RGBA{0, 0, 0, 0}, premultiply(RadarTrail, 0))
	assert.Equal(t, color.RGBA{100, 50, 0, 128}, premultiply(color.NRGBA{200, 100, 0, 255}, 128))
}
