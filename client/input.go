package client

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"voidsweep/game"
)

// Key bindings
const (
	ThrustKey  = ebiten.KeyW
	LeftKey    = ebiten.KeyA
	RightKey   = ebiten.KeyD
	FireKey    = ebiten.KeySpace
	RestartKey = ebiten.KeyEnter
	PauseKey   = ebiten.KeyP
	DebugKey   = ebiten.KeyF1
)

// ReadInput polls the keyboard and mouse. The pointer is reported relative
// to the centre of a screenWidth by screenHeight screen.
func ReadInput(screenWidth, screenHeight int) game.InputState {
	mx, my := ebiten.CursorPosition()
	return game.InputState{
		Thrust:    ebiten.IsKeyPressed(ThrustKey),
		TurnLeft:  ebiten.IsKeyPressed(LeftKey),
		TurnRight: ebiten.IsKeyPressed(RightKey),
		Fire:      ebiten.IsKeyPressed(FireKey),

		Pointer: PointerOffset(mx, my, screenWidth, screenHeight),

		PointerPrimary:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		PointerSecondary: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
}

// PointerOffset converts a cursor position to an offset from the screen centre
func PointerOffset(x, y, screenWidth, screenHeight int) game.Vec2 {
	return game.V(float64(x)-float64(screenWidth)/2, float64(y)-float64(screenHeight)/2)
}

// CursorWorld returns the world position under the cursor at screen pixel x, y
func CursorWorld(cam game.Camera, x, y int) game.Vec2 {
	return cam.ScreenToWorld(game.V(float64(x), float64(y)))
}

// Commands are the one-shot actions requested this frame
type Commands struct {
	Restart     bool
	TogglePause bool
	ToggleDebug bool
	Zoom        float64
}

// ReadCommands polls the keys that trigger one-shot actions
func ReadCommands() Commands {
	_, wheel := ebiten.Wheel()
	return Commands{
		Restart:     inpututil.IsKeyJustPressed(RestartKey),
		TogglePause: inpututil.IsKeyJustPressed(PauseKey),
		ToggleDebug: inpututil.IsKeyJustPressed(DebugKey),
		Zoom:        wheel,
	}
}
