package game

// Config holds simulation tuning
type Config struct {
	// ActivityRadius is the distance from the player beyond which vessels and projectiles are frozen
	ActivityRadius float64

	// CellSize is the size of each broadphase cell in world units
	CellSize float64

	// MaxFrameTime caps a single tick's dt in seconds
	MaxFrameTime float64

	// PlayerInvulnerable makes the player immune to kills
	PlayerInvulnerable bool

	// Controls selects the player's pilot and trigger
	Controls Controls
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ActivityRadius: 3000.0,
		CellSize:       256.0,
		MaxFrameTime:   0.1,
		Controls:       ControlsPointer,
	}
}

// ClampFrameTime limits dt to the configured maximum
func (c Config) ClampFrameTime(dt float64) float64 {
	if c.MaxFrameTime > 0 && dt > c.MaxFrameTime {
		return c.MaxFrameTime
	}
	if dt < 0 {
		return 0
	}
	return dt
}
