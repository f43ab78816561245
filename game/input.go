package game

// InputState is the per-frame snapshot of device input consumed by manual pilots and triggers
type InputState struct {
	Thrust    bool
	TurnLeft  bool
	TurnRight bool
	Fire      bool

	// Pointer is the pointer offset from the centre of the screen
	Pointer Vec2

	// PointerPrimary is the thrust button, PointerSecondary the fire button
	PointerPrimary   bool
	PointerSecondary bool
}

// View is the read-only state decisions are made against during a tick.
// Player is a copy taken before anything moved; Projectiles and Collectors
// are not modified until every vessel has been updated.
type View struct {
	Player      Vessel
	Projectiles []Projectile
	Collectors  []Collector
	Input       InputState
}

// Collector resolves a collector reference, returning nil for unbound or stale references
func (v *View) Collector(ref CollectorRef) *Collector {
	if ref < 0 || int(ref) >= len(v.Collectors) {
		return nil
	}
	return &v.Collectors[ref]
}
