package client

// DebugState holds developer toggles that persist across campaign restarts
type DebugState struct {
	ShowOverlay bool // Frame timings and entity counts
}

var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
