package game

import (
	"fmt"
	"image/color"
)

// Team represents which side a vessel or projectile belongs to
type Team int

const (
	TeamPlayer Team = iota
	TeamHostile
	teamCount
)

var teamNames = [teamCount]string{
	TeamPlayer:  "player",
	TeamHostile: "hostile",
}

var teamColors = [teamCount]color.RGBA{
	TeamPlayer:  ColorSkyBlue,
	TeamHostile: ColorRed,
}

func (t Team) valid() bool {
	return t >= 0 && t < teamCount
}

func (t Team) String() string {
	if !t.valid() {
		return fmt.Sprintf("Team(%d)", int(t))
	}
	return teamNames[t]
}

// Color is the team's accent colour, white for unknown teams
func (t Team) Color() color.RGBA {
	if !t.valid() {
		return ColorWhite
	}
	return teamColors[t]
}

// Opposing returns the team this one fights
func (t Team) Opposing() Team {
	if t == TeamPlayer {
		return TeamHostile
	}
	return TeamPlayer
}
