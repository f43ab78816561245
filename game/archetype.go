package game

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownArchetype is returned when parsing an archetype name fails
var ErrUnknownArchetype = errors.New("unknown archetype")

// Archetype names a vessel preset
type Archetype int

const (
	ArchetypePlayer Archetype = iota
	ArchetypeUltraLowFriction
	ArchetypeLowFriction
	ArchetypeHighFriction
	ArchetypeSlow
	ArchetypeShoot
	ArchetypeTurret
	ArchetypeSniper
	ArchetypeGlider
	ArchetypeClone
	ArchetypeCount // Total number of archetypes
)

var archetypeNames = [ArchetypeCount]string{
	ArchetypePlayer:           "Player",
	ArchetypeUltraLowFriction: "UltraLowFriction",
	ArchetypeLowFriction:      "LowFriction",
	ArchetypeHighFriction:     "HighFriction",
	ArchetypeSlow:             "Slow",
	ArchetypeShoot:            "Shoot",
	ArchetypeTurret:           "Turret",
	ArchetypeSniper:           "Sniper",
	ArchetypeGlider:           "Glider",
	ArchetypeClone:            "Clone",
}

func (a Archetype) String() string {
	if a < 0 || a >= ArchetypeCount {
		return fmt.Sprintf("Archetype(%d)", int(a))
	}
	return archetypeNames[a]
}

// ParseArchetype looks up an archetype by name, ignoring case
func ParseArchetype(name string) (Archetype, error) {
	for i, n := range archetypeNames {
		if strings.EqualFold(n, name) {
			return Archetype(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownArchetype, name)
}

// EnemyArchetypes returns every hostile archetype in declaration order
func EnemyArchetypes() []Archetype {
	out := make([]Archetype, 0, ArchetypeCount-1)
	for a := ArchetypeUltraLowFriction; a < ArchetypeCount; a++ {
		out = append(out, a)
	}
	return out
}

// PilotKind selects which AI a hostile archetype flies with
type PilotKind int

const (
	PilotPursuit PilotKind = iota
	PilotEvasive
)

// ArchetypeConfig holds the stat preset of a hostile archetype
type ArchetypeConfig struct {
	Archetype          Archetype
	Radius             float64
	FrictionMultiplier float64
	FrictionConstant   float64
	Shapes             []Shape

	Thrust      float64
	RotateSpeed float64

	// PursueRadius is the player distance that triggers a chase
	PursueRadius float64

	// OffsetScale multiplies the collector-assigned heading offset
	OffsetScale float64

	Pilot PilotKind

	// Armed archetypes carry Weapon
	Armed  bool
	Weapon Weapon
}

// NewCloneWeapon returns the fast-reloading always-firing hostile weapon
func NewCloneWeapon() Weapon {
	return NewWeapon(1.0, 5.0, 200.0, AlwaysTrigger{})
}

// NewHostileWeapon returns the slow-reloading weapon that fires on a lead solution
func NewHostileWeapon() Weapon {
	return NewWeapon(2.5, 5.0, 200.0, LeadTrigger{})
}

// playerShapes is the look shared by the player and its clones
func playerShapes() []Shape {
	return []Shape{Circle(ColorBlue), Polygon(3, ColorDarkBlue), Line(5000, ColorSkyBlue)}
}

// GetArchetypeConfig returns the preset for a hostile archetype
func GetArchetypeConfig(a Archetype) ArchetypeConfig {
	switch a {
	case ArchetypeUltraLowFriction:
		return ArchetypeConfig{
			Archetype:          a,
			Radius:             10,
			FrictionMultiplier: 0.95,
			FrictionConstant:   10,
			Shapes:             []Shape{Circle(ColorBeige), Polygon(7, ColorBeige)},
			Thrust:             50,
			RotateSpeed:        0.4,
			PursueRadius:       1500,
			OffsetScale:        1,
		}
	case ArchetypeLowFriction:
		return ArchetypeConfig{
			Archetype:          a,
			Radius:             15,
			FrictionMultiplier: 0.8,
			FrictionConstant:   10,
			Shapes:             []Shape{Circle(ColorRed), Polygon(4, ColorRed)},
			Thrust:             100,
			RotateSpeed:        0.8,
			PursueRadius:       1200,
			OffsetScale:        0.5,
		}
	case ArchetypeHighFriction:
		return ArchetypeConfig{
			Archetype:          a,
			Radius:             25,
			FrictionMultiplier: 0.15,
			FrictionConstant:   10,
			Shapes:             []Shape{Circle(ColorGreen), Polygon(6, ColorDarkGreen)},
			Thrust:             300,
			RotateSpeed:        1.5,
			PursueRadius:       1000,
			OffsetScale:        0.5,
		}
	case ArchetypeSlow:
		return ArchetypeConfig{
			Archetype:          a,
			Radius:             35,
			FrictionMultiplier: 0.05,
			FrictionConstant:   10,
			Shapes:             []Shape{Circle(ColorBrown), Polygon(5, ColorDarkBrown)},
			Thrust:             300,
			RotateSpeed:        math.Pi,
			PursueRadius:       800,
			OffsetScale:        1,
		}
	case ArchetypeShoot:
		return ArchetypeConfig{
			Archetype:          a,
			Radius:             10,
			FrictionMultiplier: 0.22,
			FrictionConstant:   15,
			Shapes:             []Shape{Circle(ColorBlue), Polygon(3, ColorDarkBlue)},
			Thrust:             300,
			RotateSpeed:        math.Pi / 6,
			PursueRadius:       1200,
			Armed:              true,
			Weapon:             NewCloneWeapon(),
		}
	case ArchetypeTurret:
		w := NewCloneWeapon()
		w.ProjectileLifetime = 8
		w.ReloadTime = 1.2
		w.ProjectileSpeed = 250
		return ArchetypeConfig{
			Archetype:          a,
			Radius:             25,
			FrictionMultiplier: 0.22,
			FrictionConstant:   15,
			Shapes:             []Shape{Circle(ColorGold), Polygon(3, ColorGold)},
			Thrust:             30,
			RotateSpeed:        math.Pi,
			PursueRadius:       1200,
			Armed:              true,
			Weapon:             w,
		}
	case ArchetypeSniper:
		// Long reload, so it waits for a lead solution instead of spraying
		w := NewHostileWeapon()
		w.ProjectileLifetime = 8
		w.ReloadTime = 10
		w.ProjectileSpeed = 350
		return ArchetypeConfig{
			Archetype:          a,
			Radius:             20,
			FrictionMultiplier: 0.22,
			FrictionConstant:   15,
			Shapes:             []Shape{Circle(ColorOrange), Polygon(3, ColorOrange), Line(2000, ColorOrange)},
			Thrust:             90,
			RotateSpeed:        math.Pi / 6,
			PursueRadius:       1500,
			Armed:              true,
			Weapon:             w,
		}
	case ArchetypeGlider:
		w := NewCloneWeapon()
		w.ProjectileLifetime = 10
		w.ReloadTime = 1.2
		w.ProjectileSpeed = 100
		return ArchetypeConfig{
			Archetype:          a,
			Radius:             20,
			FrictionMultiplier: 0.92,
			FrictionConstant:   10,
			Shapes:             []Shape{Circle(ColorMaroon), Polygon(3, ColorMaroon)},
			Thrust:             50,
			RotateSpeed:        math.Pi / 2,
			PursueRadius:       1500,
			OffsetScale:        1,
			Armed:              true,
			Weapon:             w,
		}
	case ArchetypeClone:
		return ArchetypeConfig{
			Archetype:          a,
			Radius:             10,
			FrictionMultiplier: 0.22,
			FrictionConstant:   15,
			Shapes:             playerShapes(),
			Thrust:             270,
			RotateSpeed:        math.Pi,
			PursueRadius:       1500,
			Pilot:              PilotEvasive,
			Armed:              true,
			Weapon:             NewCloneWeapon(),
		}
	default:
		return GetArchetypeConfig(ArchetypeSlow)
	}
}

// Controls selects how the player flies
type Controls int

const (
	ControlsPointer Controls = iota
	ControlsKeyboard
)

// ParseControls maps "pointer" or "keyboard" to Controls
func ParseControls(s string) (Controls, error) {
	switch strings.ToLower(s) {
	case "", "pointer", "mouse":
		return ControlsPointer, nil
	case "keyboard", "keys":
		return ControlsKeyboard, nil
	}
	return ControlsPointer, fmt.Errorf("unknown controls %q", s)
}

// NewPlayer creates the player vessel at the origin, scaled by level
func NewPlayer(level int, controls Controls) Vessel {
	l := float64(level)
	speed := 300 + 50*l
	const playerRange = 600.0

	var pilot Pilot = PointerPilot{}
	var trigger Trigger = PointerTrigger{}
	if controls == ControlsKeyboard {
		pilot = KeyboardPilot{}
		trigger = KeyTrigger{}
	}

	return Vessel{
		Body: Body{
			Radius:             10,
			FrictionMultiplier: 0.22,
			FrictionConstant:   15,
			Shapes:             playerShapes(),
			Health:             Alive,
		},
		Thrust:      200 + 20*l,
		RotateSpeed: 0.6*math.Pi + 0.1*l,
		Weapons:     []Weapon{NewWeapon(4/(l+5), playerRange/speed, speed, trigger)},
		Team:        TeamPlayer,
		Pilot:       pilot,
		Archetype:   ArchetypePlayer,
	}
}

// NewEnemy creates a hostile vessel of the given archetype at the origin.
// headingOffset is scaled by the archetype before being handed to its pilot.
func NewEnemy(a Archetype, collector CollectorRef, headingOffset float64) Vessel {
	cfg := GetArchetypeConfig(a)

	var pilot Pilot
	switch cfg.Pilot {
	case PilotEvasive:
		pilot = EvasivePilot{}
	default:
		pilot = NewPursuitPilot(collector, cfg.PursueRadius, cfg.OffsetScale*headingOffset)
	}

	var weapons []Weapon
	if cfg.Armed {
		weapons = []Weapon{cfg.Weapon}
	}

	return Vessel{
		Body: Body{
			Radius:             cfg.Radius,
			FrictionMultiplier: cfg.FrictionMultiplier,
			FrictionConstant:   cfg.FrictionConstant,
			Shapes:             cfg.Shapes,
			Health:             Alive,
		},
		Thrust:      cfg.Thrust,
		RotateSpeed: cfg.RotateSpeed,
		Weapons:     weapons,
		Team:        TeamHostile,
		Pilot:       pilot,
		Archetype:   cfg.Archetype,
	}
}
