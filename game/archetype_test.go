package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArchetype(t *testing.T) {
	for _, a := range EnemyArchetypes() {
		got, err := ParseArchetype(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	got, err := ParseArchetype("sniper")
	require.NoError(t, err)
	assert.Equal(t, ArchetypeSniper, got)

	_, err = ParseArchetype("Mothership")
	require.ErrorIs(t, err, ErrUnknownArchetype)
}

func TestEnemyArchetypes(t *testing.T) {
	all := EnemyArchetypes()
	assert.Len(t, all, 9)
	assert.NotContains(t, all, ArchetypePlayer)
}

func TestNewEnemy_Presets(t *testing.T) {
	for _, a := range EnemyArchetypes() {
		t.Run(a.String(), func(t *testing.T) {
			v := NewEnemy(a, NoCollector, 0.4)
			cfg := GetArchetypeConfig(a)

			assert.Equal(t, TeamHostile, v.Team)
			assert.Equal(t, a, v.Archetype)
			assert.Equal(t, cfg.Radius, v.Radius)
			assert.Equal(t, Alive, v.Health)
			assert.NotEmpty(t, v.Shapes)
			assert.Equal(t, cfg.Armed, len(v.Weapons) == 1)
			for i := range v.Weapons {
				assert.NoError(t, v.Weapons[i].Validate())
			}

			if p, ok := v.Pilot.(PursuitPilot); ok {
				assert.InDelta(t, cfg.OffsetScale*0.4, p.HeadingOffset, 1e-9)
				assert.Equal(t, cfg.PursueRadius, p.PursueRadius)
			} else {
				assert.IsType(t, EvasivePilot{}, v.Pilot)
			}
		})
	}
}

func TestNewEnemy_Specifics(t *testing.T) {
	sniper := NewEnemy(ArchetypeSniper, 2, 0)
	require.Len(t, sniper.Weapons, 1)
	assert.IsType(t, LeadTrigger{}, sniper.Weapons[0].Trigger)
	assert.Equal(t, 10.0, sniper.Weapons[0].ReloadTime)
	assert.Equal(t, 350.0, sniper.Weapons[0].ProjectileSpeed)
	assert.Equal(t, CollectorRef(2), sniper.Pilot.(PursuitPilot).Collector)

	turret := NewEnemy(ArchetypeTurret, NoCollector, 0)
	assert.IsType(t, AlwaysTrigger{}, turret.Weapons[0].Trigger)
	assert.Equal(t, 250.0, turret.Weapons[0].ProjectileSpeed)

	slow := NewEnemy(ArchetypeSlow, NoCollector, 0)
	assert.Empty(t, slow.Weapons)
	assert.Equal(t, math.Pi, slow.RotateSpeed)
}

func TestNewPlayer_LevelScaling(t *testing.T) {
	p := NewPlayer(0, ControlsPointer)
	assert.Equal(t, 200.0, p.Thrust)
	assert.InDelta(t, 0.6*math.Pi, p.RotateSpeed, 1e-9)
	require.Len(t, p.Weapons, 1)
	assert.Equal(t, 300.0, p.Weapons[0].ProjectileSpeed)
	assert.InDelta(t, 2.0, p.Weapons[0].ProjectileLifetime, 1e-9)
	assert.InDelta(t, 0.8, p.Weapons[0].ReloadTime, 1e-9)
	assert.IsType(t, PointerPilot{}, p.Pilot)
	assert.IsType(t, PointerTrigger{}, p.Weapons[0].Trigger)

	p = NewPlayer(3, ControlsKeyboard)
	assert.Equal(t, 260.0, p.Thrust)
	assert.InDelta(t, 0.6*math.Pi+0.3, p.RotateSpeed, 1e-9)
	assert.Equal(t, 450.0, p.Weapons[0].ProjectileSpeed)
	assert.InDelta(t, 0.5, p.Weapons[0].ReloadTime, 1e-9)
	assert.IsType(t, KeyboardPilot{}, p.Pilot)
	assert.IsType(t, KeyTrigger{}, p.Weapons[0].Trigger)
}

func TestParseControls(t *testing.T) {
	c, err := ParseControls("Keyboard")
	require.NoError(t, err)
	assert.Equal(t, ControlsKeyboard, c)

	c, err = ParseControls("")
	require.NoError(t, err)
	assert.Equal(t, ControlsPointer, c)

	_, err = ParseControls("joystick")
	require.Error(t, err)
}
