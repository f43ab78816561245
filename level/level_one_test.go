package level

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voidsweep/game"
)

func TestLevelOne(t *testing.T) {
	l := LevelOne(DefaultEnemyCountMultiplier)
	require.NoError(t, l.Validate())

	assert.Len(t, l.Collectors, 13)
	assert.Len(t, l.Spawners, 3)
	assert.Equal(t, 200+870, l.EnemyCount())
}

func TestLevelOne_Multiplier(t *testing.T) {
	assert.Equal(t, 200, LevelOne(0).EnemyCount())
	assert.Equal(t, 200, LevelOne(-4).EnemyCount())
	assert.Equal(t, 200+290, LevelOne(1).EnemyCount())
}

func TestLevelOne_BuildsWorld(t *testing.T) {
	w, err := game.NewWorld(LevelOne(1), 0, game.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)

	assert.Equal(t, 13, w.BaseCount())
	assert.Equal(t, 490, w.RemainingEnemies())
}
