package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"voidsweep/game"
)

// Name of the config file searched for, without extension
const Name = "voidsweep"

// WindowConfig holds the client window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// SimConfig holds simulation tuning
type SimConfig struct {
	ActivityRadius float64 `mapstructure:"activityRadius"`
	MaxFrameTime   float64 `mapstructure:"maxFrameTime"`
	CellSize       float64 `mapstructure:"cellSize"`

	// Seed for world generation, zero picks one from the clock
	Seed int64 `mapstructure:"seed"`
}

// PlayerConfig holds player settings
type PlayerConfig struct {
	Controls     string `mapstructure:"controls"`
	StartLevel   int    `mapstructure:"startLevel"`
	Invulnerable bool   `mapstructure:"invulnerable"`
}

// LevelConfig selects the map
type LevelConfig struct {
	// File is a level description, empty for the built-in level one
	File                 string `mapstructure:"file"`
	EnemyCountMultiplier int    `mapstructure:"enemyCountMultiplier"`
}

// DebugConfig holds developer toggles
type DebugConfig struct {
	ShowOverlay bool   `mapstructure:"showOverlay"`
	ProfileDir  string `mapstructure:"profileDir"`
}

// Config is the full application configuration
type Config struct {
	LogLevel string       `mapstructure:"logLevel"`
	Window   WindowConfig `mapstructure:"window"`
	Sim      SimConfig    `mapstructure:"sim"`
	Player   PlayerConfig `mapstructure:"player"`
	Level    LevelConfig  `mapstructure:"level"`
	Debug    DebugConfig  `mapstructure:"debug"`
}

// SetDefaults registers every default value with viper
func SetDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 800)
	viper.SetDefault("window.title", "Untitled Space Game")

	viper.SetDefault("sim.activityRadius", 3000.0)
	viper.SetDefault("sim.maxFrameTime", 0.1)
	viper.SetDefault("sim.cellSize", 256.0)
	viper.SetDefault("sim.seed", 0)

	viper.SetDefault("player.controls", "pointer")
	viper.SetDefault("player.startLevel", 0)
	viper.SetDefault("player.invulnerable", false)

	viper.SetDefault("level.file", "")
	viper.SetDefault("level.enemyCountMultiplier", 3)

	viper.SetDefault("debug.showOverlay", false)
	viper.SetDefault("debug.profileDir", "profiles")
}

// Load reads voidsweep.yaml from configDir on top of the defaults.
// A missing file is not an error.
func Load(configDir string) (Config, error) {
	SetDefaults()

	viper.SetConfigName(Name)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}

// Game converts the simulation settings
func (c Config) Game() (game.Config, error) {
	controls, err := game.ParseControls(c.Player.Controls)
	if err != nil {
		return game.Config{}, err
	}
	if c.Player.StartLevel < 0 {
		return game.Config{}, fmt.Errorf("%w: startLevel %d", game.ErrInvalidPlayerLevel, c.Player.StartLevel)
	}

	gc := game.DefaultConfig()
	gc.ActivityRadius = c.Sim.ActivityRadius
	gc.MaxFrameTime = c.Sim.MaxFrameTime
	gc.CellSize = c.Sim.CellSize
	gc.PlayerInvulnerable = c.Player.Invulnerable
	gc.Controls = controls
	return gc, nil
}
