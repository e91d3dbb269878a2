package escape

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "ESCAPE_"

// Config holds every tunable of a game. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	CanvasWidth   float64
	CanvasHeight  float64
	PlayerSize    float64
	PlayerSpeed   float64 // pixels per Move step
	EnemySize     float64
	EnemySpeed    float64 // pixels per tick
	EnemyInterval time.Duration

	BackgroundColor Color
	PlayerColor     Color
	EnemyColor      Color
	GameOverColor   Color
	WinColor        Color
	GameOverText    string
	WinText         string
}

// DefaultConfig returns the classic 400x400 layout.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:   400,
		CanvasHeight:  400,
		PlayerSize:    30,
		PlayerSpeed:   5,
		EnemySize:     20,
		EnemySpeed:    1,
		EnemyInterval: 150 * time.Millisecond,

		BackgroundColor: ColorBlack,
		PlayerColor:     ColorWhite,
		EnemyColor:      ColorGreen,
		GameOverColor:   ColorRed,
		WinColor:        ColorYellow,
		GameOverText:    "Game Over",
		WinText:         "You Win!",
	}
}

// PlayerStart returns the player's initial position: horizontally centered,
// resting on the bottom edge.
func (c Config) PlayerStart() Vec2 {
	return Vec2{
		X: c.CanvasWidth/2 - c.PlayerSize/2,
		Y: c.CanvasHeight - c.PlayerSize,
	}
}

// Validate reports the first structural problem with c.
func (c Config) Validate() error {
	switch {
	case c.CanvasWidth <= 0 || c.CanvasHeight <= 0:
		return fmt.Errorf("canvas %vx%v: %w", c.CanvasWidth, c.CanvasHeight, ErrInvalidConfig)
	case c.PlayerSize <= 0 || c.PlayerSize > c.CanvasWidth || c.PlayerSize > c.CanvasHeight:
		return fmt.Errorf("player size %v: %w", c.PlayerSize, ErrInvalidConfig)
	case c.EnemySize <= 0 || c.EnemySize > c.CanvasWidth:
		return fmt.Errorf("enemy size %v: %w", c.EnemySize, ErrInvalidConfig)
	case c.PlayerSpeed < 0:
		return fmt.Errorf("player speed %v: %w", c.PlayerSpeed, ErrInvalidConfig)
	case c.EnemySpeed < 0:
		return fmt.Errorf("enemy speed %v: %w", c.EnemySpeed, ErrInvalidConfig)
	case c.EnemyInterval <= 0:
		return fmt.Errorf("enemy interval %v: %w", c.EnemyInterval, ErrInvalidConfig)
	}
	return nil
}

// LoadConfig starts from DefaultConfig and applies overrides. Values are read
// from the given dotenv files first and then from the process environment,
// which wins. Keys are the field names in upper snake case behind EnvPrefix,
// e.g. ESCAPE_CANVAS_WIDTH or ESCAPE_ENEMY_INTERVAL=150ms.
func LoadConfig(files ...string) (Config, error) {
	vars := map[string]string{}
	if len(files) > 0 {
		read, err := godotenv.Read(files...)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		vars = read
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}

	cfg := DefaultConfig()
	if err := cfg.apply(lookup); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (c *Config) apply(lookup func(string) (string, bool)) error {
	floats := []struct {
		key string
		dst *float64
	}{
		{"CANVAS_WIDTH", &c.CanvasWidth},
		{"CANVAS_HEIGHT", &c.CanvasHeight},
		{"PLAYER_SIZE", &c.PlayerSize},
		{"PLAYER_SPEED", &c.PlayerSpeed},
		{"ENEMY_SIZE", &c.EnemySize},
		{"ENEMY_SPEED", &c.EnemySpeed},
	}
	for _, f := range floats {
		raw, ok := lookup(EnvPrefix + f.key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, f.key, err)
		}
		*f.dst = v
	}

	if raw, ok := lookup(EnvPrefix + "ENEMY_INTERVAL"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%sENEMY_INTERVAL: %w", EnvPrefix, err)
		}
		c.EnemyInterval = d
	}

	colors := []struct {
		key string
		dst *Color
	}{
		{"BACKGROUND_COLOR", &c.BackgroundColor},
		{"PLAYER_COLOR", &c.PlayerColor},
		{"ENEMY_COLOR", &c.EnemyColor},
		{"GAME_OVER_COLOR", &c.GameOverColor},
		{"WIN_COLOR", &c.WinColor},
	}
	for _, f := range colors {
		raw, ok := lookup(EnvPrefix + f.key)
		if !ok {
			continue
		}
		col, err := ParseHexColor(raw)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, f.key, err)
		}
		*f.dst = col
	}

	if raw, ok := lookup(EnvPrefix + "GAME_OVER_TEXT"); ok {
		c.GameOverText = raw
	}
	if raw, ok := lookup(EnvPrefix + "WIN_TEXT"); ok {
		c.WinText = raw
	}
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
