// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import (
	"errors"
	"fmt"
)

// MathCatchConfig contains all configuration for the Math Catcher game.
// Distances are playfield units; the original window was 800x600 pixels.
type MathCatchConfig struct {
	Field    MathCatchField    `yaml:"field"`
	Symbols  MathCatchSymbols  `yaml:"symbols"`
	Catcher  MathCatchCatcher  `yaml:"catcher"`
	Spawn    MathCatchSpawn    `yaml:"spawn"`
	Gameplay MathCatchGameplay `yaml:"gameplay"`
}

// MathCatchField defines the playfield geometry.
type MathCatchField struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Columns int     `yaml:"columns"`
}

// MathCatchSymbols defines falling symbol size and speed.
type MathCatchSymbols struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"` // units per frame
}

// MathCatchCatcher defines the player's catcher bar.
type MathCatchCatcher struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"` // units per frame
	BottomMargin float64 `yaml:"bottom_margin"`
}

// MathCatchSpawn defines the spawn scheduler policy.
type MathCatchSpawn struct {
	DelayMs     int64   `yaml:"delay_ms"`
	MaxSymbols  int     `yaml:"max_symbols"`
	Clearance   float64 `yaml:"clearance"`
	DigitChance float64 `yaml:"digit_chance"`
}

// MathCatchGameplay defines scoring and lives.
type MathCatchGameplay struct {
	Lives          int `yaml:"lives"`
	Reward         int `yaml:"reward"`
	FeedbackFrames int `yaml:"feedback_frames"`
}

// ColumnWidth returns the width of one spawn column.
func (c MathCatchConfig) ColumnWidth() float64 {
	return c.Field.Width / float64(c.Field.Columns)
}

// Validate reports every setting that would make the game unplayable.
func (c MathCatchConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	check(c.Field.Columns > 0, "field.columns must be positive, got %d", c.Field.Columns)
	check(c.Symbols.Size > 0, "symbols.size must be positive, got %v", c.Symbols.Size)
	check(c.Symbols.Speed > 0, "symbols.speed must be positive, got %v", c.Symbols.Speed)
	check(c.Catcher.Width > 0 && c.Catcher.Height > 0, "catcher size must be positive, got %vx%v", c.Catcher.Width, c.Catcher.Height)
	check(c.Catcher.Width <= c.Field.Width, "catcher.width %v exceeds field width %v", c.Catcher.Width, c.Field.Width)
	check(c.Catcher.Speed > 0, "catcher.speed must be positive, got %v", c.Catcher.Speed)
	check(c.Catcher.BottomMargin >= 0, "catcher.bottom_margin must not be negative, got %v", c.Catcher.BottomMargin)
	check(c.Spawn.DelayMs >= 0, "spawn.delay_ms must not be negative, got %d", c.Spawn.DelayMs)
	check(c.Spawn.MaxSymbols > 0, "spawn.max_symbols must be positive, got %d", c.Spawn.MaxSymbols)
	check(c.Spawn.Clearance >= 0, "spawn.clearance must not be negative, got %v", c.Spawn.Clearance)
	check(c.Spawn.DigitChance >= 0 && c.Spawn.DigitChance <= 1, "spawn.digit_chance must be within [0,1], got %v", c.Spawn.DigitChance)
	check(c.Gameplay.Lives > 0, "gameplay.lives must be positive, got %d", c.Gameplay.Lives)
	check(c.Gameplay.Reward >= 0, "gameplay.reward must not be negative, got %d", c.Gameplay.Reward)
	check(c.Gameplay.FeedbackFrames >= 0, "gameplay.feedback_frames must not be negative, got %d", c.Gameplay.FeedbackFrames)

	return errors.Join(errs...)
}
