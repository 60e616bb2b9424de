package config

import (
	_ "embed"
)

//go:embed defaults/mathcatch.yaml
var defaultMathCatchYAML []byte

// DefaultMathCatchConfig returns the default Math Catcher configuration.
func DefaultMathCatchConfig() MathCatchConfig {
	return MathCatchConfig{
		Field: MathCatchField{
			Width:   800,
			Height:  600,
			Columns: 10,
		},
		Symbols: MathCatchSymbols{
			Size:  36,
			Speed: 3,
		},
		Catcher: MathCatchCatcher{
			Width:        100,
			Height:       20,
			Speed:        8,
			BottomMargin: 10,
		},
		Spawn: MathCatchSpawn{
			DelayMs:     800,
			MaxSymbols:  10,
			Clearance:   100,
			DigitChance: 0.7,
		},
		Gameplay: MathCatchGameplay{
			Lives:          3,
			Reward:         10,
			FeedbackFrames: 60,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "mathcatch":
		return defaultMathCatchYAML
	default:
		return nil
	}
}
