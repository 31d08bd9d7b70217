package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: Board{
			TileSize:       0.0001,
			ViewportBuffer: 2,
			HomeLat:        36.98949379578401,
			HomeLng:        -122.06277128548504,
		},
		Spawn: Spawn{
			Radius:      8,
			Probability: 0.1,
			Values: []ValueWeight{
				{Value: 1, Weight: 0.50},
				{Value: 2, Weight: 0.25},
				{Value: 4, Weight: 0.15},
				{Value: 8, Weight: 0.10},
			},
		},
		Rules: Rules{
			InteractionRange: 3,
			VictoryTarget:    64,
			FlashMillis:      250,
		},
	}
}
