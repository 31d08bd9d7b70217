// Package config provides YAML-based game configuration loading for the
// geomerge platform. Spawn tables, radii, and thresholds are designer
// tunables, not constants baked into the game core.
package config

import "fmt"

// GameConfig contains all configuration for a geomerge session.
type GameConfig struct {
	Board Board `yaml:"board"`
	Spawn Spawn `yaml:"spawn"`
	Rules Rules `yaml:"rules"`
}

// Board defines the grid geometry and viewport behavior.
type Board struct {
	// TileSize is the cell edge length in decimal degrees.
	TileSize float64 `yaml:"tile_size"`
	// ViewportBuffer is the margin of cells kept active beyond the
	// visible region, to avoid churn on small movements.
	ViewportBuffer int `yaml:"viewport_buffer"`
	// HomeLat/HomeLng is the starting player location.
	HomeLat float64 `yaml:"home_lat"`
	HomeLng float64 `yaml:"home_lng"`
}

// Spawn defines the deterministic token spawn behavior.
type Spawn struct {
	// Radius is the Chebyshev distance from the player within which
	// cells may contain tokens at all.
	Radius int `yaml:"radius"`
	// Probability is the chance that an in-radius cell holds a token.
	Probability float64 `yaml:"probability"`
	// Values is the token value distribution, walked in order when
	// drawing a spawn value. Weights need not sum to exactly 1; any
	// remaining mass falls back to the smallest configured value.
	Values []ValueWeight `yaml:"values"`
}

// ValueWeight is one entry of the spawn value distribution.
type ValueWeight struct {
	Value  int     `yaml:"value"`
	Weight float64 `yaml:"weight"`
}

// Rules defines interaction and victory parameters.
type Rules struct {
	// InteractionRange is the maximum Chebyshev distance (in cells)
	// between player and cell for actions to be legal.
	InteractionRange int `yaml:"interaction_range"`
	// VictoryTarget is the token value that wins the game when produced
	// by a merge.
	VictoryTarget int `yaml:"victory_target"`
	// FlashMillis is how long interaction feedback highlights last.
	FlashMillis int `yaml:"flash_millis"`
}

// Validate checks the configuration for values the game cannot run with.
func (c GameConfig) Validate() error {
	if c.Board.TileSize <= 0 {
		return fmt.Errorf("config: tile_size must be positive, got %v", c.Board.TileSize)
	}
	if c.Board.ViewportBuffer < 0 {
		return fmt.Errorf("config: viewport_buffer must not be negative, got %d", c.Board.ViewportBuffer)
	}
	if c.Spawn.Radius < 0 {
		return fmt.Errorf("config: spawn radius must not be negative, got %d", c.Spawn.Radius)
	}
	if c.Spawn.Probability < 0 || c.Spawn.Probability > 1 {
		return fmt.Errorf("config: spawn probability must be in [0,1], got %v", c.Spawn.Probability)
	}
	if len(c.Spawn.Values) == 0 {
		return fmt.Errorf("config: spawn value table is empty")
	}
	for _, vw := range c.Spawn.Values {
		if vw.Value < 1 || vw.Value&(vw.Value-1) != 0 {
			return fmt.Errorf("config: spawn value %d is not a power of two >= 1", vw.Value)
		}
		if vw.Weight < 0 {
			return fmt.Errorf("config: spawn value %d has negative weight %v", vw.Value, vw.Weight)
		}
	}
	if c.Rules.InteractionRange < 0 {
		return fmt.Errorf("config: interaction_range must not be negative, got %d", c.Rules.InteractionRange)
	}
	if c.Rules.VictoryTarget < 1 || c.Rules.VictoryTarget&(c.Rules.VictoryTarget-1) != 0 {
		return fmt.Errorf("config: victory_target %d is not a power of two >= 1", c.Rules.VictoryTarget)
	}
	return nil
}
