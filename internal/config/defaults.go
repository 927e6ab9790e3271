package config

import (
	"embed"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

// DefaultArcadeConfig returns the built-in arcade settings.
func DefaultArcadeConfig() ArcadeConfig {
	return ArcadeConfig{
		FPS:            60,
		SwipeThreshold: 2,
		Store: StoreConfig{
			Driver: "sqlite",
			Path:   "~/.arcade/scores.db",
		},
	}
}

// DefaultSnakeConfig returns the built-in Snake tuning.
func DefaultSnakeConfig() SnakeConfig {
	cfg := SnakeConfig{Grid: 15, StepMS: 150}
	cfg.Start.X, cfg.Start.Y = 7, 7
	return cfg
}

// DefaultBreakoutConfig returns the built-in Breakout tuning.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Bricks: BreakoutBricks{
			Rows:      4,
			Cols:      7,
			Height:    15,
			Gap:       4,
			TopOffset: 40,
			Points:    10,
		},
		Paddle: BreakoutPaddle{
			Width:    80,
			Height:   12,
			Offset:   30,
			KeySpeed: 24,
		},
		Ball: BreakoutBall{
			Radius: 6,
			Speed:  4,
			Spin:   8,
		},
	}
}

// DefaultFlappyConfig returns the built-in Flappy tuning.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Gravity:    0.4,
		Flap:       -7,
		BirdSize:   20,
		BirdX:      0.25,
		Ground:     20,
		PipeWidth:  50,
		PipeGap:    120,
		PipeSpeed:  2.5,
		SpawnEvery: 100,
		GapTop:     80,
		GapBottom:  120,
	}
}

// DefaultDinoConfig returns the built-in Dino tuning.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Gravity: 0.6,
		Jump:    -12,
		Ground:  30,
		Player:  DinoPlayer{X: 50, Width: 30, Height: 40},
		Speed:   DinoSpeed{Initial: 5, Accel: 0.001},
		Obstacles: DinoObstacles{
			MinWidth:  15,
			MaxWidth:  30,
			MinHeight: 20,
			MaxHeight: 50,
			MinGap:    150,
			GapSpread: 150,
		},
	}
}

// DefaultMemoryConfig returns the built-in Memory tuning.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Symbols:         []string{"♠", "♥", "♦", "♣", "★", "☀", "☂", "♪"},
		Columns:         4,
		MatchDelayMS:    500,
		MismatchDelayMS: 1000,
	}
}

// DefaultYAML returns the embedded default document for name ("snake",
// "arcade", ...), or nil.
func DefaultYAML(name string) []byte {
	data, err := defaultFS.ReadFile("defaults/" + name + ".yaml")
	if err != nil {
		return nil
	}
	return data
}
