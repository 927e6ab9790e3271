// Package config provides YAML-based tuning for the arcade and its games.
// World distances are logical units of the 400x400 arena; times are
// milliseconds; per-frame quantities are per 16 ms reference frame.
package config

// ArcadeConfig holds settings shared by every game.
type ArcadeConfig struct {
	FPS            int         `yaml:"fps"`             // host frame rate
	SwipeThreshold int         `yaml:"swipe_threshold"` // cells a drag must travel to count as a swipe
	Store          StoreConfig `yaml:"store"`
}

// StoreConfig selects where best scores live.
type StoreConfig struct {
	Driver string      `yaml:"driver"` // "sqlite", "redis" or "memory"
	Path   string      `yaml:"path"`
	Redis  RedisConfig `yaml:"redis"`
}

// RedisConfig addresses a Redis server.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SnakeConfig tunes Snake.
type SnakeConfig struct {
	Grid   int     `yaml:"grid"`
	StepMS float64 `yaml:"step_ms"`
	Start  struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	} `yaml:"start"`
}

// BreakoutConfig tunes Breakout.
type BreakoutConfig struct {
	Bricks BreakoutBricks `yaml:"bricks"`
	Paddle BreakoutPaddle `yaml:"paddle"`
	Ball   BreakoutBall   `yaml:"ball"`
}

// BreakoutBricks defines the wall of bricks.
type BreakoutBricks struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Height    float64 `yaml:"height"`
	Gap       float64 `yaml:"gap"`
	TopOffset float64 `yaml:"top_offset"`
	Points    int     `yaml:"points"`
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Offset   float64 `yaml:"offset"`    // distance of the paddle top from the bottom edge
	KeySpeed float64 `yaml:"key_speed"` // units moved per arrow key press
}

// BreakoutBall defines the ball.
type BreakoutBall struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // launch speed on each axis
	Spin   float64 `yaml:"spin"`  // horizontal speed range from a paddle hit
}

// FlappyConfig tunes Flappy.
type FlappyConfig struct {
	Gravity    float64 `yaml:"gravity"`
	Flap       float64 `yaml:"flap"`
	BirdSize   float64 `yaml:"bird_size"`
	BirdX      float64 `yaml:"bird_x"` // fraction of the arena width
	Ground     float64 `yaml:"ground"`
	PipeWidth  float64 `yaml:"pipe_width"`
	PipeGap    float64 `yaml:"pipe_gap"`
	PipeSpeed  float64 `yaml:"pipe_speed"`
	SpawnEvery int     `yaml:"spawn_every"` // frames between pipes
	GapTop     float64 `yaml:"gap_top"`     // minimum distance of a gap centre from the top
	GapBottom  float64 `yaml:"gap_bottom"`  // minimum distance of a gap centre from the bottom
}

// DinoConfig tunes the Dino runner.
type DinoConfig struct {
	Gravity   float64       `yaml:"gravity"`
	Jump      float64       `yaml:"jump"`
	Ground    float64       `yaml:"ground"`
	Player    DinoPlayer    `yaml:"player"`
	Speed     DinoSpeed     `yaml:"speed"`
	Obstacles DinoObstacles `yaml:"obstacles"`
}

// DinoPlayer defines the runner's hitbox.
type DinoPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DinoSpeed defines scrolling speed.
type DinoSpeed struct {
	Initial float64 `yaml:"initial"`
	Accel   float64 `yaml:"accel"` // added per frame
}

// DinoObstacles defines obstacle sizes and spacing.
type DinoObstacles struct {
	MinWidth  float64 `yaml:"min_width"`
	MaxWidth  float64 `yaml:"max_width"`
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
	MinGap    float64 `yaml:"min_gap"`
	GapSpread float64 `yaml:"gap_spread"`
}

// MemoryConfig tunes Memory.
type MemoryConfig struct {
	Symbols         []string `yaml:"symbols"`
	Columns         int      `yaml:"columns"`
	MatchDelayMS    float64  `yaml:"match_delay_ms"`
	MismatchDelayMS float64  `yaml:"mismatch_delay_ms"`
}
