package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	dirMu     sync.RWMutex
	customDir string
)

// SetDir sets a directory searched before the user and local config
// directories. Files missing from it fall through to the next location.
func SetDir(dir string) {
	dirMu.Lock()
	defer dirMu.Unlock()
	customDir = dir
}

// Dir returns the directory set by SetDir.
func Dir() string {
	dirMu.RLock()
	defer dirMu.RUnlock()
	return customDir
}

// LoadArcade loads arcade.yaml.
func LoadArcade() (ArcadeConfig, error) {
	return load("arcade", DefaultArcadeConfig())
}

// LoadSnake loads snake.yaml.
func LoadSnake() (SnakeConfig, error) {
	return load("snake", DefaultSnakeConfig())
}

// LoadBreakout loads breakout.yaml.
func LoadBreakout() (BreakoutConfig, error) {
	return load("breakout", DefaultBreakoutConfig())
}

// LoadFlappy loads flappy.yaml.
func LoadFlappy() (FlappyConfig, error) {
	return load("flappy", DefaultFlappyConfig())
}

// LoadDino loads dino.yaml.
func LoadDino() (DinoConfig, error) {
	return load("dino", DefaultDinoConfig())
}

// LoadMemory loads memory.yaml.
func LoadMemory() (MemoryConfig, error) {
	return load("memory", DefaultMemoryConfig())
}

// load resolves name.yaml.
// Search order: SetDir -> ~/.arcade/configs -> ./configs -> embedded default -> fallback.
// Documents are decoded over the fallback, so a file only needs the keys it
// changes. A file in the SetDir directory that exists but does not parse is
// an error; unreadable files elsewhere are skipped.
func load[T any](name string, fallback T) (T, error) {
	filename := name + ".yaml"

	if dir := Dir(); dir != "" {
		path := filepath.Join(dir, filename)
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			cfg := fallback
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return fallback, fmt.Errorf("config: failed to parse %s: %w", path, err)
			}
			return cfg, nil
		case !os.IsNotExist(err):
			return fallback, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
	}

	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if cfg, ok := decodeFile(path, fallback); ok {
			return cfg, nil
		}
	}

	cfg := fallback
	if data := DefaultYAML(name); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}
	return fallback, nil
}

func decodeFile[T any](path string, fallback T) (T, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback, false
	}
	cfg := fallback
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fallback, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
