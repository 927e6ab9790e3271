// arcade is a terminal arcade of small games: Memory, Snake, Breakout,
// Flappy and Dino Run.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Browse every game in a carousel
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show high scores
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default from arcade.yaml: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--redis <addr>       - Keep best scores in Redis instead
//	--config <dir>       - Directory searched first for YAML configs
//	--log-level <level>  - debug, info, warn or error
//	--theme <mode>       - auto, dark or light
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/pocket-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/dino"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/memory"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/snake"
)

var (
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagRedis     string
	flagConfigDir string
	flagLogLevel  string
	flagTheme     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Pocket Arcade - small games in your terminal",
	Long: `Pocket Arcade mounts a handful of small games in your terminal.
Every game follows the same rules: press enter or click to play, the game
pauses when you switch away, and your best score is remembered.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Browse every game in a carousel
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play snake
  arcade menu --theme light
  arcade serve --ssh :2222 --http :8080
  arcade scores memory`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Frame rate (0 = arcade.yaml setting)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (default from arcade.yaml)")
	pf.StringVar(&flagRedis, "redis", "", "Redis address for best scores (host:port)")
	pf.StringVar(&flagConfigDir, "config", "", "Directory searched first for game configs")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagTheme, "theme", "auto", "Color theme: auto, dark, light")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
