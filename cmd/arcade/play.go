package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Enter/click  - Play, or play again after a game ends
  Space        - Jump, flap, launch or flip a card
  Arrows/hjkl  - Steer or move the cursor
  Mouse        - Move the paddle, tap to act, swipe to steer
  Ctrl+S       - Save a text screenshot
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Game tuning is read from <name>.yaml in --config, ~/.arcade/configs or
./configs, falling back to the built-in defaults.

Examples:
  arcade play snake
  arcade play breakout --fps 30
  arcade play memory --seed 42
  arcade play flappy --config ./my-configs`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	a, err := interactiveApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	opts, err := a.mount([]string{gameID})
	if err != nil {
		return err
	}
	a.logger.Info("playing", "game", gameID, "fps", a.cfg.FPS)
	return tui.Run(opts)
}
