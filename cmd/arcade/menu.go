package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Browse every game in a carousel",
	Long: `Mount every game at once and scroll between them.

Only the game in front runs; scrolling away pauses a game in progress.

Controls:
  Tab/Shift+Tab  - Next/previous game (mouse wheel works too)
  Enter/click    - Play the game in front
  S              - Scoreboard
  ?              - Toggle help
  Q/Ctrl+C       - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	a, err := interactiveApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	opts, err := a.mount(tui.ArcadeIDs())
	if err != nil {
		return err
	}
	a.logger.Info("arcade opened", "games", len(opts.Sessions))
	return tui.Run(opts)
}
