package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	maxIDLen, maxTitleLen := 2, 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "How to play")
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----------")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, g.Instructions)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'arcade play <id>' to play a game, or 'arcade menu' to browse them all.")
}
