package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Without a game, open the interactive scoreboard (or print a summary
of every game when output is not a terminal). With a game, print its best
score and top 10 results. Memory ranks fewer moves higher.

Examples:
  arcade scores
  arcade scores snake
  arcade scores memory --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history and best score of the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	a, err := interactiveApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a game")
		}
		if f, ok := cmd.OutOrStdout().(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
			return printSummary(cmd.OutOrStdout(), a)
		}
		mode, err := tui.ParseThemeMode(flagTheme)
		if err != nil {
			return err
		}
		rc := a.runtime()
		return tui.RunScoreboard(a.scores(), a.best, tui.NewTheme(nil, mode), rc.ScreenW, rc.ScreenH)
	}

	gameID := args[0]
	sim, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	out := cmd.OutOrStdout()

	if flagClear {
		if a.history == nil {
			return fmt.Errorf("score history is not available")
		}
		if err := a.history.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", sim.Title())
		return nil
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", sim.Title())
	fmt.Fprintf(out, "Best: %d\n\n", a.best.Load(engine.BestKey(gameID)))

	if a.history == nil {
		fmt.Fprintln(out, "Score history is not available.")
		return nil
	}
	scores, err := a.history.TopScores(gameID, 10, sim.Order() == engine.LowerWins)
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	label := "Score"
	if sim.Order() == engine.LowerWins {
		label = "Moves"
	}
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", label, "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// printSummary writes one line per registered game: best score and
// history totals.
func printSummary(out io.Writer, a *app) error {
	stats := map[string]*storage.GameStats{}
	if a.history != nil {
		all, err := a.history.AllStats()
		if err != nil {
			return err
		}
		stats = all
	}

	fmt.Fprintf(out, "  %-10s  %-8s  %-6s  %s\n", "Game", "Best", "Games", "Last played")
	for _, g := range registry.List() {
		last, count := "-", 0
		if st, ok := stats[g.ID]; ok {
			count = st.GamesCount
			if !st.LastPlayed.IsZero() {
				last = st.LastPlayed.Format("2006-01-02 15:04")
			}
		}
		fmt.Fprintf(out, "  %-10s  %-8d  %-6d  %s\n", g.ID, a.best.Load(engine.BestKey(g.ID)), count, last)
	}
	return nil
}
