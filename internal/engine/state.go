// Package engine drives the arcade's games. It owns the lifecycle state
// machine shared by every game, the frame scheduler and the Session that
// wires a Simulation to a host's activity flag, input and display.
package engine

// State is the lifecycle state of one game instance.
type State int

const (
	Idle State = iota
	Playing
	Paused
	GameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// ScoreOrder says which direction of score is better for a game.
type ScoreOrder int

const (
	HigherWins ScoreOrder = iota
	LowerWins
)

// String returns the order name.
func (o ScoreOrder) String() string {
	if o == LowerWins {
		return "lower-wins"
	}
	return "higher-wins"
}

// Improves reports whether candidate should replace best. A best of zero
// means no game has been recorded yet, so for lower-wins games any
// finished game sets it.
func (o ScoreOrder) Improves(candidate, best int) bool {
	if o == LowerWins {
		return best == 0 || candidate < best
	}
	return candidate > best
}
