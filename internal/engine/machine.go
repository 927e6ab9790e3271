package engine

import (
	"github.com/charmbracelet/log"
)

//go:generate go tool mockgen -destination=./mocks/best_store_mock.go -package=mocks . BestStore

// BestStore persists best scores. Load returns zero for anything missing
// or unreadable; Save failures leave the stored value untouched.
type BestStore interface {
	Load(key string) int
	Save(key string, score int) error
}

// BestKey is the persisted key for a game's best score.
func BestKey(gameID string) string {
	return gameID + "-best"
}

// Event describes one committed lifecycle transition.
type Event struct {
	Game    string
	From    State
	To      State
	Score   int
	Best    int
	NewBest bool
}

// Observer receives committed transitions.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

type request int

const (
	reqNone request = iota
	reqStart
	reqSuspend
	reqEnd
)

// Machine is the four-state lifecycle shared by every game. Start, Suspend
// and End only queue a request; Commit applies it. The queue holds one
// request, so a second request before the next Commit is ignored.
type Machine struct {
	game      string
	order     ScoreOrder
	store     BestStore
	logger    *log.Logger
	observers []Observer

	state   State
	score   int
	best    int
	pending request
	final   int
}

// NewMachine creates an Idle machine and reads the persisted best score.
// store may be nil.
func NewMachine(game string, order ScoreOrder, store BestStore, logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.Default()
	}
	m := &Machine{
		game:   game,
		order:  order,
		store:  store,
		logger: logger,
	}
	if store != nil {
		m.best = store.Load(BestKey(game))
	}
	return m
}

// AddObserver registers o for committed transitions.
func (m *Machine) AddObserver(o Observer) {
	m.observers = append(m.observers, o)
}

// State returns the committed state.
func (m *Machine) State() State { return m.state }

// Score returns the last reported score.
func (m *Machine) Score() int { return m.score }

// Best returns the best score known to this instance.
func (m *Machine) Best() int { return m.best }

// Order returns the game's score ordering.
func (m *Machine) Order() ScoreOrder { return m.order }

// Report records the running score while Playing.
func (m *Machine) Report(score int) {
	if m.state == Playing {
		m.score = score
	}
}

// Start queues Idle/Paused/GameOver -> Playing.
func (m *Machine) Start() bool {
	if m.state == Playing {
		return false
	}
	return m.enqueue(reqStart, 0)
}

// Suspend queues Playing -> Paused. It is a no-op in any other state.
func (m *Machine) Suspend() bool {
	if m.state != Playing {
		return false
	}
	return m.enqueue(reqSuspend, 0)
}

// End queues Playing -> GameOver with the final score.
func (m *Machine) End(final int) bool {
	if m.state != Playing {
		return false
	}
	return m.enqueue(reqEnd, final)
}

func (m *Machine) enqueue(r request, final int) bool {
	if m.pending != reqNone {
		return false
	}
	m.pending = r
	m.final = final
	return true
}

// Commit applies the queued request, if any, and returns the transition.
func (m *Machine) Commit() (Event, bool) {
	r := m.pending
	m.pending = reqNone
	if r == reqNone {
		return Event{}, false
	}

	ev := Event{Game: m.game, From: m.state}
	switch r {
	case reqStart:
		m.state = Playing
		m.score = 0
	case reqSuspend:
		// A suspended run never persists its partial score.
		m.state = Paused
	case reqEnd:
		m.state = GameOver
		m.score = m.final
		ev.NewBest = m.recordBest(m.final)
	}

	ev.To = m.state
	ev.Score = m.score
	ev.Best = m.best
	m.logger.Debug("lifecycle", "game", m.game, "from", ev.From, "to", ev.To, "score", ev.Score)

	for _, o := range m.observers {
		o.Observe(ev)
	}
	return ev, true
}

// recordBest updates and persists the best score when final improves it.
// The store is re-read first because other sessions may share it and
// have recorded a better score since this machine loaded. Persistence is
// best-effort.
func (m *Machine) recordBest(final int) bool {
	if m.store != nil {
		if cur := m.store.Load(BestKey(m.game)); cur != 0 && m.order.Improves(cur, m.best) {
			m.best = cur
		}
	}
	if !m.order.Improves(final, m.best) {
		return false
	}
	m.best = final
	if m.store == nil {
		return true
	}
	if err := m.store.Save(BestKey(m.game), final); err != nil {
		m.logger.Warn("best score not saved", "game", m.game, "score", final, "error", err)
	}
	return true
}
