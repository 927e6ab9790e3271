package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// hudRows is the status line above the playfield.
const hudRows = 1

// Config holds the collaborators a Session needs. Every field is optional.
type Config struct {
	Store     BestStore
	Logger    *log.Logger
	Observers []Observer
	Seed      int64 // 0 seeds from the clock
}

// Session is one mounted game instance. It owns the simulation, its
// lifecycle machine and scheduler, the pending input and the host's
// activity flag. Frames and input only reach the simulation while the game
// is Playing and the host reports it active.
type Session struct {
	sim     Simulation
	machine *Machine
	sched   Scheduler
	logger  *log.Logger
	seeds   *rand.Rand

	active  bool
	frame   core.InputFrame
	pointer core.Pointer
	width   int
	height  int
	frames  uint64
}

// NewSession mounts sim in the Idle state. The simulation is built once so
// the idle screen shows a fresh board.
func NewSession(sim Simulation, cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		sim:     sim,
		machine: NewMachine(sim.ID(), sim.Order(), cfg.Store, logger),
		logger:  logger.With("game", sim.ID()),
		seeds:   rand.New(rand.NewSource(seed)),
		frame:   core.NewInputFrame(),
	}
	for _, o := range cfg.Observers {
		s.machine.AddObserver(o)
	}
	sim.Start(s.nextRNG())
	return s
}

func (s *Session) nextRNG() *rand.Rand {
	return rand.New(rand.NewSource(s.seeds.Int63()))
}

// ID returns the game identifier.
func (s *Session) ID() string { return s.sim.ID() }

// Title returns the game display name.
func (s *Session) Title() string { return s.sim.Title() }

// Controls returns the input channels the game listens to.
func (s *Session) Controls() core.Controls { return s.sim.Controls() }

// State returns the committed lifecycle state.
func (s *Session) State() State { return s.machine.State() }

// Score returns the current or final score.
func (s *Session) Score() int { return s.machine.Score() }

// Best returns the best score.
func (s *Session) Best() int { return s.machine.Best() }

// Active reports the host activity flag.
func (s *Session) Active() bool { return s.active }

// Frames returns how many frames have been simulated.
func (s *Session) Frames() uint64 { return s.frames }

// Generation returns the stamp for frame requests.
func (s *Session) Generation() uint64 { return s.sched.Generation() }

// ShouldRun reports whether frames and input are delivered.
func (s *Session) ShouldRun() bool {
	return s.active && s.machine.State() == Playing
}

// SetActive applies the host activity flag. Going inactive while Playing
// suspends to Paused and releases the scheduler and input before
// returning. Going active never resumes a paused game.
func (s *Session) SetActive(active bool) {
	if s.active == active {
		return
	}
	s.active = active
	if active {
		return
	}

	s.machine.Suspend()
	s.commit(time.Time{})
	s.release()
}

// Close tears the session down. Any in-flight game is suspended silently.
func (s *Session) Close() {
	s.SetActive(false)
	s.release()
}

// Resize records the container size used to map pointer input.
func (s *Session) Resize(width, height int) {
	s.width, s.height = width, height
}

// Start begins a fresh game from Idle, Paused or GameOver. It only works
// while the session is active and returns the generation frames must be
// stamped with.
func (s *Session) Start(now time.Time) (uint64, bool) {
	if !s.active || !s.machine.Start() {
		return 0, false
	}
	s.commit(now)
	return s.sched.Generation(), s.sched.Running()
}

// Frame handles a scheduled frame. It returns true when the host should
// request another frame with the same generation.
func (s *Session) Frame(gen uint64, now time.Time) bool {
	dt, ok := s.sched.Accept(gen, now)
	if !ok {
		return false
	}
	s.Step(dt)
	return s.sched.Valid(gen)
}

// Step runs one frame with an explicit delta: sample commands, advance the
// simulation, check the end condition, then commit at most one transition.
func (s *Session) Step(dtMS float64) {
	if !s.ShouldRun() {
		return
	}
	if _, ok := s.viewport(s.width, s.height); !ok {
		return
	}

	in := s.frame.Clone()
	in.Pointer = s.pointer
	s.frame.Clear()

	s.sim.Tick(dtMS, in)
	s.frames++
	s.machine.Report(s.sim.Score())

	if f, ok := s.sim.(Faulter); ok {
		if err := f.Fault(); err != nil {
			s.logger.Error("ending corrupted game", "error", err)
			s.machine.End(s.sim.Score())
		}
	}
	if s.sim.Terminal() {
		s.machine.End(s.sim.Score())
	}
	s.commit(time.Time{})
}

func (s *Session) commit(now time.Time) {
	ev, ok := s.machine.Commit()
	if !ok {
		return
	}
	switch {
	case ev.To == Playing:
		s.sim.Start(s.nextRNG())
		s.frame = core.NewInputFrame()
		s.frames = 0
		s.sched.Start(now)
	case ev.From == Playing:
		s.release()
	}
}

func (s *Session) release() {
	s.sched.Stop()
	s.frame.Clear()
	s.pointer = core.Pointer{}
}

// Direction queues a directional command for the next frame.
func (s *Session) Direction(a core.Action) {
	if !s.ShouldRun() || !a.IsDirection() {
		return
	}
	s.frame.Set(a)
}

// Activate queues a momentary activate command.
func (s *Session) Activate() {
	if !s.ShouldRun() {
		return
	}
	s.frame.Set(core.ActionActivate)
}

// Point updates the continuous pointer from container cell coordinates.
func (s *Session) Point(cx, cy int) {
	if !s.ShouldRun() {
		return
	}
	if p, ok := s.toWorld(cx, cy); ok {
		s.pointer = p
	}
}

// Tap queues a tap at container cell coordinates. Taps outside the
// playfield still count as activate but carry no position.
func (s *Session) Tap(cx, cy int) {
	if !s.ShouldRun() {
		return
	}
	p, ok := s.toWorld(cx, cy)
	if ok {
		s.pointer = p
		s.frame.Tap = p
	}
	s.frame.Set(core.ActionTap)
}

func (s *Session) toWorld(cx, cy int) (core.Pointer, bool) {
	vp, ok := s.viewport(s.width, s.height)
	if !ok {
		return core.Pointer{}, false
	}
	x, y, inside := vp.ToWorld(cx, cy)
	if !inside {
		return core.Pointer{}, false
	}
	return core.Pointer{X: x, Y: y, Valid: true}, true
}

func (s *Session) viewport(width, height int) (core.Viewport, bool) {
	area := core.NewRect(0, hudRows, width, height-hudRows)
	return core.FitViewport(area, s.sim.World())
}

// Render draws the game and its lifecycle overlay into dst, which is the
// whole container. It measures dst on every call.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	vp, ok := s.viewport(dst.Width(), dst.Height())
	if !ok {
		return
	}

	dst.PaintRect(vp.Region, core.ColorSecondary)
	s.sim.Render(dst, vp)
	s.drawHUD(dst, vp)

	switch s.machine.State() {
	case Idle:
		s.drawOverlay(dst, vp, s.sim.Title(), s.sim.Instructions(), "", "[ Play ]  enter / click")
	case Paused:
		s.drawOverlay(dst, vp, "Paused", s.scoreLine(), s.bestLine(), "[ Play Again ]  enter / click")
	case GameOver:
		s.drawOverlay(dst, vp, "Game Over", s.scoreLine(), s.bestLine(), "[ Play Again ]  enter / click")
	}
}

func (s *Session) scoreLabel() string {
	if s.machine.Order() == LowerWins {
		return "Moves"
	}
	return "Score"
}

func (s *Session) scoreLine() string {
	return fmt.Sprintf("%s: %d", s.scoreLabel(), s.machine.Score())
}

func (s *Session) bestLine() string {
	return fmt.Sprintf("Best: %d", s.machine.Best())
}

func (s *Session) drawHUD(dst *core.Screen, vp core.Viewport) {
	y := vp.Region.Y - hudRows
	dst.DrawTextColor(vp.Region.X, y, s.sim.Title(), core.ColorForeground)

	right := s.bestLine()
	if s.machine.State() == Playing {
		right = s.scoreLine() + "  " + right
	}
	dst.DrawTextColor(vp.Region.Right()-len(right), y, right, core.ColorMuted)
}

func (s *Session) drawOverlay(dst *core.Screen, vp core.Viewport, lines ...string) {
	var shown []string
	width := 0
	for _, l := range lines {
		if l == "" {
			continue
		}
		shown = append(shown, l)
		width = max(width, len([]rune(l)))
	}

	box := core.NewRect(0, 0, min(width+4, vp.Region.W), min(len(shown)+2, vp.Region.H))
	box.X = vp.Region.X + (vp.Region.W-box.W)/2
	box.Y = vp.Region.Y + (vp.Region.H-box.H)/2

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.PaintRect(box, core.ColorSecondary)
	dst.DrawBox(box, core.ColorMuted)
	for i, l := range shown {
		c := core.ColorForeground
		if i > 0 {
			c = core.ColorMuted
		}
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColor(x, box.Y+1+i, l, c)
	}
}
