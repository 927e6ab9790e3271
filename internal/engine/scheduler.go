package engine

import "time"

// Scheduler hands out frame deltas while running. Every frame request is
// stamped with the generation it was issued under; Stop and Start bump the
// generation so requests already queued by the host are rejected.
type Scheduler struct {
	gen     uint64
	running bool
	last    time.Time
}

// Start begins a run and resets the time origin to now. Starting a running
// scheduler returns the current generation unchanged.
func (s *Scheduler) Start(now time.Time) uint64 {
	if s.running {
		return s.gen
	}
	s.gen++
	s.running = true
	s.last = now
	return s.gen
}

// Stop ends the run. Frames stamped with an earlier generation never fire.
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.gen++
}

// Running reports whether frames are being delivered.
func (s *Scheduler) Running() bool { return s.running }

// Generation returns the stamp for new frame requests.
func (s *Scheduler) Generation() uint64 { return s.gen }

// Valid reports whether a frame stamped gen may still fire.
func (s *Scheduler) Valid(gen uint64) bool {
	return s.running && gen == s.gen
}

// Accept consumes a frame stamped gen at time now and returns the elapsed
// milliseconds since the previous accepted frame (or since Start).
func (s *Scheduler) Accept(gen uint64, now time.Time) (float64, bool) {
	if !s.Valid(gen) {
		return 0, false
	}
	dt := now.Sub(s.last)
	s.last = now
	if dt < 0 {
		dt = 0
	}
	return float64(dt) / float64(time.Millisecond), true
}
