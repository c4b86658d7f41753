package game

import "github.com/ugaemi/mazechase/internal/tick"

// PhaseCount is the number of scatter/chase phases per level.
const PhaseCount = 8

var phaseTable = [3][PhaseCount]int{
	{tick.Sec(7), tick.Sec(20), tick.Sec(7), tick.Sec(20), tick.Sec(5), tick.Sec(20), tick.Sec(5), tick.Indefinite},
	{tick.Sec(7), tick.Sec(20), tick.Sec(7), tick.Sec(20), tick.Sec(5), tick.Sec(1033), 1, tick.Indefinite},
	{tick.Sec(5), tick.Sec(20), tick.Sec(5), tick.Sec(20), tick.Sec(5), tick.Sec(1037), 1, tick.Indefinite},
}

// PhaseDurations returns the scatter/chase durations in ticks for a level.
func PhaseDurations(levelNum int) [PhaseCount]int {
	switch {
	case levelNum <= 1:
		return phaseTable[0]
	case levelNum <= 4:
		return phaseTable[1]
	default:
		return phaseTable[2]
	}
}

// Scheduler alternates scatter (even) and chase (odd) phases.
type Scheduler struct {
	durations [PhaseCount]int
	phase     int
	timer     tick.Timer
}

// Start begins phase 0 with the durations of the given level.
func (s *Scheduler) Start(levelNum int) {
	s.durations = PhaseDurations(levelNum)
	s.phase = 0
	s.timer.Reset(s.durations[0])
	s.timer.Start()
}

// Advance counts one tick and reports whether a new phase began.
func (s *Scheduler) Advance() bool {
	s.timer.Advance()
	if !s.timer.Expired() || s.phase == PhaseCount-1 {
		return false
	}
	s.phase++
	s.timer.Reset(s.durations[s.phase])
	s.timer.Start()
	return true
}

// Pause stops the phase clock, e.g. while ghosts are frightened.
func (s *Scheduler) Pause() { s.timer.Stop() }

// Resume restarts a paused phase clock.
func (s *Scheduler) Resume() { s.timer.Start() }

// Phase returns the current phase index.
func (s *Scheduler) Phase() int { return s.phase }

// IsScatter reports whether ghosts head for their corners.
func (s *Scheduler) IsScatter() bool { return s.phase%2 == 0 }

// IsChase reports whether ghosts chase the player.
func (s *Scheduler) IsChase() bool { return s.phase%2 == 1 }

// Remaining returns the ticks left in the current phase.
func (s *Scheduler) Remaining() int { return s.timer.TicksRemaining() }

// Timer exposes the phase clock.
func (s *Scheduler) Timer() *tick.Timer { return &s.timer }
