package tick

import "math"

// Rate is the number of simulation ticks per second.
const Rate = 60

// Indefinite is the duration of a timer that never expires.
const Indefinite = math.MaxInt

// Sec converts seconds to ticks at Rate, rounding to the nearest tick.
func Sec(seconds float64) int {
	return int(math.Round(seconds * Rate))
}

// Timer counts ticks towards a duration. The zero value is a stopped timer
// with zero duration.
type Timer struct {
	duration int
	t        int
	running  bool
}

// NewTimer returns a stopped timer with the given duration.
func NewTimer(duration int) *Timer {
	return &Timer{duration: duration}
}

// Reset stops the timer and sets a new duration.
func (tm *Timer) Reset(duration int) {
	tm.duration = duration
	tm.t = 0
	tm.running = false
}

// ResetIndefinite stops the timer and makes it run forever once started.
func (tm *Timer) ResetIndefinite() {
	tm.Reset(Indefinite)
}

// Start lets Advance count ticks.
func (tm *Timer) Start() {
	tm.running = true
}

// Stop pauses the timer without losing elapsed ticks.
func (tm *Timer) Stop() {
	tm.running = false
}

// Advance counts one tick. It does nothing when the timer is stopped or
// already expired.
func (tm *Timer) Advance() {
	if !tm.running || tm.Expired() {
		return
	}
	tm.t++
}

// Expired reports whether the duration has elapsed. Indefinite timers never
// expire.
func (tm *Timer) Expired() bool {
	if tm.duration == Indefinite {
		return false
	}
	return tm.t >= tm.duration
}

// Running reports whether the timer is started.
func (tm *Timer) Running() bool {
	return tm.running
}

// IsIndefinite reports whether the timer has no end.
func (tm *Timer) IsIndefinite() bool {
	return tm.duration == Indefinite
}

// Duration returns the configured duration in ticks.
func (tm *Timer) Duration() int {
	return tm.duration
}

// TicksRunning returns the ticks counted since the last reset.
func (tm *Timer) TicksRunning() int {
	return tm.t
}

// TicksRemaining returns the ticks left until expiry, or Indefinite.
func (tm *Timer) TicksRemaining() int {
	if tm.duration == Indefinite {
		return Indefinite
	}
	if tm.t >= tm.duration {
		return 0
	}
	return tm.duration - tm.t
}
