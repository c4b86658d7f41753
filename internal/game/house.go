package game

import (
	"math"

	"github.com/ugaemi/mazechase/internal/tick"
)

// noLimit marks a ghost the global counter never releases.
const noLimit = math.MaxInt

// ReleaseReason tells why the house let a ghost out.
type ReleaseReason int

const (
	ReleaseGlobalCounter ReleaseReason = iota + 1
	ReleasePrivateCounter
	ReleaseStarving
)

func (r ReleaseReason) String() string {
	switch r {
	case ReleaseGlobalCounter:
		return "global_counter"
	case ReleasePrivateCounter:
		return "private_counter"
	case ReleaseStarving:
		return "starving"
	default:
		return "none"
	}
}

// releaseOrder is the priority in which locked ghosts leave the house.
var releaseOrder = []GhostID{Pinky, Inky, Clyde}

// House decides when locked ghosts may leave. Each ghost's private counter
// is Ghost.DotCounter.
type House struct {
	GlobalCounter int
	GlobalEnabled bool
}

// Reset prepares the house for a new level: private counters only.
func (h *House) Reset() {
	h.GlobalCounter = 0
	h.GlobalEnabled = false
}

// OnLifeLost switches to the global counter, starting from zero.
func (h *House) OnLifeLost() {
	h.GlobalCounter = 0
	h.GlobalEnabled = true
}

// PreferredLocked returns the first locked ghost in release order.
func PreferredLocked(ghosts []*Ghost) (*Ghost, bool) {
	for _, id := range releaseOrder {
		if g := ghosts[id]; g.State == Locked {
			return g, true
		}
	}
	return nil, false
}

// PrivateDotLimit returns the pellets a ghost must count on its own before
// leaving.
func PrivateDotLimit(id GhostID, levelNum int) int {
	switch id {
	case Inky:
		if levelNum == 1 {
			return 30
		}
	case Clyde:
		switch levelNum {
		case 1:
			return 60
		case 2:
			return 50
		}
	}
	return 0
}

// GlobalDotLimit returns the global counter value that releases a ghost.
func GlobalDotLimit(id GhostID) int {
	switch id {
	case Pinky:
		return 7
	case Inky:
		return 17
	default:
		return noLimit
	}
}

// StarvingLimit returns the ticks without eating after which the preferred
// ghost is forced out.
func StarvingLimit(levelNum int) int {
	if levelNum < 5 {
		return tick.Sec(4)
	}
	return tick.Sec(3)
}

// OnFoodEaten counts a pellet or energizer.
func (h *House) OnFoodEaten(ghosts []*Ghost) {
	if h.GlobalEnabled {
		if ghosts[Clyde].State == Locked && h.GlobalCounter == globalLimitQuirk {
			h.GlobalEnabled = false
			h.GlobalCounter = 0
			return
		}
		h.GlobalCounter++
		return
	}
	if g, ok := PreferredLocked(ghosts); ok {
		g.DotCounter++
	}
}

// Update returns the ghost to release this tick, if any. A release by
// starvation resets the player's starving counter.
func (h *House) Update(ghosts []*Ghost, levelNum int, p *Player) (*Ghost, ReleaseReason, bool) {
	g, ok := PreferredLocked(ghosts)
	if !ok {
		return nil, 0, false
	}
	switch {
	case h.GlobalEnabled && h.GlobalCounter >= GlobalDotLimit(g.ID):
		return g, ReleaseGlobalCounter, true
	case !h.GlobalEnabled && g.DotCounter >= PrivateDotLimit(g.ID, levelNum):
		return g, ReleasePrivateCounter, true
	case p.StarvingTicks >= StarvingLimit(levelNum):
		p.StarvingTicks = 0
		return g, ReleaseStarving, true
	}
	return nil, 0, false
}
