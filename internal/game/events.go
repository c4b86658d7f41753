package game

import "github.com/ugaemi/mazechase/internal/world"

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventStateChanged EventKind = iota + 1
	EventFoodEaten
	EventEnergizerEaten
	EventBonusAvailable
	EventBonusEaten
	EventBonusExpired
	EventGhostEaten
	EventGhostReleased
	EventPhaseChanged
	EventPlayerKilled
	EventExtraLife
	EventLevelComplete
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "state_changed"
	case EventFoodEaten:
		return "food_eaten"
	case EventEnergizerEaten:
		return "energizer_eaten"
	case EventBonusAvailable:
		return "bonus_available"
	case EventBonusEaten:
		return "bonus_eaten"
	case EventBonusExpired:
		return "bonus_expired"
	case EventGhostEaten:
		return "ghost_eaten"
	case EventGhostReleased:
		return "ghost_released"
	case EventPhaseChanged:
		return "phase_changed"
	case EventPlayerKilled:
		return "player_killed"
	case EventExtraLife:
		return "extra_life"
	case EventLevelComplete:
		return "level_complete"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a discrete outcome of a tick for external collaborators. Only the
// fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	From   State
	To     State
	Tile   world.Tile
	Ghost  GhostID
	Points int
	Level  int
	Phase  int
}

// Has reports whether events contains an event of kind k.
func Has(events []Event, k EventKind) bool {
	_, ok := Find(events, k)
	return ok
}

// Find returns the first event of kind k.
func Find(events []Event, k EventKind) (Event, bool) {
	for _, e := range events {
		if e.Kind == k {
			return e, true
		}
	}
	return Event{}, false
}
