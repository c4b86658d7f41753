package game

import "errors"

var (
	// ErrUnknownState is returned when the state dispatch meets a tag it
	// does not handle.
	ErrUnknownState = errors.New("unknown state")
	// ErrNoPreviousState is returned when a state tries to resume its
	// predecessor and none was recorded.
	ErrNoPreviousState = errors.New("no previous state to resume")
	// ErrHalted is returned by Advance after a tick failed. Reset clears it.
	ErrHalted = errors.New("game halted")
)

// State is the top-level game state.
type State int

const (
	StateIntro State = iota
	StateReady
	StateHunting
	StateGhostDying
	StatePlayerDying
	StateChangingLevel
	StateGameOver
	stateCount
)

func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateReady:
		return "ready"
	case StateHunting:
		return "hunting"
	case StateGhostDying:
		return "ghost_dying"
	case StatePlayerDying:
		return "player_dying"
	case StateChangingLevel:
		return "changing_level"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a known state.
func (s State) Valid() bool {
	return s >= StateIntro && s < stateCount
}

// GhostState is the behavior state of a ghost.
type GhostState int

const (
	Locked GhostState = iota
	LeavingHouse
	Hunting
	Frightened
	Dead
	EnteringHouse
)

func (s GhostState) String() string {
	switch s {
	case Locked:
		return "locked"
	case LeavingHouse:
		return "leaving_house"
	case Hunting:
		return "hunting"
	case Frightened:
		return "frightened"
	case Dead:
		return "dead"
	case EnteringHouse:
		return "entering_house"
	default:
		return "unknown"
	}
}
