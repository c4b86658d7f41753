package world

import (
	"errors"
	"fmt"
)

// ErrInvalidDirection is returned when a direction other than the four
// cardinal ones is used where movement is required.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction is one of the four cardinal directions. The zero value DirNone
// means "no direction" and is only meaningful as player input.
type Direction int

const (
	DirNone Direction = iota
	Up
	Down
	Left
	Right
)

// Priority is the order used to break ties between equally good moves.
var Priority = [4]Direction{Up, Left, Down, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Check returns ErrInvalidDirection when d is not cardinal.
func (d Direction) Check() error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	return nil
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return DirNone
	}
}

// TurnLeft returns the direction after a counter-clockwise quarter turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	case Right:
		return Up
	default:
		return DirNone
	}
}

// TurnRight returns the direction after a clockwise quarter turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return DirNone
	}
}

// Delta returns the unit tile step for d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Vector returns the unit pixel vector for d.
func (d Direction) Vector() Vector {
	dx, dy := d.Delta()
	return Vector{X: float64(dx), Y: float64(dy)}
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}
