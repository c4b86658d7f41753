package game

import (
	"github.com/ugaemi/mazechase/internal/world"
)

// Kind selects the capabilities a creature has.
type Kind int

const (
	KindPlayer Kind = iota
	KindGhost
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindGhost:
		return "ghost"
	default:
		return "unknown"
	}
}

// Creature is the movement record shared by the player and the ghosts.
type Creature struct {
	Kind          Kind
	Pos           world.Vector
	Dir           world.Direction
	WishDir       world.Direction
	Speed         float64 // fraction of BaseSpeed
	Visible       bool
	CouldMove     bool
	ChangedTile   bool
	ForcedOnTrack bool
}

// Tile returns the tile containing the creature.
func (c *Creature) Tile() world.Tile {
	return world.TileOf(c.Pos)
}

// Offset returns the creature's position inside its tile.
func (c *Creature) Offset() world.Vector {
	return world.OffsetOf(c.Pos)
}

// PlaceAt moves the creature to tile t with the given pixel offset.
func (c *Creature) PlaceAt(t world.Tile, offX, offY float64) {
	c.Pos = world.PositionOf(t, world.Vector{X: offX, Y: offY})
}

// SetDir sets the current direction.
func (c *Creature) SetDir(d world.Direction) error {
	if err := d.Check(); err != nil {
		return err
	}
	c.Dir = d
	return nil
}

// SetWishDir sets the direction to take as soon as possible.
func (c *Creature) SetWishDir(d world.Direction) error {
	if err := d.Check(); err != nil {
		return err
	}
	c.WishDir = d
	return nil
}

// PixelSpeed returns the displacement per tick at the current speed.
func (c *Creature) PixelSpeed() float64 {
	return c.Speed * BaseSpeed
}
