package game

import (
	"math"

	"github.com/ugaemi/mazechase/internal/world"
)

// AccessFunc reports whether a creature may enter a tile.
type AccessFunc func(world.Tile) bool

// Accessible is the tile access rule shared by every creature. Door tiles
// are only open to creatures entitled to cross them.
func Accessible(w *world.World, t world.Tile, doorEntitled bool) bool {
	if w.IsPortal(t) {
		return true
	}
	if w.IsDoor(t) {
		return doorEntitled
	}
	return w.Contains(t) && !w.IsWall(t)
}

// Move advances c by one tick. The wish direction is tried first; when it is
// blocked the creature keeps going in its current direction.
func Move(c *Creature, w *world.World, access AccessFunc) {
	if c.WishDir.Valid() && c.WishDir != c.Dir {
		MoveTowards(c, w, c.WishDir, access)
		if c.CouldMove {
			c.Dir = c.WishDir
			return
		}
	}
	MoveTowards(c, w, c.Dir, access)
}

// MoveTowards tries to displace c one tick in direction dir. It records the
// outcome in c.CouldMove and c.ChangedTile and never leaves c inside a tile
// it cannot access.
func MoveTowards(c *Creature, w *world.World, dir world.Direction, access AccessFunc) {
	c.ChangedTile = false
	if !dir.Valid() {
		c.CouldMove = false
		return
	}

	tile := c.Tile()
	if pair, ok := w.PortalPair(tile); ok && exitsGrid(w, tile.Towards(dir, 1), dir) {
		c.PlaceAt(pair, 0, 0)
		c.CouldMove = true
		c.ChangedTile = true
		return
	}

	speed := c.PixelSpeed()
	off := c.Offset()
	neighbor := tile.Towards(dir, 1)
	neighborOpen := access(neighbor)

	if c.ForcedOnTrack && neighborOpen {
		if dir.Horizontal() {
			if math.Abs(off.Y) > speed {
				c.CouldMove = false
				return
			}
			off.Y = 0
		} else {
			if math.Abs(off.X) > speed {
				c.CouldMove = false
				return
			}
			off.X = 0
		}
		c.PlaceAt(tile, off.X, off.Y)
	}

	next := c.Pos.Plus(dir.Vector().Scaled(speed))
	nextTile := world.TileOf(next)

	if !neighborOpen && overshoots(dir, tile, nextTile, world.OffsetOf(next)) {
		if dir.Horizontal() {
			c.PlaceAt(tile, 0, off.Y)
		} else {
			c.PlaceAt(tile, off.X, 0)
		}
		c.CouldMove = false
		return
	}

	if !access(nextTile) {
		c.CouldMove = false
		return
	}

	c.Pos = next
	c.ChangedTile = nextTile != tile
	c.CouldMove = true
}

// exitsGrid reports whether t lies past the grid edge along the axis of dir.
func exitsGrid(w *world.World, t world.Tile, dir world.Direction) bool {
	if dir.Horizontal() {
		return t.X < 0 || t.X >= w.Width()
	}
	return t.Y < 0 || t.Y >= w.Height()
}

// overshoots reports whether a move from tile in direction dir would pass
// the aligned position at the border of the neighbor tile.
func overshoots(dir world.Direction, tile, nextTile world.Tile, nextOff world.Vector) bool {
	if nextTile != tile {
		return true
	}
	switch dir {
	case world.Right:
		return nextOff.X > 0
	case world.Down:
		return nextOff.Y > 0
	default:
		return false
	}
}
