package game

import "github.com/ugaemi/mazechase/internal/world"

// shyDistance is the tile distance below which Clyde gives up the chase.
const shyDistance = 8

// aheadOf returns the tile n steps in front of t. Facing up it also shifts n
// tiles to the left, as the arcade's overflowing direction math did.
func aheadOf(t world.Tile, dir world.Direction, n int) world.Tile {
	ahead := t.Towards(dir, n)
	if dir == world.Up {
		ahead = ahead.Towards(world.Left, n)
	}
	return ahead
}

// ChaseTarget returns the chase-phase target of ghost id.
func ChaseTarget(id GhostID, self, corner world.Tile, player *Player, blinky world.Tile) world.Tile {
	pt := player.Tile()
	switch id {
	case Pinky:
		return aheadOf(pt, player.Dir, 4)
	case Inky:
		pivot := aheadOf(pt, player.Dir, 2)
		return pivot.Scaled(2).Minus(blinky)
	case Clyde:
		if self.DistSq(pt) >= shyDistance*shyDistance {
			return pt
		}
		return corner
	default:
		return pt
	}
}

// huntingTarget returns the target of a hunting ghost. Scatter sends ghosts
// to their corners unless they are in elroy mode.
func (g *Game) huntingTarget(gh *Ghost) world.Tile {
	if g.hunting.IsScatter() && gh.Elroy <= 0 {
		return gh.Corner
	}
	return ChaseTarget(gh.ID, gh.Tile(), gh.Corner, g.player, g.ghosts[Blinky].Tile())
}
