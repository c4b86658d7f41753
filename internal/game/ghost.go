package game

import (
	"math"
	"math/rand"

	"github.com/ugaemi/mazechase/internal/world"
)

// GhostID identifies one of the four ghosts. The order is also the update
// order.
type GhostID int

const (
	Blinky GhostID = iota // direct chaser, leads the pack
	Pinky                 // ambusher
	Inky                  // pincer
	Clyde                 // shy
)

// GhostIDs lists every ghost in update order.
var GhostIDs = [world.GhostSlots]GhostID{Blinky, Pinky, Inky, Clyde}

func (id GhostID) String() string {
	switch id {
	case Blinky:
		return "blinky"
	case Pinky:
		return "pinky"
	case Inky:
		return "inky"
	case Clyde:
		return "clyde"
	default:
		return "unknown"
	}
}

// Ghost is an adversary.
type Ghost struct {
	Creature
	ID         GhostID
	State      GhostState
	Target     *world.Tile // nil means move randomly
	DotCounter int
	Bounty     int
	Home       world.Tile
	Corner     world.Tile

	// Elroy is 0 when off and 1 or 2 when active. A negative value is a
	// suspended level; thresholds reached while suspended keep the sign.
	Elroy int

	reverse bool
}

// NewGhost creates a ghost with the home and scatter corner of its slot.
func NewGhost(id GhostID, w *world.World) *Ghost {
	return &Ghost{
		Creature: Creature{Kind: KindGhost},
		ID:       id,
		Home:     w.GhostHome(int(id)),
		Corner:   w.ScatterCorner(int(id)),
	}
}

// Reset puts the ghost back on its home position, locked.
func (g *Ghost) Reset(w *world.World) {
	g.PlaceAt(g.Home, world.TileSize/2, 0)
	g.State = Locked
	g.Target = nil
	g.Bounty = 0
	g.Visible = true
	g.CouldMove = true
	g.ChangedTile = false
	g.reverse = false
	g.ForcedOnTrack = g.Home == w.HouseEntry()
	switch g.ID {
	case Blinky:
		g.Dir = world.Left
	case Pinky:
		g.Dir = world.Down
	default:
		g.Dir = world.Up
	}
	g.WishDir = g.Dir
}

// Is reports whether the ghost is in any of the given states.
func (g *Ghost) Is(states ...GhostState) bool {
	for _, s := range states {
		if g.State == s {
			return true
		}
	}
	return false
}

// ForceReverse makes the ghost turn around on its next movement step.
func (g *Ghost) ForceReverse() {
	g.reverse = true
}

// ReversePending reports whether a forced reversal is queued.
func (g *Ghost) ReversePending() bool {
	return g.reverse
}

// CanCrossDoor reports whether the ghost may walk through the house door.
func (g *Ghost) CanCrossDoor() bool {
	return g.State == EnteringHouse || g.State == LeavingHouse
}

// CanAccess reports whether the ghost may enter t in its current state.
func (g *Ghost) CanAccess(w *world.World, t world.Tile) bool {
	return Accessible(w, t, g.CanCrossDoor())
}

func (g *Ghost) access(w *world.World) AccessFunc {
	return func(t world.Tile) bool { return g.CanAccess(w, t) }
}

// NextDirection picks the direction to leave the current tile. The reverse
// direction is only taken in a dead end. With a target the neighbor closest
// to it wins, ties going to the earlier entry of world.Priority. Without a
// target the choice is random among the open directions.
func NextDirection(g *Ghost, w *world.World, rnd *rand.Rand) world.Direction {
	tile := g.Tile()
	if w.IsPortal(tile) {
		return g.Dir
	}

	candidates := make([]world.Direction, 0, 4)
	for _, d := range world.Priority {
		if d == g.Dir.Opposite() {
			continue
		}
		if !g.CanAccess(w, tile.Towards(d, 1)) {
			continue
		}
		if d == world.Up && g.State == Hunting && w.IsUpwardBlocked(tile) {
			continue
		}
		candidates = append(candidates, d)
	}

	if len(candidates) == 0 {
		return g.Dir.Opposite()
	}
	if g.Target == nil {
		if len(candidates) == 1 {
			return candidates[0]
		}
		return candidates[rnd.Intn(len(candidates))]
	}

	best := candidates[0]
	bestDist := tile.Towards(best, 1).DistSq(*g.Target)
	for _, d := range candidates[1:] {
		if dist := tile.Towards(d, 1).DistSq(*g.Target); dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

// steer updates the wish direction when the ghost entered a new tile, could
// not move, or has a pending reversal.
func (g *Ghost) steer(w *world.World, rnd *rand.Rand, target func() *world.Tile) {
	if g.reverse {
		g.reverse = false
		g.WishDir = g.Dir.Opposite()
		return
	}
	if !g.ChangedTile && g.CouldMove {
		return
	}
	g.Target = target()
	g.WishDir = NextDirection(g, w, rnd)
}

// bounce moves a locked ghost up and down around its home position. Ghosts
// whose home is outside the house stand still.
func (g *Ghost) bounce(w *world.World) {
	if g.Home == w.HouseEntry() {
		return
	}
	homeY := g.Home.Origin().Y
	top := homeY - world.TileSize/2
	bottom := homeY + world.TileSize/2
	speed := g.PixelSpeed()

	switch g.Dir {
	case world.Up:
		g.Pos.Y -= speed
		if g.Pos.Y <= top {
			g.Pos.Y = top
			g.Dir = world.Down
		}
	default:
		g.Pos.Y += speed
		if g.Pos.Y >= bottom {
			g.Pos.Y = bottom
			g.Dir = world.Up
		}
	}
	g.WishDir = g.Dir
}

// leaveHouse walks the ghost to the house exit. It reports true once the
// ghost stands aligned on the entry tile.
func (g *Ghost) leaveHouse(w *world.World) bool {
	entry := w.HouseEntry()
	exitX := entry.Origin().X + world.TileSize/2
	exitY := entry.Origin().Y
	speed := g.PixelSpeed()

	if dx := exitX - g.Pos.X; math.Abs(dx) > speed {
		if dx > 0 {
			g.Pos.X += speed
			g.Dir = world.Right
		} else {
			g.Pos.X -= speed
			g.Dir = world.Left
		}
		g.WishDir = g.Dir
		return false
	}
	g.Pos.X = exitX

	if g.Pos.Y-speed > exitY {
		g.Pos.Y -= speed
		g.Dir = world.Up
		g.WishDir = g.Dir
		return false
	}

	g.PlaceAt(entry, world.TileSize/2, 0)
	g.Dir = world.Left
	g.WishDir = world.Left
	g.ForcedOnTrack = true
	g.ChangedTile = true
	return true
}

// reviveTarget is the tile an entering ghost walks to before it revives.
func (g *Ghost) reviveTarget(w *world.World) world.Tile {
	if g.Home == w.HouseEntry() {
		return w.HouseCenter()
	}
	return g.Home
}

// enterHouse walks a returning ghost down through the door to its revive
// target. It reports true when the target is reached.
func (g *Ghost) enterHouse(w *world.World) bool {
	target := g.reviveTarget(w)
	targetY := w.HouseCenter().Origin().Y
	targetX := target.Origin().X + world.TileSize/2
	speed := g.PixelSpeed()
	g.ForcedOnTrack = false

	if g.Pos.Y+speed < targetY {
		g.Pos.Y += speed
		g.Dir = world.Down
		g.WishDir = g.Dir
		return false
	}
	g.Pos.Y = targetY

	if dx := targetX - g.Pos.X; math.Abs(dx) > speed {
		if dx > 0 {
			g.Pos.X += speed
			g.Dir = world.Right
		} else {
			g.Pos.X -= speed
			g.Dir = world.Left
		}
		g.WishDir = g.Dir
		return false
	}
	g.Pos.X = targetX
	g.Dir = world.Up
	g.WishDir = world.Up
	return true
}

// atHouseDoor reports whether a dead ghost reached the entry tile centered
// on the door, within one tick of movement.
func (g *Ghost) atHouseDoor(w *world.World) bool {
	if g.Tile() != w.HouseEntry() {
		return false
	}
	off := g.Offset()
	return math.Abs(off.X-world.TileSize/2) <= g.PixelSpeed() && off.Y == 0
}
