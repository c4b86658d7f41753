package game

import (
	"github.com/ugaemi/mazechase/internal/tick"
	"github.com/ugaemi/mazechase/internal/world"
)

// Player is the creature steered by the external input.
type Player struct {
	Creature
	PowerTimer    tick.Timer
	RestingTicks  int
	StarvingTicks int
}

// NewPlayer creates a player that is not yet placed in a maze.
func NewPlayer() *Player {
	return &Player{
		Creature: Creature{Kind: KindPlayer, ForcedOnTrack: true},
	}
}

// Reset places the player on its home position facing left.
func (p *Player) Reset(w *world.World) {
	p.PlaceAt(w.PlayerHome(), world.TileSize/2, 0)
	p.Dir = world.Left
	p.WishDir = world.Left
	p.Visible = true
	p.CouldMove = true
	p.ChangedTile = false
	p.ForcedOnTrack = true
	p.RestingTicks = 0
	p.StarvingTicks = 0
	p.PowerTimer.Reset(0)
}

// HasPower reports whether ghosts are currently vulnerable.
func (p *Player) HasPower() bool {
	return p.PowerTimer.Running() && !p.PowerTimer.Expired()
}

// CanAccess reports whether the player may enter t. Players never cross
// house doors.
func (p *Player) CanAccess(w *world.World, t world.Tile) bool {
	return Accessible(w, t, false)
}

func (p *Player) access(w *world.World) AccessFunc {
	return func(t world.Tile) bool { return p.CanAccess(w, t) }
}
