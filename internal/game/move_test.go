package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ugaemi/mazechase/internal/world"
)

func newMover(w *world.World, tile world.Tile, offX, offY float64, dir world.Direction) *Player {
	p := NewPlayer()
	p.Reset(w)
	p.PlaceAt(tile, offX, offY)
	p.Dir = dir
	p.WishDir = dir
	p.Speed = 0.8 // 1 px per tick
	return p
}

func TestMove_StraightAhead(t *testing.T) {
	w := newWorld(t)
	p := newMover(w, world.T(13, 26), 4, 0, world.Left)

	Move(&p.Creature, w, p.access(w))

	assert.True(t, p.CouldMove)
	assert.False(t, p.ChangedTile)
	assert.InDelta(t, 3, p.Offset().X, 0.0001)
	assert.Equal(t, world.T(13, 26), p.Tile())
}

func TestMove_EntersNextTile(t *testing.T) {
	w := newWorld(t)
	p := newMover(w, world.T(13, 26), 0.5, 0, world.Left)

	Move(&p.Creature, w, p.access(w))

	assert.True(t, p.ChangedTile)
	assert.Equal(t, world.T(12, 26), p.Tile())
}

func TestMove_PortalWrap(t *testing.T) {
	w := newWorld(t)

	left := newMover(w, world.T(-1, 17), 0, 0, world.Left)
	MoveTowards(&left.Creature, w, world.Left, left.access(w))
	assert.Equal(t, world.T(28, 17), left.Tile())
	assert.True(t, left.ChangedTile)

	right := newMover(w, world.T(28, 17), 0, 0, world.Right)
	MoveTowards(&right.Creature, w, world.Right, right.access(w))
	assert.Equal(t, world.T(-1, 17), right.Tile())
	assert.True(t, right.CouldMove)
}

func TestMove_SidewaysWishOnPortal(t *testing.T) {
	w := newWorld(t)

	for _, dir := range []world.Direction{world.Up, world.Down} {
		t.Run(dir.String(), func(t *testing.T) {
			p := newMover(w, world.T(28, 17), 0, 0, world.Right)
			MoveTowards(&p.Creature, w, dir, p.access(w))
			assert.False(t, p.CouldMove)
			assert.Equal(t, world.T(28, 17), p.Tile())
		})
	}

	p := newMover(w, world.T(27, 17), 6, 0, world.Right)
	p.WishDir = world.Up
	for i := 0; i < 8; i++ {
		Move(&p.Creature, w, p.access(w))
		assert.Equal(t, world.Right, p.Dir, "tick %d", i+1)
	}
	assert.Equal(t, world.T(-1, 17), p.Tile())
	assert.InDelta(t, 5, p.Offset().X, 0.0001)
}

func TestMove_WalksIntoPortal(t *testing.T) {
	w := newWorld(t)
	p := newMover(w, world.T(0, 17), 0, 0, world.Left)

	Move(&p.Creature, w, p.access(w))

	assert.True(t, p.CouldMove)
	assert.Equal(t, world.T(-1, 17), p.Tile())
}

func TestMove_BlockedWishKeepsDirection(t *testing.T) {
	w := newWorld(t)
	p := newMover(w, world.T(13, 26), 4, 0, world.Left)
	p.WishDir = world.Up

	Move(&p.Creature, w, p.access(w))

	assert.Equal(t, world.Left, p.Dir)
	assert.Equal(t, world.Up, p.WishDir)
	assert.InDelta(t, 3, p.Offset().X, 0.0001)
}

func TestMove_TurnSnapsToTrack(t *testing.T) {
	w := newWorld(t)
	p := newMover(w, world.T(6, 8), 0.5, 0, world.Left)
	p.WishDir = world.Down

	Move(&p.Creature, w, p.access(w))

	assert.True(t, p.CouldMove)
	assert.Equal(t, world.Down, p.Dir)
	assert.InDelta(t, 0, p.Offset().X, 0.0001)
	assert.InDelta(t, 1, p.Offset().Y, 0.0001)
}

func TestMove_TurnTooFarFromCenter(t *testing.T) {
	w := newWorld(t)
	p := newMover(w, world.T(6, 8), 3, 0, world.Left)
	p.WishDir = world.Down

	Move(&p.Creature, w, p.access(w))

	assert.Equal(t, world.Left, p.Dir)
	assert.InDelta(t, 2, p.Offset().X, 0.0001)
	assert.InDelta(t, 0, p.Offset().Y, 0.0001)
}

func TestMove_RejectedMoveIsIdempotent(t *testing.T) {
	w := newWorld(t)

	tests := []struct {
		name string
		tile world.Tile
		dir  world.Direction
	}{
		{"wall above", world.T(1, 4), world.Up},
		{"wall left", world.T(1, 4), world.Left},
		{"wall right", world.T(26, 4), world.Right},
		{"wall below", world.T(1, 32), world.Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newMover(w, tt.tile, 0, 0, tt.dir)
			start := p.Pos

			MoveTowards(&p.Creature, w, tt.dir, p.access(w))
			assert.False(t, p.CouldMove)
			assert.Equal(t, start, p.Pos)

			MoveTowards(&p.Creature, w, tt.dir, p.access(w))
			assert.False(t, p.CouldMove)
			assert.Equal(t, start, p.Pos)
			assert.Equal(t, tt.tile, p.Tile())
		})
	}
}

func TestMove_InvalidDirection(t *testing.T) {
	w := newWorld(t)
	p := newMover(w, world.T(13, 26), 4, 0, world.Left)
	start := p.Pos

	MoveTowards(&p.Creature, w, world.DirNone, p.access(w))

	assert.False(t, p.CouldMove)
	assert.Equal(t, start, p.Pos)
}

func TestAccessible_Doors(t *testing.T) {
	w := newWorld(t)
	door := w.Doors()[0]

	assert.False(t, Accessible(w, door, false))
	assert.True(t, Accessible(w, door, true))
	assert.True(t, Accessible(w, world.T(-1, 17), false))
	assert.False(t, Accessible(w, world.T(-1, 4), false))
	assert.False(t, Accessible(w, world.T(0, 4), true))
}

func TestCreature_SetWishDirRejectsInvalid(t *testing.T) {
	p := NewPlayer()

	assert.ErrorIs(t, p.SetWishDir(world.Direction(42)), world.ErrInvalidDirection)
	assert.NoError(t, p.SetWishDir(world.Up))
	assert.Equal(t, world.Up, p.WishDir)
}
