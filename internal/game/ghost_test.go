package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ugaemi/mazechase/internal/world"
)

func placedGhost(w *world.World, id GhostID, state GhostState, tile world.Tile, dir world.Direction) *Ghost {
	g := NewGhost(id, w)
	g.Reset(w)
	g.State = state
	g.PlaceAt(tile, 0, 0)
	g.Dir = dir
	g.WishDir = dir
	return g
}

func TestNextDirection_TieGoesToPriority(t *testing.T) {
	w := newWorld(t)
	g := placedGhost(w, Blinky, Hunting, world.T(6, 8), world.Right)
	target := world.T(7, 7)
	g.Target = &target

	// up (6,7) and right (7,8) are both one tile away from the target
	assert.Equal(t, world.Up, NextDirection(g, w, rand.New(rand.NewSource(1))))
}

func TestNextDirection_ClosestNeighborWins(t *testing.T) {
	w := newWorld(t)
	g := placedGhost(w, Blinky, Hunting, world.T(6, 8), world.Right)
	target := world.T(6, 20)
	g.Target = &target

	assert.Equal(t, world.Down, NextDirection(g, w, rand.New(rand.NewSource(1))))
}

func TestNextDirection_NeverReversesOutsideDeadEnd(t *testing.T) {
	w := newWorld(t)
	g := placedGhost(w, Blinky, Hunting, world.T(1, 4), world.Left)
	target := world.T(5, 4)
	g.Target = &target

	// the target lies behind the ghost; the only forward exit is down
	assert.Equal(t, world.Down, NextDirection(g, w, rand.New(rand.NewSource(1))))
}

func TestNextDirection_UpwardBlocked(t *testing.T) {
	w := newWorld(t)
	target := world.T(12, 0)

	hunting := placedGhost(w, Blinky, Hunting, world.T(12, 14), world.Left)
	hunting.Target = &target
	assert.Equal(t, world.Left, NextDirection(hunting, w, rand.New(rand.NewSource(1))))

	dead := placedGhost(w, Blinky, Dead, world.T(12, 14), world.Left)
	dead.Target = &target
	assert.Equal(t, world.Up, NextDirection(dead, w, rand.New(rand.NewSource(1))))
}

func TestNextDirection_DoorOnlyForHouseStates(t *testing.T) {
	w := newWorld(t)
	target := w.HouseCenter()

	hunting := placedGhost(w, Blinky, Hunting, w.HouseEntry(), world.Left)
	hunting.Target = &target
	assert.NotEqual(t, world.Down, NextDirection(hunting, w, rand.New(rand.NewSource(1))))

	entering := placedGhost(w, Blinky, EnteringHouse, w.HouseEntry(), world.Left)
	entering.Target = &target
	assert.Equal(t, world.Down, NextDirection(entering, w, rand.New(rand.NewSource(1))))
}

func TestNextDirection_RandomWithoutTarget(t *testing.T) {
	w := newWorld(t)
	rnd := rand.New(rand.NewSource(7))
	seen := map[world.Direction]int{}

	for i := 0; i < 200; i++ {
		g := placedGhost(w, Pinky, Frightened, world.T(6, 8), world.Right)
		seen[NextDirection(g, w, rnd)]++
	}

	assert.Zero(t, seen[world.Left], "frightened ghost reversed")
	assert.Greater(t, len(seen), 1)
	for d := range seen {
		assert.Contains(t, []world.Direction{world.Up, world.Down, world.Right}, d)
	}
}

func TestNextDirection_KeepsDirectionOnPortal(t *testing.T) {
	w := newWorld(t)
	g := placedGhost(w, Blinky, Hunting, world.T(-1, 17), world.Left)
	target := world.T(25, 0)
	g.Target = &target

	assert.Equal(t, world.Left, NextDirection(g, w, rand.New(rand.NewSource(1))))
}

func TestGhost_ForceReverse(t *testing.T) {
	w := newWorld(t)
	g := placedGhost(w, Blinky, Hunting, world.T(6, 8), world.Right)
	g.ForceReverse()
	assert.True(t, g.ReversePending())

	g.steer(w, rand.New(rand.NewSource(1)), func() *world.Tile { return nil })

	assert.False(t, g.ReversePending())
	assert.Equal(t, world.Left, g.WishDir)
}

func TestGhost_Reset(t *testing.T) {
	w := newWorld(t)
	ghosts := newGhosts(w)

	for _, g := range ghosts {
		assert.Equal(t, Locked, g.State)
		assert.Equal(t, g.Home, g.Tile())
		assert.Equal(t, w.ScatterCorner(int(g.ID)), g.Corner)
	}
	assert.True(t, ghosts[Blinky].ForcedOnTrack)
	assert.False(t, ghosts[Pinky].ForcedOnTrack)
	assert.Equal(t, world.Left, ghosts[Blinky].Dir)
	assert.Equal(t, world.Down, ghosts[Pinky].Dir)
	assert.Equal(t, world.Up, ghosts[Inky].Dir)
}

func TestGhost_LeaveHouse(t *testing.T) {
	w := newWorld(t)
	g := NewGhost(Inky, w)
	g.Reset(w)
	g.State = LeavingHouse
	g.Speed = 0.5

	left := false
	for i := 0; i < 200 && !left; i++ {
		left = g.leaveHouse(w)
	}

	assert.True(t, left)
	assert.Equal(t, w.HouseEntry(), g.Tile())
	assert.Equal(t, world.Left, g.Dir)
	assert.True(t, g.ForcedOnTrack)
}

func TestGhost_EnterHouse(t *testing.T) {
	w := newWorld(t)
	g := NewGhost(Clyde, w)
	g.Reset(w)
	g.State = EnteringHouse
	g.PlaceAt(w.HouseEntry(), world.TileSize/2, 0)
	g.Speed = 1

	arrived := false
	for i := 0; i < 200 && !arrived; i++ {
		arrived = g.enterHouse(w)
	}

	assert.True(t, arrived)
	assert.Equal(t, g.Home, g.Tile())
	assert.Equal(t, world.Up, g.Dir)
}

func TestGhost_BounceStaysHome(t *testing.T) {
	w := newWorld(t)
	g := NewGhost(Pinky, w)
	g.Reset(w)
	g.Speed = 0.5

	for i := 0; i < 100; i++ {
		g.bounce(w)
		assert.InDelta(t, g.Home.Origin().Y, g.Pos.Y, world.TileSize/2)
	}
}

func TestChaseTarget(t *testing.T) {
	w := newWorld(t)
	p := NewPlayer()
	p.Reset(w)
	corner := world.T(0, 35)
	blinky := world.T(13, 14)

	tests := []struct {
		name     string
		id       GhostID
		self     world.Tile
		dir      world.Direction
		expected world.Tile
	}{
		{"blinky chases the player", Blinky, world.T(1, 4), world.Left, world.T(13, 26)},
		{"pinky four ahead", Pinky, world.T(1, 4), world.Left, world.T(9, 26)},
		{"pinky facing up shifts left", Pinky, world.T(1, 4), world.Up, world.T(9, 22)},
		{"inky mirrors blinky", Inky, world.T(1, 4), world.Left, world.T(9, 38)},
		{"inky facing up shifts left", Inky, world.T(1, 4), world.Up, world.T(9, 34)},
		{"clyde far chases", Clyde, world.T(13, 14), world.Left, world.T(13, 26)},
		{"clyde near retreats", Clyde, world.T(13, 23), world.Left, corner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.Dir = tt.dir
			assert.Equal(t, tt.expected, ChaseTarget(tt.id, tt.self, corner, p, blinky))
		})
	}
}
