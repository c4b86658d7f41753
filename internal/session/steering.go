package session

import (
	"math/rand"

	"github.com/ugaemi/mazechase/internal/game"
	"github.com/ugaemi/mazechase/internal/world"
)

// Steering supplies the player's wish direction each tick. DirNone keeps
// the current one.
type Steering interface {
	Steer(g *game.Game) world.Direction
}

// SteeringFunc adapts a function to Steering.
type SteeringFunc func(g *game.Game) world.Direction

// Steer calls f(g).
func (f SteeringFunc) Steer(g *game.Game) world.Direction { return f(g) }

// RandomWalk turns into a random open direction whenever the player
// enters a new tile or is blocked. It only reverses in dead ends.
type RandomWalk struct {
	rnd *rand.Rand
}

// NewRandomWalk creates a seeded random walker.
func NewRandomWalk(seed int64) *RandomWalk {
	return &RandomWalk{rnd: rand.New(rand.NewSource(seed))}
}

// Steer picks the next wish direction.
func (r *RandomWalk) Steer(g *game.Game) world.Direction {
	p := g.Player()
	if !p.ChangedTile && p.CouldMove {
		return world.DirNone
	}

	w := g.World()
	tile := p.Tile()
	if w.IsPortal(tile) {
		return world.DirNone
	}
	options := make([]world.Direction, 0, 4)
	for _, d := range world.Priority {
		if d == p.Dir.Opposite() {
			continue
		}
		if p.CanAccess(w, tile.Towards(d, 1)) {
			options = append(options, d)
		}
	}
	if len(options) == 0 {
		return p.Dir.Opposite()
	}
	return options[r.rnd.Intn(len(options))]
}
