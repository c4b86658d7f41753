package game

import "github.com/ugaemi/mazechase/internal/world"

// Touching reports whether a ghost and the player share a tile.
func Touching(p *Player, g *Ghost) bool {
	return p.Tile() == g.Tile()
}

// FindContacts returns the ghosts on the player's tile that can interact
// with it, in update order.
func FindContacts(p *Player, ghosts []*Ghost) []*Ghost {
	var contacts []*Ghost
	for _, g := range ghosts {
		if !g.Is(Hunting, Frightened) {
			continue
		}
		if Touching(p, g) {
			contacts = append(contacts, g)
		}
	}
	return contacts
}

// OnBonus reports whether the player stands on the bonus tile.
func OnBonus(p *Player, w *world.World) bool {
	return p.Tile() == w.BonusTile()
}
