package world

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a mutating operation names a tile outside
// the grid.
var ErrOutOfBounds = errors.New("tile out of bounds")

// World is a maze layout plus the mutable food state of one level. Read-only
// predicates answer false for tiles outside the grid.
type World struct {
	layout *Layout
	width  int
	height int
	cells  []Cell

	eaten      bitset
	foodTotal  int
	foodEaten  int
	portals    map[Tile]Tile
	tunnels    map[Tile]bool
	upBlocked  map[Tile]bool
	doorTiles  []Tile
	energizers []Tile
}

// New builds a World from a layout with all food present.
func New(l *Layout) (*World, error) {
	width, height, cells, err := parseRows(l.Rows)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", l.Name, err)
	}

	w := &World{
		layout:    l,
		width:     width,
		height:    height,
		cells:     cells,
		eaten:     newBitset(width * height),
		portals:   make(map[Tile]Tile, 2*len(l.Portals)),
		tunnels:   make(map[Tile]bool, len(l.Tunnels)),
		upBlocked: make(map[Tile]bool, len(l.UpwardBlocked)),
	}
	for _, p := range l.Portals {
		w.portals[p[0]] = p[1]
		w.portals[p[1]] = p[0]
		w.tunnels[p[0]] = true
		w.tunnels[p[1]] = true
	}
	for _, t := range l.Tunnels {
		w.tunnels[t] = true
	}
	for _, t := range l.UpwardBlocked {
		w.upBlocked[t] = true
	}
	for i, c := range cells {
		t := T(i%width, i/width)
		switch c {
		case Pellet:
			w.foodTotal++
		case Energizer:
			w.foodTotal++
			w.energizers = append(w.energizers, t)
		case Door:
			w.doorTiles = append(w.doorTiles, t)
		}
	}

	for _, t := range append([]Tile{l.HouseEntry, l.HouseCenter, l.PlayerHome, l.BonusTile}, l.GhostHomes[:]...) {
		if !w.Contains(t) {
			return nil, fmt.Errorf("layout %q: geometry tile %v: %w", l.Name, t, ErrOutOfBounds)
		}
	}
	return w, nil
}

// MustNew is New for layouts known to be valid.
func MustNew(l *Layout) *World {
	w, err := New(l)
	if err != nil {
		panic(err)
	}
	return w
}

// Layout returns the layout the world was built from.
func (w *World) Layout() *Layout { return w.layout }

// Width returns the number of columns.
func (w *World) Width() int { return w.width }

// Height returns the number of rows.
func (w *World) Height() int { return w.height }

// Contains reports whether t lies inside the grid.
func (w *World) Contains(t Tile) bool {
	return t.X >= 0 && t.X < w.width && t.Y >= 0 && t.Y < w.height
}

func (w *World) index(t Tile) int {
	return t.Y*w.width + t.X
}

func (w *World) cell(t Tile) Cell {
	if !w.Contains(t) {
		return Space
	}
	return w.cells[w.index(t)]
}

// IsWall reports whether t blocks movement. Door tiles count as walls; see
// IsDoor for the exception granted to ghosts.
func (w *World) IsWall(t Tile) bool {
	c := w.cell(t)
	return c == Wall || c == Door
}

// IsDoor reports whether t is a ghost house door.
func (w *World) IsDoor(t Tile) bool {
	return w.cell(t) == Door
}

// IsPortal reports whether t teleports to its paired tile.
func (w *World) IsPortal(t Tile) bool {
	_, ok := w.portals[t]
	return ok
}

// PortalPair returns the tile paired with portal t.
func (w *World) PortalPair(t Tile) (Tile, bool) {
	p, ok := w.portals[t]
	return p, ok
}

// IsTunnel reports whether t slows down ghosts.
func (w *World) IsTunnel(t Tile) bool {
	return w.tunnels[t]
}

// IsUpwardBlocked reports whether hunting ghosts standing on t may not turn up.
func (w *World) IsUpwardBlocked(t Tile) bool {
	return w.upBlocked[t]
}

// IsOpen reports whether t can be walked on by any creature ignoring doors.
func (w *World) IsOpen(t Tile) bool {
	if w.IsPortal(t) {
		return true
	}
	return w.Contains(t) && !w.IsWall(t)
}

// IsIntersection reports whether at least three neighbours of an open tile
// are open.
func (w *World) IsIntersection(t Tile) bool {
	if !w.IsOpen(t) {
		return false
	}
	open := 0
	for _, d := range Priority {
		if w.IsOpen(t.Towards(d, 1)) {
			open++
		}
	}
	return open >= 3
}

// IsEnergizerTile reports whether t holds an energizer at level start.
func (w *World) IsEnergizerTile(t Tile) bool {
	return w.cell(t) == Energizer
}

// HasFood reports whether t still holds a pellet or energizer.
func (w *World) HasFood(t Tile) bool {
	c := w.cell(t)
	if c != Pellet && c != Energizer {
		return false
	}
	return !w.eaten.get(w.index(t))
}

// HasEnergizer reports whether t still holds an energizer.
func (w *World) HasEnergizer(t Tile) bool {
	return w.IsEnergizerTile(t) && w.HasFood(t)
}

// EatFood removes the food on t. Eating an empty tile is a no-op.
func (w *World) EatFood(t Tile) error {
	if !w.Contains(t) {
		return fmt.Errorf("eat food at %v: %w", t, ErrOutOfBounds)
	}
	if !w.HasFood(t) {
		return nil
	}
	w.eaten.set(w.index(t))
	w.foodEaten++
	return nil
}

// FoodTotal returns the food count at level start.
func (w *World) FoodTotal() int { return w.foodTotal }

// FoodEaten returns the food eaten since the last reset.
func (w *World) FoodEaten() int { return w.foodEaten }

// FoodRemaining returns the food still in the maze.
func (w *World) FoodRemaining() int { return w.foodTotal - w.foodEaten }

// ResetFood restores every pellet and energizer.
func (w *World) ResetFood() {
	w.eaten.clear()
	w.foodEaten = 0
}

// Energizers returns the energizer tiles.
func (w *World) Energizers() []Tile { return w.energizers }

// Doors returns the house door tiles.
func (w *World) Doors() []Tile { return w.doorTiles }

// HouseEntry returns the tile in front of the house door.
func (w *World) HouseEntry() Tile { return w.layout.HouseEntry }

// HouseCenter returns the middle tile inside the house.
func (w *World) HouseCenter() Tile { return w.layout.HouseCenter }

// GhostHome returns the start tile of ghost slot i.
func (w *World) GhostHome(i int) Tile { return w.layout.GhostHomes[i] }

// ScatterCorner returns the scatter target of ghost slot i.
func (w *World) ScatterCorner(i int) Tile { return w.layout.ScatterCorners[i] }

// PlayerHome returns the player's start tile.
func (w *World) PlayerHome() Tile { return w.layout.PlayerHome }

// BonusTile returns the tile where bonus symbols appear.
func (w *World) BonusTile() Tile { return w.layout.BonusTile }

// InsideHouse reports whether t lies in the house interior.
func (w *World) InsideHouse(t Tile) bool {
	c := w.layout.HouseCenter
	return t.Y >= c.Y-1 && t.Y <= c.Y+1 && t.X >= c.X-2 && t.X <= c.X+3
}

type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) get(i int) bool {
	return b[i/64]&(1<<(uint(i)%64)) != 0
}

func (b bitset) set(i int) {
	b[i/64] |= 1 << (uint(i) % 64)
}

func (b bitset) clear() {
	for i := range b {
		b[i] = 0
	}
}
