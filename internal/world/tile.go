package world

import (
	"fmt"
	"math"
)

// TileSize is the edge length of a tile in pixels.
const TileSize = 8

// Tile is an integer grid coordinate.
type Tile struct {
	X, Y int
}

// T is shorthand for Tile{X: x, Y: y}.
func T(x, y int) Tile {
	return Tile{X: x, Y: y}
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.X, t.Y)
}

// Plus returns the component-wise sum.
func (t Tile) Plus(o Tile) Tile {
	return Tile{X: t.X + o.X, Y: t.Y + o.Y}
}

// Minus returns the component-wise difference.
func (t Tile) Minus(o Tile) Tile {
	return Tile{X: t.X - o.X, Y: t.Y - o.Y}
}

// Scaled multiplies both components by n.
func (t Tile) Scaled(n int) Tile {
	return Tile{X: t.X * n, Y: t.Y * n}
}

// Towards returns the tile n steps away in direction d.
func (t Tile) Towards(d Direction, n int) Tile {
	dx, dy := d.Delta()
	return Tile{X: t.X + dx*n, Y: t.Y + dy*n}
}

// DistSq returns the squared Euclidean distance in tiles.
func (t Tile) DistSq(o Tile) int {
	dx := t.X - o.X
	dy := t.Y - o.Y
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance in tiles.
func (t Tile) Dist(o Tile) float64 {
	return math.Sqrt(float64(t.DistSq(o)))
}

// Origin returns the pixel position of the tile's top-left corner.
func (t Tile) Origin() Vector {
	return Vector{X: float64(t.X * TileSize), Y: float64(t.Y * TileSize)}
}

// Vector is a pixel position or displacement.
type Vector struct {
	X, Y float64
}

// Plus returns the sum of two vectors.
func (v Vector) Plus(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scaled multiplies v by s.
func (v Vector) Scaled(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// TileOf returns the tile containing pixel position v.
func TileOf(v Vector) Tile {
	return Tile{
		X: int(math.Floor(v.X / TileSize)),
		Y: int(math.Floor(v.Y / TileSize)),
	}
}

// OffsetOf returns the position of v inside its tile. Both components are in
// [0, TileSize).
func OffsetOf(v Vector) Vector {
	o := TileOf(v).Origin()
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// PositionOf combines a tile and an offset into a pixel position.
func PositionOf(t Tile, offset Vector) Vector {
	return t.Origin().Plus(offset)
}
