package world

import (
	"errors"
	"fmt"
)

// Cell is the static content of a tile.
type Cell int

const (
	Space Cell = iota
	Wall
	Pellet
	Energizer
	Door
)

// Layout symbols used by ParseRows.
const (
	symWall      = '#'
	symPellet    = '.'
	symEnergizer = '*'
	symDoor      = '-'
	symSpace     = ' '
)

// GhostSlots is the number of adversaries a layout provides geometry for.
const GhostSlots = 4

// Layout describes a maze: its rows plus the fixed geometry the simulation
// needs. Home positions are tiles whose actors sit half a tile to the right.
type Layout struct {
	Name           string
	Rows           []string
	Portals        [][2]Tile
	Tunnels        []Tile
	UpwardBlocked  []Tile
	HouseEntry     Tile
	HouseCenter    Tile
	GhostHomes     [GhostSlots]Tile
	ScatterCorners [GhostSlots]Tile
	PlayerHome     Tile
	BonusTile      Tile
}

var errEmptyLayout = errors.New("layout has no rows")

// parseRows converts layout rows into a cell grid.
func parseRows(rows []string) (width, height int, cells []Cell, err error) {
	if len(rows) == 0 {
		return 0, 0, nil, errEmptyLayout
	}
	width = len(rows[0])
	height = len(rows)
	cells = make([]Cell, 0, width*height)
	for y, row := range rows {
		if len(row) != width {
			return 0, 0, nil, fmt.Errorf("row %d has width %d, want %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			switch row[x] {
			case symWall:
				cells = append(cells, Wall)
			case symPellet:
				cells = append(cells, Pellet)
			case symEnergizer:
				cells = append(cells, Energizer)
			case symDoor:
				cells = append(cells, Door)
			case symSpace:
				cells = append(cells, Space)
			default:
				return 0, 0, nil, fmt.Errorf("row %d col %d: unknown symbol %q", y, x, row[x])
			}
		}
	}
	return width, height, cells, nil
}

var classicRows = []string{
	"                            ",
	"                            ",
	"                            ",
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#*####.#####.##.#####.####*#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"     #.##### ## #####.#     ",
	"     #.##          ##.#     ",
	"     #.## ###--### ##.#     ",
	"######.## #      # ##.######",
	"      .   #      #   .      ",
	"######.## #      # ##.######",
	"     #.## ######## ##.#     ",
	"     #.##          ##.#     ",
	"     #.## ######## ##.#     ",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#*..##.......  .......##..*#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
	"                            ",
	"                            ",
}

// ClassicLayout returns the arcade maze: 28x36 tiles, 240 pellets and 4
// energizers.
func ClassicLayout() *Layout {
	l := &Layout{
		Name:          "classic",
		Rows:          classicRows,
		Portals:       [][2]Tile{{T(-1, 17), T(28, 17)}},
		UpwardBlocked: []Tile{T(12, 14), T(15, 14), T(12, 26), T(15, 26)},
		HouseEntry:    T(13, 14),
		HouseCenter:   T(13, 17),
		GhostHomes: [GhostSlots]Tile{
			T(13, 14), T(13, 17), T(11, 17), T(15, 17),
		},
		ScatterCorners: [GhostSlots]Tile{
			T(25, 0), T(2, 0), T(27, 35), T(0, 35),
		},
		PlayerHome: T(13, 26),
		BonusTile:  T(13, 20),
	}
	for x := 0; x <= 5; x++ {
		l.Tunnels = append(l.Tunnels, T(x, 17))
	}
	for x := 22; x <= 27; x++ {
		l.Tunnels = append(l.Tunnels, T(x, 17))
	}
	return l
}
