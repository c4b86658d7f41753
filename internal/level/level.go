package level

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ugaemi/mazechase/internal/tick"
)

//go:embed levels.yaml
var defaultTable []byte

// ErrEmptyTable is returned when a level table has no rows.
var ErrEmptyTable = errors.New("level table is empty")

// Data holds the immutable parameters of one level. Speeds are fractions of
// the base speed.
type Data struct {
	Number            int
	Bonus             string
	BonusValue        int
	PlayerSpeed       float64
	PlayerFrightSpeed float64
	GhostSpeed        float64
	GhostTunnelSpeed  float64
	Elroy1Dots        int
	Elroy1Speed       float64
	Elroy2Dots        int
	Elroy2Speed       float64
	GhostFrightSpeed  float64
	FrightTicks       int
	Flashes           int
}

// row is the YAML shape of a level entry. Speeds are percentages.
type row struct {
	Level             int     `yaml:"level"`
	Bonus             string  `yaml:"bonus"`
	BonusValue        int     `yaml:"bonus_value"`
	PlayerSpeed       int     `yaml:"player_speed"`
	PlayerFrightSpeed int     `yaml:"player_fright_speed"`
	GhostSpeed        int     `yaml:"ghost_speed"`
	GhostTunnelSpeed  int     `yaml:"ghost_tunnel_speed"`
	Elroy1Dots        int     `yaml:"elroy1_dots"`
	Elroy1Speed       int     `yaml:"elroy1_speed"`
	Elroy2Dots        int     `yaml:"elroy2_dots"`
	Elroy2Speed       int     `yaml:"elroy2_speed"`
	GhostFrightSpeed  int     `yaml:"ghost_fright_speed"`
	FrightSeconds     float64 `yaml:"fright_seconds"`
	Flashes           int     `yaml:"flashes"`
}

type file struct {
	Levels []row `yaml:"levels"`
}

// Table is an ordered list of levels starting at level 1.
type Table struct {
	levels []Data
}

// Default returns the built-in arcade table.
func Default() *Table {
	t, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("embedded level table: %v", err))
	}
	return t
}

// LoadFile reads a level table from a YAML file.
func LoadFile(filename string) (*Table, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read level table: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level table %s: %w", filename, err)
	}
	return t, nil
}

// Parse decodes a YAML level table. Levels must be numbered 1, 2, 3, ...
func Parse(data []byte) (*Table, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Levels) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{levels: make([]Data, 0, len(f.Levels))}
	for i, r := range f.Levels {
		if r.Level != i+1 {
			return nil, fmt.Errorf("entry %d has level %d, want %d", i, r.Level, i+1)
		}
		if r.Elroy2Dots > r.Elroy1Dots {
			return nil, fmt.Errorf("level %d: elroy2_dots %d above elroy1_dots %d", r.Level, r.Elroy2Dots, r.Elroy1Dots)
		}
		t.levels = append(t.levels, Data{
			Number:            r.Level,
			Bonus:             r.Bonus,
			BonusValue:        r.BonusValue,
			PlayerSpeed:       percent(r.PlayerSpeed),
			PlayerFrightSpeed: percent(r.PlayerFrightSpeed),
			GhostSpeed:        percent(r.GhostSpeed),
			GhostTunnelSpeed:  percent(r.GhostTunnelSpeed),
			Elroy1Dots:        r.Elroy1Dots,
			Elroy1Speed:       percent(r.Elroy1Speed),
			Elroy2Dots:        r.Elroy2Dots,
			Elroy2Speed:       percent(r.Elroy2Speed),
			GhostFrightSpeed:  percent(r.GhostFrightSpeed),
			FrightTicks:       tick.Sec(r.FrightSeconds),
			Flashes:           r.Flashes,
		})
	}
	return t, nil
}

func percent(p int) float64 {
	return float64(p) / 100
}

// Len returns the number of distinct levels.
func (t *Table) Len() int {
	return len(t.levels)
}

// Lookup returns level n, clamped to the table's range. The returned Data
// keeps the requested number.
func (t *Table) Lookup(n int) Data {
	i := n - 1
	if i < 0 {
		i = 0
	}
	if i >= len(t.levels) {
		i = len(t.levels) - 1
	}
	d := t.levels[i]
	if n >= 1 {
		d.Number = n
	}
	return d
}
