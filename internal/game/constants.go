package game

import "github.com/ugaemi/mazechase/internal/tick"

// Movement
const (
	BaseSpeed = 1.25 // pixels per tick at relative speed 1.0
)

// Lives and scoring
const (
	InitialLives    = 3
	ExtraLifePoints = 10000
	PelletPoints    = 10
	EnergizerPoints = 50
	FirstBounty     = 200
	AllGhostsBonus  = 12000 // every ghost eaten after each of the four energizers
)

// Player pauses after eating (ticks)
const (
	PelletRestTicks    = 1
	EnergizerRestTicks = 3
)

// Bonus appears after this many pellets are eaten
const (
	BonusFirstTrigger  = 70
	BonusSecondTrigger = 170
)

// Ghost house
const (
	globalLimitQuirk = 32 // global counter value that disables global mode while Clyde waits
)

// Game state timing (ticks)
var (
	readyTicksNewGame = tick.Sec(4.5)
	readyTicks        = tick.Sec(2)
	ghostDyingTicks   = tick.Sec(1)
	playerDyingTicks  = tick.Sec(4)
	hideGhostsTick    = tick.Sec(1.5)
	levelChangeTicks  = tick.Sec(2)
	flashTicks        = tick.Sec(0.4)
	gameOverTicks     = tick.Sec(5)
	bonusMinTicks     = tick.Sec(9)
	bonusJitterTicks  = tick.Sec(1)
)
