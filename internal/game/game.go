package game

import (
	"fmt"
	"math/rand"

	"github.com/ugaemi/mazechase/internal/level"
	"github.com/ugaemi/mazechase/internal/tick"
	"github.com/ugaemi/mazechase/internal/world"
)

// Input is the external input state sampled once per tick.
type Input struct {
	Dir   world.Direction // DirNone keeps the current wish direction
	Start bool            // leave the intro
}

// Options configures a Game.
type Options struct {
	Layout     *world.Layout
	Levels     *level.Table
	StartLevel int
	Seed       int64
	AutoStart  bool
}

// Bonus is the fruit symbol that appears below the house.
type Bonus struct {
	Symbol string
	Value  int
	Tile   world.Tile
	Active bool
	timer  tick.Timer
}

// TicksRemaining returns the ticks until an active bonus disappears.
func (b *Bonus) TicksRemaining() int {
	return b.timer.TicksRemaining()
}

// Game is the simulation context. All mutable state of a running game lives
// here and is only touched by Advance and Reset.
type Game struct {
	opts    Options
	world   *world.World
	level   level.Data
	player  *Player
	ghosts  []*Ghost
	house   House
	hunting Scheduler
	rng     *rand.Rand

	state    State
	previous *State
	timers   [stateCount]tick.Timer

	score          int
	lives          int
	highScore      int
	highScoreLevel int
	extraLifeGiven bool
	killedInPower  int
	killedInLevel  int
	showingBounty  [world.GhostSlots]bool
	bonus          Bonus
	newGame        bool
	startRequested bool
	input          Input
	events         []Event
	halted         error
}

// New creates a game in the intro state. Missing options fall back to the
// classic maze and the built-in level table.
func New(opts Options) (*Game, error) {
	if opts.Layout == nil {
		opts.Layout = world.ClassicLayout()
	}
	if opts.Levels == nil {
		opts.Levels = level.Default()
	}
	if opts.StartLevel < 1 {
		opts.StartLevel = 1
	}

	w, err := world.New(opts.Layout)
	if err != nil {
		return nil, fmt.Errorf("failed to build world: %w", err)
	}

	g := &Game{
		opts:   opts,
		world:  w,
		player: NewPlayer(),
		ghosts: make([]*Ghost, len(GhostIDs)),
	}
	for _, id := range GhostIDs {
		g.ghosts[id] = NewGhost(id, w)
	}
	g.Reset()
	return g, nil
}

// Reset reinitializes every mutable record and returns to the intro. It
// also clears a halted game.
func (g *Game) Reset() {
	g.rng = rand.New(rand.NewSource(g.opts.Seed))
	g.halted = nil
	g.previous = nil
	g.startRequested = false
	g.score = 0
	g.lives = InitialLives
	g.extraLifeGiven = false
	g.loadLevel(g.opts.StartLevel)
	g.resetCreatures()
	g.state = StateIntro
	g.enterIntro()
	g.events = nil
}

// RequestStart asks the intro to start a new game on the next tick.
func (g *Game) RequestStart() {
	g.startRequested = true
}

// Advance runs one simulation tick and returns the events it produced. A
// failed tick halts the game until Reset.
func (g *Game) Advance(in Input) ([]Event, error) {
	if g.halted != nil {
		return nil, fmt.Errorf("%w: %v", ErrHalted, g.halted)
	}
	g.events = nil
	g.input = in
	if in.Start {
		g.startRequested = true
	}
	if err := g.update(); err != nil {
		g.halted = err
		return g.events, err
	}
	return g.events, nil
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

func (g *Game) loadLevel(n int) {
	g.level = g.opts.Levels.Lookup(n)
	g.world.ResetFood()
	g.house.Reset()
	g.killedInLevel = 0
	g.bonus = Bonus{}
	for _, gh := range g.ghosts {
		gh.DotCounter = 0
		gh.Elroy = 0
	}
}

func (g *Game) resetCreatures() {
	g.player.Reset(g.world)
	for _, gh := range g.ghosts {
		gh.Reset(g.world)
	}
	g.killedInPower = 0
	g.showingBounty = [world.GhostSlots]bool{}
	g.bonus.Active = false
}

func (g *Game) addScore(points int) {
	before := g.score
	g.score += points
	if !g.extraLifeGiven && before < ExtraLifePoints && g.score >= ExtraLifePoints {
		g.extraLifeGiven = true
		g.lives++
		g.emit(Event{Kind: EventExtraLife, Points: g.score})
	}
	if g.score > g.highScore {
		g.highScore = g.score
		g.highScoreLevel = g.level.Number
	}
}

// State returns the current game state.
func (g *Game) State() State { return g.state }

// StateTimer returns the timer of the current state.
func (g *Game) StateTimer() *tick.Timer {
	if !g.state.Valid() {
		return nil
	}
	return &g.timers[g.state]
}

// Previous returns the state a suspended state will resume.
func (g *Game) Previous() (State, bool) {
	if g.previous == nil {
		return 0, false
	}
	return *g.previous, true
}

// World returns the maze of the current level.
func (g *Game) World() *world.World { return g.world }

// Level returns the data of the current level.
func (g *Game) Level() level.Data { return g.level }

// LevelNumber returns the current level number.
func (g *Game) LevelNumber() int { return g.level.Number }

// Player returns the player.
func (g *Game) Player() *Player { return g.player }

// Ghost returns the ghost with the given identity.
func (g *Game) Ghost(id GhostID) *Ghost { return g.ghosts[id] }

// Ghosts returns all ghosts in update order.
func (g *Game) Ghosts() []*Ghost { return g.ghosts }

// House returns the dot counter state.
func (g *Game) House() *House { return &g.house }

// Hunting returns the scatter/chase scheduler.
func (g *Game) Hunting() *Scheduler { return &g.hunting }

// Score returns the points of the running game.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives, including the one in play.
func (g *Game) Lives() int { return g.lives }

// Bonus returns the bonus state.
func (g *Game) Bonus() Bonus { return g.bonus }

// HighScore returns the best score known to the game and its level.
func (g *Game) HighScore() (points, levelNum int) {
	return g.highScore, g.highScoreLevel
}

// SetHighScore seeds the best score, e.g. from a persistent store.
func (g *Game) SetHighScore(points, levelNum int) {
	g.highScore = points
	g.highScoreLevel = levelNum
}
