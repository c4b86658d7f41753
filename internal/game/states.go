package game

import (
	"fmt"
	"log/slog"

	"github.com/ugaemi/mazechase/internal/world"
)

func (g *Game) update() error {
	switch g.state {
	case StateIntro:
		return g.updateIntro()
	case StateReady:
		return g.updateReady()
	case StateHunting:
		return g.updateHunting()
	case StateGhostDying:
		return g.updateGhostDying()
	case StatePlayerDying:
		return g.updatePlayerDying()
	case StateChangingLevel:
		return g.updateChangingLevel()
	case StateGameOver:
		return g.updateGameOver()
	}
	return fmt.Errorf("update: %w: %d", ErrUnknownState, int(g.state))
}

func (g *Game) enter(s State) error {
	switch s {
	case StateIntro:
		g.enterIntro()
	case StateReady:
		g.enterReady()
	case StateHunting:
		g.enterHunting()
	case StateGhostDying:
		g.enterGhostDying()
	case StatePlayerDying:
		g.enterPlayerDying()
	case StateChangingLevel:
		g.enterChangingLevel()
	case StateGameOver:
		g.enterGameOver()
	default:
		return fmt.Errorf("enter: %w: %d", ErrUnknownState, int(s))
	}
	return nil
}

func (g *Game) exit(s State) error {
	switch s {
	case StateGhostDying:
		g.player.Visible = true
	case StateIntro, StateReady, StateHunting, StatePlayerDying, StateChangingLevel, StateGameOver:
	default:
		return fmt.Errorf("exit: %w: %d", ErrUnknownState, int(s))
	}
	return nil
}

// changeState runs the exit hook of the current state and the enter hook of
// next.
func (g *Game) changeState(next State) error {
	if !next.Valid() {
		return fmt.Errorf("change state: %w: %d", ErrUnknownState, int(next))
	}
	if err := g.exit(g.state); err != nil {
		return err
	}
	g.switchTo(next)
	return g.enter(next)
}

// suspendInto enters next and remembers the current state for resumePrevious.
// The current state's exit hook does not run.
func (g *Game) suspendInto(next State) error {
	from := g.state
	g.previous = &from
	g.switchTo(next)
	return g.enter(next)
}

// resumePrevious returns to the suspended state without running its enter
// hook, so its timers and creatures continue where they stopped.
func (g *Game) resumePrevious() error {
	if g.previous == nil {
		return fmt.Errorf("%s: %w", g.state, ErrNoPreviousState)
	}
	if err := g.exit(g.state); err != nil {
		return err
	}
	prev := *g.previous
	g.previous = nil
	g.showingBounty = [world.GhostSlots]bool{}
	g.switchTo(prev)
	return nil
}

func (g *Game) switchTo(next State) {
	from := g.state
	g.state = next
	g.emit(Event{Kind: EventStateChanged, From: from, To: next, Level: g.level.Number})
	slog.Debug("state changed", "from", from.String(), "to", next.String(), "level", g.level.Number)
}

func (g *Game) setVisible(player, ghosts bool) {
	g.player.Visible = player
	for _, gh := range g.ghosts {
		gh.Visible = ghosts
	}
}

// Intro

func (g *Game) enterIntro() {
	t := &g.timers[StateIntro]
	t.ResetIndefinite()
	t.Start()
	g.setVisible(false, false)
}

func (g *Game) updateIntro() error {
	g.timers[StateIntro].Advance()
	if !g.startRequested && !g.opts.AutoStart {
		return nil
	}
	g.startRequested = false
	g.startNewGame()
	return g.changeState(StateReady)
}

func (g *Game) startNewGame() {
	g.score = 0
	g.lives = InitialLives
	g.extraLifeGiven = false
	g.previous = nil
	g.loadLevel(g.opts.StartLevel)
	g.newGame = true
}

// Ready

func (g *Game) enterReady() {
	g.resetCreatures()
	ticks := readyTicks
	if g.newGame {
		ticks = readyTicksNewGame
		g.newGame = false
	}
	t := &g.timers[StateReady]
	t.Reset(ticks)
	t.Start()
	g.setVisible(true, true)
}

func (g *Game) updateReady() error {
	t := &g.timers[StateReady]
	t.Advance()
	if !t.Expired() {
		return nil
	}
	return g.changeState(StateHunting)
}

// Hunting

func (g *Game) enterHunting() {
	t := &g.timers[StateHunting]
	t.ResetIndefinite()
	t.Start()
	g.hunting.Start(g.level.Number)
	if b := g.ghosts[Blinky]; b.State == Locked {
		b.State = Hunting
		b.ForcedOnTrack = true
		b.ChangedTile = true
	}
	g.setVisible(true, true)
}

func (g *Game) updateHunting() error {
	g.timers[StateHunting].Advance()

	if err := g.updatePlayer(); err != nil {
		return err
	}
	for _, gh := range g.ghosts {
		if err := g.updateGhost(gh); err != nil {
			return err
		}
	}

	cleared, err := g.checkFood()
	if err != nil {
		return err
	}
	if cleared {
		return g.changeState(StateChangingLevel)
	}

	killed, ateGhost := g.checkContacts()
	if killed {
		return g.changeState(StatePlayerDying)
	}
	if ateGhost {
		return g.suspendInto(StateGhostDying)
	}

	g.updateBonus()
	g.updateHouse()
	g.updatePower()
	g.updatePhase()
	return nil
}

// Ghost dying: the game freezes to show the bounty. Eyes eaten earlier
// keep moving.

func (g *Game) enterGhostDying() {
	t := &g.timers[StateGhostDying]
	t.Reset(ghostDyingTicks)
	t.Start()
	g.player.Visible = false
}

func (g *Game) updateGhostDying() error {
	t := &g.timers[StateGhostDying]
	t.Advance()
	for _, gh := range g.ghosts {
		if !gh.Is(Dead, EnteringHouse) || g.showingBounty[gh.ID] {
			continue
		}
		if err := g.updateGhost(gh); err != nil {
			return err
		}
	}
	if !t.Expired() {
		return nil
	}
	return g.resumePrevious()
}

// Player dying

func (g *Game) enterPlayerDying() {
	g.lives--
	g.player.PowerTimer.Stop()
	g.house.OnLifeLost()
	if b := g.ghosts[Blinky]; b.Elroy > 0 {
		b.Elroy = -b.Elroy
	}
	g.bonus.Active = false
	t := &g.timers[StatePlayerDying]
	t.Reset(playerDyingTicks)
	t.Start()
	g.emit(Event{Kind: EventPlayerKilled, Tile: g.player.Tile(), Level: g.level.Number, Points: g.lives})
	slog.Debug("player killed", "level", g.level.Number, "lives", g.lives)
}

func (g *Game) updatePlayerDying() error {
	t := &g.timers[StatePlayerDying]
	t.Advance()
	if t.TicksRunning() == hideGhostsTick {
		g.setVisible(true, false)
	}
	if !t.Expired() {
		return nil
	}
	if g.lives > 0 {
		return g.changeState(StateReady)
	}
	return g.changeState(StateGameOver)
}

// Changing level

func (g *Game) enterChangingLevel() {
	g.player.PowerTimer.Stop()
	g.bonus.Active = false
	t := &g.timers[StateChangingLevel]
	t.Reset(levelChangeTicks + g.level.Flashes*flashTicks)
	t.Start()
	g.setVisible(true, false)
	g.emit(Event{Kind: EventLevelComplete, Level: g.level.Number, Points: g.score})
	slog.Debug("level complete", "level", g.level.Number, "score", g.score)
}

func (g *Game) updateChangingLevel() error {
	t := &g.timers[StateChangingLevel]
	t.Advance()
	if !t.Expired() {
		return nil
	}
	g.loadLevel(g.level.Number + 1)
	return g.changeState(StateReady)
}

// Game over

func (g *Game) enterGameOver() {
	t := &g.timers[StateGameOver]
	t.Reset(gameOverTicks)
	t.Start()
	g.setVisible(false, true)
	g.emit(Event{Kind: EventGameOver, Points: g.score, Level: g.level.Number})
	slog.Debug("game over", "score", g.score, "level", g.level.Number)
}

func (g *Game) updateGameOver() error {
	t := &g.timers[StateGameOver]
	t.Advance()
	if !t.Expired() {
		return nil
	}
	return g.changeState(StateIntro)
}
