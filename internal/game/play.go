package game

import (
	"fmt"
	"log/slog"

	"github.com/ugaemi/mazechase/internal/world"
)

func (g *Game) updatePlayer() error {
	p := g.player
	if g.input.Dir != world.DirNone {
		if err := p.SetWishDir(g.input.Dir); err != nil {
			return fmt.Errorf("player input: %w", err)
		}
	}
	if p.RestingTicks > 0 {
		p.RestingTicks--
		return nil
	}
	if p.HasPower() {
		p.Speed = g.level.PlayerFrightSpeed
	} else {
		p.Speed = g.level.PlayerSpeed
	}
	Move(&p.Creature, g.world, p.access(g.world))
	return nil
}

func (g *Game) updateGhost(gh *Ghost) error {
	w := g.world
	switch gh.State {
	case Locked:
		gh.Speed = g.level.GhostSpeed / 2
		gh.bounce(w)
	case LeavingHouse:
		gh.Speed = g.level.GhostSpeed / 2
		if gh.leaveHouse(w) {
			gh.State = Hunting
		}
	case Hunting:
		gh.Speed = g.huntingSpeed(gh)
		gh.steer(w, g.rng, func() *world.Tile {
			t := g.huntingTarget(gh)
			return &t
		})
		Move(&gh.Creature, w, gh.access(w))
	case Frightened:
		gh.Speed = g.frightSpeed(gh)
		gh.steer(w, g.rng, func() *world.Tile { return nil })
		Move(&gh.Creature, w, gh.access(w))
	case Dead:
		gh.Speed = g.level.GhostSpeed * 2
		entry := w.HouseEntry()
		gh.steer(w, g.rng, func() *world.Tile { return &entry })
		Move(&gh.Creature, w, gh.access(w))
		if gh.atHouseDoor(w) {
			gh.PlaceAt(entry, world.TileSize/2, 0)
			gh.State = EnteringHouse
			gh.Target = nil
		}
	case EnteringHouse:
		gh.Speed = g.level.GhostSpeed / 2
		if gh.enterHouse(w) {
			gh.State = LeavingHouse
			gh.Bounty = 0
		}
	default:
		return fmt.Errorf("ghost %s: %w: %d", gh.ID, ErrUnknownState, int(gh.State))
	}
	return nil
}

func (g *Game) huntingSpeed(gh *Ghost) float64 {
	if g.world.IsTunnel(gh.Tile()) {
		return g.level.GhostTunnelSpeed
	}
	switch gh.Elroy {
	case 1:
		return g.level.Elroy1Speed
	case 2:
		return g.level.Elroy2Speed
	}
	return g.level.GhostSpeed
}

func (g *Game) frightSpeed(gh *Ghost) float64 {
	if g.world.IsTunnel(gh.Tile()) {
		return min(g.level.GhostTunnelSpeed, g.level.GhostFrightSpeed)
	}
	return g.level.GhostFrightSpeed
}

// checkFood lets the player eat the food on its tile. It reports true when
// the maze is cleared.
func (g *Game) checkFood() (bool, error) {
	p := g.player
	t := p.Tile()
	if !g.world.HasFood(t) {
		p.StarvingTicks++
		return false, nil
	}
	energizer := g.world.HasEnergizer(t)
	if err := g.world.EatFood(t); err != nil {
		return false, fmt.Errorf("player eats at %s: %w", t, err)
	}
	p.StarvingTicks = 0

	if energizer {
		p.RestingTicks = EnergizerRestTicks
		g.addScore(EnergizerPoints)
		g.emit(Event{Kind: EventEnergizerEaten, Tile: t, Points: EnergizerPoints})
		g.givePower()
	} else {
		p.RestingTicks = PelletRestTicks
		g.addScore(PelletPoints)
		g.emit(Event{Kind: EventFoodEaten, Tile: t, Points: PelletPoints})
	}

	g.house.OnFoodEaten(g.ghosts)
	g.checkElroy()
	g.checkBonusTrigger()
	return g.world.FoodRemaining() == 0, nil
}

// checkElroy speeds up Blinky when the remaining food reaches a threshold.
// A suspended elroy stays suspended at its new level.
func (g *Game) checkElroy() {
	var elroy int
	switch g.world.FoodRemaining() {
	case g.level.Elroy1Dots:
		elroy = 1
	case g.level.Elroy2Dots:
		elroy = 2
	default:
		return
	}
	b := g.ghosts[Blinky]
	if b.Elroy < 0 {
		b.Elroy = -elroy
		return
	}
	b.Elroy = elroy
}

func (g *Game) givePower() {
	g.killedInPower = 0
	frighten := g.level.FrightTicks > 0
	for _, gh := range g.ghosts {
		if !gh.Is(Hunting, Frightened) {
			continue
		}
		gh.ForceReverse()
		if frighten {
			gh.State = Frightened
		}
	}
	if !frighten {
		return
	}
	g.player.PowerTimer.Reset(g.level.FrightTicks)
	g.player.PowerTimer.Start()
	g.hunting.Pause()
}

func (g *Game) updatePower() {
	pt := &g.player.PowerTimer
	if !pt.Running() {
		return
	}
	pt.Advance()
	if !pt.Expired() {
		return
	}
	pt.Stop()
	for _, gh := range g.ghosts {
		if gh.State == Frightened {
			gh.State = Hunting
		}
	}
	g.hunting.Resume()
}

// checkContacts resolves player and ghost encounters in ghost order. It
// reports whether the player was killed and whether a ghost was eaten.
func (g *Game) checkContacts() (killed, ateGhost bool) {
	for _, gh := range FindContacts(g.player, g.ghosts) {
		if gh.State == Frightened {
			g.killGhost(gh)
			ateGhost = true
			continue
		}
		return true, ateGhost
	}
	return false, ateGhost
}

func (g *Game) killGhost(gh *Ghost) {
	bounty := FirstBounty << g.killedInPower
	g.killedInPower++
	g.killedInLevel++
	gh.State = Dead
	gh.Bounty = bounty
	gh.Target = nil
	gh.ChangedTile = true
	g.showingBounty[gh.ID] = true
	g.addScore(bounty)
	g.emit(Event{Kind: EventGhostEaten, Ghost: gh.ID, Tile: gh.Tile(), Points: bounty})
	if g.killedInLevel == len(GhostIDs)*len(g.world.Energizers()) {
		g.addScore(AllGhostsBonus)
	}
}

func (g *Game) checkBonusTrigger() {
	eaten := g.world.FoodEaten()
	if eaten != BonusFirstTrigger && eaten != BonusSecondTrigger {
		return
	}
	g.bonus = Bonus{
		Symbol: g.level.Bonus,
		Value:  g.level.BonusValue,
		Tile:   g.world.BonusTile(),
		Active: true,
	}
	g.bonus.timer.Reset(bonusMinTicks + g.rng.Intn(bonusJitterTicks+1))
	g.bonus.timer.Start()
	g.emit(Event{Kind: EventBonusAvailable, Tile: g.bonus.Tile, Points: g.bonus.Value})
}

func (g *Game) updateBonus() {
	b := &g.bonus
	if !b.Active {
		return
	}
	if OnBonus(g.player, g.world) {
		b.Active = false
		g.addScore(b.Value)
		g.emit(Event{Kind: EventBonusEaten, Tile: b.Tile, Points: b.Value})
		return
	}
	b.timer.Advance()
	if b.timer.Expired() {
		b.Active = false
		g.emit(Event{Kind: EventBonusExpired, Tile: b.Tile})
	}
}

func (g *Game) updateHouse() {
	gh, reason, ok := g.house.Update(g.ghosts, g.level.Number, g.player)
	if !ok {
		return
	}
	gh.State = LeavingHouse
	if gh.ID == Clyde {
		if b := g.ghosts[Blinky]; b.Elroy < 0 {
			b.Elroy = -b.Elroy
		}
	}
	g.emit(Event{Kind: EventGhostReleased, Ghost: gh.ID, Tile: gh.Tile()})
	slog.Debug("ghost released", "ghost", gh.ID.String(), "reason", reason.String(), "level", g.level.Number)
}

func (g *Game) updatePhase() {
	if !g.hunting.Advance() {
		return
	}
	for _, gh := range g.ghosts {
		if gh.State == Hunting {
			gh.ForceReverse()
		}
	}
	g.emit(Event{Kind: EventPhaseChanged, Phase: g.hunting.Phase()})
}
