package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ugaemi/mazechase/internal/game"
	"github.com/ugaemi/mazechase/internal/store"
	"github.com/ugaemi/mazechase/internal/tick"
)

// ErrAlreadyStarted is returned when Start is called on a running session.
var ErrAlreadyStarted = errors.New("session already started")

// Options configures a session loop.
type Options struct {
	TickRate int // ticks per second, tick.Rate when zero
	MaxTicks int // 0 runs until game over
}

// Stats is a snapshot of a session.
type Stats struct {
	Ticks int
	State game.State
	Score int
	Lives int
	Level int
}

// Session drives one game at a fixed tick rate and persists its high
// score.
type Session struct {
	ID string

	game     *game.Game
	store    store.HighScoreStore
	steering Steering
	interval time.Duration
	maxTicks int

	best  *store.HighScore
	ticks int
	err   error

	started  bool
	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	mu sync.Mutex
}

// New creates a session and seeds the game's high score from the store.
func New(ctx context.Context, g *game.Game, st store.HighScoreStore, steering Steering, opts Options) (*Session, error) {
	best, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load high score: %w", err)
	}
	if best != nil {
		g.SetHighScore(best.Points, best.Level)
	}

	rate := opts.TickRate
	if rate <= 0 {
		rate = tick.Rate
	}

	s := &Session{
		ID:       uuid.New().String(),
		game:     g,
		store:    st,
		steering: steering,
		interval: time.Second / time.Duration(rate),
		maxTicks: opts.MaxTicks,
		best:     best,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
	points, _ := g.HighScore()
	slog.Info("session created", "session", s.ID, "tick_rate", rate, "high_score", points)
	return s, nil
}

// Step runs one tick synchronously. It reports true once the session is
// finished: the game is over or the tick limit is reached.
func (s *Session) Step(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := game.Input{Dir: s.steering.Steer(s.game)}
	events, err := s.game.Advance(in)
	s.ticks++
	if err != nil {
		return true, fmt.Errorf("tick %d: %w", s.ticks, err)
	}

	finished := false
	for _, e := range events {
		if s.handle(ctx, e) {
			finished = true
		}
	}
	if s.maxTicks > 0 && s.ticks >= s.maxTicks {
		finished = true
	}
	return finished, nil
}

// handle logs an event and reports whether it ends the session.
// Caller must hold s.mu.
func (s *Session) handle(ctx context.Context, e game.Event) bool {
	switch e.Kind {
	case game.EventLevelComplete:
		slog.Info("level complete", "session", s.ID, "level", e.Level, "score", e.Points)
	case game.EventPlayerKilled:
		slog.Info("player killed", "session", s.ID, "level", e.Level, "lives", e.Points)
	case game.EventExtraLife:
		slog.Info("extra life", "session", s.ID, "score", e.Points)
	case game.EventGhostEaten:
		slog.Debug("ghost eaten", "session", s.ID, "ghost", e.Ghost.String(), "points", e.Points)
	case game.EventGameOver:
		slog.Info("game over", "session", s.ID, "score", e.Points, "level", e.Level)
		s.saveHighScore(ctx, e.Points, e.Level)
		return true
	}
	return false
}

// saveHighScore stores the result if it beats the best known score. Store
// failures are logged and the session carries on.
func (s *Session) saveHighScore(ctx context.Context, points, level int) {
	if points == 0 {
		return
	}
	hs := store.NewHighScore(points, level)
	if !hs.Beats(s.best) {
		return
	}
	if err := s.store.Save(ctx, hs); err != nil {
		slog.Error("failed to save high score", "session", s.ID, "error", err)
		return
	}
	s.best = hs
	slog.Info("high score saved", "session", s.ID, "id", hs.ID, "points", hs.Points, "level", hs.Level)
}

// Start runs the tick loop in a goroutine until the game is over, the
// tick limit is reached, Stop is called or ctx is done.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true
	go s.loop(ctx)
	return nil
}

// Stop ends the tick loop. It is safe to call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

// Done is closed when the tick loop has ended.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Err returns the error that ended the tick loop, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Stats returns a snapshot of the session.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Ticks: s.ticks,
		State: s.game.State(),
		Score: s.game.Score(),
		Lives: s.game.Lives(),
		Level: s.game.LevelNumber(),
	}
}

// Best returns the best score known to the session.
func (s *Session) Best() *store.HighScore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best
}

// loop runs the tick loop at the session's tick rate.
func (s *Session) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			finished, err := s.Step(ctx)
			if err != nil {
				slog.Error("session halted", "session", s.ID, "error", err)
				s.mu.Lock()
				s.err = err
				s.mu.Unlock()
				return
			}
			if finished {
				slog.Info("session finished", "session", s.ID, "ticks", s.Stats().Ticks)
				return
			}
		}
	}
}
