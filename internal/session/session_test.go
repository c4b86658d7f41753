package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/mazechase/internal/game"
	"github.com/ugaemi/mazechase/internal/store"
	"github.com/ugaemi/mazechase/internal/world"
)

type failingStore struct {
	loadErr error
	saveErr error
}

func (f *failingStore) Load(context.Context) (*store.HighScore, error) { return nil, f.loadErr }
func (f *failingStore) Save(context.Context, *store.HighScore) error   { return f.saveErr }
func (f *failingStore) Close() error                                   { return nil }

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New(game.Options{Seed: 3, AutoStart: true})
	require.NoError(t, err)
	return g
}

func setupTestSession(t *testing.T, st store.HighScoreStore, opts Options) *Session {
	t.Helper()
	if opts.TickRate == 0 {
		opts.TickRate = 1000
	}
	s, err := New(context.Background(), newTestGame(t), st, NewRandomWalk(5), opts)
	require.NoError(t, err)
	t.Cleanup(s.Stop)
	return s
}

// runToEnd steps the session until it finishes.
func runToEnd(t *testing.T, s *Session) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < 500000; i++ {
		done, err := s.Step(ctx)
		require.NoError(t, err)
		if done {
			return
		}
	}
	t.Fatal("session never finished")
}

func TestNew_LoadsHighScore(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Save(context.Background(), store.NewHighScore(5000, 3)))

	s := setupTestSession(t, st, Options{})

	points, lvl := s.game.HighScore()
	assert.Equal(t, 5000, points)
	assert.Equal(t, 3, lvl)
	assert.Len(t, s.ID, 36)
}

func TestNew_LoadFails(t *testing.T) {
	loadErr := errors.New("connection refused")

	_, err := New(context.Background(), newTestGame(t), &failingStore{loadErr: loadErr}, NewRandomWalk(1), Options{})
	assert.ErrorIs(t, err, loadErr)
}

func TestStep_AdvancesGame(t *testing.T) {
	s := setupTestSession(t, store.NewMemoryStore(), Options{})

	done, err := s.Step(context.Background())
	require.NoError(t, err)
	assert.False(t, done)

	stats := s.Stats()
	assert.Equal(t, 1, stats.Ticks)
	assert.Equal(t, game.StateReady, stats.State)
	assert.Equal(t, game.InitialLives, stats.Lives)
}

func TestStep_MaxTicks(t *testing.T) {
	s := setupTestSession(t, store.NewMemoryStore(), Options{MaxTicks: 10})
	ctx := context.Background()

	for i := 1; i < 10; i++ {
		done, err := s.Step(ctx)
		require.NoError(t, err)
		require.False(t, done, "tick %d", i)
	}
	done, err := s.Step(ctx)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestStep_GameOverSavesHighScore(t *testing.T) {
	st := store.NewMemoryStore()
	s := setupTestSession(t, st, Options{})

	runToEnd(t, s)

	stats := s.Stats()
	assert.Equal(t, game.StateGameOver, stats.State)
	assert.Zero(t, stats.Lives)
	require.Positive(t, stats.Score)

	hs, err := st.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, hs)
	assert.Equal(t, stats.Score, hs.Points)
	assert.Equal(t, stats.Level, hs.Level)
	assert.Equal(t, hs.ID, s.Best().ID)
}

func TestStep_KeepsBetterStoredScore(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Save(context.Background(), store.NewHighScore(10_000_000, 99)))
	s := setupTestSession(t, st, Options{})

	runToEnd(t, s)

	assert.Equal(t, 1, st.Saves())
	assert.Equal(t, 10_000_000, s.Best().Points)
}

func TestStep_SaveFailureIsNotFatal(t *testing.T) {
	st := &failingStore{saveErr: errors.New("disk full")}
	s := setupTestSession(t, st, Options{})

	runToEnd(t, s)

	assert.Nil(t, s.Best())
	assert.Equal(t, game.StateGameOver, s.Stats().State)
}

func TestStart_RunsUntilStopped(t *testing.T) {
	s := setupTestSession(t, store.NewMemoryStore(), Options{})
	require.NoError(t, s.Start(context.Background()))

	time.Sleep(50 * time.Millisecond)
	s.Stop()
	s.Stop()

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
	assert.Positive(t, s.Stats().Ticks)
	assert.NoError(t, s.Err())
}

func TestStart_Twice(t *testing.T) {
	s := setupTestSession(t, store.NewMemoryStore(), Options{})
	require.NoError(t, s.Start(context.Background()))

	assert.ErrorIs(t, s.Start(context.Background()), ErrAlreadyStarted)
}

func TestStart_EndsAtMaxTicks(t *testing.T) {
	s := setupTestSession(t, store.NewMemoryStore(), Options{MaxTicks: 5})
	require.NoError(t, s.Start(context.Background()))

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("loop did not end")
	}
	assert.Equal(t, 5, s.Stats().Ticks)
}

func TestStart_ContextCancel(t *testing.T) {
	s := setupTestSession(t, store.NewMemoryStore(), Options{})
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))

	cancel()

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("loop ignored cancellation")
	}
}

func TestStart_HaltsOnGameError(t *testing.T) {
	bad := SteeringFunc(func(*game.Game) world.Direction { return world.Direction(9) })
	s, err := New(context.Background(), newTestGame(t), store.NewMemoryStore(), bad, Options{TickRate: 1000})
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))

	select {
	case <-s.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not halt")
	}
	assert.ErrorIs(t, s.Err(), world.ErrInvalidDirection)
}

func TestRandomWalk_OnlyTurnsOnNewTiles(t *testing.T) {
	g := newTestGame(t)
	rw := NewRandomWalk(1)
	p := g.Player()

	assert.Equal(t, world.DirNone, rw.Steer(g))

	// the home tile only opens to the left and right; right is the reverse
	p.ChangedTile = true
	assert.Equal(t, world.Left, rw.Steer(g))
}

func TestRandomWalk_NeverPicksWalls(t *testing.T) {
	g := newTestGame(t)
	rw := NewRandomWalk(9)
	p := g.Player()
	p.PlaceAt(world.T(6, 8), 0, 0)
	p.Dir = world.Right
	p.ChangedTile = true

	for i := 0; i < 100; i++ {
		d := rw.Steer(g)
		assert.Contains(t, []world.Direction{world.Up, world.Down, world.Right}, d)
	}
}
