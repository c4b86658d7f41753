package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHighScore(t *testing.T) {
	hs := NewHighScore(1200, 3)

	assert.NotEmpty(t, hs.ID)
	assert.Len(t, hs.ID, 36)
	assert.Equal(t, 1200, hs.Points)
	assert.Equal(t, 3, hs.Level)
	assert.False(t, hs.AchievedAt.IsZero())
	assert.NotEqual(t, hs.ID, NewHighScore(1200, 3).ID)
}

func TestHighScore_Beats(t *testing.T) {
	low := NewHighScore(100, 1)
	high := NewHighScore(200, 1)

	assert.True(t, low.Beats(nil))
	assert.True(t, high.Beats(low))
	assert.False(t, low.Beats(high))
	assert.False(t, low.Beats(NewHighScore(100, 2)))
}

func TestMemoryStore_Empty(t *testing.T) {
	s := NewMemoryStore()

	hs, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, hs)
}

func TestMemoryStore_KeepsBest(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, NewHighScore(500, 2)))
	require.NoError(t, s.Save(ctx, NewHighScore(300, 1)))

	hs, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, hs)
	assert.Equal(t, 500, hs.Points)
	assert.Equal(t, 2, hs.Level)
	assert.Equal(t, 2, s.Saves())
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, NewHighScore(500, 2)))

	hs, err := s.Load(ctx)
	require.NoError(t, err)
	hs.Points = 0

	again, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 500, again.Points)
}

func TestMemoryStore_ImplementsHighScoreStore(t *testing.T) {
	var _ HighScoreStore = NewMemoryStore()
	var _ HighScoreStore = (*PostgresStore)(nil)
}
